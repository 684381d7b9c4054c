// Package mock provides function-field mock implementations of the domain
// interfaces for use in tests.
package mock

import (
	"context"

	navigator "github.com/glendon144/ai-navigator"
)

var _ navigator.Outliner = (*Outliner)(nil)

// Outliner is a mock implementation of navigator.Outliner.
type Outliner struct {
	OutlineHTMLFn func(html string) *navigator.Outline
}

func (o *Outliner) OutlineHTML(html string) *navigator.Outline {
	return o.OutlineHTMLFn(html)
}

var _ navigator.ArchiveService = (*ArchiveService)(nil)

// ArchiveService is a mock implementation of navigator.ArchiveService.
type ArchiveService struct {
	CreatePageFn   func(ctx context.Context, page *navigator.ArchivePage) error
	FindPageByIDFn func(ctx context.Context, id int64) (*navigator.ArchivePage, error)
	ListPagesFn    func(ctx context.Context, filter navigator.ArchiveFilter) ([]*navigator.ArchivePage, error)
	SearchPagesFn  func(ctx context.Context, query string, limit int) ([]*navigator.ArchivePage, error)
}

func (s *ArchiveService) CreatePage(ctx context.Context, page *navigator.ArchivePage) error {
	return s.CreatePageFn(ctx, page)
}

func (s *ArchiveService) FindPageByID(ctx context.Context, id int64) (*navigator.ArchivePage, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *ArchiveService) ListPages(ctx context.Context, filter navigator.ArchiveFilter) ([]*navigator.ArchivePage, error) {
	return s.ListPagesFn(ctx, filter)
}

func (s *ArchiveService) SearchPages(ctx context.Context, query string, limit int) ([]*navigator.ArchivePage, error) {
	return s.SearchPagesFn(ctx, query, limit)
}

var _ navigator.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of navigator.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ navigator.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of navigator.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (*navigator.CleanResult, error)
}

func (c *Cleaner) Clean(html string) (*navigator.CleanResult, error) {
	return c.CleanFn(html)
}

var _ navigator.Converter = (*Converter)(nil)

// Converter is a mock implementation of navigator.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ navigator.Suggester = (*Suggester)(nil)

// Suggester is a mock implementation of navigator.Suggester.
type Suggester struct {
	SuggestOutlineFn func(ctx context.Context, text string) (string, error)
}

func (s *Suggester) SuggestOutline(ctx context.Context, text string) (string, error) {
	return s.SuggestOutlineFn(ctx, text)
}
