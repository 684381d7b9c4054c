// Package readability implements navigator.Cleaner on go-readability, a
// port of the Firefox Reader View heuristics. It is an alternative to the
// trafilatura cleaner for pages where Reader View does a better job.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	navigator "github.com/glendon144/ai-navigator"
)

// Ensure Cleaner implements navigator.Cleaner at compile time.
var _ navigator.Cleaner = (*Cleaner)(nil)

// Cleaner wraps go-readability to isolate the main content of a page.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean strips boilerplate from raw page HTML.
func (c *Cleaner) Clean(rawHTML string) (*navigator.CleanResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, navigator.Errorf(navigator.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, navigator.Errorf(navigator.EINTERNAL, "readability failed: %v", err)
	}

	return &navigator.CleanResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
