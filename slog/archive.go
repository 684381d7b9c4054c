// Package slog provides logging decorators over the navigator service
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	navigator "github.com/glendon144/ai-navigator"
)

// Ensure LoggingArchiveService implements navigator.ArchiveService.
var _ navigator.ArchiveService = (*LoggingArchiveService)(nil)

// LoggingArchiveService wraps an ArchiveService with operation logging.
type LoggingArchiveService struct {
	next   navigator.ArchiveService
	logger *slog.Logger
}

// NewLoggingArchiveService creates a new LoggingArchiveService.
func NewLoggingArchiveService(next navigator.ArchiveService, logger *slog.Logger) *LoggingArchiveService {
	return &LoggingArchiveService{next: next, logger: logger}
}

// CreatePage delegates to the wrapped service and logs the stored row.
func (s *LoggingArchiveService) CreatePage(ctx context.Context, page *navigator.ArchivePage) error {
	begin := time.Now()
	err := s.next.CreatePage(ctx, page)
	if err != nil {
		s.logger.Error("create page",
			"url", page.URL,
			"error", err,
			"duration", time.Since(begin),
		)
		return err
	}
	s.logger.Info("create page",
		"id", page.ID,
		"url", page.URL,
		"duration", time.Since(begin),
	)
	return nil
}

// FindPageByID delegates to the wrapped service.
func (s *LoggingArchiveService) FindPageByID(ctx context.Context, id int64) (*navigator.ArchivePage, error) {
	page, err := s.next.FindPageByID(ctx, id)
	if err != nil {
		s.logger.Debug("find page", "id", id, "error", err)
		return nil, err
	}
	return page, nil
}

// ListPages delegates to the wrapped service and logs the result size.
func (s *LoggingArchiveService) ListPages(ctx context.Context, filter navigator.ArchiveFilter) ([]*navigator.ArchivePage, error) {
	begin := time.Now()
	pages, err := s.next.ListPages(ctx, filter)
	if err != nil {
		s.logger.Error("list pages", "error", err, "duration", time.Since(begin))
		return nil, err
	}
	s.logger.Debug("list pages",
		"count", len(pages),
		"duration", time.Since(begin),
	)
	return pages, nil
}

// SearchPages delegates to the wrapped service and logs the query.
func (s *LoggingArchiveService) SearchPages(ctx context.Context, query string, limit int) ([]*navigator.ArchivePage, error) {
	begin := time.Now()
	pages, err := s.next.SearchPages(ctx, query, limit)
	if err != nil {
		s.logger.Error("search pages", "query", query, "error", err, "duration", time.Since(begin))
		return nil, err
	}
	s.logger.Debug("search pages",
		"query", query,
		"count", len(pages),
		"duration", time.Since(begin),
	)
	return pages, nil
}
