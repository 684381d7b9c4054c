package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	navigator "github.com/glendon144/ai-navigator"
)

// Compile-time interface verification.
var _ navigator.ArchiveService = (*ArchiveService)(nil)

// ArchiveService implements navigator.ArchiveService using SQLite.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

const pageColumns = "id, url, title, captured_at, snippet, html, clean_html, content_hash"

// CreatePage inserts a captured page, setting ID, CapturedAt and ContentHash.
func (s *ArchiveService) CreatePage(ctx context.Context, page *navigator.ArchivePage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	if page.CapturedAt == "" {
		page.CapturedAt = time.Now().UTC().Format(navigator.TimestampFormat)
	}
	page.ContentHash = hashContent(page.HTML)

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO archive_pages (url, title, captured_at, snippet, html, clean_html, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, page.URL, page.Title, page.CapturedAt, page.Snippet, page.HTML, page.CleanHTML, page.ContentHash)
	if err != nil {
		return err
	}

	page.ID, err = res.LastInsertId()
	return err
}

// FindPageByID retrieves a page by row id.
func (s *ArchiveService) FindPageByID(ctx context.Context, id int64) (*navigator.ArchivePage, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+pageColumns+`
		FROM archive_pages
		WHERE id = ?
	`, id)

	page, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, navigator.Errorf(navigator.ENOTFOUND, "archive page %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// ListPages retrieves pages matching the filter, most recent first. Ties on
// captured_at break on id so ordering is stable.
func (s *ArchiveService) ListPages(ctx context.Context, filter navigator.ArchiveFilter) ([]*navigator.ArchivePage, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + pageColumns + " FROM archive_pages WHERE 1=1")
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	query.WriteString(" ORDER BY captured_at DESC, id DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	return s.queryPages(ctx, query.String(), args...)
}

// SearchPages retrieves pages whose title, URL or snippet contains the query,
// most recent first.
func (s *ArchiveService) SearchPages(ctx context.Context, query string, limit int) ([]*navigator.ArchivePage, error) {
	like := "%" + query + "%"
	q := `
		SELECT ` + pageColumns + `
		FROM archive_pages
		WHERE title LIKE ? OR url LIKE ? OR snippet LIKE ?
		ORDER BY captured_at DESC, id DESC
	`
	args := []any{like, like, like}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	return s.queryPages(ctx, q, args...)
}

func (s *ArchiveService) queryPages(ctx context.Context, query string, args ...any) ([]*navigator.ArchivePage, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*navigator.ArchivePage{}
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (*navigator.ArchivePage, error) {
	var page navigator.ArchivePage
	err := row.Scan(&page.ID, &page.URL, &page.Title, &page.CapturedAt,
		&page.Snippet, &page.HTML, &page.CleanHTML, &page.ContentHash)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
