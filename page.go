package navigator

import "context"

// ArchivePage is one persisted captured-page record. Rows carry both the raw
// HTML and a reader-mode cleaned copy; the outline bridge consumes the clean
// copy.
type ArchivePage struct {
	ID         int64  `json:"id"`
	URL        string `json:"url"`
	Title      string `json:"title"`
	CapturedAt string `json:"capturedAt"` // TimestampFormat, UTC
	Snippet    string `json:"snippet"`
	HTML       string `json:"html"`
	CleanHTML  string `json:"cleanHtml"`

	// ContentHash is a hash of HTML, set by the store on insert.
	ContentHash string `json:"contentHash"`
}

// Validate returns an error if the page contains invalid fields.
func (p *ArchivePage) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "archive page URL required")
	}
	return nil
}

// ArchiveFilter narrows ListPages results.
type ArchiveFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArchiveService stores and retrieves captured pages. ListPages and
// SearchPages return rows ordered by captured_at descending (most recent
// first).
type ArchiveService interface {
	// CreatePage inserts a captured page, setting ID, CapturedAt and
	// ContentHash.
	CreatePage(ctx context.Context, page *ArchivePage) error

	// FindPageByID retrieves a page by row id.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByID(ctx context.Context, id int64) (*ArchivePage, error)

	// ListPages retrieves pages matching the filter.
	ListPages(ctx context.Context, filter ArchiveFilter) ([]*ArchivePage, error)

	// SearchPages retrieves pages whose title, URL or snippet contains the
	// query.
	SearchPages(ctx context.Context, query string, limit int) ([]*ArchivePage, error)
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// CleanResult holds the reader-mode view of a captured page.
type CleanResult struct {
	// Title is the page title from metadata, when present.
	Title string

	// ContentHTML is the main content with boilerplate removed.
	ContentHTML string
}

// Cleaner produces a reader-mode copy of raw HTML: scripts, iframes and
// boilerplate removed, structure preserved.
type Cleaner interface {
	Clean(html string) (*CleanResult, error)
}

// Converter converts clean HTML to plain-ish Markdown, used to derive
// stored snippets.
type Converter interface {
	Convert(html string) (string, error)
}

// DomainLimiter throttles outgoing requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed, or the
	// context is canceled.
	Wait(ctx context.Context, domain string) error
}

// Suggester proposes an OPML outline for a blob of text. Implementations may
// call external models; the engine treats suggestions as optional garnish
// and never fails a conversion on a suggester error.
type Suggester interface {
	SuggestOutline(ctx context.Context, text string) (string, error)
}

// CaptureProgress reports progress during a capture run.
type CaptureProgress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// CaptureProgressFunc is called as pages are captured.
type CaptureProgressFunc func(CaptureProgress)
