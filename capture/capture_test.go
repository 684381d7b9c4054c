package capture_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	navigator "github.com/glendon144/ai-navigator"
	"github.com/glendon144/ai-navigator/capture"
	"github.com/glendon144/ai-navigator/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingArchive collects created pages behind a mutex so concurrent
// capture tests can assert on them.
type recordingArchive struct {
	mu    sync.Mutex
	pages []*navigator.ArchivePage
	errFn func(page *navigator.ArchivePage) error
}

func (a *recordingArchive) service() *mock.ArchiveService {
	return &mock.ArchiveService{
		CreatePageFn: func(ctx context.Context, page *navigator.ArchivePage) error {
			a.mu.Lock()
			defer a.mu.Unlock()
			if a.errFn != nil {
				if err := a.errFn(page); err != nil {
					return err
				}
			}
			page.ID = int64(len(a.pages) + 1)
			a.pages = append(a.pages, page)
			return nil
		},
	}
}

func testCapturer(archive *mock.ArchiveService) *capture.Capturer {
	c := capture.NewCapturer(
		&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html><body><h1>" + url + "</h1></body></html>", nil
		}},
		&mock.Cleaner{CleanFn: func(html string) (*navigator.CleanResult, error) {
			return &navigator.CleanResult{Title: "Cleaned", ContentHTML: html}, nil
		}},
		&mock.Converter{ConvertFn: func(html string) (string, error) {
			return "# Cleaned\n\nbody text", nil
		}},
		archive,
	)
	c.RetryDelays = []time.Duration{0}
	return c
}

func TestCapturer_Capture(t *testing.T) {
	t.Parallel()

	t.Run("stores pages in input order", func(t *testing.T) {
		t.Parallel()

		archive := &recordingArchive{}
		c := testCapturer(archive.service())
		c.Concurrency = 4

		urls := []string{
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/c",
		}
		result, err := c.Capture(context.Background(), urls, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Saved)
		assert.Equal(t, 0, result.Failed)
		require.Len(t, archive.pages, 3)
		assert.Equal(t, "https://example.com/a", archive.pages[0].URL)
		assert.Equal(t, "https://example.com/b", archive.pages[1].URL)
		assert.Equal(t, "https://example.com/c", archive.pages[2].URL)
	})

	t.Run("fills title clean html and snippet", func(t *testing.T) {
		t.Parallel()

		archive := &recordingArchive{}
		c := testCapturer(archive.service())

		_, err := c.Capture(context.Background(), []string{"https://example.com/a"}, nil)

		require.NoError(t, err)
		require.Len(t, archive.pages, 1)
		page := archive.pages[0]
		assert.Equal(t, "Cleaned", page.Title)
		assert.Contains(t, page.HTML, "<html>")
		assert.Contains(t, page.CleanHTML, "<h1>")
		assert.Equal(t, "# Cleaned body text", page.Snippet)
	})

	t.Run("falls back to URL when no title", func(t *testing.T) {
		t.Parallel()

		archive := &recordingArchive{}
		c := testCapturer(archive.service())
		c.Cleaner = &mock.Cleaner{CleanFn: func(html string) (*navigator.CleanResult, error) {
			return &navigator.CleanResult{ContentHTML: html}, nil
		}}

		_, err := c.Capture(context.Background(), []string{"https://example.com/untitled"}, nil)

		require.NoError(t, err)
		require.Len(t, archive.pages, 1)
		assert.Equal(t, "https://example.com/untitled", archive.pages[0].Title)
	})

	t.Run("skips URLs seen in an earlier run", func(t *testing.T) {
		t.Parallel()

		archive := &recordingArchive{}
		c := testCapturer(archive.service())

		_, err := c.Capture(context.Background(), []string{"https://example.com/a"}, nil)
		require.NoError(t, err)

		result, err := c.Capture(context.Background(), []string{
			"https://example.com/a",
			"https://example.com/b",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 1, result.Saved)
		require.Len(t, archive.pages, 2)
	})

	t.Run("counts fetch failures without aborting the run", func(t *testing.T) {
		t.Parallel()

		archive := &recordingArchive{}
		c := testCapturer(archive.service())
		c.Fetcher = &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			if strings.HasSuffix(url, "/bad") {
				return "", navigator.Errorf(navigator.EUNAVAILABLE, "HTTP 503 for %s", url)
			}
			return "<html><body><p>ok</p></body></html>", nil
		}}

		result, err := c.Capture(context.Background(), []string{
			"https://example.com/good",
			"https://example.com/bad",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, archive.pages, 1)
		assert.Equal(t, "https://example.com/good", archive.pages[0].URL)
	})

	t.Run("counts store failures", func(t *testing.T) {
		t.Parallel()

		archive := &recordingArchive{errFn: func(page *navigator.ArchivePage) error {
			return navigator.Errorf(navigator.EINTERNAL, "disk full")
		}}
		c := testCapturer(archive.service())

		result, err := c.Capture(context.Background(), []string{"https://example.com/a"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("reports progress per URL", func(t *testing.T) {
		t.Parallel()

		archive := &recordingArchive{}
		c := testCapturer(archive.service())

		var mu sync.Mutex
		var events []navigator.CaptureProgress
		progress := func(p navigator.CaptureProgress) {
			mu.Lock()
			events = append(events, p)
			mu.Unlock()
		}

		_, err := c.Capture(context.Background(), []string{
			"https://example.com/a",
			"https://example.com/b",
		}, progress)

		require.NoError(t, err)
		require.Len(t, events, 2)
		for _, e := range events {
			assert.Equal(t, 2, e.Total)
			assert.NoError(t, e.Err)
		}
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		t.Parallel()

		archive := &recordingArchive{}
		c := testCapturer(archive.service())

		result, err := c.Capture(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Saved)
		assert.Empty(t, archive.pages)
	})
}
