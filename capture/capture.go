// Package capture coordinates archiving web pages: fetching, reader-mode
// cleaning, snippet derivation and storage, with per-domain rate limiting
// and seen-URL deduplication.
package capture

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	navigator "github.com/glendon144/ai-navigator"
	"github.com/glendon144/ai-navigator/bloom"
)

// Seen-filter sizing. Captures are interactive, so the filter is generous
// relative to realistic session sizes.
const (
	seenExpectedURLs      = 10000
	seenFalsePositiveRate = 0.01
)

// Capturer archives pages into the page store. The zero concurrency value
// means a small default; a nil Limiter disables politeness delays.
type Capturer struct {
	Fetcher   navigator.Fetcher
	Cleaner   navigator.Cleaner
	Converter navigator.Converter
	Archive   navigator.ArchiveService
	Limiter   navigator.DomainLimiter

	Concurrency int
	RetryDelays []time.Duration

	seen *bloom.Filter
}

// NewCapturer wires up a Capturer with a fresh seen-URL filter.
func NewCapturer(fetcher navigator.Fetcher, cleaner navigator.Cleaner, converter navigator.Converter, archive navigator.ArchiveService) *Capturer {
	return &Capturer{
		Fetcher:   fetcher,
		Cleaner:   cleaner,
		Converter: converter,
		Archive:   archive,
		seen:      bloom.NewFilter(seenExpectedURLs, seenFalsePositiveRate),
	}
}

// Result holds the outcome of a capture run.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
	Bytes   int
}

// captureResult holds the outcome of processing a single URL.
type captureResult struct {
	position int
	url      string
	page     *navigator.ArchivePage
	err      error
}

// Capture fetches, cleans and stores each URL. Pages are stored in input
// order even though fetching runs concurrently. URLs already seen by this
// Capturer are skipped. The progress callback, if provided, receives an
// event per URL as fetching completes.
func (c *Capturer) Capture(ctx context.Context, urls []string, progress navigator.CaptureProgressFunc) (*Result, error) {
	var result Result

	fresh := make([]string, 0, len(urls))
	for _, u := range urls {
		if c.seen != nil && c.seen.Test(u) {
			result.Skipped++
			continue
		}
		if c.seen != nil {
			c.seen.Add(u)
		}
		fresh = append(fresh, u)
	}
	if len(fresh) == 0 {
		return &result, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan captureResult, len(fresh))
	var completed atomic.Int64
	total := len(fresh)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range fresh {
			i, u := i, u
			g.Go(func() error {
				resultCh <- c.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]captureResult, total)
	for r := range resultCh {
		completed.Add(1)
		results[r.position] = r

		if progress != nil {
			progress(navigator.CaptureProgress{
				URL:       r.url,
				Completed: int(completed.Load()),
				Total:     total,
				Err:       r.err,
			})
		}
	}

	// Store sequentially in input order so row ids follow the argument
	// order.
	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}
		if err := c.Archive.CreatePage(ctx, r.page); err != nil {
			result.Failed++
			continue
		}
		result.Saved++
		result.Bytes += len(r.page.HTML)
	}

	return &result, nil
}

// processURL fetches and cleans a single page into an unsaved archive row.
func (c *Capturer) processURL(ctx context.Context, position int, pageURL string) captureResult {
	result := captureResult{position: position, url: pageURL}

	if c.Limiter != nil {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			result.err = navigator.Errorf(navigator.EINVALID, "invalid URL %q: %v", pageURL, err)
			return result
		}
		if err := c.Limiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	cleaned, err := c.Cleaner.Clean(html)
	if err != nil {
		result.err = err
		return result
	}

	var snippet string
	if cleaned.ContentHTML != "" {
		if markdown, err := c.Converter.Convert(cleaned.ContentHTML); err == nil {
			snippet = Snippet(markdown, SnippetLimit)
		}
	}

	title := cleaned.Title
	if title == "" {
		title = pageURL
	}

	result.page = &navigator.ArchivePage{
		URL:       pageURL,
		Title:     title,
		Snippet:   snippet,
		HTML:      html,
		CleanHTML: cleaned.ContentHTML,
	}
	return result
}
