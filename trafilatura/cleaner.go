// Package trafilatura implements reader-mode cleaning on top of
// go-trafilatura: scripts, navigation and other boilerplate are stripped,
// leaving the article markup the outline extractor feeds on.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	navigator "github.com/glendon144/ai-navigator"
)

// Ensure Cleaner implements navigator.Cleaner at compile time.
var _ navigator.Cleaner = (*Cleaner)(nil)

// Cleaner wraps go-trafilatura to isolate the main content of a page.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean strips boilerplate from raw page HTML and returns the article
// content plus the page title trafilatura recovers from metadata.
func (c *Cleaner) Clean(rawHTML string) (*navigator.CleanResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, navigator.Errorf(navigator.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, navigator.Errorf(navigator.EINTERNAL, "content extraction failed: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &navigator.CleanResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
