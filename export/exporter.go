// Package export assembles the whole page archive into a single OPML
// document, one top-level node per captured page.
package export

import (
	"context"
	"strconv"

	navigator "github.com/glendon144/ai-navigator"
	"github.com/glendon144/ai-navigator/fs"
)

// Archive document constants, kept stable so downstream outliners can key
// off them.
const (
	ArchiveTitle    = "AI Navigator Archive"
	generatorDetail = "AI Navigator Reader Mode + FunKit AOPML Engine"
	aboutText       = "Locally captured pages, cleaned of scripts/paywalls, exported as outline for PiKit/FunKit."

	snippetLabel = "Snippet: "
	snippetLimit = 200
)

// Exporter builds the combined archive outline. Pages are emitted
// most-recent-first, matching the archive listing order.
type Exporter struct {
	archive  navigator.ArchiveService
	outliner navigator.Outliner

	// OwnerName is emitted in the OPML head when set.
	OwnerName string
}

// NewExporter returns an Exporter backed by the given archive and markup
// outliner.
func NewExporter(archive navigator.ArchiveService, outliner navigator.Outliner) *Exporter {
	return &Exporter{archive: archive, outliner: outliner}
}

// BuildDocument assembles every archived page into one document.
func (e *Exporter) BuildDocument(ctx context.Context) (*navigator.Document, error) {
	pages, err := e.archive.ListPages(ctx, navigator.ArchiveFilter{})
	if err != nil {
		return nil, err
	}

	doc := navigator.NewDocument(ArchiveTitle)
	doc.OwnerName = e.OwnerName
	doc.SetMeta("generatorDetail", generatorDetail)
	doc.SetMeta("about", aboutText)

	for _, page := range pages {
		doc.Add(e.pageNode(page))
	}
	return doc, nil
}

// Export builds the archive document and writes it atomically to path.
func (e *Exporter) Export(ctx context.Context, path string) error {
	doc, err := e.BuildDocument(ctx)
	if err != nil {
		return err
	}
	return fs.WriteDocument(path, doc)
}

// pageNode turns one archive row into its outline subtree: the page node
// itself, an optional snippet leaf, and the structural breakdown of the
// cleaned body flattened one level so the page node stands in for the
// extractor's root.
func (e *Exporter) pageNode(page *navigator.ArchivePage) *navigator.Outline {
	label := page.Title
	if label == "" {
		label = "Snapshot " + strconv.FormatInt(page.ID, 10)
	}

	node := navigator.NewOutline(label)
	node.SetAttr("url", page.URL)
	node.SetAttr("captured_at", page.CapturedAt)
	node.SetAttr("_local_id", strconv.FormatInt(page.ID, 10))

	if page.Snippet != "" {
		node.Add(navigator.NewOutline(snippetLabel + truncate(page.Snippet, snippetLimit) + "…"))
	}

	body := page.CleanHTML
	if body == "" {
		body = page.HTML
	}
	if body != "" {
		sub := navigator.DocumentFromHTML(label, body, e.outliner, navigator.Options{})
		for _, child := range sub.Roots() {
			node.Add(child)
		}
	}
	return node
}

// truncate bounds s to at most limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
