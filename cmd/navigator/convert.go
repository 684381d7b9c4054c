package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	navigator "github.com/glendon144/ai-navigator"
	"github.com/glendon144/ai-navigator/etree"
	"github.com/glendon144/ai-navigator/fs"
	"github.com/glendon144/ai-navigator/goquery"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	payload, err := os.ReadFile(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %q: %v\n", c.Input, err)
		return err
	}

	outliner := deps.Outliner
	if outliner == nil {
		gq := goquery.NewOutliner()
		gq.SkipStrayParagraphs = c.NoUnsorted
		outliner = gq
	}

	opts := navigator.Options{
		Title:               c.Title,
		OwnerName:           c.Owner,
		SkipStrayParagraphs: c.NoUnsorted,
		Assist:              c.AI,
	}

	// The file stem serves as the title hint when neither the payload nor
	// the flags provide one.
	hint := strings.TrimSuffix(filepath.Base(c.Input), filepath.Ext(c.Input))

	doc := navigator.Convert(hint, payload, navigator.Kind(c.Assume), outliner, opts)

	if c.AI && deps.Suggester != nil {
		appendSuggestions(deps, doc, string(payload))
	}

	xml := doc.XML()
	if c.Out != "" {
		if err := fs.WriteFileAtomic(c.Out, []byte(xml)); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", navigator.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
		return nil
	}

	fmt.Fprint(deps.Stdout, xml)
	return nil
}

// appendSuggestions asks the suggester for an outline of the payload and
// appends its top-level nodes under a "Suggested" root. Suggestion failures
// are logged and never fail the conversion.
func appendSuggestions(deps *Dependencies, doc *navigator.Document, payload string) {
	suggested, err := deps.Suggester.SuggestOutline(deps.Ctx, payload)
	if err != nil {
		deps.Logger.Warn("outline suggestion failed", "error", err)
		return
	}

	_, roots, err := etree.ParseString(suggested)
	if err != nil {
		deps.Logger.Warn("suggested outline is not valid OPML", "error", err)
		return
	}
	if len(roots) == 0 {
		return
	}

	node := navigator.NewOutline("Suggested")
	for _, r := range roots {
		node.Add(r)
	}
	doc.Add(node)
}
