package main

import (
	"fmt"

	navigator "github.com/glendon144/ai-navigator"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	pages, err := deps.Archive.ListPages(deps.Ctx, navigator.ArchiveFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navigator.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages archived. Use 'navigator capture' to add some.")
		return nil
	}

	for _, p := range pages {
		title := p.Title
		if title == "" {
			title = fmt.Sprintf("Snapshot %d", p.ID)
		}
		fmt.Fprintf(deps.Stdout, "%4d  %s  %s  %s\n", p.ID, p.CapturedAt, title, p.URL)
	}

	return nil
}
