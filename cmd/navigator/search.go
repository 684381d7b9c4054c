package main

import (
	"fmt"

	navigator "github.com/glendon144/ai-navigator"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	pages, err := deps.Archive.SearchPages(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navigator.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintf(deps.Stdout, "No pages match %q.\n", c.Query)
		return nil
	}

	for _, p := range pages {
		fmt.Fprintf(deps.Stdout, "%4d  %s  %s\n", p.ID, p.Title, p.URL)
		if p.Snippet != "" {
			snippet := p.Snippet
			if runes := []rune(snippet); len(runes) > 120 {
				snippet = string(runes[:120]) + "…"
			}
			fmt.Fprintf(deps.Stdout, "      %s\n", snippet)
		}
	}

	return nil
}
