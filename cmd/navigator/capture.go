package main

import (
	"fmt"

	navigator "github.com/glendon144/ai-navigator"
)

// Run executes the capture command.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if c.MaxPages > 0 && len(urls) > c.MaxPages {
		urls = urls[:c.MaxPages]
	}

	progress := func(p navigator.CaptureProgress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", p.URL, p.Err)
			return
		}
		fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", p.Completed, p.Total, p.URL)
	}

	result, err := deps.Capturer.Capture(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navigator.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Captured %d pages (%d skipped, %d failed)\n",
		result.Saved, result.Skipped, result.Failed)
	return nil
}
