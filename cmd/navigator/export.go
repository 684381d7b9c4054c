package main

import (
	"fmt"

	navigator "github.com/glendon144/ai-navigator"
	"github.com/glendon144/ai-navigator/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	deps.Exporter.OwnerName = c.Owner

	doc, err := deps.Exporter.BuildDocument(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navigator.ErrorMessage(err))
		return err
	}

	if err := fs.WriteDocument(c.Out, doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navigator.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(doc.Roots()), c.Out)
	return nil
}
