package main

import (
	"fmt"
	"strings"

	navigator "github.com/glendon144/ai-navigator"
	"github.com/glendon144/ai-navigator/etree"
)

// Run executes the load command.
func (c *LoadCmd) Run(deps *Dependencies) error {
	head, roots, err := etree.Load(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navigator.ErrorMessage(err))
		return err
	}

	if head.Title != "" {
		fmt.Fprintf(deps.Stdout, "%s\n", head.Title)
	}
	for _, root := range roots {
		printOutline(deps, root, 1)
	}

	return nil
}

// printOutline prints a node and its children, two spaces per level.
func printOutline(deps *Dependencies, node *navigator.Outline, depth int) {
	fmt.Fprintf(deps.Stdout, "%s%s\n", strings.Repeat("  ", depth), node.Text)
	for _, child := range node.Children() {
		printOutline(deps, child, depth+1)
	}
}
