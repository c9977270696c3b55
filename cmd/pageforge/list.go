package main

import (
	"fmt"

	"github.com/pageforge/pageforge"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pageforge.PageFilter{}
	if c.Type != "" {
		category := pageforge.NormalizeCategory(c.Type)
		filter.PageType = &category
	}
	if c.Active {
		active := true
		filter.IsActive = &active
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageforge.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found. Use 'pageforge create' or 'pageforge import' to add one.")
		return nil
	}

	for _, p := range pages {
		fmt.Fprintf(deps.Stdout, "%s  %-15s  %s\n", p.ID, p.PageType, p.Slug)
	}

	return nil
}
