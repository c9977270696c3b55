package main

import (
	"fmt"

	"github.com/pageforge/pageforge"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pageforge.Errorf(pageforge.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Pages.DeletePage(deps.Ctx, c.Page); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageforge.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted page %q\n", c.Page)
	return nil
}
