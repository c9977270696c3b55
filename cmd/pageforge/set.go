package main

import (
	"encoding/json"
	"fmt"

	"github.com/pageforge/pageforge"
)

// Run executes the set command.
func (c *SetCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.UpdatePageField(deps.Ctx, c.Page, c.Path, parseValue(c.Value))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageforge.ErrorMessage(err))
		return err
	}

	if _, _, ok := pageforge.SectionFieldPath(c.Path); ok {
		fmt.Fprintf(deps.Stdout, "Recorded override %s on page %q\n", c.Path, page.Slug)
	} else {
		fmt.Fprintf(deps.Stdout, "Updated %s on page %q\n", c.Path, page.Slug)
	}
	return nil
}

// parseValue interprets the argument as JSON when possible, so numbers,
// booleans and objects survive the command line; anything else is a string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
