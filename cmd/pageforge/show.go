package main

import (
	"encoding/json"
	"fmt"

	"github.com/pageforge/pageforge"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	page, err := findPage(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageforge.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
