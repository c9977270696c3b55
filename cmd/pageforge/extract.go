package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pageforge/pageforge"
)

// structuredExtractor is the optional interface for extraction that trusts
// product markup and skips price bounds.
type structuredExtractor interface {
	ExtractStructuredProducts(html string) []pageforge.Product
}

// extractResult is the JSON shape printed by the extract command.
type extractResult struct {
	Contact     pageforge.ContactInfo  `json:"contact"`
	Products    []pageforge.Product    `json:"products"`
	Description string                 `json:"description"`
	PageType    pageforge.PageCategory `json:"pageType"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	html := string(raw)

	result := extractResult{
		Contact:     deps.Contacts.ExtractContactInfo(html),
		Description: deps.Describer.ExtractDescription(html),
		PageType:    deps.Detector.Detect(html, ""),
	}

	if c.Structured {
		se, ok := deps.Products.(structuredExtractor)
		if !ok {
			return pageforge.Errorf(pageforge.ENOTIMPLEMENTED, "structured extraction not supported")
		}
		result.Products = se.ExtractStructuredProducts(html)
	} else {
		result.Products = deps.Products.ExtractProducts(html)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
