package main

import (
	"fmt"

	"github.com/pageforge/pageforge"
	"github.com/pageforge/pageforge/render"
)

// Run executes the create command.
func (c *CreateCmd) Run(deps *Dependencies) error {
	category := pageforge.NormalizeCategory(c.Type)

	data := &pageforge.TemplateData{
		BusinessName: c.Title,
		PageType:     category,
		Phone:        c.Phone,
		Email:        c.Email,
		City:         c.City,
		Address:      c.Address,
		AboutText:    c.About,
	}

	if c.Generate && deps.Generator != nil {
		content, err := deps.Generator.Generate(deps.Ctx, data)
		if err != nil {
			// Generated content is optional; creation proceeds without it.
			fmt.Fprintf(deps.Stderr, "warning: content generation failed: %s\n", pageforge.ErrorMessage(err))
		} else {
			data.Generated = content
		}
	}

	html, err := deps.Renderer.Render(deps.Ctx, string(category), data, c.Sections)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageforge.ErrorMessage(err))
		return err
	}
	html = render.ProcessPage(html, category)

	page := &pageforge.Page{
		Title:       c.Title,
		Slug:        pageforge.GenerateSlug(c.Title, c.Owner),
		HTMLContent: html,
		PageType:    category,
		Description: c.About,
		Phone:       c.Phone,
		Email:       c.Email,
		City:        c.City,
		Address:     c.Address,
		Sections:    pageforge.BuildSections(data, c.Sections),
		IsActive:    true,
	}

	if err := deps.Pages.CreatePage(deps.Ctx, page); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageforge.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created page %q (%s)\n", page.Slug, page.ID)
	return nil
}
