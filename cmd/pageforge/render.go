package main

import (
	"fmt"

	"github.com/pageforge/pageforge"
	"github.com/pageforge/pageforge/fs"
	"github.com/pageforge/pageforge/render"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	page, err := findPage(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageforge.ErrorMessage(err))
		return err
	}

	data := page.PageTemplateData()

	if c.Generate && deps.Generator != nil {
		content, err := deps.Generator.Generate(deps.Ctx, data)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: content generation failed: %s\n", pageforge.ErrorMessage(err))
		} else {
			data.Generated = content
		}
	}

	html, err := deps.Renderer.Render(deps.Ctx, string(page.PageType), data, page.SelectedSections())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageforge.ErrorMessage(err))
		return err
	}
	html = render.ProcessPage(html, page.PageType)

	if c.Out == "" {
		fmt.Fprintln(deps.Stdout, html)
		return nil
	}

	exporter := fs.NewExporter(c.Out, "pages")
	if err := exporter.WritePage(deps.Ctx, page, html); err != nil {
		_ = exporter.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageforge.ErrorMessage(err))
		return err
	}
	if err := exporter.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Rendered %q to %s/pages/%s.html\n", page.Slug, c.Out, page.Slug)
	return nil
}

// findPage resolves a page reference as an ID first, then as a slug.
func findPage(deps *Dependencies, ref string) (*pageforge.Page, error) {
	page, err := deps.Pages.FindPageByID(deps.Ctx, ref)
	if err == nil {
		return page, nil
	}
	if pageforge.ErrorCode(err) != pageforge.ENOTFOUND {
		return nil, err
	}
	return deps.Pages.FindPageBySlug(deps.Ctx, ref)
}
