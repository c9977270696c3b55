package main

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pageforge/pageforge"
	"github.com/pageforge/pageforge/render"
	"golang.org/x/sync/errgroup"
)

// Run executes the import command. Sources are read concurrently; failures
// are reported per source without aborting the batch.
func (c *ImportCmd) Run(deps *Dependencies) error {
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	var mu sync.Mutex
	imported := 0

	for _, source := range c.Sources {
		g.Go(func() error {
			html, title, err := readSource(deps, source)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", source, err)
				return nil
			}

			contact := deps.Contacts.ExtractContactInfo(html)
			products := deps.Products.ExtractProducts(html)
			description := deps.Describer.ExtractDescription(html)
			category := deps.Detector.Detect(html, pageforge.NormalizeCategory(c.Type))

			page := &pageforge.Page{
				Title:       title,
				Slug:        pageforge.GenerateSlug(title, c.Owner),
				HTMLContent: render.ProcessPage(deps.Sanitizer.SanitizeHTML(html), category),
				PageType:    category,
				Description: description,
				Phone:       contact.Phone,
				Email:       contact.Email,
				City:        contact.City,
				Address:     contact.Address,
				Products:    products,
				IsActive:    true,
			}

			if err := deps.Pages.CreatePage(ctx, page); err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", source, pageforge.ErrorMessage(err))
				return nil
			}

			mu.Lock()
			imported++
			mu.Unlock()
			fmt.Fprintf(deps.Stdout, "  %s -> %s (%s)\n", source, page.Slug, page.PageType)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d of %d pages\n", imported, len(c.Sources))
	return nil
}

// readSource loads HTML from a local file or, for http(s) sources, over the
// network. The derived title is the file or URL path base without extension.
func readSource(deps *Dependencies, source string) (html, title string, err error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		u, err := url.Parse(source)
		if err != nil {
			return "", "", err
		}
		html, err = deps.Fetcher.Fetch(deps.Ctx, source)
		if err != nil {
			return "", "", err
		}
		base := path.Base(u.Path)
		if base == "/" || base == "." {
			return html, u.Hostname(), nil
		}
		return html, strings.TrimSuffix(base, path.Ext(base)), nil
	}

	raw, err := os.ReadFile(source)
	if err != nil {
		return "", "", err
	}
	base := filepath.Base(source)
	return string(raw), strings.TrimSuffix(base, filepath.Ext(base)), nil
}
