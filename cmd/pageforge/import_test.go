package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pageforge/pageforge"
	main "github.com/pageforge/pageforge/cmd/pageforge"
	"github.com/pageforge/pageforge/mock"
	"github.com/pageforge/pageforge/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importDeps(pages *mock.PageService, stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Pages:  pages,
		Contacts: &mock.ContactExtractor{
			ExtractContactInfoFn: func(string) pageforge.ContactInfo {
				return pageforge.ContactInfo{Phone: "050-123-4567", Email: "info@example.com", City: "חיפה"}
			},
		},
		Products: &mock.ProductExtractor{
			ExtractProductsFn: func(string) []pageforge.Product {
				return []pageforge.Product{{Name: "לחם מחמצת", Price: 28, Enabled: true}}
			},
		},
		Describer: &mock.Describer{
			ExtractDescriptionFn: func(string) string { return "מאפייה משפחתית" },
		},
		Detector: &mock.CategoryDetector{
			DetectFn: func(_ string, selected pageforge.PageCategory) pageforge.PageCategory {
				if selected != "" {
					return selected
				}
				return pageforge.CategoryStore
			},
		},
		Sanitizer: sanitize.New(),
	}
}

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("imports a local HTML file through the extraction pipeline", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "hadas-bakery.html")
		require.NoError(t, os.WriteFile(file, []byte("<html><body>מאפייה</body></html>"), 0644))

		var mu sync.Mutex
		var created []*pageforge.Page
		pages := &mock.PageService{
			CreatePageFn: func(_ context.Context, page *pageforge.Page) error {
				mu.Lock()
				defer mu.Unlock()
				created = append(created, page)
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := importDeps(pages, stdout, &bytes.Buffer{})

		cmd := &main.ImportCmd{Sources: []string{file}, Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		require.Len(t, created, 1)
		page := created[0]
		assert.Equal(t, "hadas-bakery", page.Title)
		assert.Equal(t, pageforge.CategoryStore, page.PageType)
		assert.Equal(t, "050-123-4567", page.Phone)
		assert.Equal(t, "מאפייה משפחתית", page.Description)
		require.Len(t, page.Products, 1)
		assert.True(t, page.IsActive)
		assert.Contains(t, page.HTMLContent, "<!DOCTYPE html>")

		assert.Contains(t, stdout.String(), "Imported 1 of 1 pages")
	})

	t.Run("a selected type bypasses detection", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "salon.html")
		require.NoError(t, os.WriteFile(file, []byte("<html></html>"), 0644))

		var created *pageforge.Page
		pages := &mock.PageService{
			CreatePageFn: func(_ context.Context, page *pageforge.Page) error {
				created = page
				return nil
			},
		}

		deps := importDeps(pages, &bytes.Buffer{}, &bytes.Buffer{})
		cmd := &main.ImportCmd{Sources: []string{file}, Type: "serviceProvider", Concurrency: 1}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, pageforge.CategoryServiceProvider, created.PageType)
	})

	t.Run("unreadable sources are skipped without failing the batch", func(t *testing.T) {
		t.Parallel()

		good := filepath.Join(t.TempDir(), "good.html")
		require.NoError(t, os.WriteFile(good, []byte("<html></html>"), 0644))

		var mu sync.Mutex
		count := 0
		pages := &mock.PageService{
			CreatePageFn: func(_ context.Context, _ *pageforge.Page) error {
				mu.Lock()
				defer mu.Unlock()
				count++
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := importDeps(pages, stdout, stderr)

		cmd := &main.ImportCmd{Sources: []string{good, "/no/such/file.html"}, Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, 1, count)
		assert.Contains(t, stderr.String(), "skip")
		assert.Contains(t, stdout.String(), "Imported 1 of 2 pages")
	})

	t.Run("http sources go through the fetcher", func(t *testing.T) {
		t.Parallel()

		var created *pageforge.Page
		pages := &mock.PageService{
			CreatePageFn: func(_ context.Context, page *pageforge.Page) error {
				created = page
				return nil
			},
		}

		var fetched string
		deps := importDeps(pages, &bytes.Buffer{}, &bytes.Buffer{})
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = url
				return "<html><body>דף מרוחק</body></html>", nil
			},
		}

		cmd := &main.ImportCmd{Sources: []string{"https://example.com/pages/flower-shop.html"}, Concurrency: 1}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "https://example.com/pages/flower-shop.html", fetched)
		require.NotNil(t, created)
		assert.Equal(t, "flower-shop", created.Title)
	})

	t.Run("bare host URLs take the hostname as title", func(t *testing.T) {
		t.Parallel()

		var created *pageforge.Page
		pages := &mock.PageService{
			CreatePageFn: func(_ context.Context, page *pageforge.Page) error {
				created = page
				return nil
			},
		}

		deps := importDeps(pages, &bytes.Buffer{}, &bytes.Buffer{})
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html></html>", nil
			},
		}

		cmd := &main.ImportCmd{Sources: []string{"https://example.com/"}, Concurrency: 1}
		require.NoError(t, cmd.Run(deps))
		require.NotNil(t, created)
		assert.Equal(t, "example.com", created.Title)
	})
}
