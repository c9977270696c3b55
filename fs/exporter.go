package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pageforge/pageforge"
)

// Exporter writes rendered pages to a directory with atomic replace
// semantics. Pages are written to a temporary sibling directory and moved
// into place on Commit, so readers never observe a half-written export.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates an Exporter. baseDir is the parent directory, name is
// the output directory name. Files land in baseDir/name.tmp until Commit
// renames it to baseDir/name.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{baseDir: baseDir, name: name}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// WritePage writes a page's rendered document under its slug.
func (e *Exporter) WritePage(ctx context.Context, page *pageforge.Page, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if page.Slug == "" {
		return pageforge.Errorf(pageforge.EINVALID, "page has no slug")
	}

	fullPath := filepath.Join(e.tempDir(), page.Slug+".html")
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(html), 0644)
}

// Commit atomically replaces the final directory with the staged export.
func (e *Exporter) Commit() error {
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort discards the staged export.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}
