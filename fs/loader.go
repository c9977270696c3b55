// Package fs provides file-based template loading and page export.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pageforge/pageforge"
)

// Ensure Loader implements pageforge.TemplateLoader at compile time.
var _ pageforge.TemplateLoader = (*Loader)(nil)

// Loader loads template bodies from disk. Deployments differ in where the
// template directory ends up relative to the working directory, so the
// loader probes an ordered list of candidate roots and uses the first hit.
type Loader struct {
	roots []string
}

// NewLoader creates a Loader probing the given roots in order. With no
// roots, the conventional locations are probed.
func NewLoader(roots ...string) *Loader {
	if len(roots) == 0 {
		roots = []string{
			"templates",
			filepath.Join("static", "templates"),
			filepath.Join("..", "templates"),
		}
	}
	return &Loader{roots: roots}
}

// Load returns the template body for name. Returns ENOTFOUND when no root
// carries the template file.
func (l *Loader) Load(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, root := range l.roots {
		body, err := os.ReadFile(filepath.Join(root, name+".html"))
		if err == nil {
			return string(body), nil
		}
	}
	return "", pageforge.Errorf(pageforge.ENOTFOUND, "template not found: %s", name)
}
