package mock

import (
	"context"

	"github.com/pageforge/pageforge"
)

var _ pageforge.TemplateLoader = (*TemplateLoader)(nil)

// TemplateLoader is a mock implementation of pageforge.TemplateLoader.
type TemplateLoader struct {
	LoadFn func(ctx context.Context, name string) (string, error)
}

func (l *TemplateLoader) Load(ctx context.Context, name string) (string, error) {
	return l.LoadFn(ctx, name)
}

var _ pageforge.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of pageforge.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, templateID string, data *pageforge.TemplateData, selected []string) (string, error)
}

func (r *Renderer) Render(ctx context.Context, templateID string, data *pageforge.TemplateData, selected []string) (string, error) {
	return r.RenderFn(ctx, templateID, data, selected)
}

var _ pageforge.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of pageforge.Sanitizer.
type Sanitizer struct {
	EscapeHTMLFn   func(text string) string
	SanitizeHTMLFn func(html string) string
	SanitizeURLFn  func(url string) string
}

func (s *Sanitizer) EscapeHTML(text string) string {
	return s.EscapeHTMLFn(text)
}

func (s *Sanitizer) SanitizeHTML(html string) string {
	return s.SanitizeHTMLFn(html)
}

func (s *Sanitizer) SanitizeURL(url string) string {
	return s.SanitizeURLFn(url)
}
