// Package readability provides a boilerplate-free description fallback for
// pages whose metadata carries none.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/pageforge/pageforge"
)

// Ensure Describer implements pageforge.Describer at compile time.
var _ pageforge.Describer = (*Describer)(nil)

// maxExcerptRunes bounds the description produced from article content.
const maxExcerptRunes = 200

// Describer wraps go-readability. It is meant to run after the metadata
// describer: when a page has no meta description, the article excerpt is
// the best remaining signal.
type Describer struct {
	// Next is consulted first when set, so the metadata description still
	// wins whenever it exists.
	Next pageforge.Describer
}

// NewDescriber creates a new Describer that falls back from next.
func NewDescriber(next pageforge.Describer) *Describer {
	return &Describer{Next: next}
}

// ExtractDescription returns the first available description: the wrapped
// describer's result, the readability excerpt, or a clamped prefix of the
// article text. Extraction never fails; it returns "" when nothing usable
// exists.
func (d *Describer) ExtractDescription(html string) string {
	if d.Next != nil {
		if desc := d.Next.ExtractDescription(html); desc != "" {
			return desc
		}
	}
	if html == "" {
		return ""
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return ""
	}

	if excerpt := strings.TrimSpace(article.Excerpt); excerpt != "" {
		return clamp(excerpt)
	}
	return clamp(strings.TrimSpace(article.TextContent))
}

func clamp(s string) string {
	runes := []rune(s)
	if len(runes) <= maxExcerptRunes {
		return s
	}
	return strings.TrimSpace(string(runes[:maxExcerptRunes]))
}
