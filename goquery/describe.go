package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pageforge/pageforge"
)

// Ensure Describer implements pageforge.Describer at compile time.
var _ pageforge.Describer = (*Describer)(nil)

// Describer extracts a page description from document metadata: the meta
// description tag first, then og:description.
type Describer struct{}

// NewDescriber creates a new Describer.
func NewDescriber() *Describer {
	return &Describer{}
}

// ExtractDescription returns the page description, or "" when no metadata
// carries one.
func (d *Describer) ExtractDescription(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, selector := range []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
	} {
		content := strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
		if content != "" {
			return content
		}
	}
	return ""
}
