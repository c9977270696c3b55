// Package sanitize implements the pageforge.Sanitizer interface: HTML text
// escaping, unsafe-markup stripping, and URL scheme filtering.
package sanitize

import (
	"bytes"
	"strings"

	"github.com/pageforge/pageforge"
	"golang.org/x/net/html"
)

// Ensure Sanitizer implements pageforge.Sanitizer at compile time.
var _ pageforge.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is stateless and safe for concurrent use.
type Sanitizer struct{}

// New creates a new Sanitizer.
func New() *Sanitizer {
	return &Sanitizer{}
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
	"/", "&#x2F;",
)

// EscapeHTML escapes text for insertion into HTML, including the forward
// slash.
func (s *Sanitizer) EscapeHTML(text string) string {
	if text == "" {
		return ""
	}
	return escaper.Replace(text)
}

var dangerousSchemes = []string{"javascript:", "data:", "vbscript:", "file:"}

var allowedPrefixes = []string{
	"http://", "https://", "mailto:", "tel:", "/", "#",
}

// SanitizeURL returns the URL unchanged when it carries a safe scheme or is
// relative, and "" otherwise.
func (s *Sanitizer) SanitizeURL(url string) string {
	if url == "" {
		return ""
	}
	lower := strings.ToLower(strings.TrimSpace(url))

	for _, scheme := range dangerousSchemes {
		if strings.HasPrefix(lower, scheme) {
			return ""
		}
	}
	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return url
		}
	}
	// No scheme at all: treat as a relative URL.
	if !strings.Contains(lower, ":") {
		return url
	}
	return ""
}

// Elements whose entire subtree is removed.
var droppedElements = map[string]bool{
	"script": true,
	"style":  true,
	"iframe": true,
	"object": true,
	"embed":  true,
}

// Attributes that may carry URLs and need scheme filtering.
var urlAttrs = map[string]bool{
	"href": true,
	"src":  true,
}

// SanitizeHTML removes script/style subtrees, event-handler attributes and
// unsafe URL schemes while preserving the remaining document structure.
// Unparseable input is escaped wholesale rather than passed through.
func (s *Sanitizer) SanitizeHTML(raw string) string {
	if raw == "" {
		return ""
	}

	nodes, err := html.ParseFragment(strings.NewReader(raw), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: 0,
	})
	if err != nil {
		return s.EscapeHTML(raw)
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		s.cleanNode(n)
		if err := html.Render(&buf, n); err != nil {
			return s.EscapeHTML(raw)
		}
	}
	return buf.String()
}

func (s *Sanitizer) cleanNode(n *html.Node) {
	if n.Type == html.ElementNode {
		attrs := n.Attr[:0]
		for _, a := range n.Attr {
			if strings.HasPrefix(strings.ToLower(a.Key), "on") {
				continue
			}
			if urlAttrs[strings.ToLower(a.Key)] {
				a.Val = s.SanitizeURL(a.Val)
			}
			attrs = append(attrs, a)
		}
		n.Attr = attrs
	}

	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		if child.Type == html.ElementNode && droppedElements[child.Data] {
			n.RemoveChild(child)
		} else {
			s.cleanNode(child)
		}
		child = next
	}
}
