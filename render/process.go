package render

import (
	"fmt"
	"strings"

	"github.com/pageforge/pageforge"
)

// Post-processing normalizes a finished document before it is stored or
// served. Rendered and imported documents both pass through it, so every
// step must be idempotent.

// checkoutScript is appended to commerce pages that do not already carry a
// cart implementation. The marker comment makes reprocessing a no-op.
const checkoutScript = "\n<script src=\"/store-checkout.js\"></script>\n<!-- CHECKOUT_SCRIPTS_INJECTED -->"

// commerceCategory reports whether pages of the category sell through an
// embedded cart.
func commerceCategory(category pageforge.PageCategory) bool {
	switch category {
	case pageforge.CategoryStore, pageforge.CategoryCourse, pageforge.CategoryRestaurantMenu:
		return true
	}
	return false
}

// ProcessPage runs the full post-processing pipeline: document cleanup,
// checkout script injection for commerce pages, and a page-type meta tag.
func ProcessPage(html string, category pageforge.PageCategory) string {
	html = CleanHTML(html)
	html = injectCheckout(html, category)
	return injectPageTypeMeta(html, category)
}

// CleanHTML ensures the document starts with a doctype and truncates
// anything trailing the first closing html tag. Generated documents
// sometimes arrive with commentary appended after the markup.
func CleanHTML(html string) string {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(html)), "<!doctype") {
		html = "<!DOCTYPE html>\n" + html
	}
	if i := strings.Index(html, "</html>"); i != -1 {
		html = html[:i+len("</html>")]
	}
	return html
}

func injectCheckout(html string, category pageforge.PageCategory) string {
	if !commerceCategory(category) {
		return html
	}
	// Template-based stores ship their own cart; a skip marker or an
	// existing cart button means injection would double it up.
	if strings.Contains(html, `<meta name="skip-store-injection"`) ||
		strings.Contains(html, "cart-float-btn") ||
		strings.Contains(html, "store-checkout.js") {
		return html
	}
	return insertBeforeClose(html, checkoutScript)
}

func injectPageTypeMeta(html string, category pageforge.PageCategory) string {
	if strings.Contains(html, `name="page-type"`) {
		return html
	}
	meta := fmt.Sprintf("    <meta name=\"page-type\" content=\"%s\">\n</head>", category)
	if strings.Contains(html, "</head>") {
		return strings.Replace(html, "</head>", meta, 1)
	}
	return html
}

// insertBeforeClose places a fragment before </body>, falling back to
// </html>, falling back to plain append.
func insertBeforeClose(html, fragment string) string {
	if strings.Contains(html, "</body>") {
		return strings.Replace(html, "</body>", fragment+"\n</body>", 1)
	}
	if strings.Contains(html, "</html>") {
		return strings.Replace(html, "</html>", fragment+"\n</html>", 1)
	}
	return html + fragment
}
