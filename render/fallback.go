package render

import (
	"fmt"
	"strings"

	"github.com/pageforge/pageforge"
)

// fallback synthesizes a minimal right-to-left document from whatever data
// is present. It is the last line of defense: rendering must always produce
// something a browser can display.
func (r *Renderer) fallback(data *pageforge.TemplateData) string {
	title := data.DisplayName()

	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="he" dir="rtl">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>%s</title>
	<style>
		* { margin: 0; padding: 0; box-sizing: border-box; }
		body {
			font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
			background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
			min-height: 100vh;
			display: flex;
			align-items: center;
			justify-content: center;
			padding: 2rem;
		}
		.container {
			background: white;
			border-radius: 1rem;
			padding: 3rem;
			max-width: 600px;
			box-shadow: 0 20px 60px rgba(0,0,0,0.3);
		}
		h1 { color: #667eea; font-size: 2.5rem; margin-bottom: 1rem; }
		p { color: #4a5568; font-size: 1.1rem; line-height: 1.6; margin-bottom: 1rem; }
		.contact { margin-top: 2rem; padding-top: 2rem; border-top: 2px solid #e2e8f0; }
		.contact-item { display: flex; align-items: center; gap: 0.5rem; margin: 0.5rem 0; color: #2d3748; }
	</style>
</head>
<body>
	<div class="container">
		<h1>%s</h1>
`, r.san.EscapeHTML(title), r.san.EscapeHTML(title))

	if data.Description != "" {
		fmt.Fprintf(&b, "\t\t<p>%s</p>\n", r.san.EscapeHTML(data.Description))
	}

	b.WriteString("\t\t<div class=\"contact\">\n\t\t\t<h2>צור קשר</h2>\n")
	if data.Phone != "" {
		fmt.Fprintf(&b, "\t\t\t<div class=\"contact-item\">📞 %s</div>\n", r.san.EscapeHTML(data.Phone))
	}
	if data.Email != "" {
		fmt.Fprintf(&b, "\t\t\t<div class=\"contact-item\">📧 %s</div>\n", r.san.EscapeHTML(data.Email))
	}
	b.WriteString("\t\t</div>\n\t</div>\n</body>\n</html>")

	return b.String()
}
