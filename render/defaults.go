package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/pageforge/pageforge"
)

// Default content generators. Each optional content type resolves with the
// same precedence: externally generated HTML is entity-decoded, sanitized
// and used verbatim; structured data on the record is rendered into markup;
// otherwise a stock placeholder is synthesized.

// generated returns the AI-produced fragment for a section, decoded and
// sanitized, or "" when absent. The collaborator is untrusted: its output
// passes through the sanitizer before it reaches a document.
func (r *Renderer) generated(data *pageforge.TemplateData, pick func(*pageforge.GeneratedContent) string) string {
	if data.Generated == nil {
		return ""
	}
	fragment := pick(data.Generated)
	if fragment == "" {
		return ""
	}
	return r.san.SanitizeHTML(html.UnescapeString(fragment))
}

func (r *Renderer) aboutHTML(data *pageforge.TemplateData) string {
	if out := r.generated(data, func(g *pageforge.GeneratedContent) string { return g.About }); out != "" {
		return out
	}

	text := data.AboutText
	if text == "" {
		text = data.Description
	}
	if text != "" {
		return fmt.Sprintf(`<section class="about-section">
	<div class="container">
		<h2>אודותינו</h2>
		<p>%s</p>
	</div>
</section>`, r.san.EscapeHTML(text))
	}

	// Empty-state prompt: the owner fills this in from the editor.
	return `<section class="about-section">
	<div class="container">
		<h2>אודותינו</h2>
		<p class="empty-state">ספרו כאן על העסק שלכם</p>
	</div>
</section>`
}

func (r *Renderer) galleryHTML(data *pageforge.TemplateData) string {
	if out := r.generated(data, func(g *pageforge.GeneratedContent) string { return g.Gallery }); out != "" {
		return out
	}

	if len(data.Gallery) > 0 {
		var b strings.Builder
		b.WriteString("<section class=\"gallery-section\">\n\t<div class=\"container\">\n\t\t<h2>גלריה</h2>\n\t\t<div class=\"gallery-grid\">\n")
		for _, img := range data.Gallery {
			src := r.san.SanitizeURL(img)
			if src == "" {
				continue
			}
			fmt.Fprintf(&b, "\t\t\t<img src=\"%s\" alt=\"תמונה\" loading=\"lazy\">\n", r.san.EscapeHTML(src))
		}
		b.WriteString("\t\t</div>\n\t</div>\n</section>")
		return b.String()
	}

	return `<section class="gallery-section">
	<div class="container">
		<h2>גלריה</h2>
		<p class="empty-state">העלו תמונות לגלריה</p>
	</div>
</section>`
}

// Canned FAQ sets. Store pages answer shopping questions, service pages
// answer booking questions, and everything else gets a small generic set.
// The sets deliberately differ in length so misrouted defaults show up in
// tests.
var storeFAQ = []pageforge.FAQItem{
	{Question: "איך אני מזמין?", Answer: "פשוט לחץ על המוצר הרצוי והוסף אותו לעגלה. לאחר מכן עבור לתשלום."},
	{Question: "כמה זמן לוקח המשלוח?", Answer: "המשלוח לוקח בין 2-5 ימי עסקים, תלוי במיקום."},
	{Question: "האם יש אחריות על המוצרים?", Answer: "כן, יש אחריות של שנה על כל המוצרים."},
}

var serviceFAQ = []pageforge.FAQItem{
	{Question: "איך קובעים תור?", Answer: "ניתן לקבוע תור בטלפון או בוואטסאפ, ונחזור אליכם באותו יום."},
	{Question: "מה מדיניות הביטולים?", Answer: "ביטול עד 24 שעות מראש ללא חיוב."},
	{Question: "האם אתם מגיעים עד הבית?", Answer: "כן, אנחנו נותנים שירות עד בית הלקוח באזורנו."},
	{Question: "אילו אמצעי תשלום אתם מקבלים?", Answer: "מזומן, אשראי, ביט ופייבוקס."},
}

var genericFAQ = []pageforge.FAQItem{
	{Question: "איך יוצרים קשר?", Answer: "בטלפון, במייל או דרך הטופס בתחתית הדף."},
	{Question: "מה שעות הפעילות?", Answer: "ימים א'-ה' 9:00-18:00, יום ו' 9:00-13:00."},
}

// defaultFAQ picks the canned set for a page category.
func defaultFAQ(category pageforge.PageCategory) []pageforge.FAQItem {
	switch category {
	case pageforge.CategoryStore, pageforge.CategoryRestaurantMenu:
		return storeFAQ
	case pageforge.CategoryServiceProvider:
		return serviceFAQ
	default:
		return genericFAQ
	}
}

func (r *Renderer) faqHTML(data *pageforge.TemplateData) string {
	if out := r.generated(data, func(g *pageforge.GeneratedContent) string { return g.FAQ }); out != "" {
		return out
	}

	items := data.FAQ
	if len(items) == 0 {
		items = defaultFAQ(data.PageType)
	}

	var b strings.Builder
	b.WriteString("<section class=\"faq-section\">\n\t<div class=\"container\">\n\t\t<h2>שאלות ותשובות</h2>\n\t\t<div class=\"faq-list\">\n")
	for _, item := range items {
		fmt.Fprintf(&b, "\t\t\t<div class=\"faq-item\">\n\t\t\t\t<h3>%s</h3>\n\t\t\t\t<p>%s</p>\n\t\t\t</div>\n",
			r.san.EscapeHTML(item.Question), r.san.EscapeHTML(item.Answer))
	}
	b.WriteString("\t\t</div>\n\t</div>\n</section>")
	return b.String()
}

// Canned reviewer entries used when a page has no testimonials of its own.
var stockTestimonials = []pageforge.Testimonial{
	{Name: "לקוח מרוצה", Text: "שירות מעולה! ממליץ בחום", Rating: 5},
	{Name: "לקוחה מרוצה", Text: "חוויה נהדרת, בהחלט אחזור", Rating: 5},
	{Name: "לקוח נאמן", Text: "המקום הכי טוב בעיר!", Rating: 5},
}

func (r *Renderer) testimonialsHTML(data *pageforge.TemplateData) string {
	if out := r.generated(data, func(g *pageforge.GeneratedContent) string { return g.Testimonials }); out != "" {
		return out
	}

	items := data.Testimonials
	if len(items) == 0 {
		items = stockTestimonials
	}

	var b strings.Builder
	b.WriteString("<section class=\"testimonials-section\">\n\t<div class=\"container\">\n\t\t<h2>מה אומרים עלינו</h2>\n\t\t<div class=\"testimonials-grid\">\n")
	for _, item := range items {
		rating := item.Rating
		if rating < 1 || rating > 5 {
			rating = 5
		}
		fmt.Fprintf(&b, "\t\t\t<div class=\"testimonial-card\">\n\t\t\t\t<div class=\"stars\">%s</div>\n\t\t\t\t<p>%s</p>\n\t\t\t\t<span class=\"author\">%s</span>\n\t\t\t</div>\n",
			strings.Repeat("⭐", rating), r.san.EscapeHTML(item.Text), r.san.EscapeHTML(item.Name))
	}
	b.WriteString("\t\t</div>\n\t</div>\n</section>")
	return b.String()
}

func (r *Renderer) servicesHTML(data *pageforge.TemplateData) string {
	if out := r.generated(data, func(g *pageforge.GeneratedContent) string { return g.Services }); out != "" {
		return out
	}
	if len(data.Services) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<section class=\"services-section\">\n\t<div class=\"container\">\n\t\t<h2>השירותים שלנו</h2>\n\t\t<div class=\"services-grid\">\n")
	for _, service := range data.Services {
		service = strings.TrimSpace(service)
		if service == "" {
			continue
		}
		fmt.Fprintf(&b, "\t\t\t<div class=\"service-card\">\n\t\t\t\t<div class=\"service-mark\">✓</div>\n\t\t\t\t<h3>%s</h3>\n\t\t\t</div>\n",
			r.san.EscapeHTML(service))
	}
	b.WriteString("\t\t</div>\n\t</div>\n</section>")
	return b.String()
}

func (r *Renderer) teamHTML(data *pageforge.TemplateData) string {
	if len(data.Team) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<section class=\"team-section\">\n\t<div class=\"container\">\n\t\t<h2>הצוות שלנו</h2>\n\t\t<div class=\"team-grid\">\n")
	for _, member := range data.Team {
		b.WriteString("\t\t\t<div class=\"team-card\">\n")
		if src := r.san.SanitizeURL(member.Image); src != "" {
			fmt.Fprintf(&b, "\t\t\t\t<img src=\"%s\" alt=\"%s\">\n", r.san.EscapeHTML(src), r.san.EscapeHTML(member.Name))
		}
		fmt.Fprintf(&b, "\t\t\t\t<h3>%s</h3>\n\t\t\t\t<span class=\"role\">%s</span>\n\t\t\t\t<p>%s</p>\n\t\t\t</div>\n",
			r.san.EscapeHTML(member.Name), r.san.EscapeHTML(member.Role), r.san.EscapeHTML(member.Bio))
	}
	b.WriteString("\t\t</div>\n\t</div>\n</section>")
	return b.String()
}

func (r *Renderer) productsHTML(data *pageforge.TemplateData) string {
	if len(data.Products) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<section class=\"products-section\">\n\t<div class=\"container\">\n\t\t<h2>המוצרים שלנו</h2>\n\t\t<div class=\"products-grid\">\n")
	for _, p := range data.Products {
		if !p.Enabled {
			continue
		}
		b.WriteString("\t\t\t<div class=\"product-card\">\n")
		if src := r.san.SanitizeURL(p.Image); src != "" {
			fmt.Fprintf(&b, "\t\t\t\t<img src=\"%s\" alt=\"%s\">\n", r.san.EscapeHTML(src), r.san.EscapeHTML(p.Name))
		}
		fmt.Fprintf(&b, "\t\t\t\t<h3>%s</h3>\n", r.san.EscapeHTML(p.Name))
		if p.Description != "" {
			fmt.Fprintf(&b, "\t\t\t\t<p>%s</p>\n", r.san.EscapeHTML(p.Description))
		}
		fmt.Fprintf(&b, "\t\t\t\t<span class=\"price\">₪%g</span>\n\t\t\t\t<button class=\"btn-add-cart\" data-name=\"%s\" data-price=\"%g\">הוסף לעגלה</button>\n\t\t\t</div>\n",
			p.Price, r.san.EscapeHTML(p.Name), p.Price)
	}
	b.WriteString("\t\t</div>\n\t</div>\n</section>")
	return b.String()
}

func (r *Renderer) videoHTML(data *pageforge.TemplateData) string {
	src := r.san.SanitizeURL(data.VideoURL)
	if src == "" {
		return ""
	}

	if strings.Contains(src, "youtube.com") || strings.Contains(src, "youtu.be") {
		embed := strings.Replace(src, "watch?v=", "embed/", 1)
		return fmt.Sprintf(`<section class="video-section">
	<div class="container">
		<h2>סרטון</h2>
		<div class="video-wrapper">
			<iframe src="%s" allowfullscreen></iframe>
		</div>
	</div>
</section>`, r.san.EscapeHTML(embed))
	}

	return fmt.Sprintf(`<section class="video-section">
	<div class="container">
		<h2>סרטון</h2>
		<div class="video-wrapper">
			<video controls src="%s"></video>
		</div>
	</div>
</section>`, r.san.EscapeHTML(src))
}

// socialNetworks lists rendering order and labels for social links.
var socialNetworks = []struct {
	label string
	pick  func(pageforge.SocialLinks) string
}{
	{"📘 Facebook", func(s pageforge.SocialLinks) string { return s.Facebook }},
	{"📷 Instagram", func(s pageforge.SocialLinks) string { return s.Instagram }},
	{"🎥 YouTube", func(s pageforge.SocialLinks) string { return s.YouTube }},
	{"🎵 TikTok", func(s pageforge.SocialLinks) string { return s.TikTok }},
}

func (r *Renderer) socialLinksHTML(data *pageforge.TemplateData) string {
	var links strings.Builder
	for _, network := range socialNetworks {
		href := r.san.SanitizeURL(network.pick(data.Social))
		if href == "" {
			continue
		}
		fmt.Fprintf(&links, "\t\t\t<a href=\"%s\" target=\"_blank\" rel=\"noopener\">%s</a>\n",
			r.san.EscapeHTML(href), network.label)
	}
	if number := data.Social.WhatsApp; number != "" {
		fmt.Fprintf(&links, "\t\t\t<a href=\"https://wa.me/%s\" target=\"_blank\" rel=\"noopener\">💬 WhatsApp</a>\n",
			r.san.EscapeHTML(number))
	}
	if links.Len() == 0 {
		return ""
	}

	return "<section class=\"social-section\">\n\t<div class=\"container\">\n\t\t<h2>עקבו אחרינו</h2>\n\t\t<div class=\"social-links\">\n" +
		links.String() + "\t\t</div>\n\t</div>\n</section>"
}
