// Package render implements the placeholder-substitution template renderer.
// It resolves a template id to one of a small fixed template set, substitutes
// a static token table in a single pass, hides or removes non-selected
// optional sections, and guarantees a renderable fallback document when no
// template body can be loaded.
package render

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pageforge/pageforge"
)

// Ensure Renderer implements pageforge.Renderer at compile time.
var _ pageforge.Renderer = (*Renderer)(nil)

// Renderer renders page templates. The loader supplies template bodies; the
// sanitizer escapes every text token before insertion.
type Renderer struct {
	loader pageforge.TemplateLoader
	san    pageforge.Sanitizer
}

// NewRenderer creates a new Renderer.
func NewRenderer(loader pageforge.TemplateLoader, san pageforge.Sanitizer) *Renderer {
	return &Renderer{loader: loader, san: san}
}

var unresolvedToken = regexp.MustCompile(`\{\{[^}]+\}\}`)

// Render produces a complete HTML document. It never fails on missing
// templates: when no storage location carries the resolved template, a
// minimal synthesized document is returned instead. The returned error is
// reserved for context cancellation.
func (r *Renderer) Render(ctx context.Context, templateID string, data *pageforge.TemplateData, selected []string) (string, error) {
	if data == nil {
		data = &pageforge.TemplateData{}
	}

	name := pageforge.ResolveTemplate(templateID)
	body, err := r.loader.Load(ctx, name)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return r.fallback(data), nil
	}

	visible := sectionVisibility(data, selected)

	// Physically remove blocks for non-selected optional sections before
	// substitution; the SHOW_* tokens below resolve from the same
	// visibility decision, so the two mechanisms cannot disagree.
	body = removeHiddenSections(body, visible)

	body = strings.NewReplacer(r.tokenTable(data, visible)...).Replace(body)

	if len(data.Products) > 0 {
		body = substituteProductArray(body, data.Products)
	}

	return unresolvedToken.ReplaceAllString(body, ""), nil
}

// tokenTable builds the flat replacement list for a single substitution
// pass. Text tokens are HTML-escaped; *_HTML tokens carry generated markup
// and are inserted unescaped.
func (r *Renderer) tokenTable(data *pageforge.TemplateData, visible map[string]bool) []string {
	esc := r.san.EscapeHTML

	whatsapp := data.WhatsApp
	if whatsapp == "" && data.Phone != "" {
		whatsapp = "972" + strings.TrimPrefix(strings.ReplaceAll(data.Phone, "-", ""), "0")
	}
	countryCode := data.CountryCode
	if countryCode == "" {
		countryCode = "972"
	}
	description := data.Description
	if description == "" {
		description = "ברוכים הבאים"
	}

	pairs := []string{
		// Business identity.
		"{{BUSINESS_NAME}}", esc(data.DisplayName()),
		"{{MAIN_NAME}}", esc(data.DisplayName()),
		"{{PAGE_TITLE}}", esc(data.DisplayName()),
		"{{CONTACT_NAME}}", esc(data.ContactName),
		"{{META_DESCRIPTION}}", esc(description),
		"{{DESCRIPTION}}", esc(description),
		"{{LOGO_URL}}", esc(r.san.SanitizeURL(data.Logo)),
		"{{HEADER_IMAGE}}", esc(r.san.SanitizeURL(data.HeaderImage)),

		// Contact fields.
		"{{PHONE}}", esc(data.Phone),
		"{{EMAIL}}", esc(data.Email),
		"{{CITY}}", esc(data.City),
		"{{ADDRESS}}", esc(data.Address),
		"{{WHATSAPP_NUMBER}}", esc(whatsapp),
		"{{COUNTRY_CODE}}", esc(countryCode),

		// Social profile URLs.
		"{{FACEBOOK_URL}}", esc(r.san.SanitizeURL(data.Social.Facebook)),
		"{{INSTAGRAM_URL}}", esc(r.san.SanitizeURL(data.Social.Instagram)),
		"{{YOUTUBE_URL}}", esc(r.san.SanitizeURL(data.Social.YouTube)),
		"{{TIKTOK_URL}}", esc(r.san.SanitizeURL(data.Social.TikTok)),
		"{{LINKEDIN_URL}}", esc(r.san.SanitizeURL(data.Social.LinkedIn)),
		"{{TWITTER_URL}}", esc(r.san.SanitizeURL(data.Social.Twitter)),

		// Per-page-type fields.
		"{{HOURS}}", esc(data.Hours),
		"{{DELIVERY_INFO}}", esc(data.DeliveryInfo),
		"{{CURRICULUM}}", esc(data.Curriculum),
		"{{INSTRUCTOR_NAME}}", esc(data.InstructorName),
		"{{INSTRUCTOR_BIO}}", esc(data.InstructorBio),
		"{{WORKSHOP_DATE}}", esc(data.WorkshopDate),
		"{{WORKSHOP_PRICE}}", esc(data.WorkshopPrice),
		"{{EVENT_DATE}}", esc(data.EventDate),
		"{{EVENT_TIME}}", esc(data.EventTime),
		"{{VENUE}}", esc(data.Venue),
		"{{REGISTRATION_URL}}", esc(r.san.SanitizeURL(data.RegistrationURL)),
		"{{VIDEO_URL}}", esc(r.san.SanitizeURL(data.VideoURL)),

		// Generated markup. These already carry HTML and are inserted raw.
		"{{ABOUT_HTML}}", r.aboutHTML(data),
		"{{GALLERY_HTML}}", r.galleryHTML(data),
		"{{FAQ_HTML}}", r.faqHTML(data),
		"{{TESTIMONIALS_HTML}}", r.testimonialsHTML(data),
		"{{SERVICES_HTML}}", r.servicesHTML(data),
		"{{TEAM_HTML}}", r.teamHTML(data),
		"{{PRODUCTS_HTML}}", r.productsHTML(data),
		"{{SOCIAL_LINKS_HTML}}", r.socialLinksHTML(data),
		"{{VIDEO_HTML}}", r.videoHTML(data),
		"{{PRODUCTS_JSON}}", productsJSON(data.Products),
	}

	for _, key := range optionalSections {
		pairs = append(pairs, "{{SHOW_"+strings.ToUpper(key)+"}}", displayValue(visible[key]))
	}
	pairs = append(pairs,
		"{{SHOW_PRODUCTS}}", displayValue(visible[pageforge.SectionProducts]),
		"{{SHOW_CONTACT}}", displayValue(true),
	)

	return pairs
}

func displayValue(visible bool) string {
	if visible {
		return "block"
	}
	return "none"
}

func productsJSON(products []pageforge.Product) string {
	if len(products) == 0 {
		return "[]"
	}
	b, err := json.Marshal(products)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// productArray matches inline script statements that declare the page's
// product data as an array literal.
var productArray = regexp.MustCompile(`(?s)\bproducts\s*=\s*\[.*?\]`)

// substituteProductArray replaces any `products = [...]` array-literal
// statement with freshly serialized product JSON. Templates that embed
// product data as a script constant get current data even when they never
// use the PRODUCTS_HTML token.
func substituteProductArray(body string, products []pageforge.Product) string {
	return productArray.ReplaceAllString(body, "products = "+productsJSON(products))
}
