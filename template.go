package pageforge

import "context"

// Template names form a small fixed set. Template ids resolve through
// ResolveTemplate; unknown ids fall back to the store template.
const (
	TemplateStore   = "store"
	TemplateService = "service"
	TemplateEvent   = "event"
	TemplateCourse  = "course"
	TemplateArtist  = "artist"
	TemplateMessage = "message"
)

// DefaultTemplate is used for unrecognized template ids.
const DefaultTemplate = TemplateStore

var templateNames = map[string]string{
	"store":           TemplateStore,
	"onlineStore":     TemplateStore,
	"service":         TemplateService,
	"serviceProvider": TemplateService,
	"event":           TemplateEvent,
	"course":          TemplateCourse,
	"onlineCourse":    TemplateCourse,
	"workshop":        TemplateCourse,
	"restaurantMenu":  TemplateStore,
	"artist":          TemplateArtist,
	"message":         TemplateMessage,
	"messageInBottle": TemplateMessage,
}

// ResolveTemplate maps a template id to its template name. Unknown ids
// resolve to DefaultTemplate.
func ResolveTemplate(id string) string {
	if name, ok := templateNames[id]; ok {
		return name
	}
	return DefaultTemplate
}

// TemplateLoader loads a template body by name.
type TemplateLoader interface {
	// Load returns the template body. Returns ENOTFOUND if no storage
	// location carries the template.
	Load(ctx context.Context, name string) (string, error)
}

// FAQItem is a single question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Testimonial is a single customer review.
type Testimonial struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Image  string `json:"image,omitempty"`
}

// TeamMember is a single team entry.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image,omitempty"`
}

// GeneratedContent is the optional, untrusted output of an AI content
// collaborator. Fields carry ready-made HTML fragments; any of them may be
// empty, and absence always degrades to canned defaults.
type GeneratedContent struct {
	About        string `json:"about,omitempty"`
	Gallery      string `json:"gallery,omitempty"`
	Testimonials string `json:"testimonials,omitempty"`
	FAQ          string `json:"faq,omitempty"`
	Services     string `json:"services,omitempty"`
}

// Empty reports whether the collaborator produced nothing usable.
func (g *GeneratedContent) Empty() bool {
	return g == nil || (g.About == "" && g.Gallery == "" && g.Testimonials == "" &&
		g.FAQ == "" && g.Services == "")
}

// ContentGenerator produces optional page content. Implementations are
// remote and untrusted: callers must treat errors and malformed output as
// absence, never as request failure.
type ContentGenerator interface {
	Generate(ctx context.Context, data *TemplateData) (*GeneratedContent, error)
}

// TemplateData is the structured business record a template is rendered
// from. All fields are optional except BusinessName; absent fields render
// as empty or fall back to canned defaults.
type TemplateData struct {
	BusinessName string       `json:"businessName"`
	ContactName  string       `json:"contactName,omitempty"`
	Description  string       `json:"description,omitempty"`
	PageType     PageCategory `json:"pageType,omitempty"`

	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	WhatsApp    string `json:"whatsapp,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`

	Logo        string      `json:"logo,omitempty"`
	HeaderImage string      `json:"headerImage,omitempty"`
	VideoURL    string      `json:"videoUrl,omitempty"`
	Social      SocialLinks `json:"socialLinks"`

	AboutText    string        `json:"aboutText,omitempty"`
	Gallery      []string      `json:"gallery,omitempty"`
	FAQ          []FAQItem     `json:"faq,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
	Services     []string      `json:"services,omitempty"`
	Team         []TeamMember  `json:"team,omitempty"`
	Products     []Product     `json:"products,omitempty"`

	// Generated holds optional AI-produced HTML fragments; it takes
	// precedence over structured fields during rendering.
	Generated *GeneratedContent `json:"-"`

	// Per-category fields.
	Hours           string `json:"hours,omitempty"`
	DeliveryInfo    string `json:"deliveryInfo,omitempty"`
	Curriculum      string `json:"curriculum,omitempty"`
	InstructorName  string `json:"instructorName,omitempty"`
	InstructorBio   string `json:"instructorBio,omitempty"`
	WorkshopDate    string `json:"workshopDate,omitempty"`
	WorkshopPrice   string `json:"workshopPrice,omitempty"`
	EventDate       string `json:"eventDate,omitempty"`
	EventTime       string `json:"eventTime,omitempty"`
	Venue           string `json:"venue,omitempty"`
	RegistrationURL string `json:"registrationUrl,omitempty"`

	// Include flags mirror membership in a selected-sections list; either
	// mechanism enables an optional section.
	IncludeAbout        bool `json:"includeAbout,omitempty"`
	IncludeGallery      bool `json:"includeGallery,omitempty"`
	IncludeFAQ          bool `json:"includeFAQ,omitempty"`
	IncludeTestimonials bool `json:"includeTestimonials,omitempty"`
	IncludeServices     bool `json:"includeServices,omitempty"`
	IncludeTeam         bool `json:"includeTeam,omitempty"`
	IncludeVideo        bool `json:"includeVideo,omitempty"`
}

// DisplayName returns the name the page should lead with.
func (d *TemplateData) DisplayName() string {
	if d.BusinessName != "" {
		return d.BusinessName
	}
	return "העסק שלי"
}

// Renderer produces a complete HTML document from a template id, a data
// record, and the set of selected optional sections. Rendering never fails:
// a missing template degrades to a minimal synthesized document.
type Renderer interface {
	Render(ctx context.Context, templateID string, data *TemplateData, selected []string) (string, error)
}

// Sanitizer escapes and strips unsafe markup. It is consumed by both
// extraction and rendering.
type Sanitizer interface {
	// EscapeHTML escapes text for insertion into HTML.
	EscapeHTML(text string) string

	// SanitizeHTML removes script content and event-handler attributes
	// while preserving document structure.
	SanitizeHTML(html string) string

	// SanitizeURL returns the URL if it carries a safe scheme, else "".
	SanitizeURL(url string) string
}
