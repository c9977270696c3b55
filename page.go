package pageforge

import (
	"context"
	"time"
)

// Section types used by structured pages. The set is open: stores may carry
// section types this core does not know how to render.
const (
	SectionAbout        = "about"
	SectionGallery      = "gallery"
	SectionFAQ          = "faq"
	SectionTestimonials = "testimonials"
	SectionServices     = "services"
	SectionPricing      = "pricing"
	SectionTeam         = "team"
	SectionVideo        = "video"
	SectionProducts     = "products"
	SectionContact      = "contact"
)

// DefaultSectionOrder sorts sections without an explicit order last.
const DefaultSectionOrder = 99

// Section is a named, orderable content block within a page.
type Section struct {
	Type    string         `json:"type"`
	Enabled bool           `json:"enabled"`
	Order   int            `json:"order"`
	Data    map[string]any `json:"data"`
}

// SocialLinks holds per-network profile URLs. Empty fields are omitted from
// rendered output.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Metadata carries auxiliary page state that is not part of the canonical
// section tree, including the sparse override set applied at read time.
type Metadata struct {
	VideoURL    string      `json:"videoUrl,omitempty"`
	HeaderImage string      `json:"headerImage,omitempty"`
	Social      SocialLinks `json:"socialLinks"`

	// SectionOverrides is keyed by string-encoded section index; each value
	// maps a dotted field path to its replacement value. Overrides never
	// mutate stored section content; they are merged transiently on read.
	SectionOverrides Overrides `json:"sectionOverrides,omitempty"`
}

// Page represents a stored marketing page document.
type Page struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	HTMLContent string       `json:"htmlContent"`
	PageType    PageCategory `json:"pageType"`
	Description string       `json:"description"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city"`
	Address string `json:"address"`

	Products []Product `json:"products"`
	Sections []Section `json:"sections"`
	Metadata Metadata  `json:"metadata"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "page title required")
	}
	if p.Slug == "" {
		return Errorf(EINVALID, "page slug required")
	}
	return nil
}

// PageService represents a service for managing page documents.
type PageService interface {
	// CreatePage creates a new page.
	CreatePage(ctx context.Context, page *Page) error

	// FindPageByID retrieves a page by ID with overrides applied to its
	// sections. Returns ENOTFOUND if the page does not exist.
	FindPageByID(ctx context.Context, id string) (*Page, error)

	// FindPageBySlug retrieves a page by slug with overrides applied.
	// Returns ENOTFOUND if the page does not exist.
	FindPageBySlug(ctx context.Context, slug string) (*Page, error)

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// UpdatePage updates an existing page.
	// Returns ENOTFOUND if the page does not exist.
	UpdatePage(ctx context.Context, id string, upd PageUpdate) (*Page, error)

	// UpdatePageField applies a single dotted-path field update. Paths under
	// "sections." are recorded as overrides; other nested paths mutate the
	// page strictly and return EINVALID on a missing intermediate key.
	UpdatePageField(ctx context.Context, id string, fieldPath string, value any) (*Page, error)

	// DeletePage permanently removes a page.
	// Returns ENOTFOUND if the page does not exist.
	DeletePage(ctx context.Context, id string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID       *string       `json:"id"`
	Slug     *string       `json:"slug"`
	PageType *PageCategory `json:"pageType"`
	IsActive *bool         `json:"isActive"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PageUpdate represents fields that can be updated on a page.
type PageUpdate struct {
	Title       *string    `json:"title"`
	HTMLContent *string    `json:"htmlContent"`
	Description *string    `json:"description"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	City        *string    `json:"city"`
	Address     *string    `json:"address"`
	Products    *[]Product `json:"products"`
	IsActive    *bool      `json:"isActive"`
}
