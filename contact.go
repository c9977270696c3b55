package pageforge

// ContactInfo holds contact details recovered from a page.
type ContactInfo struct {
	// Phone is the best candidate in grouped 0XX-XXX-XXXX form.
	Phone string `json:"phone"`

	// Phones lists all accepted candidates ranked by descending score.
	// Ties keep first-encountered order.
	Phones []string `json:"phones,omitempty"`

	Email string `json:"email"`

	// City is a member of the fixed gazetteer, or empty.
	City string `json:"city"`

	// Address is free text, at most 200 characters.
	Address string `json:"address"`
}

// ContactExtractor recovers contact information from raw HTML.
// Extraction never fails: absent fields are returned empty.
type ContactExtractor interface {
	ExtractContactInfo(html string) ContactInfo
}

// Describer extracts a short page description from raw HTML.
type Describer interface {
	// ExtractDescription returns the page description, or "" if none can
	// be found.
	ExtractDescription(html string) string
}
