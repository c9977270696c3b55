package pageforge

// Product represents a single sellable item on a page.
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	Enabled     bool    `json:"enabled"`
	Order       int     `json:"order"`
}

// Validate returns an error if the product contains invalid fields.
// Price bounds are not checked here: legacy extraction applies its own
// bounds, structured input has none.
func (p *Product) Validate() error {
	n := len([]rune(p.Name))
	if n < 3 || n > 100 {
		return Errorf(EINVALID, "product name must be 3-100 characters")
	}
	return nil
}

// ProductExtractor recovers products from raw HTML using best-effort
// heuristics. A product is only accepted in legacy mode if both a name and
// an in-range price are found together.
type ProductExtractor interface {
	ExtractProducts(html string) []Product
}
