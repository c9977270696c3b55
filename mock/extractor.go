package mock

import "github.com/pageforge/pageforge"

var _ pageforge.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor is a mock implementation of pageforge.ContactExtractor.
type ContactExtractor struct {
	ExtractContactInfoFn func(html string) pageforge.ContactInfo
}

func (e *ContactExtractor) ExtractContactInfo(html string) pageforge.ContactInfo {
	return e.ExtractContactInfoFn(html)
}

var _ pageforge.ProductExtractor = (*ProductExtractor)(nil)

// ProductExtractor is a mock implementation of pageforge.ProductExtractor.
type ProductExtractor struct {
	ExtractProductsFn func(html string) []pageforge.Product
}

func (e *ProductExtractor) ExtractProducts(html string) []pageforge.Product {
	return e.ExtractProductsFn(html)
}

var _ pageforge.Describer = (*Describer)(nil)

// Describer is a mock implementation of pageforge.Describer.
type Describer struct {
	ExtractDescriptionFn func(html string) string
}

func (d *Describer) ExtractDescription(html string) string {
	return d.ExtractDescriptionFn(html)
}

var _ pageforge.CategoryDetector = (*CategoryDetector)(nil)

// CategoryDetector is a mock implementation of pageforge.CategoryDetector.
type CategoryDetector struct {
	DetectFn func(html string, selected pageforge.PageCategory) pageforge.PageCategory
}

func (d *CategoryDetector) Detect(html string, selected pageforge.PageCategory) pageforge.PageCategory {
	return d.DetectFn(html, selected)
}
