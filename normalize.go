package pageforge

import "sort"

// NormalizePage converts a raw page document into the canonical Page.
// It accepts both the current flat store shape and the legacy nested shape
// (fields under "attributes", relation arrays under "data"), so core logic
// never has to branch on storage shape.
func NormalizePage(raw map[string]any) *Page {
	page := &Page{PageType: CategoryGeneric}
	if raw == nil {
		return page
	}

	attrs := raw
	if nested, ok := raw["attributes"].(map[string]any); ok {
		attrs = nested
	}

	page.ID = str(raw["documentId"], str(raw["id"], ""))
	page.Title = str(attrs["title"], "")
	page.Slug = str(attrs["slug"], "")
	page.HTMLContent = str(attrs["htmlContent"], "")
	page.PageType = NormalizeCategory(str(attrs["pageType"], ""))
	page.Description = str(attrs["description"], "")
	page.Phone = str(attrs["phone"], "")
	page.Email = str(attrs["email"], "")
	page.City = str(attrs["city"], "")
	page.Address = str(attrs["address"], "")
	if b, ok := attrs["isActive"].(bool); ok {
		page.IsActive = b
	}

	for _, item := range relationItems(attrs["sections"]) {
		page.Sections = append(page.Sections, normalizeSection(item))
	}
	sort.SliceStable(page.Sections, func(i, j int) bool {
		return page.Sections[i].Order < page.Sections[j].Order
	})

	for _, item := range relationItems(attrs["storeProducts"]) {
		page.Products = append(page.Products, normalizeProduct(item))
	}
	if len(page.Products) == 0 {
		for _, item := range relationItems(attrs["products"]) {
			page.Products = append(page.Products, normalizeProduct(item))
		}
	}

	if meta, ok := attrs["metadata"].(map[string]any); ok {
		page.Metadata = normalizeMetadata(meta)
	}

	return page
}

// relationItems unwraps a relation field that is either a bare array (flat
// shape) or an object with a "data" array (legacy shape).
func relationItems(v any) []map[string]any {
	var arr []any
	switch rel := v.(type) {
	case []any:
		arr = rel
	case map[string]any:
		arr, _ = rel["data"].([]any)
	}
	items := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

func normalizeSection(raw map[string]any) Section {
	attrs := raw
	if nested, ok := raw["attributes"].(map[string]any); ok {
		attrs = nested
	}
	sec := Section{
		Type:    str(attrs["type"], ""),
		Enabled: true,
		Order:   DefaultSectionOrder,
		Data:    map[string]any{},
	}
	if b, ok := attrs["enabled"].(bool); ok {
		sec.Enabled = b
	}
	if n, ok := toInt(attrs["order"]); ok {
		sec.Order = n
	}
	if data, ok := attrs["data"].(map[string]any); ok {
		sec.Data = data
	}
	return sec
}

func normalizeProduct(raw map[string]any) Product {
	attrs := raw
	if nested, ok := raw["attributes"].(map[string]any); ok {
		attrs = nested
	}
	p := Product{
		Name:        str(attrs["name"], ""),
		Description: str(attrs["description"], ""),
		Image:       str(attrs["image"], ""),
		Enabled:     true,
	}
	if f, ok := toFloat(attrs["price"]); ok {
		p.Price = f
	}
	if b, ok := attrs["enabled"].(bool); ok {
		p.Enabled = b
	}
	if n, ok := toInt(attrs["order"]); ok {
		p.Order = n
	}
	return p
}

func normalizeMetadata(raw map[string]any) Metadata {
	meta := Metadata{
		VideoURL:    str(raw["videoUrl"], ""),
		HeaderImage: str(raw["headerImage"], ""),
	}
	if social, ok := raw["socialLinks"].(map[string]any); ok {
		meta.Social = SocialLinks{
			Facebook:  str(social["facebook"], ""),
			Instagram: str(social["instagram"], ""),
			WhatsApp:  str(social["whatsapp"], ""),
			YouTube:   str(social["youtube"], ""),
			TikTok:    str(social["tiktok"], ""),
			LinkedIn:  str(social["linkedin"], ""),
			Twitter:   str(social["twitter"], ""),
		}
	}
	if ov, ok := raw["sectionOverrides"].(map[string]any); ok {
		meta.SectionOverrides = make(Overrides, len(ov))
		for key, fields := range ov {
			if m, ok := fields.(map[string]any); ok {
				meta.SectionOverrides[key] = m
			}
		}
	}
	return meta
}

func str(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
