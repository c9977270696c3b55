package pageforge

import "sort"

// sectionOrder is the preferred display order for known section types.
// Unknown types sort last.
var sectionOrder = map[string]int{
	SectionAbout:        0,
	SectionProducts:     1,
	SectionGallery:      2,
	SectionServices:     3,
	SectionPricing:      4,
	SectionTeam:         5,
	SectionVideo:        6,
	SectionTestimonials: 7,
	SectionFAQ:          8,
}

// SectionOrderFor returns the preferred order for a section type.
func SectionOrderFor(sectionType string) int {
	if order, ok := sectionOrder[sectionType]; ok {
		return order
	}
	return DefaultSectionOrder
}

// BuildSections creates section records for a new structured page from its
// data and the owner's selected optional sections. Only sections the data
// can fill are created; empty selections are dropped.
func BuildSections(data *TemplateData, selected []string) []Section {
	pick := make(map[string]bool, len(selected))
	for _, s := range selected {
		pick[s] = true
	}

	var sections []Section
	add := func(sectionType string, payload map[string]any) {
		sections = append(sections, Section{
			Type:    sectionType,
			Enabled: true,
			Order:   SectionOrderFor(sectionType),
			Data:    payload,
		})
	}

	if pick[SectionAbout] {
		content := data.AboutText
		if content == "" {
			content = data.Description
		}
		add(SectionAbout, map[string]any{
			"title":   "אודותינו",
			"content": content,
			"image":   data.HeaderImage,
		})
	}

	if len(data.Products) > 0 {
		add(SectionProducts, map[string]any{
			"title":    "המוצרים שלנו",
			"subtitle": "בחר מוצר והוסף לעגלה",
		})
	}

	if pick[SectionGallery] && len(data.Gallery) > 0 {
		images := make([]any, len(data.Gallery))
		for i, img := range data.Gallery {
			images[i] = img
		}
		add(SectionGallery, map[string]any{
			"title":  "גלריית תמונות",
			"images": images,
		})
	}

	if pick[SectionServices] && len(data.Services) > 0 {
		services := make([]any, len(data.Services))
		for i, s := range data.Services {
			services[i] = map[string]any{"title": s}
		}
		add(SectionServices, map[string]any{
			"title":    "השירותים שלנו",
			"services": services,
		})
	}

	if pick[SectionTeam] && len(data.Team) > 0 {
		members := make([]any, len(data.Team))
		for i, m := range data.Team {
			members[i] = map[string]any{
				"name":  m.Name,
				"role":  m.Role,
				"bio":   m.Bio,
				"image": m.Image,
			}
		}
		add(SectionTeam, map[string]any{
			"title":   "הצוות שלנו",
			"members": members,
		})
	}

	if pick[SectionVideo] && data.VideoURL != "" {
		add(SectionVideo, map[string]any{
			"title":    "סרטון",
			"videoUrl": data.VideoURL,
		})
	}

	if pick[SectionTestimonials] && len(data.Testimonials) > 0 {
		items := make([]any, len(data.Testimonials))
		for i, t := range data.Testimonials {
			items[i] = map[string]any{
				"name":   t.Name,
				"text":   t.Text,
				"rating": t.Rating,
				"image":  t.Image,
			}
		}
		add(SectionTestimonials, map[string]any{
			"title": "מה אומרים עלינו",
			"items": items,
		})
	}

	if pick[SectionFAQ] && len(data.FAQ) > 0 {
		items := make([]any, len(data.FAQ))
		for i, f := range data.FAQ {
			items[i] = map[string]any{
				"question": f.Question,
				"answer":   f.Answer,
			}
		}
		add(SectionFAQ, map[string]any{
			"title": "שאלות ותשובות",
			"items": items,
		})
	}

	if data.Phone != "" || data.Email != "" || data.Address != "" {
		add(SectionContact, map[string]any{
			"title":   "צור קשר",
			"phone":   data.Phone,
			"email":   data.Email,
			"address": data.Address,
		})
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	return sections
}

// PageTemplateData assembles a TemplateData record from a stored page. The
// page's sections are assumed to already carry any overrides.
func (p *Page) PageTemplateData() *TemplateData {
	data := &TemplateData{
		BusinessName: p.Title,
		Description:  p.Description,
		PageType:     p.PageType,
		Phone:        p.Phone,
		Email:        p.Email,
		City:         p.City,
		Address:      p.Address,
		HeaderImage:  p.Metadata.HeaderImage,
		VideoURL:     p.Metadata.VideoURL,
		Social:       p.Metadata.Social,
		WhatsApp:     p.Metadata.Social.WhatsApp,
		Products:     p.Products,
	}

	for _, sec := range p.Sections {
		if !sec.Enabled {
			continue
		}
		switch sec.Type {
		case SectionAbout:
			data.IncludeAbout = true
			if s, ok := sec.Data["content"].(string); ok {
				data.AboutText = s
			}
		case SectionGallery:
			data.IncludeGallery = true
			if images, ok := sec.Data["images"].([]any); ok {
				for _, img := range images {
					if s, ok := img.(string); ok {
						data.Gallery = append(data.Gallery, s)
					}
				}
			}
		case SectionFAQ:
			data.IncludeFAQ = true
			for _, item := range anySlice(sec.Data["items"]) {
				data.FAQ = append(data.FAQ, FAQItem{
					Question: mapString(item, "question"),
					Answer:   mapString(item, "answer"),
				})
			}
		case SectionTestimonials:
			data.IncludeTestimonials = true
			for _, item := range anySlice(sec.Data["items"]) {
				rating, _ := toInt(item["rating"])
				data.Testimonials = append(data.Testimonials, Testimonial{
					Name:   mapString(item, "name"),
					Text:   mapString(item, "text"),
					Rating: rating,
					Image:  mapString(item, "image"),
				})
			}
		case SectionServices:
			data.IncludeServices = true
			for _, item := range anySlice(sec.Data["services"]) {
				if title := mapString(item, "title"); title != "" {
					data.Services = append(data.Services, title)
				}
			}
		case SectionTeam:
			data.IncludeTeam = true
			for _, item := range anySlice(sec.Data["members"]) {
				data.Team = append(data.Team, TeamMember{
					Name:  mapString(item, "name"),
					Role:  mapString(item, "role"),
					Bio:   mapString(item, "bio"),
					Image: mapString(item, "image"),
				})
			}
		case SectionVideo:
			data.IncludeVideo = true
			if data.VideoURL == "" {
				if s, ok := sec.Data["videoUrl"].(string); ok {
					data.VideoURL = s
				}
			}
		}
	}

	return data
}

// SelectedSections returns the enabled section types of a page in display
// order.
func (p *Page) SelectedSections() []string {
	sections := make([]Section, len(p.Sections))
	copy(sections, p.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	var selected []string
	for _, sec := range sections {
		if sec.Enabled {
			selected = append(selected, sec.Type)
		}
	}
	return selected
}

// anySlice coerces a section data value into a list of maps.
func anySlice(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func mapString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
