package render

import (
	"regexp"
	"strings"

	"github.com/pageforge/pageforge"
)

// optionalSections are the content types a caller can switch on and off.
// Contact is always rendered; products follow the data record.
var optionalSections = []string{
	pageforge.SectionAbout,
	pageforge.SectionGallery,
	pageforge.SectionFAQ,
	pageforge.SectionTestimonials,
	pageforge.SectionServices,
	pageforge.SectionTeam,
	pageforge.SectionVideo,
}

// sectionVisibility makes the visibility decision once per section. A
// section is visible when its key is in the selected list or the matching
// Include* flag is set on the data record. Both the SHOW_* tokens and the
// physical block removal consume this one decision.
func sectionVisibility(data *pageforge.TemplateData, selected []string) map[string]bool {
	chosen := make(map[string]bool, len(selected))
	for _, key := range selected {
		chosen[key] = true
	}

	flags := map[string]bool{
		pageforge.SectionAbout:        data.IncludeAbout,
		pageforge.SectionGallery:      data.IncludeGallery,
		pageforge.SectionFAQ:          data.IncludeFAQ,
		pageforge.SectionTestimonials: data.IncludeTestimonials,
		pageforge.SectionServices:     data.IncludeServices,
		pageforge.SectionTeam:         data.IncludeTeam,
		pageforge.SectionVideo:        data.IncludeVideo,
	}

	visible := make(map[string]bool, len(optionalSections)+1)
	for _, key := range optionalSections {
		visible[key] = chosen[key] || flags[key]
	}
	visible[pageforge.SectionProducts] = len(data.Products) > 0 ||
		data.PageType == pageforge.CategoryStore ||
		data.PageType == pageforge.CategoryRestaurantMenu
	return visible
}

// Section blocks are delimited either by marker comments
// (<!-- SECTION:faq --> ... <!-- /SECTION:faq -->) or by a class-tagged
// <section> wrapper (class="... faq-section ...").
var sectionMarkers = map[string]*regexp.Regexp{}
var sectionWrappers = map[string]*regexp.Regexp{}

func init() {
	for _, key := range optionalSections {
		sectionMarkers[key] = regexp.MustCompile(
			`(?s)<!--\s*SECTION:` + key + `\s*-->.*?<!--\s*/SECTION:` + key + `\s*-->`)
		sectionWrappers[key] = regexp.MustCompile(
			`(?is)<section[^>]*class="[^"]*\b` + key + `-section\b[^"]*"[^>]*>.*?</section>`)
	}
}

// removeHiddenSections physically deletes template blocks for sections the
// visibility decision turned off.
func removeHiddenSections(body string, visible map[string]bool) string {
	for _, key := range optionalSections {
		if visible[key] {
			continue
		}
		body = sectionMarkers[key].ReplaceAllString(body, "")
		if strings.Contains(body, key+"-section") {
			body = sectionWrappers[key].ReplaceAllString(body, "")
		}
	}
	return body
}
