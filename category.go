package pageforge

// PageCategory classifies a page and drives template choice and default
// content.
type PageCategory string

// Supported page categories.
const (
	CategoryGeneric         PageCategory = "generic"
	CategoryStore           PageCategory = "store"
	CategoryServiceProvider PageCategory = "serviceProvider"
	CategoryEvent           PageCategory = "event"
	CategoryCourse          PageCategory = "course"
	CategoryWorkshop        PageCategory = "workshop"
	CategoryRestaurantMenu  PageCategory = "restaurantMenu"
	CategoryArtist          PageCategory = "artist"
	CategoryMessageInBottle PageCategory = "messageInBottle"
)

// legacyCategories maps page-type aliases used by older page records to
// their canonical categories.
var legacyCategories = map[string]PageCategory{
	"onlineStore":  CategoryStore,
	"service":      CategoryServiceProvider,
	"onlineCourse": CategoryCourse,
	"liveWorkshop": CategoryWorkshop,
}

// NormalizeCategory converts a raw page-type string to a canonical category.
// Unknown values pass through unchanged so that explicit user selections are
// never second-guessed; empty input normalizes to CategoryGeneric.
func NormalizeCategory(raw string) PageCategory {
	if raw == "" {
		return CategoryGeneric
	}
	if c, ok := legacyCategories[raw]; ok {
		return c
	}
	return PageCategory(raw)
}

// CategoryDetector infers a page category from HTML content.
type CategoryDetector interface {
	// Detect returns the category for the given HTML. If selected is
	// non-empty it is returned unconditionally, bypassing all heuristics.
	Detect(html string, selected PageCategory) PageCategory
}
