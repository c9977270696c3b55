package goquery

import (
	"strings"

	"github.com/pageforge/pageforge"
)

// Ensure Detector implements pageforge.CategoryDetector at compile time.
var _ pageforge.CategoryDetector = (*Detector)(nil)

// Detector classifies a page by testing ordered keyword sets against the
// lower-cased document. Event terms are checked first since weddings and
// bar-mitzvahs often also mention gifts or products; service terms come
// before store terms for the same reason.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

var eventKeywords = []string{
	"rsvp",
	"אישור הגעה",
	"מוזמנים",
	"countdown-timer",
	"חתונה",
	"wedding",
	"בר מצווה",
	"אירוע",
	"הזמנה לאירוע",
}

var appointmentKeywords = []string{
	"תור",
	"appointment",
	"booking",
	"קביעת תור",
	"schedule",
	"calendar",
	"זמן פנוי",
	"available time",
	"מספרה",
	"barber",
	"hairdresser",
	"salon",
}

var storeKeywords = []string{
	"addtocart",
	"shopping-cart",
	"cart-icon",
	"product-card",
	"btn-add-cart",
	"מוצר",
	"קנה עכשיו",
	"הוסף לעגלה",
	"חנות",
	"store",
	"shop",
}

// Detect returns the category for the given HTML. A non-empty selected
// category is returned unconditionally, bypassing all heuristics.
func (d *Detector) Detect(html string, selected pageforge.PageCategory) pageforge.PageCategory {
	if selected != "" {
		return selected
	}

	lower := strings.ToLower(html)

	if containsAny(lower, eventKeywords) {
		return pageforge.CategoryEvent
	}
	if containsAny(lower, appointmentKeywords) {
		return pageforge.CategoryServiceProvider
	}
	if containsAny(lower, storeKeywords) {
		return pageforge.CategoryStore
	}

	return pageforge.CategoryGeneric
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
