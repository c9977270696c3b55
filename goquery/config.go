package goquery

// Scoring weights for phone candidates. A candidate accumulates weight for
// every scope it appears in; the final ranking sorts by descending score
// with ties kept in first-encountered order.
const (
	// ScoreContactArea is added per match inside a contact-area block.
	ScoreContactArea = 5

	// ScoreLabelProximity is added per match found within LabelWindow
	// characters after the literal label "טלפון".
	ScoreLabelProximity = 3

	// ScoreDocument is added per match anywhere in the document.
	ScoreDocument = 1

	// LabelWindow is the lookahead, in characters, after a phone label.
	LabelWindow = 60
)

// Legacy product-price bounds. Prices outside the range are silently dropped
// in legacy extraction mode. The bounds are market-tuning heuristics against
// false positives, kept configurable rather than hard-coded at call sites.
const (
	DefaultMinProductPrice = 50
	DefaultMaxProductPrice = 50000
)

// Config tunes the heuristic extractors. The zero value selects the
// defaults.
type Config struct {
	// MinProductPrice and MaxProductPrice bound accepted prices in legacy
	// product extraction. Structured extraction ignores them.
	MinProductPrice float64 `yaml:"minProductPrice"`
	MaxProductPrice float64 `yaml:"maxProductPrice"`

	// ExtraCities extends the built-in city gazetteer.
	ExtraCities []string `yaml:"extraCities"`
}

func (c Config) minPrice() float64 {
	if c.MinProductPrice > 0 {
		return c.MinProductPrice
	}
	return DefaultMinProductPrice
}

func (c Config) maxPrice() float64 {
	if c.MaxProductPrice > 0 {
		return c.MaxProductPrice
	}
	return DefaultMaxProductPrice
}

// cities is the fixed gazetteer used for city extraction. Matching is a
// plain substring test; a hit inside a contact-area block is preferred over
// a whole-document hit.
var cities = []string{
	"תל אביב",
	"ירושלים",
	"חיפה",
	"באר שבע",
	"נתניה",
	"אשדוד",
	"רמת גן",
	"פתח תקווה",
	"בני ברק",
	"חולון",
	"רחובות",
	"כפר סבא",
	"אילת",
	"רעננה",
	"הרצליה",
	"חדרה",
	"קריית ביאליק",
	"קריית מוצקין",
	"ראשון לציון",
	"נהריה",
	"הוד השרון",
	"גבעתיים",
	"קריית אתא",
	"קריית שמונה",
	"בית שאן",
	"עפולה",
}

func (c Config) gazetteer() []string {
	if len(c.ExtraCities) == 0 {
		return cities
	}
	out := make([]string, 0, len(cities)+len(c.ExtraCities))
	out = append(out, cities...)
	out = append(out, c.ExtraCities...)
	return out
}
