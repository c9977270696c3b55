package goquery

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pageforge/pageforge"
)

// Ensure ContactExtractor implements pageforge.ContactExtractor at compile time.
var _ pageforge.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor recovers contact information from raw HTML using ordered,
// scored pattern matching. Extraction never fails: fields without a match
// come back empty.
type ContactExtractor struct {
	config Config
}

// NewContactExtractor creates a new ContactExtractor.
func NewContactExtractor(config Config) *ContactExtractor {
	return &ContactExtractor{config: config}
}

// Ordered phone pattern families: +972-prefixed mobile and landline shapes
// first, then local shapes. Order matters only for first-encountered
// tie-breaking; every family runs over every scope.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+972[\s\-)]?\s*5[0-9][\s\-]?\d{3}[\s\-]?\d{4}`),
	regexp.MustCompile(`\+972[\s\-)]?\s*7[0-9][\s\-]?\d{3}[\s\-]?\d{4}`),
	regexp.MustCompile(`0?5[0-9][\s\-]?\d{3}[\s\-]?\d{4}`),
	regexp.MustCompile(`0?7[0-9][\s\-]?\d{3}[\s\-]?\d{4}`),
	regexp.MustCompile(`0[57]\d(?:[.\s\-]?\d){8}`),
}

var (
	validPhone      = regexp.MustCompile(`^0[57][0-9]{8}$`)
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneLabel      = regexp.MustCompile(`טלפון[:\s\-]*`)
	labeledPhone    = regexp.MustCompile(`0[57]\d[\d\s\-.]{7,}`)
	contactAreaAttr = regexp.MustCompile(`(?i)contact|footer|info|details`)
)

// ExtractContactInfo extracts phone, email, city and address from HTML.
func (e *ContactExtractor) ExtractContactInfo(html string) pageforge.ContactInfo {
	info := pageforge.ContactInfo{}

	areas := contactAreas(html)

	info.Phones = e.extractPhones(html, areas)
	if len(info.Phones) > 0 {
		info.Phone = info.Phones[0]
	}

	if m := emailPattern.FindString(html); m != "" {
		info.Email = m
	}

	info.City = e.extractCity(html, areas)
	info.Address = extractAddress(html)

	return info
}

// contactAreas returns the inner HTML of elements heuristically identified
// as contact or footer blocks: section, div or footer tags whose class or id
// mentions contact, footer, info or details.
func contactAreas(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var areas []string
	doc.Find("section, div, footer").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		if !contactAreaAttr.MatchString(class) && !contactAreaAttr.MatchString(id) {
			return
		}
		inner, err := sel.Html()
		if err != nil || inner == "" {
			return
		}
		areas = append(areas, inner)
	})
	return areas
}

// phoneCandidate tracks one accepted number and its accumulated score.
type phoneCandidate struct {
	phone string
	score int
	seen  int // first-encountered position, for stable tie-breaking
}

func (e *ContactExtractor) extractPhones(html string, areas []string) []string {
	scores := make(map[string]*phoneCandidate)
	order := 0

	record := func(formatted string, weight int) {
		if c, ok := scores[formatted]; ok {
			c.score += weight
			return
		}
		scores[formatted] = &phoneCandidate{phone: formatted, score: weight, seen: order}
		order++
	}

	// Contact-area scope first so its candidates win first-encountered ties.
	for _, area := range areas {
		for _, pattern := range phonePatterns {
			for _, match := range pattern.FindAllString(area, -1) {
				if formatted, ok := normalizePhone(match); ok {
					record(formatted, ScoreContactArea)
				}
			}
		}
	}

	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllString(html, -1) {
			if formatted, ok := normalizePhone(match); ok {
				record(formatted, ScoreDocument)
			}
		}
	}

	// Boost numbers that follow a phone label within the lookahead window.
	for _, loc := range phoneLabel.FindAllStringIndex(html, -1) {
		end := loc[1] + LabelWindow
		if end > len(html) {
			end = len(html)
		}
		window := html[loc[1]:end]
		if cut := strings.IndexAny(window, "<\n"); cut >= 0 {
			window = window[:cut]
		}
		for _, hit := range labeledPhone.FindAllString(window, -1) {
			if formatted, ok := normalizePhone(hit); ok {
				if c, exists := scores[formatted]; exists {
					c.score += ScoreLabelProximity
				}
			}
		}
	}

	candidates := make([]phoneCandidate, 0, len(scores))
	for _, c := range scores {
		candidates = append(candidates, *c)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].seen < candidates[j].seen
	})

	phones := make([]string, 0, len(candidates))
	for _, c := range candidates {
		phones = append(phones, c.phone)
	}
	return phones
}

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// normalizePhone strips separators, converts the +972 prefix to a leading
// zero, left-pads nine-digit mobiles, and validates the result. All-same-
// digit numbers and known placeholders are rejected.
func normalizePhone(raw string) (string, bool) {
	phone := phoneSeparators.Replace(strings.TrimSpace(raw))
	if strings.HasPrefix(phone, "+972") {
		phone = "0" + phone[len("+972"):]
	}
	if len(phone) == 9 && (phone[0] == '5' || phone[0] == '7') {
		phone = "0" + phone
	}
	if !validPhone.MatchString(phone) {
		return "", false
	}
	if allSameDigits(phone[1:]) || phone == "0500000000" || phone == "0700000000" {
		return "", false
	}
	return phone[:3] + "-" + phone[3:6] + "-" + phone[6:], true
}

func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func (e *ContactExtractor) extractCity(html string, areas []string) string {
	gazetteer := e.config.gazetteer()

	for _, city := range gazetteer {
		for _, area := range areas {
			if strings.Contains(area, city) {
				return city
			}
		}
	}
	for _, city := range gazetteer {
		if strings.Contains(html, city) {
			return city
		}
	}
	return ""
}

// Navigation-link patterns for address extraction, in preference order:
// Google Maps and Waze query parameters, then the anchor text of any
// maps/waze link.
var (
	mapsHref     = regexp.MustCompile(`(?i)href\s*=\s*["'](https?://(?:www\.)?(?:maps\.)?google\.com/maps[^"']*)["']`)
	wazeHref     = regexp.MustCompile(`(?i)href\s*=\s*["'](https?://(?:www\.)?waze\.com/ul[^"']*)["']`)
	navAnchor    = regexp.MustCompile(`(?i)<a[^>]*href\s*=\s*["']https?://(?:[^"']*\.)?(?:maps\.google|google\.com/maps|waze)[^"']*["'][^>]*>([^<]{10,100})</a>`)
	streetHint   = regexp.MustCompile(`(?i)רחוב|street|st\.`)
	hasDigit     = regexp.MustCompile(`\d`)
	hasLetter    = regexp.MustCompile(`[a-zA-Zא-ת]`)
	addressLabel = regexp.MustCompile(`(?i)כתובת[:\s]*`)
)

// Free-text fallbacks: Hebrew street/number shapes, then a labeled field.
var addressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[א-ת\s]+,\s*רחוב\s+[א-ת\s\d]+`),
	regexp.MustCompile(`[א-ת\s]+,\s*[א-ת\s\d]+\s+\d+`),
	regexp.MustCompile(`רחוב\s+[א-ת\s\d]+,\s*[א-ת\s]+`),
	regexp.MustCompile(`(?i)כתובת[:\s]*([^<\n]{5,80})`),
}

func extractAddress(html string) string {
	if addr := addressFromNavLinks(html); addr != "" {
		return addr
	}

	for _, pattern := range addressPatterns {
		match := pattern.FindString(html)
		if match == "" {
			continue
		}
		addr := strings.TrimSpace(addressLabel.ReplaceAllString(match, ""))
		if len([]rune(addr)) > 5 {
			return clampAddress(addr)
		}
	}
	return ""
}

// addressFromNavLinks decodes Maps/Waze navigation URLs. Query parameters
// carrying a street hint or a house number win; otherwise the first
// plausible candidate is kept.
func addressFromNavLinks(html string) string {
	var fallback string

	consider := func(raw string) (string, bool) {
		addr, err := url.QueryUnescape(strings.TrimSpace(raw))
		if err != nil {
			addr = raw
		}
		addr = strings.ReplaceAll(addr, "+", " ")
		addr = strings.Join(strings.Fields(addr), " ")
		if len([]rune(addr)) <= 5 || !hasLetter.MatchString(addr) {
			return "", false
		}
		if streetHint.MatchString(addr) || hasDigit.MatchString(addr) {
			return addr, true
		}
		if fallback == "" {
			fallback = addr
		}
		return "", false
	}

	for _, pattern := range []*regexp.Regexp{mapsHref, wazeHref} {
		for _, m := range pattern.FindAllStringSubmatch(html, -1) {
			u, err := url.Parse(htmlUnescapeAttr(m[1]))
			if err != nil {
				continue
			}
			q := u.Query()
			for _, param := range []string{"q", "daddr", "ll"} {
				if v := q.Get(param); v != "" {
					if addr, ok := consider(v); ok {
						return clampAddress(addr)
					}
				}
			}
		}
	}

	for _, m := range navAnchor.FindAllStringSubmatch(html, -1) {
		if addr, ok := consider(m[1]); ok {
			return clampAddress(addr)
		}
	}

	return clampAddress(fallback)
}

// htmlUnescapeAttr reverses the ampersand escaping commonly found inside
// href attributes so query parameters parse correctly.
func htmlUnescapeAttr(s string) string {
	return strings.ReplaceAll(s, "&amp;", "&")
}

func clampAddress(addr string) string {
	runes := []rune(addr)
	if len(runes) > 200 {
		return string(runes[:200])
	}
	return addr
}
