package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pageforge/pageforge"
)

// Ensure ProductExtractor implements pageforge.ProductExtractor at compile time.
var _ pageforge.ProductExtractor = (*ProductExtractor)(nil)

// ProductExtractor recovers products from legacy HTML in two passes:
// product-card containers first, then a direct scan of text nodes with a
// forward price window. A product is only accepted when a name and an
// in-range price are found together.
type ProductExtractor struct {
	config Config
}

// NewProductExtractor creates a new ProductExtractor.
func NewProductExtractor(config Config) *ProductExtractor {
	return &ProductExtractor{config: config}
}

// Boilerplate headings that must never become product names. The page's own
// <title> and <h1> text are appended at extraction time.
var excludeHeadings = []string{
	"נגישות",
	"אודות",
	"צור קשר",
	"דף הבית",
	"עלינו",
	"תקנון",
	"מדיניות",
	"פרטיות",
	"תנאים",
	"שירות",
	"משלוחים",
	"החזרות",
	"איך להזמין",
	"גלרי",
	"המוצרים",
	"תיאור",
	"המיוחדים",
	"הכל על",
	"כל הזכויות",
	"זכויות יוצרים",
	"ברוכים הבאים",
	"לקוחות",
	"שאלות",
	"תשובות",
	"מוצרים שלנו",
	"המוצרים שלנו",
	"תפריט",
	"כותרת",
	"כותרת ראשית",
}

// Price, currency and contact words that disqualify a name outright.
var excludeNameWords = []string{
	"₪",
	"שקל",
	"ש\"ח",
	"מחיר",
	"מחירים",
	"מחירון",
	"טלפון",
	"מייל",
	"אימייל",
	"כתובת",
	"עיר",
	"ישראל",
	"טוהר",
	"יופי",
	"איכות",
	"השראה",
	"חלום",
	"אמת",
	"נשמה",
}

var (
	pageTitleTag = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	pageH1Tag    = regexp.MustCompile(`(?i)<h1[^>]*>([^<]{3,80})</h1>`)

	// Pass 2 scans heading, paragraph, span, strong and bold text nodes.
	textNode = regexp.MustCompile(`(?i)<(?:h[23456]|p|span|strong|b)[^>]*>([^<]{3,80})</[^>]+>`)

	shekelPrice  = regexp.MustCompile(`₪\s*(\d+(?:[,\s]\d+)*(?:\.\d+)?)`)
	trailingOnes = regexp.MustCompile(`(\d+(?:[,\s]\d+)*(?:\.\d+)?)\s*(?:₪|שקל|ש"ח)`)
	anyDigit     = regexp.MustCompile(`\d`)
	tagStripper  = regexp.MustCompile(`<[^>]*>`)
)

// priceLookahead is the forward window, in bytes, searched for a currency
// token after a candidate name in the direct-scan pass.
const priceLookahead = 500

// ExtractProducts runs the legacy heuristic extraction over raw HTML.
// Results are deduplicated by (name, price); prices outside the configured
// bounds are silently dropped.
func (e *ProductExtractor) ExtractProducts(html string) []pageforge.Product {
	exclusions := e.exclusions(html)

	var products []pageforge.Product
	seen := make(map[string]bool)

	add := func(name string, price float64) {
		key := name + "\x00" + strconv.FormatFloat(price, 'f', -1, 64)
		if seen[key] {
			return
		}
		seen[key] = true
		products = append(products, pageforge.Product{Name: name, Price: price, Enabled: true, Order: len(products)})
	}

	// Pass 1: product-card containers.
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		doc.Find("div.product-card, [class*='product-card']").Each(func(_ int, sel *goquery.Selection) {
			name := cardName(sel)
			if name == "" || excluded(name, exclusions) {
				return
			}
			if n := len([]rune(name)); n <= 2 || n > 100 {
				return
			}
			cardHTML, err := sel.Html()
			if err != nil {
				return
			}
			price, ok := findPrice(cardHTML)
			if !ok || price < e.config.minPrice() || price > e.config.maxPrice() {
				return
			}
			add(name, price)
		})
	}

	// Pass 2: direct scan of text nodes with a forward price window.
	for _, loc := range textNode.FindAllStringSubmatchIndex(html, -1) {
		text := strings.TrimSpace(tagStripper.ReplaceAllString(html[loc[2]:loc[3]], ""))
		if text == "" || excluded(text, exclusions) {
			continue
		}
		n := len([]rune(text))
		if n <= 2 || n > 80 {
			continue
		}
		// Short fragments without a digit are navigation noise.
		if n <= 8 && !anyDigit.MatchString(text) {
			continue
		}

		end := loc[0] + priceLookahead
		if end > len(html) {
			end = len(html)
		}
		price, ok := findPrice(html[loc[0]:end])
		if !ok || price < e.config.minPrice() || price > e.config.maxPrice() {
			continue
		}
		add(text, price)
	}

	return products
}

// exclusions builds the per-document exclusion list: static boilerplate
// plus the page's own title and top heading.
func (e *ProductExtractor) exclusions(html string) []string {
	out := excludeHeadings
	if m := pageTitleTag.FindStringSubmatch(html); m != nil {
		if t := strings.TrimSpace(m[1]); t != "" {
			out = append(out[:len(out):len(out)], t)
		}
	}
	if m := pageH1Tag.FindStringSubmatch(html); m != nil {
		if t := strings.TrimSpace(m[1]); t != "" {
			out = append(out[:len(out):len(out)], t)
		}
	}
	return out
}

func excluded(name string, exclusions []string) bool {
	for _, ex := range exclusions {
		if strings.Contains(name, ex) {
			return true
		}
	}
	for _, ex := range excludeNameWords {
		if strings.Contains(name, ex) {
			return true
		}
	}
	return false
}

func cardName(sel *goquery.Selection) string {
	heading := sel.Find("h3, h4").First()
	if heading.Length() == 0 {
		heading = sel.Find("[class*='product-name']").First()
	}
	return strings.TrimSpace(heading.Text())
}

// findPrice locates the first currency token in the snippet and parses its
// amount. Unparseable amounts are treated as absent, not as zero-priced
// products.
func findPrice(snippet string) (float64, bool) {
	m := shekelPrice.FindStringSubmatch(snippet)
	if m == nil {
		m = trailingOnes.FindStringSubmatch(snippet)
	}
	if m == nil {
		return 0, false
	}
	raw := strings.NewReplacer(",", "", " ", "").Replace(m[1])
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// ExtractStructuredProducts is the trusting extraction mode, exposed as a
// method so callers holding the extractor can discover it.
func (e *ProductExtractor) ExtractStructuredProducts(html string) []pageforge.Product {
	return ExtractStructuredProducts(html)
}

// Structured-mode price patterns also accept dollar amounts and labeled
// prices, since semantic markup is trusted further than legacy scans.
var structuredPrices = []*regexp.Regexp{
	shekelPrice,
	trailingOnes,
	regexp.MustCompile(`\$\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*\$`),
	regexp.MustCompile(`(?i)מחיר[:\s]+(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)price[:\s]+(\d+(?:,\d{3})*(?:\.\d{2})?)`),
}

// ExtractStructuredProducts extracts products from HTML that already
// carries semantic product markup. Any item with both a name and a price is
// accepted; there is no price bound in this mode.
func ExtractStructuredProducts(html string) []pageforge.Product {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var products []pageforge.Product
	doc.Find("[class*='product'], [data-product]").Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find("h1, h2, h3, h4, h5, h6, [class*='name'], [class*='title']").First().Text())
		if name == "" {
			return
		}

		itemHTML, err := sel.Html()
		if err != nil {
			return
		}
		var price float64
		for _, pattern := range structuredPrices {
			if m := pattern.FindStringSubmatch(itemHTML); m != nil {
				raw := strings.ReplaceAll(m[1], ",", "")
				if p, err := strconv.ParseFloat(raw, 64); err == nil {
					price = p
				}
				break
			}
		}
		if price == 0 {
			return
		}

		product := pageforge.Product{
			Name:        name,
			Price:       price,
			Image:       sel.Find("img").First().AttrOr("src", ""),
			Description: strings.TrimSpace(sel.Find("p, [class*='description']").First().Text()),
			Enabled:     true,
			Order:       len(products),
		}
		if desc := []rune(product.Description); len(desc) > 200 {
			product.Description = string(desc[:200])
		}
		products = append(products, product)
	})

	return products
}
