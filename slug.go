package pageforge

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	hebrewRunes  = regexp.MustCompile(`[\x{0590}-\x{05FF}]`)
	nonSlugRunes = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateSlug derives a URL slug from a page title and owner id. Hebrew
// titles slug to "page" since the path must stay ASCII; a timestamp suffix
// keeps slugs unique across repeated titles.
func GenerateSlug(title, ownerID string) string {
	clean := strings.ToLower(strings.TrimSpace(title))
	clean = hebrewRunes.ReplaceAllString(clean, "")
	clean = nonSlugRunes.ReplaceAllString(clean, "-")
	clean = strings.Trim(clean, "-")
	if len(clean) > 50 {
		clean = clean[:50]
	}
	if clean == "" {
		clean = "page"
	}

	prefix := ownerID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	if prefix == "" {
		return fmt.Sprintf("%s-%d", clean, time.Now().UnixMilli())
	}

	return fmt.Sprintf("%s-%s-%d", prefix, clean, time.Now().UnixMilli())
}
