package util

import (
	"math"
	"regexp"
	"strings"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]`)

// Slugify turns a title into its URL-safe base slug: lowercase,
// spaces to hyphens, everything outside [a-z0-9-] stripped.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	return slugInvalidChars.ReplaceAllString(slug, "")
}

const wordsPerMinute = 200

// ReadTime estimates reading time in minutes, never below one.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
