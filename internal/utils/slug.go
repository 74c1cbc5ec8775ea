package utils

import (
	"strings"

	"github.com/gosimple/slug"
)

// Slugify turns a human-readable name into a lowercase, hyphen-delimited,
// ASCII-only identifier. The result is empty when name has no letters or digits.
func Slugify(name string) string {
	// gosimple/slug keeps underscores; treat them as separators like any other punctuation
	return slug.MakeLang(strings.ReplaceAll(name, "_", " "), "en")
}
