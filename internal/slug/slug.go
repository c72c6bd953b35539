// ABOUTME: Derives post slugs from YYYY-MM-DD-title.md filenames.
// ABOUTME: Falls back to the whole stem when the date prefix is missing.
package slug

import (
	"strings"

	goslug "github.com/goliatone/go-slug"
)

// FromFilename strips the .md suffix and the three leading date parts.
// Filenames with fewer than three hyphens keep their full stem.
func FromFilename(name string) string {
	stem := strings.TrimSuffix(name, ".md")
	parts := strings.SplitN(stem, "-", 4)
	if len(parts) == 4 {
		return parts[3]
	}
	return stem
}

// IsURLSafe reports whether s is a normalized URL slug.
func IsURLSafe(s string) bool {
	return goslug.IsValid(s)
}
