package text

import (
	"strings"

	"github.com/gobuffalo/flect"
)

// Title turns a key such as "petstore-duplicate" into "Petstore Duplicate".
func Title(key string) string {
	if strings.TrimSpace(key) == "" {
		return ""
	}
	return flect.Titleize(key)
}

// Slug turns a title such as "Getting Started" into "getting-started".
func Slug(title string) string {
	return flect.Dasherize(title)
}

// FirstLine returns the first line of s holding something other than
// whitespace, trimmed.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			return l
		}
	}
	return ""
}

// Coalesce returns the first non-empty value.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
