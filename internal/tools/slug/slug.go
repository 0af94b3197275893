// Package slug turns free-form identifiers into URL-safe route segments.
package slug

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder stands in for a base slug that sanitized to nothing.
const Placeholder = "operation"

var (
	bracketsRE   = regexp.MustCompile(`[{}\[\]]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
	disallowedRE = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	dashesRE     = regexp.MustCompile(`-{2,}`)
)

// Sanitize reduces value to the characters [A-Za-z0-9_-], using single
// dashes as separators. Case is kept only when preserveCase is set.
func Sanitize(value string, preserveCase bool) string {
	s := strings.TrimSpace(value)
	s = bracketsRE.ReplaceAllString(s, "")
	s = whitespaceRE.ReplaceAllString(s, "-")
	s = disallowedRE.ReplaceAllString(s, "-")
	s = dashesRE.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if preserveCase {
		return s
	}
	return strings.ToLower(s)
}

// Registry hands out unique slugs for a single indexing pass.
// The zero value is not usable, use NewRegistry.
type Registry struct {
	counts map[string]int
	taken  map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		counts: make(map[string]int),
		taken:  make(map[string]struct{}),
	}
}

// Claim returns base the first time it is seen and base-N (N starting at 2)
// on every following claim of the same base. A numbered candidate that was
// already handed out keeps counting up.
func (r *Registry) Claim(base string) string {
	if base == "" {
		base = Placeholder
	}

	n := r.counts[base] + 1
	candidate := numbered(base, n)
	for r.isTaken(candidate) {
		n++
		candidate = numbered(base, n)
	}
	r.counts[base] = n
	r.taken[candidate] = struct{}{}

	return candidate
}

func (r *Registry) isTaken(s string) bool {
	_, ok := r.taken[s]
	return ok
}

func numbered(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
