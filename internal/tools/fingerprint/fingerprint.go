// Package fingerprint derives stable content hashes used as HTTP entity tags.
package fingerprint

import (
	"encoding/json"
	"fmt"
	"hash"
	"hash/fnv"
	"strings"
)

// Hash is cumulative: every Add feeds the running FNV-64 sum, so the result
// depends on both the values and the order they were added in.
type Hash struct {
	h hash.Hash64
}

func New() *Hash {
	return &Hash{h: fnv.New64a()}
}

// Add feeds the JSON encoding of each value into the hash.
func (h *Hash) Add(values ...any) error {
	for _, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if _, err := h.h.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Sum returns the hex encoded digest.
func (h *Hash) Sum() string {
	return fmt.Sprintf("%016x", h.h.Sum64())
}

// ETag returns the digest as a strong entity tag.
func (h *Hash) ETag() string {
	return `"` + h.Sum() + `"`
}

// Matches reports whether an If-None-Match header value names etag.
// Weak validators compare equal to their strong form.
func Matches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" || etag == "" {
		return false
	}
	if strings.TrimSpace(ifNoneMatch) == "*" {
		return true
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == want {
			return true
		}
	}
	return false
}
