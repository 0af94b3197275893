// Package catalog is the registry of API documents, guides and instruction
// groups served by the site. A Catalog is immutable once built and safe for
// concurrent use.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/krateoplatformops/oasdocs/internal/tools/fingerprint"
	"github.com/krateoplatformops/oasdocs/internal/tools/markdown"
	"github.com/krateoplatformops/oasdocs/internal/tools/oas"
	"github.com/krateoplatformops/oasdocs/internal/tools/operations"
	"github.com/krateoplatformops/oasdocs/internal/tools/text"
	"github.com/krateoplatformops/provider-runtime/pkg/logging"
)

var (
	ErrEmptyKey     = errors.New("document key is empty")
	ErrDuplicateKey = errors.New("duplicate document key")
)

// DocumentInfo describes one API document.
type DocumentInfo struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Source      string `json:"source,omitempty"`
	Operations  int    `json:"operations"`
}

// Guide is a rendered hand-written page attached to a document.
type Guide struct {
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	HTML        string             `json:"html,omitempty"`
	Headings    []markdown.Heading `json:"headings,omitempty"`
}

// Instruction is one page of an instruction group. Content is trusted HTML.
type Instruction struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
}

// InstructionGroup is an ordered set of instructions for one product.
type InstructionGroup struct {
	Name         string        `json:"name"`
	Title        string        `json:"title"`
	SpecURL      string        `json:"specUrl,omitempty"`
	Instructions []Instruction `json:"instructions"`
}

// Entry is the input for one document of a Catalog. Title and Description
// override the document's own info when set.
type Entry struct {
	Key         string
	Document    oas.Document
	Title       string
	Description string
	Source      string
	Guides      []Guide
}

type document struct {
	info       DocumentInfo
	operations []operations.IndexedOperation
	guides     []Guide
}

// Catalog holds every indexed document, keyed by document key.
type Catalog struct {
	log       logging.Logger
	keys      []string
	documents map[string]*document
	groups    []InstructionGroup
	etag      string
}

// Option configures a Catalog.
type Option func(*Catalog)

func WithLogger(l logging.Logger) Option {
	return func(c *Catalog) {
		c.log = l
	}
}

// New indexes every entry once. Entries keep their order; keys must be
// unique and non-empty.
func New(entries []Entry, groups []InstructionGroup, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		log:       logging.NewNopLogger(),
		documents: make(map[string]*document, len(entries)),
	}
	c.groups = slices.Clone(groups)
	for i := range c.groups {
		c.groups[i].Instructions = slices.Clone(c.groups[i].Instructions)
	}
	for _, o := range opts {
		o(c)
	}

	for _, e := range entries {
		if e.Key == "" {
			return nil, ErrEmptyKey
		}
		if _, ok := c.documents[e.Key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, e.Key)
		}

		var info oas.Info
		if e.Document != nil {
			info = e.Document.GetInfo()
		}
		ops := operations.Index(e.Document)

		c.keys = append(c.keys, e.Key)
		c.documents[e.Key] = &document{
			info: DocumentInfo{
				Key:         e.Key,
				Title:       text.Coalesce(e.Title, info.Title, text.Title(e.Key)),
				Description: text.Coalesce(e.Description, info.Description),
				Version:     info.Version,
				Source:      e.Source,
				Operations:  len(ops),
			},
			operations: ops,
			guides:     e.Guides,
		}

		c.log.Debug("Indexed document", "document", e.Key, "operations", len(ops), "guides", len(e.Guides))
	}

	h := fingerprint.New()
	for _, k := range c.keys {
		d := c.documents[k]
		if err := h.Add(d.info, d.operations, d.guides); err != nil {
			return nil, fmt.Errorf("fingerprinting %s: %w", k, err)
		}
	}
	if err := h.Add(c.groups); err != nil {
		return nil, fmt.Errorf("fingerprinting instruction groups: %w", err)
	}
	c.etag = h.ETag()

	return c, nil
}

// Keys returns the document keys in catalog order.
func (c *Catalog) Keys() []string {
	return slices.Clone(c.keys)
}

// Documents returns the info of every document in catalog order.
func (c *Catalog) Documents() []DocumentInfo {
	out := make([]DocumentInfo, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.documents[k].info)
	}
	return out
}

// Document returns the info of the document with the given key.
func (c *Catalog) Document(key string) (DocumentInfo, bool) {
	d, ok := c.documents[key]
	if !ok {
		return DocumentInfo{}, false
	}
	return d.info, true
}

// ListOperations returns the indexed operations of a document sorted for
// display. An unknown key yields an empty slice.
func (c *Catalog) ListOperations(key string) []operations.IndexedOperation {
	d, ok := c.documents[key]
	if !ok {
		return []operations.IndexedOperation{}
	}
	return slices.Clone(d.operations)
}

// GetOperation looks an operation up by slug.
func (c *Catalog) GetOperation(key, slug string) (operations.IndexedOperation, bool) {
	d, ok := c.documents[key]
	if !ok {
		return operations.IndexedOperation{}, false
	}
	return operations.Find(d.operations, slug)
}

// Guides returns the guides of a document in configured order.
func (c *Catalog) Guides(key string) []Guide {
	d, ok := c.documents[key]
	if !ok {
		return []Guide{}
	}
	return slices.Clone(d.guides)
}

// Guide looks a guide up by slug.
func (c *Catalog) Guide(key, slug string) (Guide, bool) {
	for _, g := range c.Guides(key) {
		if g.Slug == slug {
			return g, true
		}
	}
	return Guide{}, false
}

// InstructionGroups returns a copy of every instruction group in
// configured order.
func (c *Catalog) InstructionGroups() []InstructionGroup {
	groups := slices.Clone(c.groups)
	for i := range groups {
		groups[i].Instructions = slices.Clone(groups[i].Instructions)
	}
	return groups
}

// ETag identifies the catalog content. It changes whenever any document,
// guide or instruction changes.
func (c *Catalog) ETag() string {
	return c.etag
}
