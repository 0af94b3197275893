// Package operations indexes the operations of an OpenAPI document into
// routable records with stable, document-unique slugs.
package operations

import (
	"sort"
	"strings"

	"github.com/krateoplatformops/oasdocs/internal/tools/oas"
	"github.com/krateoplatformops/oasdocs/internal/tools/slug"
	"github.com/krateoplatformops/oasdocs/internal/tools/text"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// IndexedOperation is one (path, method) pair of a document.
type IndexedOperation struct {
	Slug        string   `json:"slug"`
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	OperationID string   `json:"operationId,omitempty"`
}

// DisplayName is the label used for sorting and navigation:
// the summary, else the operation id, else "METHOD /path".
func (o IndexedOperation) DisplayName() string {
	if o.Summary != "" {
		return o.Summary
	}
	if o.OperationID != "" {
		return o.OperationID
	}
	return strings.ToUpper(o.Method) + " " + o.Path
}

// Index walks doc in path order and, for each path, in oas.Methods order,
// assigning every operation a unique slug. The result is sorted by
// DisplayName. A nil document yields an empty result.
func Index(doc oas.Document) []IndexedOperation {
	if doc == nil {
		return []IndexedOperation{}
	}

	ops := []IndexedOperation{}
	slugs := slug.NewRegistry()

	for _, item := range doc.GetPaths() {
		if item == nil {
			continue
		}
		for _, method := range oas.Methods {
			op, ok := item.GetOperation(method)
			if !ok || op == nil {
				continue
			}

			path := item.GetPath()
			ops = append(ops, IndexedOperation{
				Slug:        slugs.Claim(BaseSlug(op.GetOperationID(), method, path)),
				Method:      method,
				Path:        path,
				Summary:     text.Coalesce(op.GetSummary(), item.GetSummary()),
				Description: text.Coalesce(op.GetDescription(), item.GetDescription()),
				Tags:        op.GetTags(),
				OperationID: op.GetOperationID(),
			})
		}
	}

	Sort(ops)

	return ops
}

// BaseSlug is the slug candidate before collision numbering: the case
// preserving sanitized operation id, or the lower-cased "method-path".
func BaseSlug(operationID, method, path string) string {
	if operationID != "" {
		if s := slug.Sanitize(operationID, true); s != "" {
			return s
		}
	}
	return slug.Sanitize(method+"-"+path, false)
}

// Sort orders ops in place by DisplayName using root locale collation.
// Equal names keep their relative order.
func Sort(ops []IndexedOperation) {
	// A Collator keeps internal buffers and must not be shared.
	c := collate.New(language.Und)
	sort.SliceStable(ops, func(i, j int) bool {
		return c.CompareString(ops[i].DisplayName(), ops[j].DisplayName()) < 0
	})
}

// Find returns the operation whose slug equals s.
func Find(ops []IndexedOperation, s string) (IndexedOperation, bool) {
	for _, op := range ops {
		if op.Slug == s {
			return op, true
		}
	}
	return IndexedOperation{}, false
}
