package oas

import (
	"bytes"
	"errors"

	"github.com/pb33f/libopenapi"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

// --- Parser Implementation ---

// Parse takes raw OpenAPI content (JSON or YAML) and returns a document that
// conforms to the Document interface. It handles parsing, building, and
// resolving the model.
func Parse(content []byte) (Document, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ParserError{
			Code:    CodeEmptyDocument,
			Message: "no content to parse",
		}
	}

	d, err := libopenapi.NewDocument(content)
	if err != nil {
		return nil, ParserError{
			Code:    CodeDocumentCreationError,
			Message: "failed to create new libopenapi document",
			Err:     err,
		}
	}

	doc, modelErrors := d.BuildV3Model()
	if len(modelErrors) > 0 {
		return nil, ParserError{
			Code:    CodeModelBuildError,
			Message: "failed to build V3 model",
			Err:     errors.Join(modelErrors...),
		}
	}
	if doc == nil {
		return nil, ParserError{
			Code:    CodeModelBuildError,
			Message: "resulting document was nil after building model",
		}
	}

	// Resolve model references
	resolvingErrors := doc.Index.GetResolver().Resolve()
	if len(resolvingErrors) > 0 {
		var errs []error
		for i := range resolvingErrors {
			errs = append(errs, resolvingErrors[i].ErrorRef)
		}
		return nil, ParserError{
			Code:    CodeModelResolutionError,
			Message: "failed to resolve model references",
			Err:     errors.Join(errs...),
		}
	}

	return NewLibOASDocumentAdapter(doc), nil
}

// --- Adapter Implementation ---

type libOASDocumentAdapter struct {
	doc *libopenapi.DocumentModel[v3.Document]
}

// NewLibOASDocumentAdapter implements the Document interface for the
// libopenapi DocumentModel.
func NewLibOASDocumentAdapter(doc *libopenapi.DocumentModel[v3.Document]) Document {
	return &libOASDocumentAdapter{doc: doc}
}

func (a *libOASDocumentAdapter) GetInfo() Info {
	if a.doc == nil || a.doc.Model.Info == nil {
		return Info{}
	}
	info := a.doc.Model.Info
	return Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func (a *libOASDocumentAdapter) GetPaths() []PathItem {
	if a.doc == nil || a.doc.Model.Paths == nil || a.doc.Model.Paths.PathItems == nil {
		return nil
	}
	var items []PathItem
	for pair := a.doc.Model.Paths.PathItems.First(); pair != nil; pair = pair.Next() {
		if pair.Value() == nil {
			continue
		}
		items = append(items, &libOASPathItemAdapter{path: pair.Key(), item: pair.Value()})
	}
	return items
}

type libOASPathItemAdapter struct {
	path string
	item *v3.PathItem
}

func (a *libOASPathItemAdapter) GetPath() string        { return a.path }
func (a *libOASPathItemAdapter) GetSummary() string     { return a.item.Summary }
func (a *libOASPathItemAdapter) GetDescription() string { return a.item.Description }

func (a *libOASPathItemAdapter) GetOperation(method string) (Operation, bool) {
	ops := a.item.GetOperations()
	if ops == nil {
		return nil, false
	}
	op := ops.Value(method)
	if op == nil {
		return nil, false
	}
	return &libOASOperationAdapter{op: op}, true
}

type libOASOperationAdapter struct {
	op *v3.Operation
}

func (a *libOASOperationAdapter) GetOperationID() string { return a.op.OperationId }
func (a *libOASOperationAdapter) GetSummary() string     { return a.op.Summary }
func (a *libOASOperationAdapter) GetDescription() string { return a.op.Description }
func (a *libOASOperationAdapter) GetTags() []string      { return a.op.Tags }
