package oas

// Methods is the closed set of operation keys a path item may carry, in the
// order operations are enumerated.
var Methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// Info is a library-agnostic view of the document's info object.
type Info struct {
	Title       string
	Description string
	Version     string
}

// Document defines the contract for reading an OpenAPI description.
type Document interface {
	GetInfo() Info
	// GetPaths returns the path items in document key order.
	GetPaths() []PathItem
}

// PathItem defines the contract for a single API path.
type PathItem interface {
	GetPath() string
	GetSummary() string
	GetDescription() string
	// GetOperation returns the operation bound to the lower-case method, if any.
	GetOperation(method string) (Operation, bool)
}

// Operation defines the contract for a single API operation.
type Operation interface {
	GetOperationID() string
	GetSummary() string
	GetDescription() string
	GetTags() []string
}
