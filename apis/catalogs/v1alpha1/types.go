package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

const (
	Group       = "oasdocs.krateo.io"
	Version     = "v1alpha1"
	CatalogKind = "Catalog"
)

var (
	// GroupVersion is the API version every catalog file must declare.
	GroupVersion = schema.GroupVersion{Group: Group, Version: Version}

	CatalogGroupVersionKind = GroupVersion.WithKind(CatalogKind)
)

// GuideSpec describes a hand-written page attached to a document.
type GuideSpec struct {
	// Slug: the route segment of the guide, derived from the title when empty
	// +optional
	Slug string `json:"slug,omitempty"`
	// Title: the guide title
	// +required
	Title string `json:"title"`
	// Description: a one-line summary shown in navigation
	// +optional
	Description string `json:"description,omitempty"`
	// Markdown: inline guide body
	// +optional
	Markdown string `json:"markdown,omitempty"`
	// Source: location of a Markdown file holding the guide body, used when Markdown is empty
	// +optional
	Source string `json:"source,omitempty"`
}

// DocumentSpec binds a document key to an OpenAPI description.
type DocumentSpec struct {
	// Key: the route segment identifying the document
	// +required
	Key string `json:"key"`
	// Source: location of the OpenAPI description (file path, http(s) URL, or any go-getter address)
	// +required
	Source string `json:"source"`
	// Title: overrides the document's info.title
	// +optional
	Title string `json:"title,omitempty"`
	// Description: overrides the document's info.description
	// +optional
	Description string `json:"description,omitempty"`
	// Guides: ordered guides shown before the reference
	// +optional
	Guides []GuideSpec `json:"guides,omitempty"`
}

// InstructionSpec is a single page of an instruction group.
type InstructionSpec struct {
	// +required
	Slug string `json:"slug"`
	// +required
	Title string `json:"title"`
	// +optional
	Description string `json:"description,omitempty"`
	// Content: trusted HTML body
	// +optional
	Content string `json:"content,omitempty"`
}

// InstructionGroupSpec is an ordered set of instructions for one product.
type InstructionGroupSpec struct {
	// Name: the route segment of the group
	// +required
	Name string `json:"name"`
	// +optional
	Title string `json:"title,omitempty"`
	// SpecURL: link to the published API description of the product
	// +optional
	SpecURL string `json:"specUrl,omitempty"`
	// +optional
	Instructions []InstructionSpec `json:"instructions,omitempty"`
}

// CatalogSpec is the specification of a Catalog.
type CatalogSpec struct {
	// RoutePrefix: the URL prefix operation links are built under
	// +optional
	RoutePrefix string `json:"routePrefix,omitempty"`
	// +optional
	Documents []DocumentSpec `json:"documents,omitempty"`
	// +optional
	InstructionGroups []InstructionGroupSpec `json:"instructionGroups,omitempty"`
}

// Catalog lists every document and guide the site serves.
type Catalog struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec CatalogSpec `json:"spec"`
}
