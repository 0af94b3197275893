// Package markdown renders guide bodies to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Heading is one entry of a rendered page's table of contents.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Page is a rendered Markdown document.
type Page struct {
	HTML     string    `json:"html"`
	Headings []Heading `json:"headings,omitempty"`
}

// Renderer converts Markdown to HTML. Guides are trusted content, so raw
// HTML blocks are passed through.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render parses source once and returns both the HTML and the headings
// found in it, in document order.
func (r *Renderer) Render(source []byte) (Page, error) {
	doc := r.md.Parser().Parse(text.NewReader(source))

	var headings []Heading
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		var id string
		if v, ok := h.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		headings = append(headings, Heading{
			Level: h.Level,
			ID:    id,
			Title: string(h.Text(source)),
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return Page{}, fmt.Errorf("walking markdown: %w", err)
	}

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return Page{}, fmt.Errorf("rendering markdown: %w", err)
	}

	return Page{HTML: buf.String(), Headings: headings}, nil
}
