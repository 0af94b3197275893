// Package nav builds the navigation data a rendering layer needs: sidebar
// entries, links and page metadata. It never renders markup itself.
package nav

import (
	"net/url"
	"strings"

	"github.com/krateoplatformops/oasdocs/internal/catalog"
	"github.com/krateoplatformops/oasdocs/internal/tools/operations"
	"github.com/krateoplatformops/oasdocs/internal/tools/text"
)

// Entry is one sidebar link to an operation.
type Entry struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Method string `json:"method"`
	Tone   Tone   `json:"tone"`
	Path   string `json:"path"`
	Href   string `json:"href"`
	Active bool   `json:"active,omitempty"`
}

// Link is a titled href used for guides and instructions.
type Link struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Href        string `json:"href"`
	Active      bool   `json:"active,omitempty"`
}

// Metadata is the head information of a page.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Builder creates links below a route prefix such as "/apis".
type Builder struct {
	prefix string
}

func NewBuilder(prefix string) Builder {
	p := strings.Trim(prefix, "/")
	if p != "" {
		p = "/" + p
	}
	return Builder{prefix: p}
}

// Prefix returns the normalized route prefix, "" for the root.
func (b Builder) Prefix() string {
	return b.prefix
}

// Href joins the escaped segments below the prefix.
func (b Builder) Href(segments ...string) string {
	var sb strings.Builder
	sb.WriteString(b.prefix)
	for _, s := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(s))
	}
	if sb.Len() == 0 {
		return "/"
	}
	return sb.String()
}

// DocumentHref links a document landing page.
func (b Builder) DocumentHref(key string) string {
	return b.Href(key)
}

// OperationHref links an operation: {prefix}/{documentKey}/{slug}.
func (b Builder) OperationHref(key, slug string) string {
	return b.Href(key, slug)
}

// GuideHref links a guide: {prefix}/{documentKey}/guides/{slug}.
func (b Builder) GuideHref(key, slug string) string {
	return b.Href(key, "guides", slug)
}

// InstructionHref links an instruction: {prefix}/instructions/{group}/{slug}.
func (b Builder) InstructionHref(group, slug string) string {
	return b.Href("instructions", group, slug)
}

// Sidebar lists ops in their given order, flagging the one whose slug
// equals active.
func (b Builder) Sidebar(key string, ops []operations.IndexedOperation, active string) []Entry {
	entries := make([]Entry, 0, len(ops))
	for _, op := range ops {
		entries = append(entries, Entry{
			Slug:   op.Slug,
			Title:  op.DisplayName(),
			Method: strings.ToUpper(op.Method),
			Tone:   MethodTone(op.Method),
			Path:   op.Path,
			Href:   b.OperationHref(key, op.Slug),
			Active: op.Slug == active,
		})
	}
	return entries
}

// GuideLinks lists the guides of a document.
func (b Builder) GuideLinks(key string, guides []catalog.Guide, active string) []Link {
	links := make([]Link, 0, len(guides))
	for _, g := range guides {
		links = append(links, Link{
			Title:       g.Title,
			Description: g.Description,
			Href:        b.GuideHref(key, g.Slug),
			Active:      g.Slug == active,
		})
	}
	return links
}

// GroupLinks links every instruction group to its first instruction, or to
// the bare group when it has none.
func (b Builder) GroupLinks(groups []catalog.InstructionGroup, active string) []Link {
	links := make([]Link, 0, len(groups))
	for _, g := range groups {
		href := b.Href("instructions", g.Name)
		if len(g.Instructions) > 0 {
			href = b.InstructionHref(g.Name, g.Instructions[0].Slug)
		}
		links = append(links, Link{
			Title:  g.Title,
			Href:   href,
			Active: g.Name == active,
		})
	}
	return links
}

// InstructionLinks lists the instructions of one group.
func (b Builder) InstructionLinks(g catalog.InstructionGroup, active string) []Link {
	links := make([]Link, 0, len(g.Instructions))
	for _, in := range g.Instructions {
		links = append(links, Link{
			Title:       in.Title,
			Description: in.Description,
			Href:        b.InstructionHref(g.Name, in.Slug),
			Active:      in.Slug == active,
		})
	}
	return links
}

// DocumentMetadata is the head of a document landing page.
func DocumentMetadata(info catalog.DocumentInfo) Metadata {
	return Metadata{
		Title:       info.Title,
		Description: text.FirstLine(info.Description),
	}
}

// OperationMetadata is the head of an operation page: the operation's
// display name followed by the document title, and the operation
// description or else the first line of the document description.
func OperationMetadata(op operations.IndexedOperation, info catalog.DocumentInfo) Metadata {
	return Metadata{
		Title:       op.DisplayName() + " – " + text.Coalesce(info.Title, info.Key),
		Description: text.Coalesce(op.Description, text.FirstLine(info.Description)),
	}
}

// InstructionMetadata is the head of an instruction page.
func InstructionMetadata(res catalog.Resolution) Metadata {
	if !res.Found() {
		return Metadata{Title: "API Instructions"}
	}
	return Metadata{
		Title:       res.ActiveInstruction.Title + " – " + res.ActiveGroup.Title,
		Description: res.ActiveInstruction.Description,
	}
}
