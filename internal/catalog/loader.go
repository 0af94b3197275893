package catalog

import (
	"context"
	"fmt"

	catalogsv1alpha1 "github.com/krateoplatformops/oasdocs/apis/catalogs/v1alpha1"
	"github.com/krateoplatformops/oasdocs/internal/tools/markdown"
	"github.com/krateoplatformops/oasdocs/internal/tools/oas"
	"github.com/krateoplatformops/provider-runtime/pkg/logging"
	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves the raw bytes found at a source address.
type Fetcher interface {
	Fetch(ctx context.Context, src string) ([]byte, error)
}

// Loader builds a Catalog from its declarative configuration.
type Loader struct {
	fetcher     Fetcher
	renderer    *markdown.Renderer
	log         logging.Logger
	concurrency int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

func WithLoaderLogger(l logging.Logger) LoaderOption {
	return func(ld *Loader) {
		ld.log = l
	}
}

// WithConcurrency bounds how many sources are downloaded at once.
func WithConcurrency(n int) LoaderOption {
	return func(ld *Loader) {
		if n > 0 {
			ld.concurrency = n
		}
	}
}

func NewLoader(f Fetcher, opts ...LoaderOption) *Loader {
	ld := &Loader{
		fetcher:     f,
		renderer:    markdown.NewRenderer(),
		log:         logging.NewNopLogger(),
		concurrency: 4,
	}
	for _, o := range opts {
		o(ld)
	}
	return ld
}

// Load downloads and parses every document and guide of cat, then indexes
// them. Any failing source aborts the load.
func (ld *Loader) Load(ctx context.Context, cat *catalogsv1alpha1.Catalog) (*Catalog, error) {
	docs := cat.Spec.Documents
	entries := make([]Entry, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ld.concurrency)

	for i := range docs {
		i := i
		g.Go(func() error {
			e, err := ld.loadDocument(gctx, docs[i])
			if err != nil {
				return fmt.Errorf("document %q: %w", docs[i].Key, err)
			}
			entries[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	groups := make([]InstructionGroup, 0, len(cat.Spec.InstructionGroups))
	for _, gs := range cat.Spec.InstructionGroups {
		group := InstructionGroup{
			Name:         gs.Name,
			Title:        gs.Title,
			SpecURL:      gs.SpecURL,
			Instructions: make([]Instruction, 0, len(gs.Instructions)),
		}
		for _, in := range gs.Instructions {
			group.Instructions = append(group.Instructions, Instruction{
				Slug:        in.Slug,
				Title:       in.Title,
				Description: in.Description,
				Content:     in.Content,
			})
		}
		groups = append(groups, group)
	}

	c, err := New(entries, groups, WithLogger(ld.log))
	if err != nil {
		return nil, err
	}

	ld.log.Info("Catalog loaded", "documents", len(entries), "instructionGroups", len(groups), "etag", c.ETag())
	return c, nil
}

func (ld *Loader) loadDocument(ctx context.Context, spec catalogsv1alpha1.DocumentSpec) (Entry, error) {
	log := ld.log.WithValues("document", spec.Key, "source", spec.Source)

	content, err := ld.fetcher.Fetch(ctx, spec.Source)
	if err != nil {
		return Entry{}, err
	}
	log.Debug("Fetched document", "bytes", len(content))

	doc, err := oas.Parse(content)
	if err != nil {
		return Entry{}, err
	}

	guides := make([]Guide, 0, len(spec.Guides))
	for _, gs := range spec.Guides {
		body := []byte(gs.Markdown)
		if gs.Source != "" {
			body, err = ld.fetcher.Fetch(ctx, gs.Source)
			if err != nil {
				return Entry{}, fmt.Errorf("guide %q: %w", gs.Slug, err)
			}
		}

		page, err := ld.renderer.Render(body)
		if err != nil {
			return Entry{}, fmt.Errorf("guide %q: %w", gs.Slug, err)
		}

		guides = append(guides, Guide{
			Slug:        gs.Slug,
			Title:       gs.Title,
			Description: gs.Description,
			HTML:        page.HTML,
			Headings:    page.Headings,
		})
	}

	return Entry{
		Key:         spec.Key,
		Document:    doc,
		Title:       spec.Title,
		Description: spec.Description,
		Source:      spec.Source,
		Guides:      guides,
	}, nil
}
