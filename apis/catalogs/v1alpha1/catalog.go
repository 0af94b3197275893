package v1alpha1

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/krateoplatformops/oasdocs/internal/tools/text"
	"sigs.k8s.io/yaml"
)

const DefaultRoutePrefix = "/apis"

// Load reads, defaults and validates the catalog file at path. Sources
// starting with "./" or "../" are resolved against the file's directory.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolving catalog directory: %w", err)
	}
	cat.ResolveSources(dir)

	return cat, nil
}

// Parse decodes YAML or JSON catalog content, applies defaults and validates it.
func Parse(data []byte) (*Catalog, error) {
	cat := &Catalog{}
	if err := yaml.UnmarshalStrict(data, cat); err != nil {
		return nil, err
	}

	cat.SetDefaults()
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// SetDefaults fills optional fields.
func (c *Catalog) SetDefaults() {
	if c.APIVersion == "" {
		c.APIVersion = GroupVersion.String()
	}
	if c.Kind == "" {
		c.Kind = CatalogKind
	}
	if c.Spec.RoutePrefix == "" {
		c.Spec.RoutePrefix = DefaultRoutePrefix
	}
	c.Spec.RoutePrefix = "/" + strings.Trim(c.Spec.RoutePrefix, "/")

	for i := range c.Spec.Documents {
		d := &c.Spec.Documents[i]
		for j := range d.Guides {
			g := &d.Guides[j]
			if g.Slug == "" {
				g.Slug = text.Slug(g.Title)
			}
		}
	}

	for i := range c.Spec.InstructionGroups {
		g := &c.Spec.InstructionGroups[i]
		if g.Title == "" {
			g.Title = text.Title(g.Name)
		}
	}
}

// Validate reports every problem found in the catalog at once.
func (c *Catalog) Validate() error {
	var errs []error

	if c.APIVersion != GroupVersion.String() {
		errs = append(errs, fmt.Errorf("unsupported apiVersion %q, want %q", c.APIVersion, GroupVersion.String()))
	}
	if c.Kind != CatalogKind {
		errs = append(errs, fmt.Errorf("unsupported kind %q, want %q", c.Kind, CatalogKind))
	}

	keys := map[string]bool{}
	for i, d := range c.Spec.Documents {
		switch {
		case d.Key == "":
			errs = append(errs, fmt.Errorf("documents[%d]: key is required", i))
		case strings.Contains(d.Key, "/"):
			errs = append(errs, fmt.Errorf("documents[%d]: key %q must not contain '/'", i, d.Key))
		case keys[d.Key]:
			errs = append(errs, fmt.Errorf("documents[%d]: duplicate key %q", i, d.Key))
		}
		keys[d.Key] = true

		if d.Source == "" {
			errs = append(errs, fmt.Errorf("documents[%d]: source is required", i))
		}

		guides := map[string]bool{}
		for j, g := range d.Guides {
			if g.Slug == "" {
				errs = append(errs, fmt.Errorf("documents[%d].guides[%d]: title or slug is required", i, j))
			} else if guides[g.Slug] {
				errs = append(errs, fmt.Errorf("documents[%d].guides[%d]: duplicate slug %q", i, j, g.Slug))
			}
			guides[g.Slug] = true
			if g.Markdown != "" && g.Source != "" {
				errs = append(errs, fmt.Errorf("documents[%d].guides[%d]: markdown and source are mutually exclusive", i, j))
			}
		}
	}

	groups := map[string]bool{}
	for i, g := range c.Spec.InstructionGroups {
		if g.Name == "" {
			errs = append(errs, fmt.Errorf("instructionGroups[%d]: name is required", i))
		} else if groups[g.Name] {
			errs = append(errs, fmt.Errorf("instructionGroups[%d]: duplicate name %q", i, g.Name))
		}
		groups[g.Name] = true

		slugs := map[string]bool{}
		for j, in := range g.Instructions {
			if in.Slug == "" {
				errs = append(errs, fmt.Errorf("instructionGroups[%d].instructions[%d]: slug is required", i, j))
			} else if slugs[in.Slug] {
				errs = append(errs, fmt.Errorf("instructionGroups[%d].instructions[%d]: duplicate slug %q", i, j, in.Slug))
			}
			slugs[in.Slug] = true
		}
	}

	return errors.Join(errs...)
}

// ResolveSources rewrites "./" and "../" sources relative to dir.
func (c *Catalog) ResolveSources(dir string) {
	for i := range c.Spec.Documents {
		d := &c.Spec.Documents[i]
		d.Source = resolve(dir, d.Source)
		for j := range d.Guides {
			d.Guides[j].Source = resolve(dir, d.Guides[j].Source)
		}
	}
}

func resolve(dir, src string) string {
	if strings.HasPrefix(src, "./") || strings.HasPrefix(src, "../") {
		return filepath.Join(dir, src)
	}
	return src
}
