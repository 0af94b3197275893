package nav

import "github.com/krateoplatformops/oasdocs/internal/catalog"

// Routes lists every page href the catalog can serve, in catalog order:
// per document its landing page, guides and operations, then every
// instruction.
func (b Builder) Routes(c *catalog.Catalog) []string {
	var routes []string
	for _, key := range c.Keys() {
		routes = append(routes, b.DocumentHref(key))
		for _, g := range c.Guides(key) {
			routes = append(routes, b.GuideHref(key, g.Slug))
		}
		for _, op := range c.ListOperations(key) {
			routes = append(routes, b.OperationHref(key, op.Slug))
		}
	}
	for _, g := range c.InstructionGroups() {
		for _, in := range g.Instructions {
			routes = append(routes, b.InstructionHref(g.Name, in.Slug))
		}
	}
	return routes
}
