package operations

import "github.com/krateoplatformops/oasdocs/internal/tools/oas"

// --- Mock Implementations ---

type mockOperation struct {
	ID          string
	Summary     string
	Description string
	Tags        []string
}

func (m *mockOperation) GetOperationID() string { return m.ID }
func (m *mockOperation) GetSummary() string     { return m.Summary }
func (m *mockOperation) GetDescription() string { return m.Description }
func (m *mockOperation) GetTags() []string      { return m.Tags }

type mockPathItem struct {
	Path        string
	Summary     string
	Description string
	Ops         map[string]*mockOperation
}

func (m *mockPathItem) GetPath() string        { return m.Path }
func (m *mockPathItem) GetSummary() string     { return m.Summary }
func (m *mockPathItem) GetDescription() string { return m.Description }

func (m *mockPathItem) GetOperation(method string) (oas.Operation, bool) {
	op, ok := m.Ops[method]
	if !ok {
		return nil, false
	}
	return op, true
}

type mockDocument struct {
	Paths []*mockPathItem
}

func (m *mockDocument) GetInfo() oas.Info { return oas.Info{} }

func (m *mockDocument) GetPaths() []oas.PathItem {
	items := make([]oas.PathItem, 0, len(m.Paths))
	for _, p := range m.Paths {
		items = append(items, p)
	}
	return items
}
