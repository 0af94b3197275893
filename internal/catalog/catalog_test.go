package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/krateoplatformops/oasdocs/internal/tools/oas"
	"github.com/krateoplatformops/oasdocs/internal/tools/operations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, name string) oas.Document {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	doc, err := oas.Parse(content)
	require.NoError(t, err)
	return doc
}

func slugs(ops []operations.IndexedOperation) []string {
	out := []string{}
	for _, op := range ops {
		out = append(out, op.Slug)
	}
	return out
}

func newPetstoreCatalog(t *testing.T) *Catalog {
	t.Helper()
	doc := parseFixture(t, "petstore.yaml")
	c, err := New([]Entry{
		{Key: "petstore", Document: doc, Source: "petstore.yaml", Guides: []Guide{
			{Slug: "overview", Title: "Overview"},
			{Slug: "authentication", Title: "Authentication"},
		}},
		{Key: "petstore-duplicate", Document: doc},
		{Key: "empty"},
	}, []InstructionGroup{
		{Name: "open-banking", Title: "Open Banking", Instructions: []Instruction{
			{Slug: "get-started", Title: "Get started"},
			{Slug: "get-authenticated", Title: "Authentication"},
		}},
		{Name: "banking-society", Title: "Banking Society", Instructions: []Instruction{
			{Slug: "get-started", Title: "Get started"},
		}},
	})
	require.NoError(t, err)
	return c
}

func TestCatalog_Operations(t *testing.T) {
	c := newPetstoreCatalog(t)

	t.Run("list is sorted and slugs are unique", func(t *testing.T) {
		ops := c.ListOperations("petstore")
		assert.Equal(t, []string{
			"addPet",
			"delete-pet-petid",
			"getPetById",
			"getInventory",
			"getInventory-2",
			"updatePet",
		}, slugs(ops))
	})

	t.Run("list is deterministic", func(t *testing.T) {
		assert.Equal(t, c.ListOperations("petstore"), c.ListOperations("petstore"))
		assert.Equal(t, slugs(c.ListOperations("petstore")), slugs(c.ListOperations("petstore-duplicate")))
	})

	t.Run("callers cannot mutate the index", func(t *testing.T) {
		ops := c.ListOperations("petstore")
		ops[0].Slug = "changed"
		assert.Equal(t, "addPet", c.ListOperations("petstore")[0].Slug)
	})

	t.Run("unknown document", func(t *testing.T) {
		ops := c.ListOperations("nope")
		assert.NotNil(t, ops)
		assert.Empty(t, ops)

		_, ok := c.GetOperation("nope", "addPet")
		assert.False(t, ok)
	})

	t.Run("document without description", func(t *testing.T) {
		assert.Empty(t, c.ListOperations("empty"))
	})

	t.Run("get by slug", func(t *testing.T) {
		op, ok := c.GetOperation("petstore", "getInventory-2")
		require.True(t, ok)
		assert.Equal(t, "post", op.Method)
		assert.Equal(t, "/store/order", op.Path)

		op, ok = c.GetOperation("petstore", "getPetById")
		require.True(t, ok)
		assert.Equal(t, "Returns a single pet", op.Description)
		assert.Equal(t, []string{"pet"}, op.Tags)

		_, ok = c.GetOperation("petstore", "getpetbyid")
		assert.False(t, ok)
	})
}

func TestCatalog_Documents(t *testing.T) {
	c := newPetstoreCatalog(t)

	assert.Equal(t, []string{"petstore", "petstore-duplicate", "empty"}, c.Keys())

	docs := c.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, "Swagger Petstore", docs[0].Title)
	assert.Equal(t, "1.0.17", docs[0].Version)
	assert.Equal(t, 6, docs[0].Operations)
	assert.Equal(t, "petstore.yaml", docs[0].Source)
	assert.Equal(t, "Empty", docs[2].Title)
	assert.Equal(t, 0, docs[2].Operations)

	info, ok := c.Document("petstore-duplicate")
	require.True(t, ok)
	assert.Contains(t, info.Description, "This is a sample Pet Store Server.")

	_, ok = c.Document("nope")
	assert.False(t, ok)
}

func TestCatalog_TitleOverride(t *testing.T) {
	c, err := New([]Entry{{
		Key:         "petstore",
		Document:    parseFixture(t, "petstore.yaml"),
		Title:       "Pets",
		Description: "Custom",
	}}, nil)
	require.NoError(t, err)

	info, _ := c.Document("petstore")
	assert.Equal(t, "Pets", info.Title)
	assert.Equal(t, "Custom", info.Description)
}

func TestCatalog_Guides(t *testing.T) {
	c := newPetstoreCatalog(t)

	guides := c.Guides("petstore")
	require.Len(t, guides, 2)
	assert.Equal(t, "overview", guides[0].Slug)

	g, ok := c.Guide("petstore", "authentication")
	require.True(t, ok)
	assert.Equal(t, "Authentication", g.Title)

	_, ok = c.Guide("petstore", "missing")
	assert.False(t, ok)

	assert.Empty(t, c.Guides("petstore-duplicate"))
	assert.NotNil(t, c.Guides("nope"))
}

func TestNew_Errors(t *testing.T) {
	_, err := New([]Entry{{Key: ""}}, nil)
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = New([]Entry{{Key: "a"}, {Key: "a"}}, nil)
	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.Contains(t, err.Error(), "a")
}

func TestCatalog_ETag(t *testing.T) {
	first := newPetstoreCatalog(t)
	second := newPetstoreCatalog(t)
	assert.NotEmpty(t, first.ETag())
	assert.Equal(t, first.ETag(), second.ETag())

	other, err := New([]Entry{{Key: "petstore"}}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ETag(), other.ETag())
}
