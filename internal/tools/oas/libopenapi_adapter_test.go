package oas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstore = `openapi: 3.0.3
info:
  title: Petstore
  description: |
    A sample API.

    With more than one paragraph.
  version: 1.0.0
paths:
  /pets/{id}:
    summary: A single pet
    get:
      operationId: getPetById
      summary: Find pet by ID
      tags: [pets]
      responses:
        "200":
          description: ok
    delete:
      responses:
        "204":
          description: deleted
  /pets:
    post:
      operationId: createPet
      description: Adds a pet to the store.
      responses:
        "201":
          description: created
  /empty: {}
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(petstore))
	require.NoError(t, err)
	require.NotNil(t, doc)

	t.Run("info", func(t *testing.T) {
		info := doc.GetInfo()
		assert.Equal(t, "Petstore", info.Title)
		assert.Equal(t, "1.0.0", info.Version)
		assert.Contains(t, info.Description, "A sample API.")
	})

	t.Run("paths keep document order", func(t *testing.T) {
		paths := doc.GetPaths()
		require.Len(t, paths, 3)
		assert.Equal(t, "/pets/{id}", paths[0].GetPath())
		assert.Equal(t, "/pets", paths[1].GetPath())
		assert.Equal(t, "/empty", paths[2].GetPath())
		assert.Equal(t, "A single pet", paths[0].GetSummary())
	})

	t.Run("operations by method", func(t *testing.T) {
		item := doc.GetPaths()[0]

		get, ok := item.GetOperation("get")
		require.True(t, ok)
		assert.Equal(t, "getPetById", get.GetOperationID())
		assert.Equal(t, "Find pet by ID", get.GetSummary())
		assert.Equal(t, []string{"pets"}, get.GetTags())

		del, ok := item.GetOperation("delete")
		require.True(t, ok)
		assert.Empty(t, del.GetOperationID())

		_, ok = item.GetOperation("put")
		assert.False(t, ok)
	})

	t.Run("path without methods", func(t *testing.T) {
		item := doc.GetPaths()[2]
		for _, m := range Methods {
			_, ok := item.GetOperation(m)
			assert.False(t, ok, m)
		}
	})
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		code    ParserErrorCode
	}{
		{name: "empty", content: "  \n", code: CodeEmptyDocument},
		{name: "swagger 2.0", content: "swagger: \"2.0\"\ninfo:\n  title: old\n  version: \"1\"\npaths: {}\n", code: CodeModelBuildError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse([]byte(tc.content))
			assert.Nil(t, doc)
			require.Error(t, err)

			var perr ParserError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.code, perr.Code)
		})
	}

	t.Run("not an api description", func(t *testing.T) {
		_, err := Parse([]byte("just some words"))
		require.Error(t, err)
		var perr ParserError
		assert.True(t, errors.As(err, &perr))
	})
}

func TestParserError(t *testing.T) {
	inner := errors.New("boom")
	err := ParserError{Code: CodeModelBuildError, Message: "failed", Err: inner}

	assert.Equal(t, "parser error [ModelBuildError]: failed: boom", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := ParserError{Code: CodeEmptyDocument, Message: "nothing"}
	assert.Equal(t, "parser error [EmptyDocument]: nothing", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestNilModel(t *testing.T) {
	doc := NewLibOASDocumentAdapter(nil)
	assert.Equal(t, Info{}, doc.GetInfo())
	assert.Empty(t, doc.GetPaths())
}
