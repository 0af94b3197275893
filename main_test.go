package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/krateoplatformops/oasdocs/internal/catalog"
	"github.com/krateoplatformops/oasdocs/internal/tools/operations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintDocuments(t *testing.T) {
	docs := []catalog.DocumentInfo{
		{Key: "petstore", Title: "Swagger Petstore", Version: "1.0.0", Operations: 6},
	}

	var buf bytes.Buffer
	require.NoError(t, printDocuments(&buf, "table", docs))
	assert.Equal(t, "KEY       TITLE             VERSION  OPERATIONS\n"+
		"petstore  Swagger Petstore  1.0.0    6\n", buf.String())

	buf.Reset()
	require.NoError(t, printDocuments(&buf, "json", docs))
	var got []catalog.DocumentInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, docs, got)
}

func TestPrintOperations(t *testing.T) {
	ops := []operations.IndexedOperation{
		{Slug: "getPetById", Method: "get", Path: "/pets/{id}", Summary: "Find pet", OperationID: "getPetById"},
		{Slug: "delete-pets-id", Method: "delete", Path: "/pets/{id}"},
	}

	var buf bytes.Buffer
	require.NoError(t, printOperations(&buf, "table", ops))
	assert.Equal(t, "SLUG            METHOD  PATH        TITLE\n"+
		"getPetById      GET     /pets/{id}  Find pet\n"+
		"delete-pets-id  DELETE  /pets/{id}  DELETE /pets/{id}\n", buf.String())
}

func TestPrintOperation(t *testing.T) {
	op := operations.IndexedOperation{
		Slug:        "getPetById",
		Method:      "get",
		Path:        "/pets/{id}",
		OperationID: "getPetById",
		Tags:        []string{"pets", "read"},
	}

	var buf bytes.Buffer
	require.NoError(t, printOperation(&buf, "table", op))
	assert.Equal(t, "Slug:          getPetById\n"+
		"Method:        GET\n"+
		"Path:          /pets/{id}\n"+
		"Operation ID:  getPetById\n"+
		"Tags:          pets, read\n", buf.String())

	buf.Reset()
	require.NoError(t, printOperation(&buf, "json", op))
	assert.Contains(t, buf.String(), `"slug": "getPetById"`)
}
