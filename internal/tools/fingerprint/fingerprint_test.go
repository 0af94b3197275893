package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumOf(t testing.TB, values ...any) string {
	t.Helper()
	h := New()
	require.NoError(t, h.Add(values...))
	return h.Sum()
}

func BenchmarkHash_Add(b *testing.B) {
	input := []any{"petstore", 12, true, map[string]string{"slug": "getPetById"}}

	for i := 0; i < b.N; i++ {
		if err := New().Add(input...); err != nil {
			b.Fatalf("Add() failed: %v", err)
		}
	}
}

func TestHash_Add(t *testing.T) {
	tests := []struct {
		name    string
		input   []any
		wantErr bool
	}{
		{name: "Single string input", input: []any{"test"}},
		{name: "Multiple inputs", input: []any{"test", 123, true}},
		{name: "Empty input", input: []any{}},
		{name: "Nil input", input: nil},
		{name: "Unsupported value", input: []any{make(chan int)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			err := h.Add(tt.input...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, h.Sum(), 16)
		})
	}
}

func TestHash_Cumulative(t *testing.T) {
	one := sumOf(t, "a", "b")

	h := New()
	require.NoError(t, h.Add("a"))
	require.NoError(t, h.Add("b"))
	assert.Equal(t, one, h.Sum())
	assert.Equal(t, `"`+one+`"`, h.ETag())

	assert.NotEqual(t, one, sumOf(t, "b", "a"))
}

func TestMatches(t *testing.T) {
	etag := `"abc"`

	assert.True(t, Matches(`"abc"`, etag))
	assert.True(t, Matches(`W/"abc"`, etag))
	assert.True(t, Matches(`"x", "abc"`, etag))
	assert.True(t, Matches(`*`, etag))
	assert.False(t, Matches(`"abcd"`, etag))
	assert.False(t, Matches("", etag))
	assert.False(t, Matches(`"abc"`, ""))
}
