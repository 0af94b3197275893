package logger

import (
	"testing"

	"github.com/krateoplatformops/provider-runtime/pkg/logging"
	"github.com/stretchr/testify/assert"
)

type entry struct {
	level string
	msg   string
	kv    []any
}

type recorder struct {
	entries *[]entry
	values  []any
}

func (r recorder) Info(msg string, kv ...any) {
	*r.entries = append(*r.entries, entry{level: "info", msg: msg, kv: append(append([]any{}, r.values...), kv...)})
}

func (r recorder) Debug(msg string, kv ...any) {
	*r.entries = append(*r.entries, entry{level: "debug", msg: msg, kv: append(append([]any{}, r.values...), kv...)})
}

func (r recorder) WithValues(kv ...any) logging.Logger {
	return recorder{entries: r.entries, values: append(append([]any{}, r.values...), kv...)}
}

func TestLogger_Debug(t *testing.T) {
	var got []entry

	quiet := New(recorder{entries: &got}, false)
	quiet.Debug("hidden")
	quiet.Info("shown")
	assert.Len(t, got, 1)
	assert.Equal(t, "shown", got[0].msg)

	got = nil
	verbose := New(recorder{entries: &got}, true)
	verbose.Debug("visible", "k", "v")
	assert.Equal(t, []entry{{level: "debug", msg: "visible", kv: []any{"k", "v"}}}, got)
}

func TestLogger_WithValues(t *testing.T) {
	var got []entry

	l := New(recorder{entries: &got}, false).WithValues("document", "petstore")
	l.Debug("still hidden")
	l.Info("loaded")

	assert.Len(t, got, 1)
	assert.Equal(t, []any{"document", "petstore"}, got[0].kv)
}

func TestLogger_Warn(t *testing.T) {
	var got []entry

	New(recorder{entries: &got}, false).Warn("skipping", assert.AnError, "source", "x")

	assert.Len(t, got, 1)
	assert.Equal(t, []any{"level", "warning", "source", "x", "error", assert.AnError.Error()}, got[0].kv)
}

func TestNew_NilBase(t *testing.T) {
	l := New(nil, true)
	assert.NotPanics(t, func() {
		l.Info("x")
		l.Debug("y")
		l.Warn("z", nil)
	})
}

func TestFrom(t *testing.T) {
	var got []entry

	verbose := New(recorder{entries: &got}, true)
	assert.Same(t, verbose, From(verbose))

	wrapped := From(recorder{entries: &got})
	wrapped.Debug("hidden")
	wrapped.Info("shown")
	assert.Len(t, got, 1)

	var typedNil *Logger
	assert.NotPanics(t, func() { From(typedNil).Info("discarded") })
	assert.NotPanics(t, func() { From(nil).Info("discarded") })
}
