package logger

import (
	"github.com/krateoplatformops/provider-runtime/pkg/logging"
)

// Logger forwards to a logging.Logger and drops Debug output unless
// Verbose is set.
type Logger struct {
	Verbose bool
	logging.Logger
}

var _ logging.Logger = &Logger{}

// New wraps base. A nil base discards everything.
func New(base logging.Logger, verbose bool) *Logger {
	if base == nil {
		base = logging.NewNopLogger()
	}
	return &Logger{Verbose: verbose, Logger: base}
}

// From returns l itself when it already is a *Logger, else wraps it
// without verbose output.
func From(l logging.Logger) *Logger {
	if ll, ok := l.(*Logger); ok {
		if ll == nil {
			return New(nil, false)
		}
		return ll
	}
	return New(l, false)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.Logger.Info(msg, keysAndValues...)
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	if l.Verbose {
		l.Logger.Debug(msg, keysAndValues...)
	}
}

// Warn logs at info level tagged as a warning, with the error attached.
func (l *Logger) Warn(msg string, err error, keysAndValues ...any) {
	kv := append([]any{"level", "warning"}, keysAndValues...)
	if err != nil {
		kv = append(kv, "error", err.Error())
	}
	l.Logger.Info(msg, kv...)
}

func (l *Logger) WithValues(keysAndValues ...any) logging.Logger {
	return &Logger{
		Verbose: l.Verbose,
		Logger:  l.Logger.WithValues(keysAndValues...),
	}
}
