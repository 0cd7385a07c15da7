package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger returns a debug-level zerolog.Logger that forwards every
// event to t.Log, so resolver traces show up interleaved with test output
// on failure.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = &testWriter{t: t}
		w.NoColor = true
	})).Level(zerolog.DebugLevel)
}

// testWriter adapts testing.T to io.Writer.
type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
