package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger is a logger whose output is captured in memory so tests
// can assert on what was logged.
type TestLogger struct {
	*zerolog.Logger
	buf *bytes.Buffer
}

// NewTestLogger returns a buffer-backed logger. The global level is
// raised to trace for the test's lifetime so no entry is filtered out
// before reaching the buffer.
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Logger()

	return &TestLogger{Logger: &logger, buf: buf}
}

// Output returns everything logged so far.
func (tl *TestLogger) Output() string {
	return tl.buf.String()
}

// Lines returns the captured entries, one per line.
func (tl *TestLogger) Lines() []string {
	trimmed := strings.TrimSpace(tl.Output())
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// Contains reports whether any entry contains substr.
func (tl *TestLogger) Contains(substr string) bool {
	return strings.Contains(tl.Output(), substr)
}

// ContainsAll reports whether every given string appears in the output.
func (tl *TestLogger) ContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !tl.Contains(s) {
			return false
		}
	}
	return true
}

// Count returns how many entries were captured.
func (tl *TestLogger) Count() int {
	return len(tl.Lines())
}

// Clear drops everything captured so far.
func (tl *TestLogger) Clear() {
	tl.buf.Reset()
}

// AssertContains fails t when substr never appeared in the output.
func (tl *TestLogger) AssertContains(t testing.TB, substr string) {
	t.Helper()
	if !tl.Contains(substr) {
		t.Errorf("log output missing %q\noutput:\n%s", substr, tl.Output())
	}
}

// AssertCount fails t when the captured entry count differs from want.
func (tl *TestLogger) AssertCount(t testing.TB, want int) {
	t.Helper()
	if got := tl.Count(); got != want {
		t.Errorf("Expected %d log entries, got %d\nOutput:\n%s", want, got, tl.Output())
	}
}
