package colors

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (r *recordingLogger) record(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, level+": "+msg)
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug", msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info", msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg) }

func TestConsoleOutputMirroredToLogger(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	SetQuiet(true)
	defer SetQuiet(false)

	Error("boom")
	Warning("careful")
	Info("hello")
	Success("done")
	Debug("details")

	assert.Equal(t, []string{
		"error: boom",
		"warn: careful",
		"info: hello",
		"info: done",
		"debug: details",
	}, rec.entries)
}

func TestQuietSuppressesOnlyConsole(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	SetQuiet(true)
	defer SetQuiet(false)

	// Quiet mode must not drop structured log entries.
	Info("still logged")
	assert.Equal(t, []string{"info: still logged"}, rec.entries)
}

func TestDebugToggle(t *testing.T) {
	SetDebug(true)
	assert.True(t, isDebug())
	SetDebug(false)
	assert.False(t, isDebug())
}
