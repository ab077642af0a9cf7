package logging

import (
	"os"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v4r-tuwien/verefine-bringup/internal/config"
)

func TestInitDisabledReturnsNoop(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)

	// Must be safe to use without any setup.
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")
	assert.NoError(t, logger.Shutdown())
	assert.NotNil(t, logger.With("k", "v"))
}

func TestInitWritesLogFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	config.Load()

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "debug"
	cfg.Command = "test"
	logger, err := Init(cfg)
	require.NoError(t, err)
	defer logger.Shutdown()

	logger.Info("session created", "session", "VEREFINE")

	logDir := filepath.Join(stateHome, "verefine-bringup", "logs")
	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(logDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "session created")
	assert.Contains(t, string(data), "VEREFINE")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  clog.Level
	}{
		{"debug", clog.DebugLevel},
		{"info", clog.InfoLevel},
		{"warn", clog.WarnLevel},
		{"warning", clog.WarnLevel},
		{"error", clog.ErrorLevel},
		{"bogus", clog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestRotateKeepsNewestFiles(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"verefine-bringup_20240101_000000_PID1_up.log",
		"verefine-bringup_20240102_000000_PID1_up.log",
		"verefine-bringup_20240103_000000_PID1_up.log",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, names[2], entries[0].Name())
}
