package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v4r-tuwien/verefine-bringup/internal/layout"
)

// writeLayoutFile writes the default layout to a temp TOML file and
// returns its path.
func writeLayoutFile(t *testing.T) string {
	t.Helper()
	data, err := layout.Marshal(layout.Default("~/demos"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLayoutCommandPrintsTOML(t *testing.T) {
	isolateConfig(t)

	rootCmd.SetArgs([]string{"layout", "--workspace", "/opt/demos"})
	layoutWorkspace = ""
	layoutFile = ""
	require.NoError(t, rootCmd.Execute())
}

func TestLayoutCommandFromFile(t *testing.T) {
	isolateConfig(t)
	path := writeLayoutFile(t)

	rootCmd.SetArgs([]string{"layout", "--layout", path})
	layoutWorkspace = ""
	layoutFile = ""
	require.NoError(t, rootCmd.Execute())
}
