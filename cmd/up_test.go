package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/v4r-tuwien/verefine-bringup/internal/bringup"
	"github.com/v4r-tuwien/verefine-bringup/internal/config"
	"github.com/v4r-tuwien/verefine-bringup/internal/errors"
	"github.com/v4r-tuwien/verefine-bringup/internal/tmux"
)

// isolateConfig points config/state dirs at temp directories so command
// runs do not touch the real user configuration.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv(config.EnvPrefix+"CONFIG_PATH", "")
}

// useMockClient swaps the command executor for one backed by the given
// mock for the duration of the test.
func useMockClient(t *testing.T, client *tmux.MockClient) {
	t.Helper()
	orig := newExecutor
	newExecutor = func() *bringup.Executor {
		return bringup.NewExecutorWithHandler(client, errors.NewDefaultCLIHandler())
	}
	t.Cleanup(func() { newExecutor = orig })
}

// stubBringup stubs every bringup operation on the mock to succeed.
func stubBringup(client *tmux.MockClient) {
	client.On("NewSession", mock.Anything).Return(nil)
	client.On("KillSession", mock.Anything).Return(nil)
	client.On("SetGlobalOption", mock.Anything, mock.Anything).Return(nil)
	client.On("NewWindow", mock.Anything, mock.Anything).Return(nil)
	client.On("SelectWindow", mock.Anything, mock.Anything).Return(nil)
	client.On("SplitWindowHorizontal", mock.Anything, mock.Anything).Return(nil)
	client.On("SelectPane", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("SendKeys", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("SendEnter", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("RenameWindow", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("AttachSession", mock.Anything).Return(nil)
}

func TestUpCommandBringsUpSession(t *testing.T) {
	isolateConfig(t)

	client := new(tmux.MockClient)
	client.On("HasSession", "VEREFINE").Return(false, nil)
	stubBringup(client)
	useMockClient(t, client)

	rootCmd.SetArgs([]string{"up", "--detach"})
	upDetach = false
	upKillExisting = false
	upWorkspace = ""
	upLayoutFile = ""
	require.NoError(t, rootCmd.Execute())

	client.AssertCalled(t, "NewSession", "VEREFINE")
	client.AssertCalled(t, "RenameWindow", "VEREFINE", 0, "grasping")
	client.AssertNotCalled(t, "AttachSession", mock.Anything)
}

func TestUpCommandAttachesByDefault(t *testing.T) {
	isolateConfig(t)

	client := new(tmux.MockClient)
	client.On("HasSession", "VEREFINE").Return(false, nil)
	stubBringup(client)
	useMockClient(t, client)

	rootCmd.SetArgs([]string{"up"})
	upDetach = false
	upKillExisting = false
	upWorkspace = ""
	upLayoutFile = ""
	require.NoError(t, rootCmd.Execute())

	client.AssertCalled(t, "AttachSession", "VEREFINE")
}

func TestUpCommandSessionNameFromConfig(t *testing.T) {
	isolateConfig(t)
	t.Setenv(config.EnvPrefix+"SESSION_NAME", "DEMO")

	client := new(tmux.MockClient)
	client.On("HasSession", "DEMO").Return(false, nil)
	stubBringup(client)
	useMockClient(t, client)

	rootCmd.SetArgs([]string{"up", "--detach"})
	upDetach = false
	upKillExisting = false
	upWorkspace = ""
	upLayoutFile = ""
	require.NoError(t, rootCmd.Execute())

	client.AssertCalled(t, "NewSession", "DEMO")
}

func TestResolveLayoutUsesWorkspaceFlag(t *testing.T) {
	isolateConfig(t)
	config.Load()

	l, err := resolveLayout("/opt/demos", "")
	require.NoError(t, err)

	assert.Equal(t, "source /opt/demos/devel/setup.bash", l.Windows[0].Panes[0].Steps[0].Keys)
}

func TestResolveLayoutDefaultWorkspaceFromConfig(t *testing.T) {
	isolateConfig(t)
	t.Setenv(config.EnvPrefix+"WORKSPACE", "/data/ws")
	config.Load()

	l, err := resolveLayout("", "")
	require.NoError(t, err)

	assert.Equal(t, "source /data/ws/devel/setup.bash", l.Windows[0].Panes[0].Steps[0].Keys)
}

func TestResolveLayoutFromFileWinsOverConfig(t *testing.T) {
	isolateConfig(t)
	t.Setenv(config.EnvPrefix+"SESSION_NAME", "IGNORED")
	config.Load()

	path := writeLayoutFile(t)
	l, err := resolveLayout("", path)
	require.NoError(t, err)

	assert.Equal(t, "VEREFINE", l.SessionName)
}
