package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/v4r-tuwien/verefine-bringup/internal/bringup"
	"github.com/v4r-tuwien/verefine-bringup/internal/colors"
	"github.com/v4r-tuwien/verefine-bringup/internal/config"
	"github.com/v4r-tuwien/verefine-bringup/internal/layout"
	"github.com/v4r-tuwien/verefine-bringup/internal/tmux"
)

var (
	upWorkspace    string
	upLayoutFile   string
	upKillExisting bool
	upDetach       bool
)

// upCmd represents the up command
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Create the session and start the grasping pipeline",
	Long: `Create the demo tmux session with its window/pane layout, source the
workspace setup file in every pane, start the motion-planning stack, the
grasping state machine and the grasping-detection service, and attach.

Bringing up a session whose name is already taken fails; pass
--kill-existing to replace it.`,
	Run: func(cmd *cobra.Command, args []string) {
		l, err := resolveLayout(upWorkspace, upLayoutFile)
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		attach := config.GetBool("attach", true) && !upDetach

		colors.Info(fmt.Sprintf("bringing up session %s", l.SessionName))
		err = newExecutor().Up(l, bringup.Options{
			KillExisting: upKillExisting,
			Attach:       attach,
		})
		if err != nil {
			if errors.Is(err, tmux.ErrSessionExists) {
				colors.Error(fmt.Sprintf("session %s already exists (use --kill-existing to replace it)", l.SessionName))
			} else {
				colors.Error(err.Error())
			}
			os.Exit(1)
		}

		colors.Success(fmt.Sprintf("session %s is up", l.SessionName))
	},
}

// resolveLayout builds the effective layout: an explicit layout file wins,
// otherwise the built-in demo layout is parameterized from flags and config.
func resolveLayout(workspace, layoutFile string) (layout.Layout, error) {
	if layoutFile != "" {
		return layout.LoadFile(layoutFile)
	}

	if workspace == "" {
		workspace = config.Get("workspace", "~/demos")
	}
	warnMissingSetupFile(workspace)

	l := layout.Default(workspace)
	if name := config.Get("session_name", ""); name != "" {
		l.SessionName = name
	}
	return l, nil
}

// warnMissingSetupFile reports a workspace whose setup file is absent.
// The bringup proceeds regardless; the failure would otherwise only be
// visible inside the panes.
func warnMissingSetupFile(workspace string) {
	setupFile := filepath.Join(config.ExpandUser(workspace), "devel", "setup.bash")
	if _, err := os.Stat(setupFile); err != nil {
		colors.Warning(fmt.Sprintf("workspace setup file %s not found", setupFile))
	}
}

func init() {
	upCmd.Flags().StringVarP(&upWorkspace, "workspace", "w", "", "catkin workspace root (default from config, ~/demos)")
	upCmd.Flags().StringVarP(&upLayoutFile, "layout", "l", "", "TOML layout file overriding the built-in layout")
	upCmd.Flags().BoolVar(&upKillExisting, "kill-existing", false, "replace an existing session with the same name")
	upCmd.Flags().BoolVarP(&upDetach, "detach", "d", false, "do not attach after bringup")
	rootCmd.AddCommand(upCmd)
}
