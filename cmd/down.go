package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/v4r-tuwien/verefine-bringup/internal/colors"
	"github.com/v4r-tuwien/verefine-bringup/internal/config"
	"github.com/v4r-tuwien/verefine-bringup/internal/tmux"
)

// downCmd represents the down command
var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Kill the demo session",
	Long: `Destroy the demo tmux session and every process running in its panes.

The launched pipeline processes live inside the session's panes, so killing
the session is the demo teardown.`,
	Run: func(cmd *cobra.Command, args []string) {
		session := config.Get("session_name", "VEREFINE")

		if err := newExecutor().Down(session); err != nil {
			if errors.Is(err, tmux.ErrSessionNotFound) {
				colors.Warning(fmt.Sprintf("session %s does not exist, nothing to do", session))
				return
			}
			colors.Error(err.Error())
			os.Exit(1)
		}

		colors.Success(fmt.Sprintf("session %s killed", session))
	},
}

func init() {
	rootCmd.AddCommand(downCmd)
}
