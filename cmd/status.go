package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/v4r-tuwien/verefine-bringup/internal/colors"
	"github.com/v4r-tuwien/verefine-bringup/internal/config"
	"github.com/v4r-tuwien/verefine-bringup/internal/format"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the demo session's windows and panes",
	Long: `Query the tmux server for the demo session and print its windows and
panes. Exits non-zero when the session does not exist, so the command can
double as a liveness check in scripts.`,
	Run: func(cmd *cobra.Command, args []string) {
		session := config.Get("session_name", "VEREFINE")

		status, err := newExecutor().Status(session)
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		fmt.Print(format.Status(status))
		if !status.Exists {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
