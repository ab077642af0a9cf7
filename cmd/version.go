package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/v4r-tuwien/verefine-bringup/internal/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("verefine-bringup v%s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
