package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/v4r-tuwien/verefine-bringup/internal/colors"
	"github.com/v4r-tuwien/verefine-bringup/internal/layout"
)

var (
	layoutWorkspace string
	layoutFile      string
)

// layoutCmd represents the layout command
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the effective session layout as TOML",
	Long: `Print the layout that "up" would execute, as TOML. The output is a
valid layout file, so it also serves as a starting point for a custom
layout passed back via "up --layout".`,
	Run: func(cmd *cobra.Command, args []string) {
		l, err := resolveLayout(layoutWorkspace, layoutFile)
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		out, err := layout.Marshal(l)
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	layoutCmd.Flags().StringVarP(&layoutWorkspace, "workspace", "w", "", "catkin workspace root (default from config, ~/demos)")
	layoutCmd.Flags().StringVarP(&layoutFile, "layout", "l", "", "TOML layout file overriding the built-in layout")
	rootCmd.AddCommand(layoutCmd)
}
