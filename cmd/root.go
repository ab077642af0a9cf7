// Package cmd implements the verefine-bringup CLI.
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/v4r-tuwien/verefine-bringup/internal/bringup"
	"github.com/v4r-tuwien/verefine-bringup/internal/colors"
	"github.com/v4r-tuwien/verefine-bringup/internal/config"
	"github.com/v4r-tuwien/verefine-bringup/internal/logging"
	"github.com/v4r-tuwien/verefine-bringup/internal/tmux"
	"github.com/v4r-tuwien/verefine-bringup/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "verefine-bringup",
	Short: "Bring up the VEREFINE grasping demo tmux session",
	Long: `verefine-bringup creates the VEREFINE tmux session for the HSR grasping
demo: it sources the workspace setup file in every pane and starts the
motion-planning stack, the grasping state machine and the grasping-detection
service in their panes, then attaches your terminal to the session.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initRuntime(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// initRuntime loads configuration and wires console output to the
// structured logger before any subcommand runs.
func initRuntime(cmd *cobra.Command) {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	logCfg := logging.FromGlobalConfig()
	logCfg.Command = cmd.Name()
	logger, err := logging.Init(logCfg)
	if err != nil {
		colors.Warning("logging disabled: " + err.Error())
		return
	}
	colors.SetLogger(logger)
}

// newClient builds the real tmux client from configuration.
func newClient() tmux.Client {
	opts := []tmux.ClientOption{
		tmux.WithTimeout(time.Duration(config.GetInt("command_timeout", 5)) * time.Second),
	}
	if socket := config.Get("socket_path", ""); socket != "" {
		opts = append(opts, tmux.WithSocketPath(socket))
	}
	return tmux.NewDefaultClient(opts...)
}

// newExecutor is swapped out in tests to run commands against a mock client.
var newExecutor = func() *bringup.Executor {
	return bringup.NewExecutor(newClient())
}
