package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "sofaspin",
	Short: "Spinner, logo and status screen for the sofa remote",
	Long: `sofaspin carries the sofa remote's display assets: a 33-frame
text sweep and a two-part 16x16 monochrome logo. It can play them in the
terminal, print or export them, and drive a small text status screen.

Examples:
  sofaspin tui                          # animated splash and sweep
  sofaspin frames --table               # list every frame
  sofaspin frames --next                # next frame, remembered between runs
  sofaspin logo --out logo.png --scale 8
  sofaspin pixel left 8 7               # prints 1
  sofaspin display --status-file /var/run/sofa_status`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"config file (default is $XDG_CONFIG_HOME/sofaspin/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"enable debug logging")

	rootCmd.AddGroup(
		&cobra.Group{ID: "assets", Title: "Asset Commands:"},
		&cobra.Group{ID: "runtime", Title: "Display Commands:"},
	)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
