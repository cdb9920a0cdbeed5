package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guzus/sofaspin/internal/config"
	"github.com/guzus/sofaspin/internal/display"
	"github.com/guzus/sofaspin/internal/logger"
	"github.com/spf13/cobra"
)

var displayOnceFlag bool

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Mirror the status file onto the terminal",
	Long: `Poll a status file and keep a fixed text grid in sync with it, sending
only the characters that changed. The screen is re-initialized periodically
and after any error. Stop with Ctrl+C.`,
	GroupID: "runtime",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, map[string]string{
			"display.statusFile":  "status-file",
			"display.rows":        "rows",
			"display.cols":        "cols",
			"display.interval":    "interval",
			"display.reinitEvery": "reinit-every",
			"display.spinnerRow":  "spinner-row",
			"display.watch":       "watch",
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		// Log lines written to the terminal being drawn on would shift the grid.
		log, closeLog, err := newLogger(cfg, cfg.Log.File != "" || isTerminal(out))
		if err != nil {
			return err
		}
		defer closeLog()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logger.WithLogger(ctx, log)

		screen := display.NewTerminalScreen(out)
		loop := display.NewLoop(screen, displayOptions(cfg))

		if displayOnceFlag {
			return drawOnce(ctx, screen, loop, cfg.Display.Rows)
		}

		defer func() {
			if err := screen.Close(); err != nil {
				log.Warn("Restoring terminal failed", "err", err)
			}
		}()
		log.Info("Display started", "statusFile", cfg.Display.StatusFile,
			"rows", cfg.Display.Rows, "cols", cfg.Display.Cols)
		return loop.Run(ctx)
	},
}

func init() {
	displayCmd.Flags().String("status-file", "/var/run/sofa_status", "status file to mirror")
	displayCmd.Flags().Int("rows", 8, "screen rows")
	displayCmd.Flags().Int("cols", 20, "screen columns")
	displayCmd.Flags().Duration("interval", 50*time.Millisecond, "poll interval")
	displayCmd.Flags().Int("reinit-every", 1200, "re-initialize the screen after this many polls (0 disables)")
	displayCmd.Flags().Int("spinner-row", -1, "show the spinner on this row (-1 disables)")
	displayCmd.Flags().Bool("watch", true, "redraw as soon as the status file changes")
	displayCmd.Flags().BoolVar(&displayOnceFlag, "once", false, "draw the status file once and exit")
	rootCmd.AddCommand(displayCmd)
}

// drawOnce draws the status file a single time and leaves the result on
// screen with the cursor visible below it.
func drawOnce(ctx context.Context, screen *display.TerminalScreen, loop *display.Loop, rows int) (err error) {
	defer func() {
		if lerr := screen.Leave(rows); lerr != nil && err == nil {
			err = lerr
		}
	}()
	return loop.Once(ctx)
}

func displayOptions(cfg *config.Config) display.Options {
	d := cfg.Display
	return display.Options{
		StatusFile:  d.StatusFile,
		Rows:        d.Rows,
		Cols:        d.Cols,
		Interval:    d.Interval,
		ReinitEvery: d.ReinitEvery,
		SpinnerRow:  d.SpinnerRow,
		Watch:       d.Watch,
	}
}
