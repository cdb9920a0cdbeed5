package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/guzus/sofaspin/internal/config"
	"github.com/guzus/sofaspin/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loadConfig merges defaults, config file and env, then lets the flags in
// bindings (config key -> flag name) override them.
func loadConfig(cmd *cobra.Command, bindings map[string]string) (*config.Config, error) {
	l := config.NewLoader(configFlag)
	if err := l.BindFlag("log.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return nil, err
	}
	for key, name := range bindings {
		if err := l.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, err
		}
	}
	return l.Load()
}

// newLogger builds the command logger. quiet keeps stderr free for
// full-screen output. The returned func closes the log file, if any.
func newLogger(cfg *config.Config, quiet bool) (*slog.Logger, func(), error) {
	opts := []logger.Option{logger.WithFormat(cfg.Log.Format)}
	if cfg.Log.Debug {
		opts = append(opts, logger.WithDebug())
	}
	if quiet {
		opts = append(opts, logger.WithQuiet())
	}

	closer := func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		opts = append(opts, logger.WithWriter(f))
		closer = func() { _ = f.Close() }
	}

	return logger.New(opts...), closer, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
