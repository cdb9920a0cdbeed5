package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guzus/sofaspin/internal/config"
	"github.com/guzus/sofaspin/internal/state"
	"github.com/guzus/sofaspin/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Short:   "Launch the animated terminal UI",
	Long:    "Show the logo splash, then play the spinner sweep full-screen. The position is saved on exit.",
	GroupID: "runtime",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, map[string]string{
			"tui.interval": "interval",
			"tui.mouse":    "mouse",
		})
		if err != nil {
			return err
		}

		log, closeLog, err := newLogger(cfg, true)
		if err != nil {
			return err
		}
		defer closeLog()

		st, err := state.Load()
		if err != nil {
			return err
		}
		player := st.Player()

		m := tui.NewMainModel(player, cfg.TUI.Interval)
		p := tea.NewProgram(m, programOptions(cfg)...)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}

		st.Record(player)
		if err := st.Save(); err != nil {
			return err
		}
		log.Debug("Saved spinner position", "seq", player.Seq())
		return nil
	},
}

func init() {
	tuiCmd.Flags().Duration("interval", 80*time.Millisecond, "time per frame")
	tuiCmd.Flags().Bool("mouse", false, "enable mouse cell motion reporting")
	rootCmd.AddCommand(tuiCmd)
}

func programOptions(cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.TUI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}
