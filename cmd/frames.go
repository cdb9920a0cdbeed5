package cmd

import (
	"fmt"
	"io"

	"github.com/guzus/sofaspin/internal/spinner"
	"github.com/guzus/sofaspin/internal/state"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	framesIndexFlag int
	framesNextFlag  bool
	framesTableFlag bool
	framesStateFlag string
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Print spinner frames",
	Long: `Print the spinner sweep. With no flags every frame is printed, one per
line, in playback order. --index wraps around, so any integer is valid.
--next prints the frame after the one printed by the previous --next call.`,
	GroupID: "assets",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch {
		case framesNextFlag:
			path := framesStateFlag
			if path == "" {
				path = state.DefaultPath()
			}
			return printNextFrame(out, path)
		case cmd.Flags().Changed("index"):
			_, err := fmt.Fprintln(out, spinner.Frame(framesIndexFlag))
			return err
		case framesTableFlag:
			_, err := fmt.Fprintln(out, renderFrameTable())
			return err
		default:
			return printFrames(out)
		}
	},
}

func init() {
	framesCmd.Flags().IntVarP(&framesIndexFlag, "index", "i", 0, "print only the frame at this index")
	framesCmd.Flags().BoolVarP(&framesNextFlag, "next", "n", false, "print the next frame and remember the position")
	framesCmd.Flags().BoolVarP(&framesTableFlag, "table", "t", false, "print frames as a table with marker columns")
	framesCmd.Flags().StringVar(&framesStateFlag, "state", "", "state file (default is $XDG_STATE_HOME/sofaspin/state.json)")
	framesCmd.MarkFlagsMutuallyExclusive("index", "next", "table")
	rootCmd.AddCommand(framesCmd)
}

func printFrames(w io.Writer) error {
	for _, f := range spinner.Frames() {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}

// printNextFrame prints the frame at the saved position and moves the
// saved position one frame on.
func printNextFrame(w io.Writer, statePath string) error {
	st, err := state.LoadPath(statePath)
	if err != nil {
		return err
	}

	p := st.Player()
	if _, err := fmt.Fprintln(w, p.Current()); err != nil {
		return err
	}
	p.Advance()
	st.Record(p)
	return st.Save()
}

var frameHeader = table.Row{
	"#",
	"Marker",
	"Frame",
}

func renderFrameTable() string {
	t := table.NewWriter()
	t.AppendHeader(frameHeader)
	for i, f := range spinner.Frames() {
		t.AppendRow(table.Row{i, spinner.MarkerColumn(f), "[" + f + "]"})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d frames", spinner.FrameCount())})
	return t.Render()
}
