package cmd

import (
	"fmt"
	"strconv"

	"github.com/guzus/sofaspin/internal/logo"
	"github.com/spf13/cobra"
)

var pixelCmd = &cobra.Command{
	Use:     "pixel <left|right> <x> <y>",
	Short:   "Print 1 if a logo pixel is set, 0 otherwise",
	GroupID: "assets",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := pixelValue(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		v := 0
		if set {
			v = 1
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
		return err
	},
}

func init() {
	rootCmd.AddCommand(pixelCmd)
}

func pixelValue(half, xs, ys string) (bool, error) {
	h, err := logo.ParseHalf(half)
	if err != nil {
		return false, err
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return false, fmt.Errorf("invalid x %q: %w", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return false, fmt.Errorf("invalid y %q: %w", ys, err)
	}
	return logo.Pixel(h, x, y)
}
