package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guzus/sofaspin/internal/logo"
	"github.com/spf13/cobra"
)

var (
	logoHalfFlag   string
	logoOutFlag    string
	logoFormatFlag string
	logoScaleFlag  int
	logoOnFlag     string
	logoOffFlag    string
)

var logoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Print or export the logo bitmap",
	Long: `Print the logo as text, or export it as an image with --out.
The image format follows --format, or the file extension when --format is
not given.`,
	GroupID: "assets",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := selectBitmap(logoHalfFlag)
		if err != nil {
			return err
		}

		if logoOutFlag == "" {
			on, err := singleRune("on", logoOnFlag)
			if err != nil {
				return err
			}
			off, err := singleRune("off", logoOffFlag)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), b.Text(on, off))
			return err
		}

		format, err := exportFormat(logoOutFlag, logoFormatFlag)
		if err != nil {
			return err
		}
		if err := writeLogo(logoOutFlag, b, format, logoScaleFlag); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d %s to %s\n",
			b.Width()*max(logoScaleFlag, 1), b.Height()*max(logoScaleFlag, 1), format, logoOutFlag)
		return nil
	},
}

func init() {
	logoCmd.Flags().StringVar(&logoHalfFlag, "half", "both", "which part to use: left, right, both")
	logoCmd.Flags().StringVarP(&logoOutFlag, "out", "o", "", "write an image file instead of printing")
	logoCmd.Flags().StringVarP(&logoFormatFlag, "format", "f", "", "image format: png, bmp")
	logoCmd.Flags().IntVar(&logoScaleFlag, "scale", 1, "image pixels per logo pixel")
	logoCmd.Flags().StringVar(&logoOnFlag, "on", "#", "character for set pixels")
	logoCmd.Flags().StringVar(&logoOffFlag, "off", ".", "character for clear pixels")
	rootCmd.AddCommand(logoCmd)
}

func selectBitmap(half string) (*logo.Bitmap, error) {
	if half == "both" || half == "" {
		return logo.Combined(), nil
	}
	h, err := logo.ParseHalf(half)
	if err != nil {
		return nil, err
	}
	return logo.BitmapOf(h)
}

func exportFormat(path, format string) (logo.Format, error) {
	if format != "" {
		return logo.ParseFormat(format)
	}
	return logo.FormatFromPath(path)
}

// writeLogo encodes into memory first so that a bad scale or format never
// touches an existing file.
func writeLogo(path string, b *logo.Bitmap, format logo.Format, scale int) error {
	var buf bytes.Buffer
	if err := encodeLogo(&buf, b, format, scale); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := buf.WriteTo(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func encodeLogo(w io.Writer, b *logo.Bitmap, format logo.Format, scale int) error {
	if scale < 1 || scale > 64 {
		return fmt.Errorf("scale %d out of range (1-64)", scale)
	}
	if _, err := logo.ParseFormat(string(format)); err != nil {
		return err
	}
	return logo.Encode(w, b, format, scale)
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
