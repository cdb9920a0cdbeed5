package logo

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

var ErrUnknownFormat = errors.New("unknown image format")

// Format is an image file format the logo can be exported to.
type Format string

const (
	PNG Format = "png"
	BMP Format = "bmp"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case PNG:
		return PNG, nil
	case BMP:
		return BMP, nil
	default:
		return "", fmt.Errorf("%w %q (valid: png, bmp)", ErrUnknownFormat, s)
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: no extension in %q", ErrUnknownFormat, path)
	}
	return ParseFormat(ext[1:])
}

// Encode writes b to w as an image in the given format.
func Encode(w io.Writer, b *Bitmap, format Format, scale int) error {
	img := b.Image(scale)
	switch format {
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
	case BMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("encoding bmp: %w", err)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	return nil
}
