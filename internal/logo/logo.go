// Package logo holds the remote's two-part splash logo.
//
// The logo is stored as two 16x16 packed halves that are drawn side by
// side to make a single 32x16 glyph.
package logo

import (
	"errors"
	"fmt"
	"strings"
)

const (
	width  = 16
	height = 16
)

var ErrUnknownHalf = errors.New("unknown logo half")

// Half selects one side of the logo.
type Half int

const (
	Left Half = iota
	Right
)

func (h Half) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Half(%d)", int(h))
	}
}

// ParseHalf converts "left" or "right" (any case) to a Half.
func ParseHalf(s string) (Half, error) {
	switch strings.ToLower(s) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w %q (valid: left, right)", ErrUnknownHalf, s)
	}
}

var leftData = [width / 8 * height]byte{
	0x00, 0x00,
	0x00, 0x0e,
	0x00, 0x1e,
	0x00, 0x1e,
	0x00, 0x1e,
	0x00, 0x3c,
	0x00, 0x3c,
	0x7f, 0xfc,
	0x7f, 0xf8,
	0x7f, 0xf8,
	0x1f, 0xf8,
	0x1f, 0xf8,
	0x1f, 0xf8,
	0x1f, 0xf8,
	0x1f, 0xf8,
	0x0c, 0x30,
}

var rightData = [width / 8 * height]byte{
	0x00, 0x00,
	0x70, 0x00,
	0x78, 0x00,
	0x78, 0x00,
	0x78, 0x00,
	0x3c, 0x00,
	0x3c, 0x00,
	0x3f, 0xfe,
	0x1f, 0xfe,
	0x1f, 0xfe,
	0x1f, 0xf8,
	0x1f, 0xf8,
	0x1f, 0xf8,
	0x1f, 0xf8,
	0x1f, 0xf8,
	0x0c, 0x30,
}

var (
	leftBitmap  = mustBitmap(width, height, leftData[:])
	rightBitmap = mustBitmap(width, height, rightData[:])
)

// Width returns the width of one half in pixels.
func Width() int { return width }

// Height returns the height of one half in pixels.
func Height() int { return height }

// BitmapOf returns the requested half.
func BitmapOf(h Half) (*Bitmap, error) {
	switch h {
	case Left:
		return leftBitmap, nil
	case Right:
		return rightBitmap, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownHalf, h)
	}
}

// Pixel reports whether pixel (x, y) of the given half is set.
func Pixel(h Half, x, y int) (bool, error) {
	b, err := BitmapOf(h)
	if err != nil {
		return false, err
	}
	return b.Pixel(x, y)
}

// Combined returns the full 32x16 logo with the left half first.
func Combined() *Bitmap {
	b, err := Join(leftBitmap, rightBitmap)
	if err != nil {
		panic(err)
	}
	return b
}
