package logo

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
)

var (
	ErrOutOfRange   = errors.New("pixel out of range")
	ErrBadGeometry  = errors.New("bitmap data does not match geometry")
	ErrSizeMismatch = errors.New("bitmap heights differ")
)

// Bitmap is a packed monochrome raster. Each row takes ceil(width/8) bytes,
// most significant bit first; a set bit is a foreground pixel.
type Bitmap struct {
	width  int
	height int
	data   []byte
}

// NewBitmap wraps data as a width x height bitmap. The data is copied.
func NewBitmap(width, height int, data []byte) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGeometry, width, height)
	}
	stride := (width + 7) / 8
	if len(data) != stride*height {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrBadGeometry, width, height, stride*height, len(data))
	}
	b := &Bitmap{width: width, height: height, data: make([]byte, len(data))}
	copy(b.data, data)
	return b, nil
}

func mustBitmap(width, height int, data []byte) *Bitmap {
	b, err := NewBitmap(width, height, data)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

// Stride returns the number of bytes per row.
func (b *Bitmap) Stride() int { return (b.width + 7) / 8 }

// Bytes returns a copy of the packed data.
func (b *Bitmap) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Pixel reports whether the pixel at (x, y) is set.
func (b *Bitmap) Pixel(x, y int) (bool, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, b.width, b.height)
	}
	return b.at(x, y), nil
}

func (b *Bitmap) at(x, y int) bool {
	return (b.data[y*b.Stride()+x/8]>>(7-x%8))&1 != 0
}

// Image renders the bitmap as black pixels on white, each bitmap pixel
// drawn as a scale x scale square. A scale below 1 is treated as 1.
func (b *Bitmap) Image(scale int) *image.Gray {
	if scale < 1 {
		scale = 1
	}
	img := image.NewGray(image.Rect(0, 0, b.width*scale, b.height*scale))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if !b.at(x, y) {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetGray(x*scale+dx, y*scale+dy, color.Gray{Y: 0})
				}
			}
		}
	}
	return img
}

// Text renders one line per row using on for set pixels and off otherwise.
func (b *Bitmap) Text(on, off rune) string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			if b.at(x, y) {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
	}
	return sb.String()
}

// Join places right next to left. Both bitmaps must have the same height.
func Join(left, right *Bitmap) (*Bitmap, error) {
	if left.height != right.height {
		return nil, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, left.height, right.height)
	}
	width := left.width + right.width
	stride := (width + 7) / 8
	data := make([]byte, stride*left.height)
	for y := 0; y < left.height; y++ {
		for x := 0; x < width; x++ {
			var set bool
			if x < left.width {
				set = left.at(x, y)
			} else {
				set = right.at(x-left.width, y)
			}
			if set {
				data[y*stride+x/8] |= 1 << (7 - x%8)
			}
		}
	}
	return &Bitmap{width: width, height: left.height, data: data}, nil
}
