package logo

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func TestGeometry(t *testing.T) {
	if Width() != 16 || Height() != 16 {
		t.Fatalf("expected 16x16, got %dx%d", Width(), Height())
	}
	for _, h := range []Half{Left, Right} {
		b, err := BitmapOf(h)
		if err != nil {
			t.Fatalf("BitmapOf(%v): %v", h, err)
		}
		if len(b.Bytes()) != b.Stride()*b.Height() {
			t.Errorf("%v: %d bytes, want %d", h, len(b.Bytes()), b.Stride()*b.Height())
		}
		if b.Stride() != 2 {
			t.Errorf("%v: stride %d, want 2", h, b.Stride())
		}
	}
}

func TestPixelFixtures(t *testing.T) {
	tests := []struct {
		name string
		half Half
		x, y int
		want bool
	}{
		{"left origin", Left, 0, 0, false},
		{"left row 7 bit 8", Left, 8, 7, true},
		{"left row 7 first", Left, 0, 7, false},
		{"left row 7 second", Left, 1, 7, true},
		{"left row 7 last", Left, 15, 7, false},
		{"left row 1", Left, 12, 1, true},
		{"right row 1", Right, 1, 1, true},
		{"right row 1 first", Right, 0, 1, false},
		{"right row 7 bit 14", Right, 14, 7, true},
		{"right bottom", Right, 15, 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pixel(tt.half, tt.x, tt.y)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Pixel(%v, %d, %d) = %v, want %v", tt.half, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPixelRepacksRows(t *testing.T) {
	stored := map[Half][]byte{Left: leftData[:], Right: rightData[:]}

	for half, data := range stored {
		for y := 0; y < Height(); y++ {
			var row uint16
			for x := 0; x < Width(); x++ {
				set, err := Pixel(half, x, y)
				if err != nil {
					t.Fatalf("Pixel(%v, %d, %d): %v", half, x, y, err)
				}
				if set {
					row |= 1 << (15 - x)
				}
			}
			want := uint16(data[y*2])<<8 | uint16(data[y*2+1])
			if row != want {
				t.Errorf("%v row %d: repacked %#04x, want %#04x", half, y, row, want)
			}
		}
	}
}

func TestPixelOutOfRange(t *testing.T) {
	tests := []struct {
		x, y int
	}{
		{16, 0},
		{0, -1},
		{-1, 0},
		{0, 16},
		{100, 100},
	}

	for _, tt := range tests {
		_, err := Pixel(Left, tt.x, tt.y)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Pixel(Left, %d, %d): expected ErrOutOfRange, got %v", tt.x, tt.y, err)
		}
	}
}

func TestPixelUnknownHalf(t *testing.T) {
	_, err := Pixel(Half(7), 0, 0)
	if !errors.Is(err, ErrUnknownHalf) {
		t.Errorf("expected ErrUnknownHalf, got %v", err)
	}
}

func TestParseHalf(t *testing.T) {
	tests := []struct {
		in      string
		want    Half
		wantErr bool
	}{
		{"left", Left, false},
		{"LEFT", Left, false},
		{"r", Right, false},
		{"right", Right, false},
		{"middle", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHalf(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownHalf) {
					t.Fatalf("expected ErrUnknownHalf, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseHalf(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHalfString(t *testing.T) {
	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("unexpected names %q, %q", Left, Right)
	}
	if Half(5).String() != "Half(5)" {
		t.Errorf("unexpected name %q", Half(5))
	}
}

func TestNewBitmapRejectsBadGeometry(t *testing.T) {
	if _, err := NewBitmap(16, 16, make([]byte, 31)); !errors.Is(err, ErrBadGeometry) {
		t.Errorf("expected ErrBadGeometry for short data, got %v", err)
	}
	if _, err := NewBitmap(0, 4, nil); !errors.Is(err, ErrBadGeometry) {
		t.Errorf("expected ErrBadGeometry for zero width, got %v", err)
	}
	b, err := NewBitmap(10, 2, []byte{0xff, 0xc0, 0x80, 0x00})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Stride() != 2 {
		t.Errorf("expected stride 2 for width 10, got %d", b.Stride())
	}
	if set, _ := b.Pixel(9, 0); !set {
		t.Error("expected pixel (9,0) set")
	}
	if _, err := b.Pixel(10, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange past width, got %v", err)
	}
}

func TestNewBitmapCopiesData(t *testing.T) {
	data := []byte{0xff}
	b, _ := NewBitmap(8, 1, data)
	data[0] = 0
	if set, _ := b.Pixel(0, 0); !set {
		t.Error("expected bitmap to keep its own copy of data")
	}
}

func TestCombined(t *testing.T) {
	c := Combined()
	if c.Width() != 32 || c.Height() != 16 {
		t.Fatalf("expected 32x16, got %dx%d", c.Width(), c.Height())
	}

	data := c.Bytes()
	for y := 0; y < 16; y++ {
		row := data[y*4 : y*4+4]
		want := []byte{leftData[y*2], leftData[y*2+1], rightData[y*2], rightData[y*2+1]}
		if !bytes.Equal(row, want) {
			t.Errorf("row %d: got % x, want % x", y, row, want)
		}
	}
}

func TestJoinHeightMismatch(t *testing.T) {
	a, _ := NewBitmap(8, 2, []byte{0, 0})
	b, _ := NewBitmap(8, 1, []byte{0})
	if _, err := Join(a, b); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestJoinUnalignedWidths(t *testing.T) {
	a, _ := NewBitmap(3, 1, []byte{0xa0}) // 101
	b, _ := NewBitmap(2, 1, []byte{0xc0}) // 11
	j, err := Join(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := j.Text('#', '.'); got != "#.###" {
		t.Errorf("Join text = %q, want %q", got, "#.###")
	}
}

func TestText(t *testing.T) {
	b, _ := BitmapOf(Left)
	lines := strings.Split(b.Text('#', '.'), "\n")
	if len(lines) != 16 {
		t.Fatalf("expected 16 lines, got %d", len(lines))
	}
	if lines[0] != "................" {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[7] != ".#############.." {
		t.Errorf("row 7 = %q", lines[7])
	}
}

func TestImage(t *testing.T) {
	b, _ := BitmapOf(Left)
	img := b.Image(2)
	if img.Bounds() != image.Rect(0, 0, 32, 32) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	// (8,7) is set, so the 2x2 block at (16,14) is black.
	for _, p := range []image.Point{{16, 14}, {17, 14}, {16, 15}, {17, 15}} {
		if img.GrayAt(p.X, p.Y).Y != 0 {
			t.Errorf("expected black at %v", p)
		}
	}
	if img.GrayAt(0, 0).Y != 0xff {
		t.Error("expected white at origin")
	}
	if b.Image(0).Bounds().Dx() != 16 {
		t.Error("expected scale 0 to be treated as 1")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG: func(buf *bytes.Buffer) (image.Image, error) { return png.Decode(buf) },
		BMP: func(buf *bytes.Buffer) (image.Image, error) { return bmp.Decode(buf) },
	}

	c := Combined()
	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, c, format, 1); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			img, err := decode(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
				t.Fatalf("unexpected bounds %v", img.Bounds())
			}
			for y := 0; y < 16; y++ {
				for x := 0; x < 32; x++ {
					set, _ := c.Pixel(x, y)
					gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
					if set != (gray.Y == 0) {
						t.Fatalf("pixel (%d,%d): set=%v, gray=%d", x, y, set, gray.Y)
					}
				}
			}
		})
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Combined(), Format("gif"), 1); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"logo.png", PNG, false},
		{"out/LOGO.BMP", BMP, false},
		{"logo.gif", "", true},
		{"logo", "", true},
		{"out.d/logo", "", true},
		{"out.d/logo.png", PNG, false},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("FormatFromPath(%q): expected ErrUnknownFormat, got %v", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}
}
