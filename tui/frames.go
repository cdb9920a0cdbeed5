package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/guzus/sofaspin/internal/logo"
	sweep "github.com/guzus/sofaspin/internal/spinner"
)

// logoArt is the combined logo drawn with half blocks, two pixel rows per
// line, so it keeps its proportions in a terminal.
var logoArt string

func init() {
	logoArt = halfBlocks(logo.Combined())
}

func halfBlocks(b *logo.Bitmap) string {
	var sb strings.Builder
	for y := 0; y < b.Height(); y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Width(); x++ {
			top, _ := b.Pixel(x, y)
			bottom := false
			if y+1 < b.Height() {
				bottom, _ = b.Pixel(x, y+1)
			}
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
	}
	return sb.String()
}

// sweepSpinner runs the status-line sweep through bubbles' spinner.
func sweepSpinner(interval time.Duration) spinner.Spinner {
	return spinner.Spinner{Frames: sweep.Frames(), FPS: interval}
}
