package display

import (
	"fmt"
	"strings"
)

// Renderer remembers what is on a Screen so that each update only sends
// the changed span of every row.
type Renderer struct {
	screen  Screen
	rows    int
	cols    int
	current []string
}

func NewRenderer(screen Screen, rows, cols int) *Renderer {
	r := &Renderer{screen: screen, rows: rows, cols: cols}
	r.Reset()
	return r
}

// Reset assumes the screen is blank. Call it after clearing the screen.
func (r *Renderer) Reset() {
	blank := strings.Repeat(" ", r.cols)
	r.current = make([]string, r.rows)
	for i := range r.current {
		r.current[i] = blank
	}
}

// Lines returns a copy of the rows as last drawn.
func (r *Renderer) Lines() []string {
	out := make([]string, len(r.current))
	copy(out, r.current)
	return out
}

// Render draws lines from the top row down. Lines past the last row are
// dropped; rows without a line keep their content.
func (r *Renderer) Render(lines []string) error {
	for i, line := range lines {
		if i >= r.rows {
			break
		}
		if err := r.SetLine(i, line); err != nil {
			return err
		}
	}
	return nil
}

// SetLine draws a single row.
func (r *Renderer) SetLine(row int, line string) error {
	if row < 0 || row >= r.rows {
		return fmt.Errorf("row %d outside %d rows", row, r.rows)
	}
	padded := Pad(line, r.cols)
	first, last, changed := Diff(r.current[row], padded)
	if !changed {
		return nil
	}

	if err := r.screen.MoveTo(row, first); err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	span := []rune(padded)[first : last+1]
	if err := r.screen.WriteString(string(span)); err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	r.current[row] = padded
	return nil
}

// Pad left-aligns line in exactly cols characters, cutting what doesn't fit.
func Pad(line string, cols int) string {
	runes := []rune(line)
	if len(runes) >= cols {
		return string(runes[:cols])
	}
	return line + strings.Repeat(" ", cols-len(runes))
}

// Diff returns the first and last column where old and new differ.
// Columns past the shorter string count as different.
func Diff(old, new string) (first, last int, changed bool) {
	o, n := []rune(old), []rune(new)
	size := len(o)
	if len(n) > size {
		size = len(n)
	}
	first = -1
	for i := 0; i < size; i++ {
		if i < len(o) && i < len(n) && o[i] == n[i] {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return 0, 0, false
	}
	return first, last, true
}
