// Package display mirrors a status file onto a fixed text grid, redrawing
// only the characters that changed.
package display

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Screen is a character-cell display addressed by zero-based row and column.
type Screen interface {
	Init() error
	Clear() error
	MoveTo(row, col int) error
	WriteString(s string) error
}

// TerminalScreen draws on an ANSI terminal.
type TerminalScreen struct {
	out *termenv.Output
	err error
}

func NewTerminalScreen(w io.Writer) *TerminalScreen {
	s := &TerminalScreen{}
	s.out = termenv.NewOutput(&errWriter{w: w, s: s})
	return s
}

// Init hides the cursor and clears the terminal.
func (s *TerminalScreen) Init() error {
	s.out.HideCursor()
	s.out.ClearScreen()
	return s.takeErr("init")
}

func (s *TerminalScreen) Clear() error {
	s.out.ClearScreen()
	return s.takeErr("clear")
}

func (s *TerminalScreen) MoveTo(row, col int) error {
	s.out.MoveCursor(row+1, col+1)
	return s.takeErr("move cursor")
}

func (s *TerminalScreen) WriteString(str string) error {
	if _, err := s.out.WriteString(str); err != nil {
		s.err = nil
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Close clears the screen and restores the cursor.
func (s *TerminalScreen) Close() error {
	s.out.ClearScreen()
	s.out.MoveCursor(1, 1)
	s.out.ShowCursor()
	return s.takeErr("close")
}

// Leave moves the cursor to the start of row and shows it again, keeping
// whatever was drawn above.
func (s *TerminalScreen) Leave(row int) error {
	s.out.MoveCursor(row+1, 1)
	s.out.ShowCursor()
	return s.takeErr("leave")
}

func (s *TerminalScreen) takeErr(op string) error {
	err := s.err
	s.err = nil
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// errWriter remembers the last write error; termenv's cursor helpers
// don't return one.
type errWriter struct {
	w io.Writer
	s *TerminalScreen
}

func (e *errWriter) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err != nil {
		e.s.err = err
	}
	return n, err
}
