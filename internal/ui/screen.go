package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Screen wraps an output stream with the cursor operations the live
// dashboard needs. Escape sequences are always emitted, even when the
// stream is not a terminal, so redirected output replays exactly the way a
// terminal would have shown it. Colors are only enabled on real terminals.
type Screen struct {
	out *termenv.Output
	tty bool
}

// NewScreen wraps w. When w is a terminal the color profile is detected from
// the environment; otherwise styling is disabled.
func NewScreen(w io.Writer) *Screen {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}

	profile := termenv.Ascii
	if tty {
		profile = termenv.EnvColorProfile()
	}

	return &Screen{
		out: termenv.NewOutput(w, termenv.WithProfile(profile)),
		tty: tty,
	}
}

// IsTerminal reports whether the underlying stream is a terminal.
func (s *Screen) IsTerminal() bool {
	return s.tty
}

// Print writes text as-is.
func (s *Screen) Print(text string) {
	_, _ = s.out.WriteString(text)
}

// Printf writes formatted text.
func (s *Screen) Printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// MoveUp moves the cursor up n lines to column one. No-op for n < 1.
func (s *Screen) MoveUp(n int) {
	if n > 0 {
		s.out.CursorPrevLine(n)
	}
}

// MoveDown moves the cursor down n lines to column one. No-op for n < 1.
func (s *Screen) MoveDown(n int) {
	if n > 0 {
		s.out.CursorNextLine(n)
	}
}

// ClearLine erases the whole line under the cursor without moving it.
func (s *Screen) ClearLine() {
	s.out.ClearLine()
}

// SaveCursor records the cursor position for a later RestoreCursor.
func (s *Screen) SaveCursor() {
	s.out.SaveCursorPosition()
}

// RestoreCursor returns the cursor to the last saved position.
func (s *Screen) RestoreCursor() {
	s.out.RestoreCursorPosition()
}
