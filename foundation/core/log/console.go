// File: console.go
// Title: Console Line Clearing
// Description: Best-effort helper that blanks the current terminal line and
//              moves the cursor back to the start of the previous line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the sink is not a terminal
const DefaultWidth = 80

// fder is implemented by *os.File
type fder interface {
	Fd() uintptr
}

// TerminalWidth returns the column count of w when it is a terminal, and
// fallback otherwise. A non-positive fallback means DefaultWidth.
func TerminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(fder); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if fallback <= 0 {
		return DefaultWidth
	}
	return fallback
}

// ClearLine moves to column 0, overwrites the line with width spaces and puts
// the cursor at the start of the previous line. This is approximate; terminals
// differ in how they wrap a full-width line.
func ClearLine(w io.Writer, width int) error {
	if _, err := io.WriteString(w, "\r"+strings.Repeat(" ", TerminalWidth(w, width))); err != nil {
		return err
	}
	termenv.NewOutput(w).CursorPrevLine(1)
	return nil
}

// ClearLine clears the current line of the logger's sink
func (l *Logger) ClearLine() error {
	return ClearLine(l.output, l.width)
}
