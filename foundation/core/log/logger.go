// File: logger.go
// Title: Console Logger Implementation
// Description: Implements the Logger type that writes severity-coloured,
//              optionally timestamped lines to a console sink and notifies a
//              single registered observer after every write.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Reworked into an unfiltered console logger with an observer hook

package log

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/msto63/caretaker/foundation/utils/timex"
)

// Observer receives every line after it has been written, without colour codes.
type Observer func(line string)

// ColorMode controls whether colour escape sequences are written
type ColorMode int

const (
	// ColorAuto colours output only when it goes to a terminal
	ColorAuto ColorMode = iota

	// ColorAlways forces ANSI colours
	ColorAlways

	// ColorNever writes plain text
	ColorNever
)

// String returns the string representation of the colour mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a colour mode
func ParseColorMode(value string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "true":
		return ColorAlways, nil
	case "never", "off", "false":
		return ColorNever, nil
	default:
		return ColorAuto, &ParseError{
			Input: value,
			Type:  "color mode",
		}
	}
}

// Config represents logger configuration
type Config struct {
	Output    io.Writer
	Color     ColorMode
	Timestamp bool             // default for Info, Warning, Error and friends
	Clock     func() time.Time // time source for timestamps
	Width     int              // fallback width for ClearLine when not on a terminal
}

// Logger writes coloured lines to a console sink.
//
// A Logger holds zero or one Observer. SetObserver replaces it; the last call
// wins. The observer is swapped atomically but writes are not serialised:
// concurrent Log calls may interleave on the sink.
type Logger struct {
	output    io.Writer
	renderer  *lipgloss.Renderer
	timestamp bool
	clock     func() time.Time
	width     int

	observer atomic.Pointer[Observer]
}

// New creates a logger writing to stdout with automatic colour detection
func New() *Logger {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		output:    config.Output,
		timestamp: config.Timestamp,
		clock:     config.Clock,
		width:     config.Width,
	}

	if logger.output == nil {
		logger.output = os.Stdout
	}
	if logger.clock == nil {
		logger.clock = time.Now
	}
	if logger.width <= 0 {
		logger.width = DefaultWidth
	}

	logger.renderer = lipgloss.NewRenderer(logger.output)
	switch config.Color {
	case ColorAlways:
		logger.renderer.SetColorProfile(termenv.ANSI)
	case ColorNever:
		logger.renderer.SetColorProfile(termenv.Ascii)
	}

	return logger
}

// SetObserver registers o as the observer, replacing any previous one.
// A nil o clears it.
func (l *Logger) SetObserver(o Observer) {
	if o == nil {
		l.observer.Store(nil)
		return
	}
	l.observer.Store(&o)
}

// Observer returns the registered observer, or nil
func (l *Logger) Observer() Observer {
	if o := l.observer.Load(); o != nil {
		return *o
	}
	return nil
}

// Output returns the sink the logger writes to
func (l *Logger) Output() io.Writer {
	return l.output
}

// Log writes message at the given severity.
//
// A nil message is written as "null". With timestamp set the line is prefixed
// with the local time as "[HH:MM:SS.mmm] ". The line is written in the
// severity's colour, the colour is reset, and the observer then receives the
// same line without colour codes.
func (l *Logger) Log(message any, timestamp bool, severity Severity) {
	line := stringify(message)
	if timestamp {
		line = "[" + timex.FormatClock(l.clock()) + "] " + line
	}

	fmt.Fprintln(l.output, l.render(severity, line))

	if o := l.observer.Load(); o != nil {
		(*o)(line)
	}
}

// Critical logs at SeverityCritical
func (l *Logger) Critical(message any) {
	l.Log(message, l.timestamp, SeverityCritical)
}

// Error logs at SeverityError; a nil message becomes "Error!"
func (l *Logger) Error(message any) {
	l.ErrorT(message, l.timestamp)
}

// ErrorT is Error with an explicit timestamp choice
func (l *Logger) ErrorT(message any, timestamp bool) {
	if message == nil {
		message = "Error!"
	}
	l.Log(message, timestamp, SeverityError)
}

// Warning logs at SeverityWarning; a nil message becomes "Warning!"
func (l *Logger) Warning(message any) {
	l.WarningT(message, l.timestamp)
}

// WarningT is Warning with an explicit timestamp choice
func (l *Logger) WarningT(message any, timestamp bool) {
	if message == nil {
		message = "Warning!"
	}
	l.Log(message, timestamp, SeverityWarning)
}

// Info logs at SeverityInfo
func (l *Logger) Info(message any) {
	l.InfoT(message, l.timestamp)
}

// InfoT is Info with an explicit timestamp choice
func (l *Logger) InfoT(message any, timestamp bool) {
	l.Log(message, timestamp, SeverityInfo)
}

// Verbose logs at SeverityVerbose
func (l *Logger) Verbose(message any) {
	l.Log(message, l.timestamp, SeverityVerbose)
}

// Debug logs at SeverityDebug
func (l *Logger) Debug(message any) {
	l.Log(message, l.timestamp, SeverityDebug)
}

// Warningf formats according to a format specifier and logs at SeverityWarning
func (l *Logger) Warningf(format string, args ...any) {
	l.Warning(fmt.Sprintf(format, args...))
}

// render styles each line separately so multi-line messages are not padded
func (l *Logger) render(severity Severity, text string) string {
	color, ok := severity.Color()
	if !ok {
		return text
	}

	style := l.renderer.NewStyle().
		Foreground(color).
		TabWidth(lipgloss.NoTabConversion)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// stringify renders a message; nil values, including nil slices and maps,
// print as "null"
func stringify(message any) string {
	if message == nil {
		return "null"
	}

	switch v := reflect.ValueOf(message); v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.Slice, reflect.Map:
		if v.IsNil() {
			return "null"
		}
	}

	return fmt.Sprint(message)
}

// Default logger instance
var defaultLogger = New()

// Default returns the default logger instance
func Default() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Global convenience functions using the default logger

// Log writes message using the default logger
func Log(message any, timestamp bool, severity Severity) {
	defaultLogger.Log(message, timestamp, severity)
}

// Info logs at SeverityInfo using the default logger
func Info(message any) {
	defaultLogger.Info(message)
}

// Warning logs at SeverityWarning using the default logger
func Warning(message any) {
	defaultLogger.Warning(message)
}

// Error logs at SeverityError using the default logger
func Error(message any) {
	defaultLogger.Error(message)
}
