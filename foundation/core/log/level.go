// File: level.go
// Title: Log Severity Definitions
// Description: Defines the six fixed severities of the console logger. A
//              severity only selects the display colour of a line; nothing is
//              ever filtered by severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Replaced filter levels with display-only severities

package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Severity represents the importance of a log line
type Severity int

const (
	// SeverityCritical marks failures the program cannot recover from
	SeverityCritical Severity = iota

	// SeverityError marks failed operations
	SeverityError

	// SeverityWarning marks suspicious input or degraded behaviour
	SeverityWarning

	// SeverityInfo is the default severity
	SeverityInfo

	// SeverityVerbose carries detail beyond normal operation
	SeverityVerbose

	// SeverityDebug carries developer diagnostics
	SeverityDebug
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityVerbose:
		return "verbose"
	case SeverityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Color returns the foreground colour for the severity. Info and unknown
// severities keep the terminal's default colour and report ok == false.
func (s Severity) Color() (color lipgloss.TerminalColor, ok bool) {
	switch s {
	case SeverityCritical, SeverityError:
		return lipgloss.ANSIColor(1), true // red
	case SeverityWarning:
		return lipgloss.ANSIColor(3), true // yellow
	case SeverityVerbose, SeverityDebug:
		return lipgloss.ANSIColor(8), true // dark grey
	default:
		return nil, false
	}
}

// ParseSeverity parses a string into a severity
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "critical", "crit", "fatal":
		return SeverityCritical, nil
	case "error", "err":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info", "information":
		return SeverityInfo, nil
	case "verbose", "trace":
		return SeverityVerbose, nil
	case "debug", "dbg":
		return SeverityDebug, nil
	default:
		return SeverityInfo, &ParseError{
			Input: value,
			Type:  "severity",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllSeverities returns every severity from most to least important
func AllSeverities() []Severity {
	return []Severity{
		SeverityCritical,
		SeverityError,
		SeverityWarning,
		SeverityInfo,
		SeverityVerbose,
		SeverityDebug,
	}
}
