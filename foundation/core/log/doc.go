// Package log provides the leveled console logger of the caretaker toolkit.
//
// Package: log
// Title: Leveled Console Logging
// Description: Writes one severity-coloured, optionally timestamped line per
//              call to a console sink and hands the plain line to a single
//              observer. There is no filtering: every severity is written.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Console logger with observer hook, severities select colour only
//
// Severities and colours:
//   - Critical, Error: red
//   - Warning: yellow
//   - Verbose, Debug: dark grey
//   - Info: terminal default
//
// Colours are rendered with lipgloss. ColorAuto only colours a terminal sink,
// ColorAlways forces ANSI sequences and ColorNever writes plain text.
//
// Observer:
//
// Each Logger holds zero or one Observer, called synchronously after the line
// has been written, with the timestamped text and no colour codes. A new
// SetObserver call replaces the previous observer.
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Timestamp: true})
//	logger.SetObserver(func(line string) { history = append(history, line) })
//
//	logger.Info("cache warmed")
//	logger.Warning(nil) // "Warning!"
//	logger.Log(err, false, log.SeverityCritical)
//
// The package-level Info, Warning, Error and Log functions use the default
// logger, which writes to stdout.
package log
