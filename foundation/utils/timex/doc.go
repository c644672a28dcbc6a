// Package timex converts values between time units and reads the wall clock.
//
// Package: timex
// Title: Time Unit Conversion for Go
// Description: Six fixed units from Millisecond to Week with successive
//              multipliers 1000, 60, 60, 24 and 7, plus the clock formatting
//              used by the console logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Unit conversion and clock helpers
//
// Units are ordered by index, Millisecond being the finest. Converting from a
// higher index to a lower one (for example Hour to Second) multiplies by every
// multiplier between them; the opposite direction divides.
//
//	timex.Convert(2, timex.Hour, timex.Second) // 7200
package timex
