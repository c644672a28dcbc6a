// File: timex.go
// Title: Time Unit Conversion and Clock Helpers
// Description: Converts scalar values between fixed time granularities from
//              milliseconds up to weeks and provides the clock readings used
//              for log timestamps.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with parsing, formatting and business days
// - 2026-10-19 v0.2.0: Replaced with unit conversion and clock helpers

package timex

import (
	"fmt"
	"strings"
	"time"

	cterror "github.com/msto63/caretaker/foundation/core/error"
)

// ClockFormat is the wall-clock layout used for log timestamps
const ClockFormat = "15:04:05.000"

// Unit is a time granularity. Units are ordered from finest to coarsest.
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
)

// multipliers[i] is the number of Unit(i) in one Unit(i+1)
var multipliers = [...]float64{1000, 60, 60, 24, 7}

var unitNames = [...]string{"ms", "sec", "min", "hour", "day", "week"}

// String returns the short name of the unit
func (u Unit) String() string {
	if !u.IsValid() {
		return "unknown"
	}
	return unitNames[u]
}

// IsValid reports whether u is one of the six defined units
func (u Unit) IsValid() bool {
	return u >= Millisecond && u <= Week
}

// ParseUnit parses a unit name. Short names, singular and plural long names
// are accepted, case-insensitively.
func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ms", "millisecond", "milliseconds":
		return Millisecond, nil
	case "s", "sec", "second", "seconds":
		return Second, nil
	case "m", "min", "minute", "minutes":
		return Minute, nil
	case "h", "hour", "hours":
		return Hour, nil
	case "d", "day", "days":
		return Day, nil
	case "w", "week", "weeks":
		return Week, nil
	default:
		return Millisecond, cterror.New(fmt.Sprintf("unknown time unit: %q", value)).
			WithCode(cterror.CodeInvalidInput).
			WithOperation("timex.ParseUnit")
	}
}

// AllUnits returns every unit from finest to coarsest
func AllUnits() []Unit {
	return []Unit{Millisecond, Second, Minute, Hour, Day, Week}
}

// Convert converts value from one unit to another. Converting to a finer unit
// multiplies, converting to a coarser unit divides:
//
//	Convert(2, Hour, Second)    // 7200
//	Convert(7200, Second, Hour) // 2
//
// The factor is the product of the multipliers for every unit boundary
// crossed. Equal units, and units outside Millisecond..Week, return value
// unchanged.
func Convert(value float64, from, to Unit) float64 {
	if from == to || !from.IsValid() || !to.IsValid() {
		return value
	}

	factor := 1.0
	for i := min(from, to); i < max(from, to); i++ {
		factor *= multipliers[i]
	}

	if from > to {
		return value * factor
	}
	return value / factor
}

// ToDuration converts a value expressed in unit into a time.Duration
func ToDuration(value float64, unit Unit) time.Duration {
	return time.Duration(Convert(value, unit, Millisecond) * float64(time.Millisecond))
}

// FormatClock formats t in local time as HH:MM:SS.mmm
func FormatClock(t time.Time) string {
	return t.Local().Format(ClockFormat)
}

// CurrentTime returns the local wall-clock time as HH:MM:SS.mmm
func CurrentTime() string {
	return FormatClock(time.Now())
}

// NowMillis returns the current UTC time as Unix milliseconds
func NowMillis() int64 {
	return time.Now().UTC().UnixMilli()
}
