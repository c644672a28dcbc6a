// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the caretaker toolkit to
//              classify the few hard failures it can produce.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to the codes the toolkit raises, added InvalidEnum

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// CodeInvalidEnum is raised when an enumeration has no members to resolve against
	CodeInvalidEnum Code = "INVALID_ENUM"

	// CodeValueOutOfRange marks a value rejected by a range check
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInvalidInput, CodeNotFound, CodeInvalidEnum,
		CodeValueOutOfRange, CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}
