// Package error provides the structured error type of the caretaker toolkit.
//
// Package: error
// Title: Structured Errors
// Description: Errors carrying a classification code, the failing operation and
//              free-form details. Most toolkit helpers return fallback values
//              instead of errors; this package covers the few hard failures
//              (empty enumerations, bad configuration, invalid CLI input).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to codes, operation and details
//
// Usage:
//
//	err := cterror.New("enumeration has no members").
//		WithCode(cterror.CodeInvalidEnum).
//		WithOperation("enumx.Clamp")
//
//	if cterror.HasCode(err, cterror.CodeInvalidEnum) {
//		// ...
//	}
//
// Wrap keeps the code of a wrapped *Error, and Unwrap makes the chain visible
// to errors.Is and errors.As.
package error
