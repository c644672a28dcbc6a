// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the replace-all helpers and small predicates shared by
//              the rest of the stringx package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Added split-and-join replacement, dropped unused helpers

package stringx

import (
	"strings"
	"unicode"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ReplaceAll replaces every non-overlapping occurrence of old with new,
// scanning left to right. The string is split on old and re-joined with new,
// so occurrences of old that new itself introduces are not replaced again.
// An empty old returns s unchanged.
func ReplaceAll(s, old, new string) string {
	if old == "" {
		return s
	}
	return strings.Join(strings.Split(s, old), new)
}

// ReplaceAllRune replaces every occurrence of the rune old with new.
func ReplaceAllRune(s string, old, new rune) string {
	return ReplaceAll(s, string(old), string(new))
}
