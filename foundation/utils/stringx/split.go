// File: split.go
// Title: String Partitioning
// Description: Splits strings in two around a rune position or the first/last
//              occurrence of a rune, and into several parts at a list of rune
//              positions. Positions count runes, not bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"github.com/msto63/caretaker/foundation/utils/slicex"
)

// SplitByIndex splits s in two around the rune at position i, which is dropped:
// SplitByIndex("Split", 2) returns ("Spl", "it").
//
// Any i > -1 is accepted. A position at or past the end of s splits at the end
// and returns (s, ""). A negative position also returns (s, "").
func SplitByIndex(s string, i int) (string, string) {
	runes := []rune(s)
	if slicex.IsIndexValid(runes, i) || i > -1 {
		if i >= len(runes) {
			return s, ""
		}
		return string(runes[:i]), string(runes[i+1:])
	}
	return s, ""
}

// SplitByFirstRune splits s around the first occurrence of r.
// When r does not occur the result is (s, "").
func SplitByFirstRune(s string, r rune) (string, string) {
	return SplitByIndex(s, slicex.IndexOf([]rune(s), r))
}

// SplitByLastRune splits s around the last occurrence of r.
// When r does not occur the result is (s, "").
func SplitByLastRune(s string, r rune) (string, string) {
	return SplitByIndex(s, slicex.LastIndexOf([]rune(s), r))
}

// SplitByIndexes cuts s at the given rune positions without dropping anything:
// SplitByIndexes("Split This", 5, 7) returns ["Split", " T", "his"].
//
// Positions must be ascending. Positions at or past the end, and negative
// ones, are ignored. An empty s yields an empty result.
func SplitByIndexes(s string, indexes ...int) []string {
	pieces := slicex.SplitAtIndexes([]rune(s), indexes...)

	result := make([]string, len(pieces))
	for i, p := range pieces {
		result[i] = string(p)
	}
	return result
}
