// File: partition.go
// Title: Slice Partitioning
// Description: Implements two-way splits of a slice around a single position or
//              matching element, and multi-way splits at a list of positions.
//              All results are freshly allocated; the input is never modified.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package slicex

import "slices"

// SplitAt splits s around position i. The element at i is consumed: head holds
// s[:i] and tail holds s[i+1:].
//
// When i is not a valid index, SplitAt returns s itself, a nil tail and
// ok == false. A valid split always reports ok == true, even when tail is
// empty, so "no second part" and "empty second part" stay distinguishable.
func SplitAt[T any](s []T, i int) (head, tail []T, ok bool) {
	if !IsIndexValid(s, i) {
		return s, nil, false
	}
	head = slices.Clone(s[:i])
	tail = make([]T, len(s)-i-1)
	copy(tail, s[i+1:])
	return head, tail, true
}

// SplitByFirst splits s around the first occurrence of v.
// See SplitAt for the result contract.
func SplitByFirst[T comparable](s []T, v T) (head, tail []T, ok bool) {
	return SplitAt(s, IndexOf(s, v))
}

// SplitByLast splits s around the last occurrence of v.
// See SplitAt for the result contract.
func SplitByLast[T comparable](s []T, v T) (head, tail []T, ok bool) {
	return SplitAt(s, LastIndexOf(s, v))
}

// SplitAtIndexes cuts s into contiguous pieces at the given positions. No
// element is dropped: the pieces concatenate back to s.
//
// Positions at or past len(s) and negative positions are ignored. The
// positions are not sorted; callers must pass them in ascending order. An
// out-of-order position produces an empty piece rather than a panic. An empty
// input yields no pieces at all.
func SplitAtIndexes[T any](s []T, indexes ...int) [][]T {
	bounds := Boundaries(len(s), indexes...)

	pieces := make([][]T, 0, len(bounds))
	for k := 0; k < len(bounds)-1; k++ {
		from, to := bounds[k], bounds[k+1]
		if to < from {
			pieces = append(pieces, []T{})
			continue
		}
		pieces = append(pieces, slices.Clone(s[from:to]))
	}
	return pieces
}

// Boundaries returns the cut list used by SplitAtIndexes for a sequence of the
// given length: 0, then every position inside [0, length), then length.
// The leading 0 is itself dropped when length is 0.
func Boundaries(length int, indexes ...int) []int {
	bounds := make([]int, 0, len(indexes)+2)
	for _, idx := range append([]int{0}, indexes...) {
		if idx < 0 || idx >= length {
			continue
		}
		bounds = append(bounds, idx)
	}
	return append(bounds, length)
}
