// File: access.go
// Title: Bounds-Safe Slice Access
// Description: Implements bounds-safe indexed reads on slices and slices of
//              slices, predicate search with an out-of-band index result and
//              lazy row/column views over two-dimensional data.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-19 v0.2.0: Reworked into the bounds-safe accessor family

package slicex

import "iter"

// ===============================
// Bounds Checking
// ===============================

// IsIndexValid reports whether i addresses an element of s.
// A nil slice has no valid index.
//
// Every bounds-checking helper in this module goes through IsIndexValid.
func IsIndexValid[T any](s []T, i int) bool {
	return s != nil && i >= 0 && i < len(s)
}

// ===============================
// Safe Accessors
// ===============================

// TryGet returns the element at i, or the zero value of T when i is not a
// valid index of s. It never panics.
func TryGet[T any](s []T, i int) T {
	if IsIndexValid(s, i) {
		return s[i]
	}
	var zero T
	return zero
}

// GetFromIndexes returns s[i][j], or the zero value of T when either index is
// out of range. The row index is checked first; the inner slice is not touched
// when i is already invalid.
func GetFromIndexes[T any](s [][]T, i, j int) T {
	if IsIndexValid(s, i) && IsIndexValid(s[i], j) {
		return s[i][j]
	}
	var zero T
	return zero
}

// ===============================
// Search
// ===============================

// TryFindIndex returns the index of the first element for which match returns
// true, scanning from the front. It reports (-1, false) when nothing matches,
// the slice is empty or match is nil.
//
// The index passed to match starts at -1 and is incremented before each test,
// so the first element is tested with index 0.
func TryFindIndex[T any](s []T, match func(T, int) bool) (int, bool) {
	index := -1
	if match == nil {
		return index, false
	}

	for _, item := range s {
		index++
		if match(item, index) {
			return index, true
		}
	}
	return -1, false
}

// IndexOf returns the first index of the element, or -1 if not found
func IndexOf[T comparable](s []T, element T) int {
	for i, item := range s {
		if item == element {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index of the element, or -1 if not found
func LastIndexOf[T comparable](s []T, element T) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == element {
			return i
		}
	}
	return -1
}

// ===============================
// Two-Dimensional Views
// ===============================

// Row returns a lazy sequence over the elements of m[row]. The sequence can be
// ranged over any number of times and reflects m at iteration time. An invalid
// row yields nothing.
func Row[T any](m [][]T, row int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !IsIndexValid(m, row) {
			return
		}
		for col := 0; col < len(m[row]); col++ {
			if !yield(m[row][col]) {
				return
			}
		}
	}
}

// Column returns a lazy sequence over m[r][col] for every row r. Rows too short
// to hold col are skipped.
func Column[T any](m [][]T, col int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := range m {
			if !IsIndexValid(m[r], col) {
				continue
			}
			if !yield(m[r][col]) {
				return
			}
		}
	}
}
