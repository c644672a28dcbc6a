// Package slicex implements bounds-safe access and partitioning helpers for Go slices.
//
// Package: slicex
// Title: Bounds-Safe Slice Utilities
// Description: Helpers that read from slices without panicking on a bad index,
//              search with an out-of-band index result and split slices into
//              parts. Inputs are never modified; every split returns freshly
//              allocated slices.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-19 v0.2.0: Refocused on the bounds-safe accessor and partition family
//
// Package Overview:
//
// # Bounds Checking
//
// IsIndexValid is the single bounds predicate. It is false for a nil slice
// regardless of the index. Every other helper here, and the string and enum
// helpers elsewhere in the module, call it instead of repeating the check.
//
// # Safe Accessors
//
//   - TryGet: element at an index, zero value when out of range
//   - GetFromIndexes: element of a slice of slices, zero value when either index is bad
//   - TryFindIndex: first index matching a predicate as (index, ok)
//   - IndexOf / LastIndexOf: first/last position of an element, -1 when absent
//   - Row / Column: lazy iter.Seq views over two-dimensional data
//
// Returning the zero value on a bad index is the documented contract. Callers
// that need to tell "missing" from "zero" check IsIndexValid first.
//
// # Partitioning
//
//   - SplitAt: two-way split consuming the element at the index
//   - SplitByFirst / SplitByLast: two-way split at the first/last matching element
//   - SplitAtIndexes: multi-way split that keeps every element
//
// The two-way splits report ok == false together with a nil tail when the
// position is invalid, which keeps "no second part" apart from "second part
// exists and is empty".
//
// # Usage Examples
//
//	head, tail, ok := slicex.SplitAt([]int{1, 2, 3, 4}, 1)
//	// head == [1], tail == [3 4], ok == true
//
//	for v := range slicex.Row(grid, 2) {
//		fmt.Println(v)
//	}
package slicex
