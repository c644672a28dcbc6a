// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string partitioning, replacement and
//              locale-aware matching helpers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Refocused on partitioning, replacement and matching

// Package stringx provides string partitioning, replacement and matching helpers.
//
// Overview
//
// Strings are treated as sequences of runes: every position taken or returned
// by this package counts runes, so a split never lands inside a multi-byte
// character. Bounds checks go through slicex.IsIndexValid.
//
// Partitioning
//
//   - SplitByIndex: split in two around a position, dropping the rune there
//   - SplitByFirstRune / SplitByLastRune: split around the first/last occurrence of a rune
//   - SplitByIndexes: split into several parts at ascending positions, dropping nothing
//
// A position that cannot be split on yields the input unchanged paired with an
// empty second part. A position at or past the end splits at the end.
//
// Replacement
//
// ReplaceAll splits on the old substring and joins with the new one. This is a
// simultaneous replacement: when the replacement contains the old substring,
// the inserted copies are left alone.
//
//	stringx.ReplaceAll("aXaXa", "X", "YX") // "aYXaYXa"
//
// Matching
//
// MatchAny compares case-insensitively using the case mapping of the process
// locale (LC_ALL, LC_MESSAGES, LANG). MatchAnyIn takes the locale explicitly,
// which matters for languages such as Turkish where "I" does not lower to "i".
//
//	stringx.MatchAny("HELLO", "hello", "world") // true
package stringx
