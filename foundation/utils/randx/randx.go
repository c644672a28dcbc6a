// File: randx.go
// Title: Injectable Randomness Helpers
// Description: Weighted coin flips and uniform element selection drawing from
//              a caller-supplied randomness source, so tests can seed it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package randx provides coin flips and random element selection on top of an
// injectable source.
package randx

import (
	"math/rand/v2"
)

// Source is the randomness consumed by this package. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

type globalSource struct{}

func (globalSource) IntN(n int) int    { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// Default returns the process-wide, automatically seeded source.
// It is safe for concurrent use.
func Default() Source {
	return globalSource{}
}

// NewSeeded returns a deterministic source for the given seed.
// The returned source is not safe for concurrent use.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FlipCoin returns true with probability chance. One uniform draw in [0, 1)
// is compared strictly less than chance, so chance <= 0 never succeeds and
// chance >= 1 always does. A nil src uses Default.
func FlipCoin(src Source, chance float64) bool {
	if src == nil {
		src = Default()
	}
	return src.Float64() < chance
}

// Coin is FlipCoin with an even chance.
func Coin(src Source) bool {
	return FlipCoin(src, 0.5)
}

// Element returns a uniformly chosen element of s using a fresh draw in
// [0, len(s)). It returns the zero value of T for an empty slice. A nil src
// uses Default.
func Element[T any](src Source, s []T) T {
	if len(s) == 0 {
		var zero T
		return zero
	}
	if src == nil {
		src = Default()
	}
	return s[src.IntN(len(s))]
}
