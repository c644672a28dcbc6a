// File: enumx.go
// Title: Enumeration Index Resolution
// Description: Clamps an arbitrary integer into the member range of a closed
//              enumeration and resolves the member name, logging a warning
//              whenever the index had to be clamped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package enumx resolves names of closed enumerations from untrusted indexes.
package enumx

import (
	"fmt"

	cterror "github.com/msto63/caretaker/foundation/core/error"
	"github.com/msto63/caretaker/foundation/core/log"
	"github.com/msto63/caretaker/foundation/utils/slicex"
)

// Members describes a closed enumeration with members 0..Len()-1
type Members interface {
	Len() int
	Name(i int) string
}

// Names is an enumeration given by its member names in index order
type Names []string

// Len returns the member count
func (n Names) Len() int { return len(n) }

// Name returns the name of member i
func (n Names) Name(i int) string { return n[i] }

// Enum is the constraint for integer enumerations with a String method
type Enum interface {
	~int
	fmt.Stringer
}

// Stringers adapts an integer enumeration with count members whose String
// method yields the member name.
type Stringers[E Enum] struct {
	count int
}

// Of returns the Members view of E with count members starting at zero
func Of[E Enum](count int) Stringers[E] {
	return Stringers[E]{count: count}
}

// Len returns the member count
func (s Stringers[E]) Len() int { return s.count }

// Name returns E(i).String()
func (s Stringers[E]) Name(i int) string { return E(i).String() }

// Clamp limits index to [0, m.Len()-1] and reports whether it changed.
// An enumeration without members yields a CodeInvalidEnum error.
func Clamp(m Members, index int) (int, bool, error) {
	if m == nil || m.Len() <= 0 {
		return 0, false, cterror.New("enumeration has no members").
			WithCode(cterror.CodeInvalidEnum).
			WithOperation("enumx.Clamp").
			WithDetail("index", index)
	}

	// zero-size elements, nothing is allocated
	if slicex.IsIndexValid(make([]struct{}, m.Len()), index) {
		return index, false, nil
	}
	return min(max(index, 0), m.Len()-1), true, nil
}

// Resolve returns the name of the member at index after clamping it into
// range. When the index is clamped, one warning naming the requested and the
// substituted index is written to logger (log.Default when nil).
//
// Resolve only fails for an enumeration without members.
func Resolve(logger *log.Logger, m Members, index int) (string, error) {
	clamped, changed, err := Clamp(m, index)
	if err != nil {
		return "", err
	}

	if changed {
		if logger == nil {
			logger = log.Default()
		}
		logger.Warningf("enum index %d out of range; defaulted to %d", index, clamped)
	}
	return m.Name(clamped), nil
}

// MustResolve is like Resolve but panics if the enumeration has no members.
// It simplifies initialization of package-level tables.
func MustResolve(logger *log.Logger, m Members, index int) string {
	name, err := Resolve(logger, m, index)
	if err != nil {
		panic(err)
	}
	return name
}
