// File: enumx_test.go
// Title: Enumeration Resolution Tests
// Description: Tests for clamping, warning emission and the empty
//              enumeration failure.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package enumx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cterror "github.com/msto63/caretaker/foundation/core/error"
	"github.com/msto63/caretaker/foundation/core/log"
)

type color int

const (
	red color = iota
	green
	blue
)

func (c color) String() string {
	return [...]string{"red", "green", "blue"}[c]
}

func newObservedLogger() (*log.Logger, *[]string) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Output: &buf, Color: log.ColorNever})
	lines := &[]string{}
	logger.SetObserver(func(line string) { *lines = append(*lines, line) })
	return logger, lines
}

func TestResolve(t *testing.T) {
	members := Of[color](3)

	tests := []struct {
		name     string
		index    int
		want     string
		warnings []string
	}{
		{"first", 0, "red", nil},
		{"last", 2, "blue", nil},
		{"too large clamps to last", 5, "blue", []string{"enum index 5 out of range; defaulted to 2"}},
		{"negative clamps to first", -1, "red", []string{"enum index -1 out of range; defaulted to 0"}},
		{"just past end", 3, "blue", []string{"enum index 3 out of range; defaulted to 2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, lines := newObservedLogger()

			got, err := Resolve(logger, members, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if tt.warnings == nil {
				assert.Empty(t, *lines)
			} else {
				assert.Equal(t, tt.warnings, *lines)
			}
		})
	}
}

func TestResolveNames(t *testing.T) {
	logger, lines := newObservedLogger()
	names := Names{"ms", "sec", "min"}

	got, err := Resolve(logger, names, 1)
	require.NoError(t, err)
	assert.Equal(t, "sec", got)
	assert.Empty(t, *lines)
}

func TestResolveEmptyEnumeration(t *testing.T) {
	for name, m := range map[string]Members{
		"empty names":    Names{},
		"zero stringers": Of[color](0),
		"nil members":    nil,
	} {
		t.Run(name, func(t *testing.T) {
			logger, lines := newObservedLogger()

			got, err := Resolve(logger, m, 0)
			require.Error(t, err)
			assert.True(t, cterror.HasCode(err, cterror.CodeInvalidEnum))
			assert.Empty(t, got)
			assert.Empty(t, *lines)
		})
	}
}

func TestResolveNilLoggerUsesDefault(t *testing.T) {
	original := log.Default()
	t.Cleanup(func() { log.SetDefault(original) })

	logger, lines := newObservedLogger()
	log.SetDefault(logger)

	got, err := Resolve(nil, Names{"only"}, 9)
	require.NoError(t, err)
	assert.Equal(t, "only", got)
	assert.Len(t, *lines, 1)
}

func TestClamp(t *testing.T) {
	m := Names{"a", "b", "c"}

	idx, changed, err := Clamp(m, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.False(t, changed)

	idx, changed, err = Clamp(m, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.True(t, changed)
}

func TestMustResolve(t *testing.T) {
	logger, _ := newObservedLogger()

	assert.Equal(t, "green", MustResolve(logger, Of[color](3), 1))
	assert.Panics(t, func() { MustResolve(logger, Names{}, 0) })
}
