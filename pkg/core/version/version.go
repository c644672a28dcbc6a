// ============================================================================
// caretaker - Extension Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolkit and its packages
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version constants for the toolkit
const (
	// Toolkit version
	Toolkit = "1.0.0"

	// Package versions
	Log     = "1.0.0"
	Errors  = "1.0.0"
	Slicex  = "1.0.0"
	Stringx = "1.0.0"
	Timex   = "1.0.0"
	Enumx   = "1.0.0"
	Randx   = "1.0.0"
)

// Build metadata, set via -ldflags
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given package name
func ComponentVersion(name string) string {
	switch strings.ToLower(name) {
	case "log":
		return Log
	case "error", "errors":
		return Errors
	case "slicex":
		return Slicex
	case "stringx":
		return Stringx
	case "timex":
		return Timex
	case "enumx":
		return Enumx
	case "randx":
		return Randx
	default:
		return Toolkit
	}
}

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Toolkit,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the information as a multi-line block
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "caretaker v%s\n", i.Version)
	fmt.Fprintf(&b, "  Git Commit: %s\n", i.GitCommit)
	fmt.Fprintf(&b, "  Build Date: %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  Go Version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "  OS/Arch:    %s\n", i.Platform)
	return b.String()
}
