// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package advent2022 holds the version and the parse diagnostics shared
// by the puzzle solvers.
package advent2022

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 5,
		Patch: 0,
		Build: semver.Commit(),
	}
)

func Version() semver.Version {
	return version
}
