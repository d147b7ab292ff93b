// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package cleanup compares the section assignments of pairs of elves.
package cleanup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// assignments have the form "START-END,START-END".
	rxPair = regexp.MustCompile(`^(\d+)-(\d+),(\d+)-(\d+)$`)
)

// Range is an inclusive range of section ids.
type Range struct {
	Start, End int
}

// Contains reports whether r covers all of o.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Pair is the assignments for two elves.
type Pair struct {
	First, Second Range
}

// ParsePair parses a line like "2-4,6-8".
func ParsePair(line string) (Pair, error) {
	matches := rxPair.FindStringSubmatch(line)
	if len(matches) != 5 {
		return Pair{}, fmt.Errorf("invalid pair %q", line)
	}
	var values [4]int
	for i := range values {
		v, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return Pair{}, fmt.Errorf("invalid pair %q: %w", line, err)
		}
		values[i] = v
	}
	return Pair{
		First:  Range{Start: values[0], End: values[1]},
		Second: Range{Start: values[2], End: values[3]},
	}, nil
}

// FullyContains reports whether either range covers the other.
func (p Pair) FullyContains() bool {
	return p.First.Contains(p.Second) || p.Second.Contains(p.First)
}

// Overlaps reports whether the ranges share a section.
func (p Pair) Overlaps() bool {
	return p.First.Overlaps(p.Second)
}

// Solve counts the pairs where one range contains the other and the
// pairs that overlap at all. Blank lines are skipped.
func Solve(lines []string) (int, int, error) {
	var contained, overlapping int
	for n, line := range lines {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		p, err := ParsePair(line)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %w", n+1, err)
		}
		if p.FullyContains() {
			contained++
		}
		if p.Overlaps() {
			overlapping++
		}
	}
	return contained, overlapping, nil
}
