// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package crates

import (
	"strings"
)

// Read is the result of reading one column of a diagram row.
type Read int

const (
	// Finished means the row has no character at the column's offset.
	Finished Read = iota
	// Empty means the column is blank on this row.
	Empty
	// Found means the column holds a crate.
	Found
)

func (r Read) String() string {
	switch r {
	case Finished:
		return "finished"
	case Empty:
		return "empty"
	case Found:
		return "found"
	}
	return "unknown"
}

// ReadColumn reads column k (1-based) of a diagram row.
// The label for column k sits at character offset 4*(k-1)+1.
func ReadColumn(row []rune, k ID) (Read, Label) {
	offset := 4*(int(k)-1) + 1
	if k < 1 || offset >= len(row) {
		return Finished, 0
	}
	if row[offset] == ' ' {
		return Empty, 0
	}
	return Found, Label(row[offset])
}

// columnsFor returns the most columns a row of the given width can hold.
func columnsFor(width int) int {
	return (width + 2) / 4
}

// isCrateRow reports whether the first non-blank character is an opening bracket.
// The footer of stack numbers and the separator line are not crate rows.
func isCrateRow(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "[")
}

// ParseLayout converts the diagram lines into the initial stacks.
//
// Rows are given top-down, as they appear in the input. Lines that are not
// crate rows are ignored, so the footer and blank lines may be passed in.
// A blank column still creates its stack, and scanning a row stops at its
// ragged end.
func ParseLayout(lines []string) Stacks {
	var rows [][]rune
	width := 0
	for _, line := range lines {
		if !isCrateRow(line) {
			continue
		}
		row := []rune(line)
		rows = append(rows, row)
		width = max(width, len(row))
	}

	stacks := Stacks{}
	maxColumns := ID(columnsFor(width))
	// walk the rows bottom-up so that each label is pushed onto the top
	for i := len(rows) - 1; i >= 0; i-- {
		for k := ID(1); k <= maxColumns; k++ {
			read, label := ReadColumn(rows[i], k)
			if read == Finished {
				break
			}
			stack := stacks[k]
			if read == Found {
				stack = append(stack, label)
			} else if stack == nil {
				stack = Stack{}
			}
			stacks[k] = stack
		}
	}
	return stacks
}
