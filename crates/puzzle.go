// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package crates

import (
	"fmt"
)

// Puzzle is a parsed day five input.
type Puzzle struct {
	Stacks Stacks
	Moves  []Move
}

// Parse splits the input at the first blank line. The lines before it are
// the diagram and its footer, the lines after it are move instructions.
// Trailing blank lines are ignored.
func Parse(lines []string) (*Puzzle, error) {
	sep := -1
	for n, line := range lines {
		if line == "" {
			sep = n
			break
		}
	}
	if sep < 0 {
		return nil, fmt.Errorf("missing blank line after diagram")
	}

	orders := lines[sep+1:]
	for len(orders) != 0 && orders[len(orders)-1] == "" {
		orders = orders[:len(orders)-1]
	}
	moves, err := ParseMoves(orders, sep+2)
	if err != nil {
		return nil, err
	}

	return &Puzzle{
		Stacks: ParseLayout(lines[:sep]),
		Moves:  moves,
	}, nil
}

// Run simulates the puzzle under the given mode and returns the tops.
// The puzzle's stacks are not modified.
func (p *Puzzle) Run(mode Mode) (string, error) {
	final, err := Run(p.Stacks, p.Moves, mode)
	if err != nil {
		return "", err
	}
	return Tops(final), nil
}

// Trace returns the tops after each move, starting with the initial stacks.
func (p *Puzzle) Trace(mode Mode) ([]string, error) {
	stacks := p.Stacks.Clone()
	trace := []string{Tops(stacks)}
	for n, move := range p.Moves {
		if err := Apply(stacks, move, mode); err != nil {
			return trace, &MoveError{Step: n + 1, Move: move, Err: err}
		}
		trace = append(trace, Tops(stacks))
	}
	return trace, nil
}

// Solve returns the tops under Single mode and under Block mode.
// Each mode runs on its own copy of the initial stacks.
func Solve(lines []string) (single, block string, err error) {
	p, err := Parse(lines)
	if err != nil {
		return "", "", err
	}
	if single, err = p.Run(Single); err != nil {
		return "", "", fmt.Errorf("single: %w", err)
	}
	if block, err = p.Run(Block); err != nil {
		return "", "", fmt.Errorf("block: %w", err)
	}
	return single, block, nil
}
