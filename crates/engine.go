// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package crates

import (
	"errors"
	"fmt"
)

// Mode selects how a crane moves more than one crate.
type Mode int

const (
	// Single moves crates one at a time, reversing their order.
	Single Mode = iota
	// Block moves crates as one block, keeping their order.
	Block
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Block:
		return "block"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts "single" or "block" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "single":
		return Single, nil
	case "block":
		return Block, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

var (
	ErrUnknownStack    = errors.New("unknown stack")
	ErrNotEnoughCrates = errors.New("not enough crates")
)

// MoveError reports a move that could not be applied.
type MoveError struct {
	Step int // 1-based position in the move sequence
	Move Move
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("step %d: %s: %v", e.Step, e.Move, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Apply applies a single move to the stacks in place.
//
// It returns ErrUnknownStack if either stack is missing and
// ErrNotEnoughCrates if the source holds fewer than Count crates.
// The stacks are not changed when an error is returned.
func Apply(stacks Stacks, move Move, mode Mode) error {
	if mode != Single && mode != Block {
		return fmt.Errorf("mode %d: unknown mode", int(mode))
	}
	from, ok := stacks[move.From]
	if !ok {
		return fmt.Errorf("from %d: %w", move.From, ErrUnknownStack)
	}
	to, ok := stacks[move.To]
	if !ok {
		return fmt.Errorf("to %d: %w", move.To, ErrUnknownStack)
	}
	if move.Count < 0 || move.Count > len(from) {
		return fmt.Errorf("stack %d holds %d, want %d: %w", move.From, len(from), move.Count, ErrNotEnoughCrates)
	}
	if move.Count == 0 || move.From == move.To {
		return nil
	}

	cut := len(from) - move.Count
	block := from[cut:]
	switch mode {
	case Single:
		for i := len(block) - 1; i >= 0; i-- {
			to = append(to, block[i])
		}
	case Block:
		to = append(to, block...)
	}
	// cut a copy so the source never shares storage with the destination
	stacks[move.From] = append(Stack(nil), from[:cut]...)
	stacks[move.To] = to
	return nil
}

// Run applies the moves, in order, to a copy of the stacks and returns
// the final stacks. The caller's stacks are never modified.
// The first move that fails aborts the run.
func Run(stacks Stacks, moves []Move, mode Mode) (Stacks, error) {
	final := stacks.Clone()
	for n, move := range moves {
		if err := Apply(final, move, mode); err != nil {
			return nil, &MoveError{Step: n + 1, Move: move, Err: err}
		}
	}
	return final, nil
}
