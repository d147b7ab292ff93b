// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package crates simulates the day five supply stacks: a diagram of
// labeled crates, a list of crane moves, and the crates left on top.
package crates

import (
	"sort"
)

// ID identifies a stack. Ids start at 1 and are assigned left to right
// by column position in the diagram.
type ID int

// Label is the single character marking a crate.
type Label rune

// Stack is an ordered sequence of labels, bottom to top.
type Stack []Label

// Top returns the top label, or false if the stack is empty.
func (s Stack) Top() (Label, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

func (s Stack) String() string {
	runes := make([]rune, len(s))
	for i, l := range s {
		runes[i] = rune(l)
	}
	return string(runes)
}

// Stacks maps every stack id found in the diagram to its stack.
// Empty stacks are present as keys.
type Stacks map[ID]Stack

// Clone returns a deep copy so that a simulation never shares
// backing arrays with the caller's mapping.
func (s Stacks) Clone() Stacks {
	c := make(Stacks, len(s))
	for id, stack := range s {
		c[id] = append(make(Stack, 0, len(stack)), stack...)
	}
	return c
}

// IDs returns the stack ids in ascending order.
func (s Stacks) IDs() []ID {
	ids := make([]ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}

// Count returns the total number of crates across all stacks.
func (s Stacks) Count() int {
	n := 0
	for _, stack := range s {
		n += len(stack)
	}
	return n
}
