// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package crates

import "strings"

// Tops returns the top label of each stack in ascending id order.
// An empty stack is reported as a space.
func Tops(stacks Stacks) string {
	var sb strings.Builder
	for _, id := range stacks.IDs() {
		if top, ok := stacks[id].Top(); ok {
			sb.WriteRune(rune(top))
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
