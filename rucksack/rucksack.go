// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package rucksack finds items shared between rucksack compartments.
package rucksack

import (
	"fmt"
	"strings"
)

// Priority returns 1-26 for a-z and 27-52 for A-Z.
// It returns false for any other item.
func Priority(item rune) (int, bool) {
	switch {
	case 'a' <= item && item <= 'z':
		return int(item-'a') + 1, true
	case 'A' <= item && item <= 'Z':
		return int(item-'A') + 27, true
	}
	return 0, false
}

// Compartments splits the contents into two equal halves.
func Compartments(contents string) (string, string) {
	half := len(contents) / 2
	return contents[:half], contents[half:]
}

// Shared returns the first item of the first string that appears in every other string.
func Shared(first string, others ...string) (rune, bool) {
	for _, item := range first {
		found := true
		for _, other := range others {
			if !strings.ContainsRune(other, item) {
				found = false
				break
			}
		}
		if found {
			return item, true
		}
	}
	return 0, false
}

func priorityOf(first string, others ...string) (int, error) {
	item, ok := Shared(first, others...)
	if !ok {
		return 0, fmt.Errorf("no shared item")
	}
	p, ok := Priority(item)
	if !ok {
		return 0, fmt.Errorf("item %q: no priority", item)
	}
	return p, nil
}

// Solve returns the priority sum of the items shared by each rucksack's
// compartments and the priority sum of the badges shared by each
// complete group of three rucksacks. Blank lines are skipped and
// rucksacks left over after the last complete group have no badge.
func Solve(lines []string) (int, int, error) {
	var sacks []string
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			sacks = append(sacks, line)
		}
	}

	part1 := 0
	for n, sack := range sacks {
		p, err := priorityOf(Compartments(sack))
		if err != nil {
			return 0, 0, fmt.Errorf("rucksack %d: %w", n+1, err)
		}
		part1 += p
	}

	part2 := 0
	for n := 0; n+3 <= len(sacks); n += 3 {
		p, err := priorityOf(sacks[n], sacks[n+1], sacks[n+2])
		if err != nil {
			return 0, 0, fmt.Errorf("group %d: %w", n/3+1, err)
		}
		part2 += p
	}

	return part1, part2, nil
}
