// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package calories totals the food carried by each elf.
package calories

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Totals returns the calorie total for each elf, in input order.
// Elves are separated by blank lines. The last elf does not need a
// trailing blank line.
func Totals(lines []string) ([]int, error) {
	var totals []int
	total, open := 0, false
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if open {
				totals = append(totals, total)
			}
			total, open = 0, false
			continue
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		total, open = total+value, true
	}
	if open {
		totals = append(totals, total)
	}
	return totals, nil
}

// Top returns the sum of the k largest totals.
// If there are fewer than k totals, all of them are summed.
func Top(totals []int, k int) int {
	sorted := append([]int(nil), totals...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	sum := 0
	for _, v := range sorted[:min(k, len(sorted))] {
		sum += v
	}
	return sum
}

// Solve returns the largest total and the sum of the three largest.
func Solve(lines []string) (int, int, error) {
	totals, err := Totals(lines)
	if err != nil {
		return 0, 0, err
	}
	return Top(totals, 1), Top(totals, 3), nil
}
