// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package days maps day numbers to their puzzle solvers.
package days

import (
	"fmt"
	"strconv"

	"github.com/mdhender/advent2022/calories"
	"github.com/mdhender/advent2022/cleanup"
	"github.com/mdhender/advent2022/crates"
	"github.com/mdhender/advent2022/rps"
	"github.com/mdhender/advent2022/rucksack"
)

// Answers holds the answers to part one and part two.
type Answers [2]string

// Day is one puzzle.
type Day struct {
	Number int
	Name   string // spelled out, used in the input file name
	Title  string
	Solve  func(lines []string) (Answers, error)
}

// InputFile returns the name of the day's input file, e.g. "day_five.txt".
func (d Day) InputFile() string {
	return "day_" + d.Name + ".txt"
}

func (d Day) String() string {
	return fmt.Sprintf("day %d: %s", d.Number, d.Title)
}

// All is every puzzle, in day order.
var All = []Day{
	{Number: 1, Name: "one", Title: "Calorie Counting", Solve: ints(calories.Solve)},
	{Number: 2, Name: "two", Title: "Rock Paper Scissors", Solve: ints(rps.Solve)},
	{Number: 3, Name: "three", Title: "Rucksack Reorganization", Solve: ints(rucksack.Solve)},
	{Number: 4, Name: "four", Title: "Camp Cleanup", Solve: ints(cleanup.Solve)},
	{Number: 5, Name: "five", Title: "Supply Stacks", Solve: strs(crates.Solve)},
}

// ErrUnknownDay is returned by Lookup for a day with no solver.
type ErrUnknownDay struct {
	Day int
}

func (e *ErrUnknownDay) Error() string {
	return fmt.Sprintf("day %d: no solver", e.Day)
}

// Lookup returns the puzzle for day n.
func Lookup(n int) (Day, error) {
	for _, d := range All {
		if d.Number == n {
			return d, nil
		}
	}
	return Day{}, &ErrUnknownDay{Day: n}
}

// Select returns the puzzles named by args, which may be numbers ("5")
// or names ("five"). No args selects every puzzle.
func Select(args []string) ([]Day, error) {
	if len(args) == 0 {
		return All, nil
	}
	var list []Day
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			n = 0
			for _, d := range All {
				if d.Name == arg {
					n = d.Number
					break
				}
			}
			if n == 0 {
				return nil, fmt.Errorf("%q: not a day", arg)
			}
		}
		d, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, nil
}

func ints(solve func([]string) (int, int, error)) func([]string) (Answers, error) {
	return func(lines []string) (Answers, error) {
		part1, part2, err := solve(lines)
		if err != nil {
			return Answers{}, err
		}
		return Answers{strconv.Itoa(part1), strconv.Itoa(part2)}, nil
	}
}

func strs(solve func([]string) (string, string, error)) func([]string) (Answers, error) {
	return func(lines []string) (Answers, error) {
		part1, part2, err := solve(lines)
		if err != nil {
			return Answers{}, err
		}
		return Answers{part1, part2}, nil
	}
}
