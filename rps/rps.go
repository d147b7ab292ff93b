// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package rps scores a rock, paper, scissors strategy guide.
package rps

import (
	"fmt"
	"strings"
)

// Shape is a hand shape. Its value is the shape's score.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// beats returns the shape that s defeats.
func (s Shape) beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	}
	return Paper
}

// losesTo returns the shape that defeats s.
func (s Shape) losesTo() Shape {
	switch s {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	}
	return Rock
}

// Outcome is the result of a round for the player. Its value is the outcome's score.
type Outcome int

const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	case Win:
		return "win"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Play returns the outcome for a player showing mine against theirs.
func Play(mine, theirs Shape) Outcome {
	switch {
	case mine == theirs:
		return Draw
	case mine.beats() == theirs:
		return Win
	}
	return Lose
}

// Choose returns the shape that produces the wanted outcome against theirs.
func Choose(theirs Shape, want Outcome) Shape {
	switch want {
	case Win:
		return theirs.losesTo()
	case Lose:
		return theirs.beats()
	}
	return theirs
}

// Round is one line of the guide: the opponent's shape and the second column.
type Round struct {
	Opponent Shape
	Column   byte // 'X', 'Y' or 'Z'
}

// ParseRound parses a line like "A Y".
func ParseRound(line string) (Round, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 1 || len(fields[1]) != 1 {
		return Round{}, fmt.Errorf("invalid round %q", line)
	}
	var r Round
	switch fields[0][0] {
	case 'A':
		r.Opponent = Rock
	case 'B':
		r.Opponent = Paper
	case 'C':
		r.Opponent = Scissors
	default:
		return Round{}, fmt.Errorf("invalid round %q: unknown shape %q", line, fields[0])
	}
	switch r.Column = fields[1][0]; r.Column {
	case 'X', 'Y', 'Z':
	default:
		return Round{}, fmt.Errorf("invalid round %q: unknown code %q", line, fields[1])
	}
	return r, nil
}

// Score treats the second column as the shape to play.
func (r Round) Score() int {
	mine := Rock + Shape(r.Column-'X')
	return int(mine) + int(Play(mine, r.Opponent))
}

// DecodedScore treats the second column as the outcome to reach.
func (r Round) DecodedScore() int {
	want := Outcome(3 * int(r.Column-'X'))
	return int(Choose(r.Opponent, want)) + int(want)
}

// Solve returns the total score under both readings of the guide.
// Blank lines are skipped.
func Solve(lines []string) (int, int, error) {
	var part1, part2 int
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRound(line)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %w", n+1, err)
		}
		part1 += r.Score()
		part2 += r.DecodedScore()
	}
	return part1, part2, nil
}
