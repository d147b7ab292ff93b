// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package crates

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// move instructions have the form "move COUNT from SOURCE to DESTINATION".
	rxMove = regexp.MustCompile(`^move (\d{1,2}) from (\d) to (\d)$`)
)

// Move is a single crane instruction.
type Move struct {
	Count int
	From  ID
	To    ID
}

func (m Move) String() string {
	return fmt.Sprintf("move %d from %d to %d", m.Count, m.From, m.To)
}

// ParseError is returned when a move instruction does not match the
// expected pattern.
type ParseError struct {
	Line   int // 1-based line number in the input, 0 if not known
	Column int // 1-based column where the text stops matching
	Text   string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid move %q", e.Line, e.Text)
	}
	return fmt.Sprintf("invalid move %q", e.Text)
}

// ParseMove parses one move instruction.
// The whole line must match; trailing content is rejected.
func ParseMove(line string) (Move, error) {
	matches := rxMove.FindStringSubmatch(line)
	// length of matches is 4 because it includes the whole string in the slice
	if len(matches) != 4 {
		return Move{}, &ParseError{Column: mismatchAt(line), Text: line}
	}
	// the pattern guarantees the fields are short runs of digits
	count, _ := strconv.Atoi(matches[1])
	from, _ := strconv.Atoi(matches[2])
	to, _ := strconv.Atoi(matches[3])
	return Move{Count: count, From: ID(from), To: ID(to)}, nil
}

// ParseMoves parses a block of move instructions in order.
// firstLine is the line number of lines[0] and is used in errors.
// It stops at the first line that fails to parse.
func ParseMoves(lines []string, firstLine int) ([]Move, error) {
	moves := make([]Move, 0, len(lines))
	for n, line := range lines {
		move, err := ParseMove(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = firstLine + n
			}
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// mismatchAt returns the 1-based column of the first character that
// doesn't fit the move pattern, or len(line)+1 when the line ends early.
func mismatchAt(line string) int {
	pos := 0
	word := func(w string) bool {
		if len(line)-pos < len(w) || line[pos:pos+len(w)] != w {
			return false
		}
		pos += len(w)
		return true
	}
	digits := func(limit int) bool {
		n := 0
		for pos < len(line) && n < limit && '0' <= line[pos] && line[pos] <= '9' {
			pos, n = pos+1, n+1
		}
		return n != 0
	}
	// on a full match, pos stops at the trailing content
	_ = word("move ") && digits(2) && word(" from ") && digits(1) && word(" to ") && digits(1)
	return pos + 1
}
