// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package crates_test

import (
	"errors"
	"testing"

	"github.com/mdhender/advent2022/crates"
)

func TestParseMove(t *testing.T) {
	for _, tc := range []struct {
		line string
		want crates.Move
	}{
		{"move 13 from 2 to 5", crates.Move{Count: 13, From: 2, To: 5}},
		{"move 3 from 2 to 5", crates.Move{Count: 3, From: 2, To: 5}},
		{"move 0 from 1 to 1", crates.Move{Count: 0, From: 1, To: 1}},
	} {
		got, err := crates.ParseMove(tc.line)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.line, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.line, got, tc.want)
		}
	}
}

func TestParseMove_Rejects(t *testing.T) {
	for _, line := range []string{
		"INVALID ORDER",
		"",
		"move 123 from 1 to 2",
		"move 1 from 12 to 2",
		"move 1 from 1 to 2 ",
		" move 1 from 1 to 2",
		"move 1 from 1 to 2 please",
		"move x from 1 to 2",
	} {
		move, err := crates.ParseMove(line)
		if err == nil {
			t.Errorf("%q: got %+v, want error", line, move)
			continue
		}
		var pe *crates.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: got %T, want *ParseError", line, err)
		} else if pe.Text != line {
			t.Errorf("%q: error names %q", line, pe.Text)
		}
		if move != (crates.Move{}) {
			t.Errorf("%q: got %+v with error", line, move)
		}
	}
}

func TestParseMoves_ReportsLineNumber(t *testing.T) {
	_, err := crates.ParseMoves([]string{
		"move 1 from 2 to 1",
		"move 3 from 1 to 3",
		"INVALID ORDER",
	}, 10)
	var pe *crates.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if pe.Line != 12 {
		t.Errorf("line = %d, want 12", pe.Line)
	}
	if got, want := pe.Error(), `line 12: invalid move "INVALID ORDER"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseMove_Column(t *testing.T) {
	for _, tc := range []struct {
		line   string
		column int
	}{
		{"INVALID ORDER", 1},
		{"move 123 from 1 to 2", 8},
		{"move 1 from 12 to 2", 14},
		{"move 1 from 1 to 2 please", 19},
		{"move 1 from 1", 14},
		{"move 1 from 1 to 2 ½ more", 19},
		{"move ½ from 1 to 2", 6},
	} {
		_, err := crates.ParseMove(tc.line)
		var pe *crates.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: got %v, want *ParseError", tc.line, err)
		}
		if pe.Column != tc.column {
			t.Errorf("%q: column %d, want %d", tc.line, pe.Column, tc.column)
		}
	}
}
