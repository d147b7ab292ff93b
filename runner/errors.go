// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package runner

import (
	"errors"
	"fmt"

	"github.com/mdhender/advent2022/crates"
	"github.com/mdhender/advent2022/days"
)

// ErrReadInput is returned when the input file can't be read.
type ErrReadInput struct {
	Path string
	Err  error
}

func (e *ErrReadInput) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ErrReadInput) Unwrap() error {
	return e.Err
}

// ErrDatabase is returned when database operations fail.
type ErrDatabase struct {
	Op  string
	Err error
}

func (e *ErrDatabase) Error() string {
	return fmt.Sprintf("database %s: %v", e.Op, e.Err)
}

func (e *ErrDatabase) Unwrap() error {
	return e.Err
}

// Error code constants for database storage.
const (
	ErrCodeReadInput   = "READ_INPUT"
	ErrCodeDatabase    = "DATABASE"
	ErrCodeParseSyntax = "PARSE_SYNTAX_ERROR"
	ErrCodeSimulation  = "SIMULATION"
	ErrCodeUnknownDay  = "UNKNOWN_DAY"
	ErrCodeUnknown     = "UNKNOWN"
)

// ErrorCode returns the error code string for a given error.
func ErrorCode(err error) string {
	var readInput *ErrReadInput
	var database *ErrDatabase
	var parseError *crates.ParseError
	var moveError *crates.MoveError
	var unknownDay *days.ErrUnknownDay
	switch {
	case errors.As(err, &readInput):
		return ErrCodeReadInput
	case errors.As(err, &database):
		return ErrCodeDatabase
	case errors.As(err, &parseError):
		return ErrCodeParseSyntax
	case errors.As(err, &moveError):
		return ErrCodeSimulation
	case errors.As(err, &unknownDay):
		return ErrCodeUnknownDay
	default:
		return ErrCodeUnknown
	}
}
