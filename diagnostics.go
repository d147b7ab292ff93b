// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package advent2022

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mdhender/advent2022/crates"
)

// Diagnostic represents a parser error or warning with a position in the
// original input.
type Diagnostic struct {
	Severity slog.Level // Error, Warning, Info
	Message  string     // "invalid move"
	Line     int        // 1-based
	Column   int        // 1-based, character column
	Notes    []string   // optional additional help messages
}

// DiagnosticFromError returns a diagnostic for errors that carry a position.
func DiagnosticFromError(err error) (Diagnostic, bool) {
	var pe *crates.ParseError
	if !errors.As(err, &pe) || pe.Line == 0 {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Severity: slog.LevelError,
		Message:  "invalid move",
		Line:     pe.Line,
		Column:   pe.Column,
		Notes:    []string{`expected "move <count> from <source> to <destination>"`},
	}, true
}

// PrintDiagnostic writes the diagnostic, the offending line and a caret
// under the column.
func PrintDiagnostic(w io.Writer, diag Diagnostic, filename string, lines []string) {
	// Header: file:line:column: error: message
	_, _ = fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		filename, diag.Line, diag.Column,
		strings.ToLower(diag.Severity.String()), diag.Message)

	if 1 <= diag.Line && diag.Line <= len(lines) {
		line := lines[diag.Line-1]
		_, _ = fmt.Fprintf(w, "    %s\n", line)
		_, _ = fmt.Fprintf(w, "    %s^\n", strings.Repeat(" ", caretOffset(diag.Column, line)))
	}

	for _, note := range diag.Notes {
		_, _ = fmt.Fprintf(w, "    note: %s\n", note)
	}
}

// caretOffset returns the number of characters before the column,
// capped at one past the end of the line.
func caretOffset(column int, line string) int {
	return max(0, min(column-1, utf8.RuneCountInString(line)))
}
