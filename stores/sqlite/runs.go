// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	RunStatusOK     = "ok"
	RunStatusFailed = "failed"
)

// Run is one attempt at solving a day's puzzle.
type Run struct {
	ID          int64
	Day         int
	InputPath   string
	InputDigest string
	Status      string
	ErrorCode   string
	ErrorMsg    string
	Elapsed     time.Duration
	CreatedAt   time.Time
	Answers     []string // part one, then part two; empty when the run failed
}

// InsertRun inserts a Run and its answers in one transaction and returns its assigned ID.
func (s *SQLiteStore) InsertRun(ctx context.Context, run *Run) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO runs (day, input_path, input_digest, status, error_code, error_msg, elapsed_us, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		run.Day,
		run.InputPath,
		run.InputDigest,
		run.Status,
		nullString(run.ErrorCode),
		nullString(run.ErrorMsg),
		run.Elapsed.Microseconds(),
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	for n, answer := range run.Answers {
		const query = `INSERT INTO answers (run_id, part, answer) VALUES (?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query, id, n+1, answer); err != nil {
			return 0, fmt.Errorf("insert answer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	run.ID = id
	return id, nil
}

// Runs returns the recorded runs, newest first. A day of 0 returns every day.
func (s *SQLiteStore) Runs(ctx context.Context, day int) ([]*Run, error) {
	const query = `
		SELECT id, day, input_path, input_digest, status, error_code, error_msg, elapsed_us, created_at
		FROM runs
		WHERE ? = 0 OR day = ?
		ORDER BY id DESC
	`
	rows, err := s.db.QueryContext(ctx, query, day, day)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	for _, run := range runs {
		if run.Answers, err = s.answers(ctx, run.ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// LastSuccess returns the newest successful run of the day for the given input digest.
// It returns nil, nil if there is no such run.
func (s *SQLiteStore) LastSuccess(ctx context.Context, day int, digest string) (*Run, error) {
	const query = `
		SELECT id, day, input_path, input_digest, status, error_code, error_msg, elapsed_us, created_at
		FROM runs
		WHERE day = ? AND input_digest = ? AND status = 'ok'
		ORDER BY id DESC
		LIMIT 1
	`
	rows, err := s.db.QueryContext(ctx, query, day, digest)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	} else if len(runs) == 0 {
		return nil, nil
	}
	if runs[0].Answers, err = s.answers(ctx, runs[0].ID); err != nil {
		return nil, err
	}
	return runs[0], nil
}

// Stats returns the number of rows in each table.
func (s *SQLiteStore) Stats(ctx context.Context) (map[string]int, error) {
	stats := map[string]int{}
	for _, table := range []string{"runs", "answers"} {
		var n int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		stats[table] = n
	}
	return stats, nil
}

func (s *SQLiteStore) answers(ctx context.Context, runID int64) ([]string, error) {
	const query = `SELECT answer FROM answers WHERE run_id = ? ORDER BY part`
	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var answers []string
	for rows.Next() {
		var answer string
		if err := rows.Scan(&answer); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, answer)
	}
	return answers, rows.Err()
}

func scanRuns(rows *sql.Rows) ([]*Run, error) {
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var errorCode, errorMsg sql.NullString
		var elapsed int64
		var createdAt string
		if err := rows.Scan(
			&run.ID,
			&run.Day,
			&run.InputPath,
			&run.InputDigest,
			&run.Status,
			&errorCode,
			&errorMsg,
			&elapsed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.ErrorCode, run.ErrorMsg = errorCode.String, errorMsg.String
		run.Elapsed = time.Duration(elapsed) * time.Microsecond
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			run.CreatedAt = t
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan runs: %w", err)
	}
	return runs, nil
}
