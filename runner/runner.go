// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package runner loads a day's input, solves it and records the answers.
package runner

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mdhender/advent2022/days"
	"github.com/mdhender/advent2022/inputs"
	store "github.com/mdhender/advent2022/stores/sqlite"
	"github.com/spf13/afero"
)

// HistoryStore defines the store operations needed by Runner.
type HistoryStore interface {
	InsertRun(ctx context.Context, run *store.Run) (int64, error)
	LastSuccess(ctx context.Context, day int, digest string) (*store.Run, error)
}

// Runner solves puzzles from the files in an inputs directory.
type Runner struct {
	fs      afero.Fs
	dir     string
	history HistoryStore // nil when history is not kept
	logger  *slog.Logger
	autoEOL bool
	stripCR bool
}

// New creates a Runner that reads inputs from dir.
// history may be nil.
func New(fs afero.Fs, dir string, history HistoryStore, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		fs:      fs,
		dir:     dir,
		history: history,
		logger:  logger,
		autoEOL: true,
	}
}

// SetLineEndings controls line ending normalization of the inputs.
func (r *Runner) SetLineEndings(autoEOL, stripCR bool) {
	r.autoEOL, r.stripCR = autoEOL, stripCR
}

// Result is the outcome of running one day.
type Result struct {
	Day     days.Day
	Input   *inputs.Input // nil if the input could not be read
	Answers days.Answers
	Elapsed time.Duration

	// Changed is set when an earlier run over the same input gave different answers.
	Changed  bool
	Previous days.Answers
}

// Run solves the day's puzzle. When history is kept, the run is recorded
// whether or not it succeeded.
func (r *Runner) Run(ctx context.Context, day days.Day) (*Result, error) {
	path := filepath.Join(r.dir, day.InputFile())
	in, err := inputs.Load(r.fs, path,
		inputs.WithAutoEOL(r.autoEOL),
		inputs.WithStripCR(r.stripCR),
		inputs.WithLogger(r.logger),
	)
	if err != nil {
		return nil, &ErrReadInput{Path: path, Err: err}
	}
	result := &Result{Day: day, Input: in}

	started := time.Now()
	result.Answers, err = day.Solve(in.Lines)
	result.Elapsed = time.Since(started)
	r.logger.Debug("runner: solved", slog.Int("day", day.Number), slog.Duration("elapsed", result.Elapsed))

	if r.history == nil {
		return result, err
	}

	if err == nil {
		previous, perr := r.history.LastSuccess(ctx, day.Number, in.Digest)
		if perr != nil {
			return result, &ErrDatabase{Op: "last success", Err: perr}
		}
		if previous != nil && len(previous.Answers) == 2 {
			result.Previous = days.Answers{previous.Answers[0], previous.Answers[1]}
			result.Changed = result.Previous != result.Answers
		}
	}

	run := &store.Run{
		Day:         day.Number,
		InputPath:   path,
		InputDigest: in.Digest,
		Status:      store.RunStatusOK,
		Elapsed:     result.Elapsed,
		CreatedAt:   time.Now().UTC(),
	}
	if err != nil {
		run.Status, run.ErrorCode, run.ErrorMsg = store.RunStatusFailed, ErrorCode(err), err.Error()
	} else {
		run.Answers = result.Answers[:]
	}
	if _, serr := r.history.InsertRun(ctx, run); serr != nil {
		if err != nil {
			r.logger.Error("runner: record failed run", slog.Int("day", day.Number), slog.Any("error", serr))
			return result, err
		}
		return result, &ErrDatabase{Op: "insert run", Err: serr}
	}

	return result, err
}
