// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	store "github.com/mdhender/advent2022/stores/sqlite"
)

func TestInsertRun_RoundTrip(t *testing.T) {
	ctx := context.Background()
	sqlStore, err := store.NewSQLiteStore(ctx)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer sqlStore.Close()

	created := time.Date(2022, 12, 5, 6, 0, 0, 0, time.UTC)
	id, err := sqlStore.InsertRun(ctx, &store.Run{
		Day:         5,
		InputPath:   "contents/day_five.txt",
		InputDigest: "abc123",
		Status:      store.RunStatusOK,
		Elapsed:     1500 * time.Microsecond,
		CreatedAt:   created,
		Answers:     []string{"CMZ", "MCD"},
	})
	if err != nil {
		t.Fatalf("insert run: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero id")
	}

	runs, err := sqlStore.Runs(ctx, 5)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	run := runs[0]
	if run.ID != id || run.Day != 5 || run.Status != store.RunStatusOK {
		t.Errorf("unexpected run %+v", run)
	}
	if !run.CreatedAt.Equal(created) {
		t.Errorf("created at = %v, want %v", run.CreatedAt, created)
	}
	if run.Elapsed != 1500*time.Microsecond {
		t.Errorf("elapsed = %v, want 1.5ms", run.Elapsed)
	}
	if len(run.Answers) != 2 || run.Answers[0] != "CMZ" || run.Answers[1] != "MCD" {
		t.Errorf("answers = %q, want [CMZ MCD]", run.Answers)
	}
}

func TestRuns_FiltersByDayNewestFirst(t *testing.T) {
	ctx := context.Background()
	sqlStore, err := store.NewSQLiteStore(ctx)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer sqlStore.Close()

	for _, day := range []int{1, 5, 1} {
		if _, err := sqlStore.InsertRun(ctx, &store.Run{
			Day:         day,
			InputPath:   "x",
			InputDigest: "d",
			Status:      store.RunStatusOK,
			CreatedAt:   time.Now().UTC(),
			Answers:     []string{"1", "2"},
		}); err != nil {
			t.Fatalf("insert run: %v", err)
		}
	}

	all, err := sqlStore.Runs(ctx, 0)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(all))
	}
	if all[0].ID < all[1].ID {
		t.Errorf("expected newest first")
	}

	ones, err := sqlStore.Runs(ctx, 1)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(ones) != 2 {
		t.Errorf("expected 2 runs for day 1, got %d", len(ones))
	}
}

func TestLastSuccess(t *testing.T) {
	ctx := context.Background()
	sqlStore, err := store.NewSQLiteStore(ctx)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer sqlStore.Close()

	run, err := sqlStore.LastSuccess(ctx, 5, "digest")
	if err != nil {
		t.Fatalf("last success: %v", err)
	}
	if run != nil {
		t.Fatalf("expected nil run, got %+v", run)
	}

	for _, r := range []*store.Run{
		{Day: 5, InputPath: "a", InputDigest: "digest", Status: store.RunStatusOK, Answers: []string{"OLD", "OLD"}},
		{Day: 5, InputPath: "a", InputDigest: "digest", Status: store.RunStatusOK, Answers: []string{"NEW", "NEW"}},
		{Day: 5, InputPath: "a", InputDigest: "digest", Status: store.RunStatusFailed, ErrorCode: "PARSE", ErrorMsg: "bad"},
	} {
		r.CreatedAt = time.Now().UTC()
		if _, err := sqlStore.InsertRun(ctx, r); err != nil {
			t.Fatalf("insert run: %v", err)
		}
	}

	run, err = sqlStore.LastSuccess(ctx, 5, "digest")
	if err != nil {
		t.Fatalf("last success: %v", err)
	}
	if run == nil || len(run.Answers) != 2 || run.Answers[0] != "NEW" {
		t.Fatalf("expected the newest successful run, got %+v", run)
	}

	stats, err := sqlStore.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats["runs"] != 3 || stats["answers"] != 4 {
		t.Errorf("stats = %v, want 3 runs and 4 answers", stats)
	}
}

func TestInsertRun_RejectsBadStatus(t *testing.T) {
	ctx := context.Background()
	sqlStore, err := store.NewSQLiteStore(ctx)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer sqlStore.Close()

	_, err = sqlStore.InsertRun(ctx, &store.Run{Day: 5, InputPath: "a", InputDigest: "d", Status: "maybe", CreatedAt: time.Now()})
	if err == nil {
		t.Fatal("expected check constraint error")
	}
	stats, err := sqlStore.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats["runs"] != 0 {
		t.Errorf("expected no runs after failed insert, got %d", stats["runs"])
	}
}

func TestFileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	if _, err := store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: path}); err == nil {
		t.Fatal("expected error opening a missing database")
	}
	if err := store.InitDatabase(ctx, path); err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := store.InitDatabase(ctx, path); err == nil {
		t.Fatal("expected error initializing an existing database")
	}

	sqlStore, err := store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer sqlStore.Close()
	if _, err := sqlStore.InsertRun(ctx, &store.Run{Day: 1, InputPath: "a", InputDigest: "d", Status: store.RunStatusOK, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("insert run: %v", err)
	}
}
