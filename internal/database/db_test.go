package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/focusboost/focusboost/internal/focus"
	"github.com/focusboost/focusboost/internal/session"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestOpen(t *testing.T) {
	db := setupTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='sessions'").Scan(&count)
	if err != nil {
		t.Fatalf("failed to query tables: %v", err)
	}
	if count != 1 {
		t.Errorf("expected sessions table to exist")
	}
}

func TestInsertAndListSessions(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first := session.Build(session.Params{
		Mode:        session.ModeDataset,
		Inputs:      focus.Inputs{Attention: 85, SocialTime: 0.5, Notifications: 10},
		Score:       100.0,
		AppCategory: "Social",
	})
	first.Timestamp = time.Now().Add(-time.Hour)

	second := session.Build(session.Params{
		Mode:      session.ModeManual,
		Inputs:    focus.Inputs{Attention: 25, SocialTime: 3.5, Notifications: 60},
		Score:     20.0,
		Nocturnal: true,
		Blocks:    &session.Blocks{Planned: 4, Done: 2},
		Daypart:   "Night (22-6)",
	})

	if err := db.InsertSession(ctx, &first); err != nil {
		t.Fatalf("InsertSession failed: %v", err)
	}
	if first.ID == "" {
		t.Error("expected ID to be set after insert")
	}
	if err := db.InsertSession(ctx, &second); err != nil {
		t.Fatalf("InsertSession failed: %v", err)
	}

	sessions, err := db.ListSessions(ctx, 0)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}

	// Newest first.
	got := sessions[0]
	if got.ID != second.ID {
		t.Errorf("expected newest session first, got %s", got.ID)
	}
	if got.Mode != session.ModeManual || !got.Nocturnal {
		t.Errorf("round-trip lost fields: %+v", got)
	}
	if got.Adherence == nil || *got.Adherence != 50.0 {
		t.Errorf("Adherence = %v, want 50", got.Adherence)
	}
	if got.Daypart == nil || *got.Daypart != "Night (22-6)" {
		t.Errorf("Daypart = %v", got.Daypart)
	}

	// The dataset session has no tracking fields.
	if sessions[1].Adherence != nil || sessions[1].PlannedBlocks != nil {
		t.Errorf("expected nil tracking fields, got %+v", sessions[1])
	}

	// Limit applies.
	limited, err := db.ListSessions(ctx, 1)
	if err != nil {
		t.Fatalf("ListSessions(1) failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 session with limit, got %d", len(limited))
	}
}

func TestGetStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	records := []session.Record{
		session.Build(session.Params{
			Mode:   session.ModeDataset,
			Inputs: focus.Inputs{Attention: 85, SocialTime: 0.5, Notifications: 10},
			Score:  90.0,
		}),
		session.Build(session.Params{
			Mode:   session.ModeManual,
			Inputs: focus.Inputs{Attention: 25, SocialTime: 3.5, Notifications: 60},
			Score:  30.0,
			Blocks: &session.Blocks{Planned: 4, Done: 3},
		}),
	}
	for i := range records {
		if err := db.InsertSession(ctx, &records[i]); err != nil {
			t.Fatalf("InsertSession failed: %v", err)
		}
	}

	stats, err := db.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.TotalSessions != 2 || stats.DatasetSessions != 1 || stats.ManualSessions != 1 {
		t.Errorf("session counts = %+v", stats)
	}
	if stats.AvgFocusScore != 60.0 {
		t.Errorf("AvgFocusScore = %v, want 60", stats.AvgFocusScore)
	}
	if stats.LowUsage != 1 || stats.HighUsage != 1 || stats.ModerateUsage != 0 {
		t.Errorf("usage counts = %+v", stats)
	}
	if stats.TrackedSessions != 1 || stats.AvgAdherence != 75.0 {
		t.Errorf("tracking stats = %+v", stats)
	}
}

func TestGetStatsEmpty(t *testing.T) {
	db := setupTestDB(t)

	stats, err := db.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalSessions != 0 || stats.AvgFocusScore != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}
