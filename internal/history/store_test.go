package history_test

import (
	"context"
	"testing"

	"subjectid/internal/history"
	"subjectid/internal/testsupport"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordRunAndRecent(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	first, err := store.RecordRun(ctx, history.Run{
		Source:         "names.csv",
		Method:         "md5",
		InputCount:     4,
		RecordCount:    3,
		RejectedCount:  1,
		DuplicateCount: 1,
		Username:       "alice",
		SessionToken:   "token-1",
		OutputPath:     "/tmp/subject_id_mapping.csv",
	})
	if err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned run ID")
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("expected assigned timestamp")
	}

	second, err := store.RecordRun(ctx, history.Run{Source: "manual", Method: "uuid", InputCount: 2, RecordCount: 2})
	if err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second.ID {
		t.Fatalf("expected newest run first: got %d want %d", runs[0].ID, second.ID)
	}
	if runs[1].Method != "md5" || runs[1].Username != "alice" {
		t.Fatalf("unexpected run fields: %+v", runs[1])
	}
	if runs[0].Username != "" {
		t.Fatalf("expected empty username, got %q", runs[0].Username)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.RecordRun(ctx, history.Run{Source: "manual", Method: "sequential", InputCount: 1, RecordCount: 1}); err != nil {
			t.Fatalf("RecordRun returned error: %v", err)
		}
	}

	runs, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
}

func TestClear(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.RecordRun(ctx, history.Run{Source: "manual", Method: "uuid", InputCount: 1, RecordCount: 1}); err != nil {
			t.Fatalf("RecordRun returned error: %v", err)
		}
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}

	runs, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty history, got %d runs", len(runs))
	}
}

func TestReopenKeepsSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := store.RecordRun(context.Background(), history.Run{Source: "manual", Method: "md5", InputCount: 1, RecordCount: 1}); err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected persisted run, got %d", len(runs))
	}
}
