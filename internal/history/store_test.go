package history

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.Record(ctx, Render{
		RunID:        "run-1",
		Source:       "/in/a.json",
		Output:       "/out/a.ass",
		CueCount:     3,
		EventCount:   5,
		WarningCount: 1,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if first == 0 {
		t.Fatal("expected non-zero id")
	}

	if _, err := store.Record(ctx, Render{RunID: "run-2", Source: "/in/b.json", Output: "/out/b.ass"}); err != nil {
		t.Fatalf("Record second: %v", err)
	}

	renders, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(renders) != 2 {
		t.Fatalf("expected 2 renders, got %d", len(renders))
	}
	// Newest first.
	if renders[0].RunID != "run-2" || renders[1].RunID != "run-1" {
		t.Fatalf("unexpected order: %q then %q", renders[0].RunID, renders[1].RunID)
	}
	if renders[1].WarningCount != 1 || renders[1].EventCount != 5 {
		t.Fatalf("counts not round-tripped: %+v", renders[1])
	}
	if renders[0].CreatedAt.IsZero() {
		t.Fatal("expected created_at to round-trip")
	}
}

func TestListLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := store.Record(ctx, Render{RunID: "run", Source: "s", Output: "o", CreatedAt: time.Now()}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	renders, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(renders) != 3 {
		t.Fatalf("expected 3 renders, got %d", len(renders))
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(ctx, dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.Record(ctx, Render{RunID: "persisted", Source: "s", Output: "o"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(ctx, dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	renders, err := reopened.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(renders) != 1 || renders[0].RunID != "persisted" {
		t.Fatalf("expected persisted render, got %+v", renders)
	}
}
