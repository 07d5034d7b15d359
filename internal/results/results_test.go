package results

import (
	"context"
	"errors"
	"testing"
	"time"
)

func sampleRun(id string, started time.Time) *Run {
	return &Run{
		ID:         id,
		Route:      "/ssr-performance-showdown",
		Iterations: 100,
		Warmup:     10,
		Stats: Stats{
			Min:   time.Millisecond,
			Max:   5 * time.Millisecond,
			Mean:  2 * time.Millisecond,
			P50:   2 * time.Millisecond,
			P95:   4 * time.Millisecond,
			Bytes: 150000,
		},
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}
}

func TestMemoryStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	run := sampleRun("run-1", time.Now())
	if err := s.Save(ctx, run); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Route != run.Route || got.Iterations != run.Iterations {
		t.Errorf("Get = %+v, want %+v", got, run)
	}

	// The store holds its own copy.
	run.Iterations = 999
	got2, _ := s.Get(ctx, "run-1")
	if got2.Iterations != 100 {
		t.Error("store should not alias caller's run")
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "absent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(absent) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_List(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		if err := s.Save(ctx, sampleRun(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}

	runs, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("List returned %d runs, want 3", len(runs))
	}
	if runs[0].ID != "new" || runs[2].ID != "old" {
		t.Errorf("List order = [%s %s %s], want newest first", runs[0].ID, runs[1].ID, runs[2].ID)
	}

	limited, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d runs, want 2", len(limited))
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Save(ctx, sampleRun("r", time.Now())); err != nil {
		t.Fatal(err)
	}
	updated := sampleRun("r", time.Now())
	updated.Iterations = 500
	if err := s.Save(ctx, updated); err != nil {
		t.Fatal(err)
	}

	got, _ := s.Get(ctx, "r")
	if got.Iterations != 500 {
		t.Errorf("Iterations = %d after overwrite, want 500", got.Iterations)
	}
}
