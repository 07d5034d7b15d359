package results

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process store. Runs vanish when the process exits,
// which is fine for one-off CLI benchmarking.
//
// Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]*Run)}
}

// Save stores a run.
func (s *MemoryStore) Save(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *run
	s.runs[run.ID] = &copied
	return nil
}

// Get retrieves a run by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *run
	return &copied, nil
}

// List returns runs ordered by start time, newest first.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]*Run, error) {
	s.mu.RLock()
	runs := make([]*Run, 0, len(s.runs))
	for _, run := range s.runs {
		copied := *run
		runs = append(runs, &copied)
	}
	s.mu.RUnlock()

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
