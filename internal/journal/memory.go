package journal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory journal used by tests and the API handler
// tests. Entries are kept in append order per case.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]Entry
}

// NewMemoryStore creates an empty in-memory journal.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]Entry)}
}

func (s *MemoryStore) Append(_ context.Context, e Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	e.Timestamp = time.Now().UTC()
	s.entries[e.CaseID] = append(s.entries[e.CaseID], e)
	return e, nil
}

func (s *MemoryStore) List(_ context.Context, caseID string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries[caseID]))
	copy(out, s.entries[caseID])
	return out, nil
}
