package casefile

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used by handler tests.
type MemoryStore struct {
	mu       sync.Mutex
	cases    map[string]Case
	analyses map[string][]AnalysisRow // keyed by case id, append order
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cases:    make(map[string]Case),
		analyses: make(map[string][]AnalysisRow),
	}
}

func (s *MemoryStore) CreateCase(_ context.Context, c Case) (*Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	s.cases[c.ID] = c
	return &c, nil
}

func (s *MemoryStore) GetCase(_ context.Context, id string) (*Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) ListCases(_ context.Context) ([]Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Case, 0, len(s.cases))
	for _, c := range s.cases {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) SaveAnalysis(_ context.Context, row AnalysisRow) (*AnalysisRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[row.CaseID]; !ok {
		return nil, ErrNotFound
	}
	row.ID = uuid.NewString()
	row.CreatedAt = time.Now().UTC()
	s.analyses[row.CaseID] = append(s.analyses[row.CaseID], row)
	return &row, nil
}

func (s *MemoryStore) GetAnalysis(_ context.Context, caseID, analysisID string) (*AnalysisRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.analyses[caseID] {
		if a.ID == analysisID {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListAnalyses(_ context.Context, caseID string) ([]AnalysisRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.analyses[caseID]
	out := make([]AnalysisRow, len(rows))
	copy(out, rows)
	// Newest first, mirroring the SQL store.
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
