package registry

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory Store. Children list in lexical name order, so
// lookups are deterministic. Every operation is counted, which lets tests
// assert that unchanged fields were not rewritten.
type MemStore struct {
	mu      sync.RWMutex
	records map[string]map[string]map[string]any
	lists   int
	reads   int
	writes  map[string]int
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		records: make(map[string]map[string]map[string]any),
		writes:  make(map[string]int),
	}
}

// Seed creates rec with the given fields, bypassing the write counters.
func (s *MemStore) Seed(rec Record, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	children, ok := s.records[rec.Parent]
	if !ok {
		children = make(map[string]map[string]any)
		s.records[rec.Parent] = children
	}
	values, ok := children[rec.Name]
	if !ok {
		values = make(map[string]any)
		children[rec.Name] = values
	}
	for field, val := range fields {
		values[field] = val
	}
}

func (s *MemStore) ListChildren(_ context.Context, parent string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists++
	names := make([]string, 0, len(s.records[parent]))
	for name := range s.records[parent] {
		names = append(names, name)
	}
	sort.Strings(names)

	recs := make([]Record, len(names))
	for i, name := range names {
		recs[i] = Record{Parent: parent, Name: name}
	}
	return recs, nil
}

func (s *MemStore) GetField(_ context.Context, rec Record, field string, def any) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	values, ok := s.records[rec.Parent][rec.Name]
	if !ok {
		return def, nil
	}
	val, ok := values[field]
	if !ok {
		return def, nil
	}
	return val, nil
}

func (s *MemStore) SetField(_ context.Context, rec Record, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writes[rec.Path()+":"+field]++

	children, ok := s.records[rec.Parent]
	if !ok {
		children = make(map[string]map[string]any)
		s.records[rec.Parent] = children
	}
	values, ok := children[rec.Name]
	if !ok {
		values = make(map[string]any)
		children[rec.Name] = values
	}
	values[field] = value
	return nil
}

// Writes returns the total number of SetField calls since creation.
func (s *MemStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, n := range s.writes {
		total += n
	}
	return total
}

// WritesTo returns how many SetField calls targeted one field of rec.
func (s *MemStore) WritesTo(rec Record, field string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes[rec.Path()+":"+field]
}

// Reads returns the total number of GetField calls since creation.
func (s *MemStore) Reads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reads
}
