package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// The corpus is supplied wholesale and read-only between Replace calls,
// so reads never contend.
type DocumentStore struct {
	mu      sync.RWMutex
	records map[string]domain.DocumentRecord
}

// NewDocumentStore creates an empty in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		records: make(map[string]domain.DocumentRecord),
	}
}

// Replace swaps the corpus for a new one. The input map is copied so the
// caller cannot mutate the stored corpus afterwards.
func (s *DocumentStore) Replace(_ context.Context, corpus map[string]domain.DocumentRecord) error {
	records := make(map[string]domain.DocumentRecord, len(corpus))
	for id, rec := range corpus {
		records[id] = rec
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	return nil
}

// Get retrieves a record by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// All returns a copy of the full corpus keyed by record ID.
func (s *DocumentStore) All(_ context.Context) (map[string]domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.DocumentRecord, len(s.records))
	for id, rec := range s.records {
		out[id] = rec
	}
	return out, nil
}

// Count returns the number of records in the corpus.
func (s *DocumentStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}
