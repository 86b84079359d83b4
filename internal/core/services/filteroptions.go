package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure FilterOptionsService implements the interface.
var _ driving.FilterService = (*FilterOptionsService)(nil)

// FilterOptionsService caches the filter options catalog for the current
// corpus. The catalog is replaced wholesale on Rebuild, never mutated.
type FilterOptionsService struct {
	docStore driven.DocumentStore

	mu      sync.RWMutex
	catalog domain.FilterOptionsCatalog
	built   bool
}

// NewFilterOptionsService creates a new filter options service.
func NewFilterOptionsService(docStore driven.DocumentStore) *FilterOptionsService {
	return &FilterOptionsService{docStore: docStore}
}

// FilterOptions returns the current catalog, building it on first use.
func (s *FilterOptionsService) FilterOptions(ctx context.Context) (domain.FilterOptionsCatalog, error) {
	s.mu.RLock()
	if s.built {
		catalog := s.catalog
		s.mu.RUnlock()
		return catalog, nil
	}
	s.mu.RUnlock()

	if err := s.Rebuild(ctx); err != nil {
		return domain.FilterOptionsCatalog{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog, nil
}

// Rebuild recomputes the catalog from the current corpus.
func (s *FilterOptionsService) Rebuild(ctx context.Context) error {
	corpus, err := s.docStore.All(ctx)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	catalog := CollectFilterOptions(corpus)
	logger.Debug("Filter catalog: %d topics, %d tags, %d facet keys",
		len(catalog.Topics), len(catalog.Tags), len(catalog.Facets))

	s.mu.Lock()
	s.catalog = catalog
	s.built = true
	s.mu.Unlock()
	return nil
}
