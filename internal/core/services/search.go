package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs the search pipeline: query planning, relevance
// boosting, filtering and grouping over the external index.
type SearchService struct {
	docStore driven.DocumentStore

	mu    sync.RWMutex
	index driven.SearchIndex

	ready atomic.Bool
}

// NewSearchService creates a new search service. The service reports not
// ready until SetReady is called after the index build completes.
func NewSearchService(docStore driven.DocumentStore, index driven.SearchIndex) *SearchService {
	return &SearchService{
		docStore: docStore,
		index:    index,
	}
}

// SetReady marks the index build state. Searches issued while not ready
// return empty results.
func (s *SearchService) SetReady(ready bool) {
	s.ready.Store(ready)
}

// IsReady reports whether the index build has completed.
func (s *SearchService) IsReady() bool {
	return s.ready.Load()
}

// SwapIndex replaces the search index, closing the previous one.
// In-flight searches finish against the old index first.
func (s *SearchService) SwapIndex(index driven.SearchIndex) {
	s.mu.Lock()
	old := s.index
	s.index = index
	s.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			logger.Warn("Closing replaced index: %v", err)
		}
	}
}

func (s *SearchService) currentIndex() driven.SearchIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Search performs a ranked, grouped, filtered search.
//
// The pipeline is synchronous and side-effect free: plan the query into
// alternative expressions, execute them against the index with
// deduplication, boost each hit's score from its document's title,
// keywords and description, drop results failing the filter set, then
// group hits by document and truncate. No failure in the pipeline is
// fatal; the worst outcome is an empty or partial result list.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		logger.Debug("Query below minimum length, returning no results")
		return []domain.SearchResult{}, nil
	}

	if !s.IsReady() {
		logger.Warn("Search requested before index ready")
		return []domain.SearchResult{}, nil
	}

	index := s.currentIndex()
	if index == nil {
		return nil, domain.ErrSearchUnavailable
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultResultLimit
	}
	logger.Debug("Limit: %d", limit)

	exprs := planQuery(query)
	hits := executePlan(ctx, index, exprs)
	logger.Debug("Raw hits: %d", len(hits))

	results := s.enhance(ctx, hits, query)
	logger.Debug("Enhanced results: %d", len(results))

	results = applyFilters(results, opts.Filters)
	logger.Debug("After filters: %d", len(results))

	results = groupResults(results, query, limit)
	logger.Info("Final results: %d", len(results))

	return results, nil
}

// enhance hydrates raw hits into search results and recomputes each
// score as rawScore × (1 + titleBoost + keywordBoost + descriptionBoost).
// A hit whose document is no longer in the corpus is dropped silently.
func (s *SearchService) enhance(ctx context.Context, hits []rawHit, query string) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(hits))

	for _, hit := range hits {
		doc, err := s.docStore.Get(ctx, hit.docID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				logger.Debug("Dropping dangling hit %q", hit.docID)
				continue
			}
			logger.Warn("Document lookup %q: %v", hit.docID, err)
			continue
		}

		tb := titleBoost(doc.Title, query)
		kb := keywordBoost(doc.KeywordList(), query)
		db := descriptionBoost(doc.Description, query)
		score := hit.score * (1 + tb + kb + db)

		results = append(results, domain.SearchResult{
			Document: *doc,
			Score:    score,
			Strategy: hit.strategy,
		})
	}

	return results
}
