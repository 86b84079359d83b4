package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// IndexerService feeds the corpus into the external search index.
// The build runs once at startup (and again after a corpus reload) and
// must complete before searches return results.
type IndexerService struct {
	docStore driven.DocumentStore
	index    driven.SearchIndex
}

// NewIndexerService creates a new indexer service.
func NewIndexerService(docStore driven.DocumentStore, index driven.SearchIndex) *IndexerService {
	return &IndexerService{
		docStore: docStore,
		index:    index,
	}
}

// Build submits every corpus record to the index and returns the number
// of documents indexed. A record that fails submission is logged and
// skipped; a single bad record never aborts the build. Records are
// submitted in sorted ID order so builds are deterministic.
func (s *IndexerService) Build(ctx context.Context) (int, error) {
	if s.index == nil {
		return 0, fmt.Errorf("build index: no search index configured")
	}

	corpus, err := s.docStore.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load corpus: %w", err)
	}

	buildID := uuid.New().String()
	logger.Section("Index Build")
	logger.Info("Build %s: %d documents", buildID, len(corpus))

	ids := make([]string, 0, len(corpus))
	for id := range corpus {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	indexed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return indexed, fmt.Errorf("build %s interrupted: %w", buildID, err)
		}
		if err := s.index.Add(ctx, corpus[id]); err != nil {
			logger.Warn("Build %s: skipping document %q: %v", buildID, id, err)
			continue
		}
		indexed++
	}

	logger.Info("Build %s complete: %d/%d documents indexed", buildID, indexed, len(corpus))
	return indexed, nil
}
