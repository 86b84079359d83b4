package driving

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchService executes ranked, grouped, filtered searches over the
// indexed corpus.
type SearchService interface {
	// Search runs the full pipeline for one query. It returns an empty
	// slice (not an error) for queries shorter than two characters and
	// for searches issued before the index is ready.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// IsReady reports whether the index build has completed.
	IsReady() bool
}

// FilterService exposes the filter options catalog so a presentation
// layer can populate selector controls.
type FilterService interface {
	// FilterOptions returns the current catalog.
	FilterOptions(ctx context.Context) (domain.FilterOptionsCatalog, error)

	// Rebuild recomputes the catalog from the current corpus.
	Rebuild(ctx context.Context) error
}
