package driven

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchIndex is the external full-text indexing primitive.
// Backed by Bleve for field-weighted token matching, wildcard and
// edit-distance queries. The engine treats it as a black box: it owns
// tokenisation, term matching and base scoring.
type SearchIndex interface {
	// Add indexes a document record with the engine's field weights.
	Add(ctx context.Context, rec domain.DocumentRecord) error

	// Search executes one query expression and returns raw hits in
	// index ranking order.
	Search(ctx context.Context, expr domain.QueryExpr, limit int) ([]Hit, error)

	// DocCount returns the number of indexed documents.
	DocCount(ctx context.Context) (uint64, error)

	// Close releases resources.
	Close() error
}

// Hit is one raw result from the search index.
type Hit struct {
	// DocID is the matched document identifier.
	DocID string

	// Score is the index's base relevance score.
	Score float64
}
