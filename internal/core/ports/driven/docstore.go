package driven

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// DocumentStore provides read access to the corpus. Records are supplied
// wholesale at initialisation and treated as immutable for the session;
// Replace swaps the entire corpus when the source material changes.
type DocumentStore interface {
	// Get retrieves a record by ID.
	// Returns domain.ErrNotFound if no record has the ID.
	Get(ctx context.Context, id string) (*domain.DocumentRecord, error)

	// All returns the full corpus keyed by record ID.
	All(ctx context.Context) (map[string]domain.DocumentRecord, error)

	// Count returns the number of records in the corpus.
	Count(ctx context.Context) (int, error)

	// Replace swaps the corpus for a new one.
	Replace(ctx context.Context, corpus map[string]domain.DocumentRecord) error
}
