package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

func TestDocumentStore_GetMissing(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_ReplaceAndGet(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, map[string]domain.DocumentRecord{
		"doc-1": {ID: "doc-1", Title: "First"},
	}))

	rec, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "First", rec.Title)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDocumentStore_ReplaceSwapsWholesale(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, map[string]domain.DocumentRecord{
		"old": {ID: "old"},
	}))
	require.NoError(t, store.Replace(ctx, map[string]domain.DocumentRecord{
		"new": {ID: "new"},
	}))

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.Get(ctx, "new")
	assert.NoError(t, err)
}

func TestDocumentStore_ReplaceCopiesInput(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	input := map[string]domain.DocumentRecord{"doc-1": {ID: "doc-1", Title: "Original"}}
	require.NoError(t, store.Replace(ctx, input))

	// Mutating the caller's map must not affect the store.
	input["doc-2"] = domain.DocumentRecord{ID: "doc-2"}
	delete(input, "doc-1")

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = store.Get(ctx, "doc-1")
	assert.NoError(t, err)
}

func TestDocumentStore_AllReturnsCopy(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, map[string]domain.DocumentRecord{
		"doc-1": {ID: "doc-1"},
	}))

	all, err := store.All(ctx)
	require.NoError(t, err)
	delete(all, "doc-1")

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
