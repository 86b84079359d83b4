package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// failingIndex rejects documents whose ID is in the reject set.
type failingIndex struct {
	mockIndex
	reject map[string]bool
	added  []string
}

func (f *failingIndex) Add(_ context.Context, rec domain.DocumentRecord) error {
	if f.reject[rec.ID] {
		return errors.New("mapping error")
	}
	f.added = append(f.added, rec.ID)
	return nil
}

func TestIndexerBuild_IndexesAllRecords(t *testing.T) {
	store := &mockDocStore{records: map[string]domain.DocumentRecord{
		"b": {ID: "b"},
		"a": {ID: "a"},
		"c": {ID: "c"},
	}}
	index := &failingIndex{}
	indexer := NewIndexerService(store, index)

	count, err := indexer.Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	// Sorted ID order keeps builds deterministic.
	assert.Equal(t, []string{"a", "b", "c"}, index.added)
}

func TestIndexerBuild_SkipsFailingRecords(t *testing.T) {
	store := &mockDocStore{records: map[string]domain.DocumentRecord{
		"good-1": {ID: "good-1"},
		"bad":    {ID: "bad"},
		"good-2": {ID: "good-2"},
	}}
	index := &failingIndex{reject: map[string]bool{"bad": true}}
	indexer := NewIndexerService(store, index)

	count, err := indexer.Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NotContains(t, index.added, "bad")
}

func TestIndexerBuild_NoIndexConfigured(t *testing.T) {
	indexer := NewIndexerService(&mockDocStore{}, nil)

	_, err := indexer.Build(context.Background())

	assert.Error(t, err)
}

func TestIndexerBuild_CancelledContext(t *testing.T) {
	store := &mockDocStore{records: map[string]domain.DocumentRecord{
		"a": {ID: "a"},
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewIndexerService(store, &failingIndex{}).Build(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilterOptionsService_BuildsOnFirstUse(t *testing.T) {
	store := &mockDocStore{records: map[string]domain.DocumentRecord{
		"a": {ID: "a", Topics: domain.StringList{"guardrails"}},
	}}
	svc := NewFilterOptionsService(store)

	catalog, err := svc.FilterOptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"guardrails"}, catalog.Topics)
}

func TestFilterOptionsService_RebuildPicksUpCorpusChanges(t *testing.T) {
	store := &mockDocStore{records: map[string]domain.DocumentRecord{
		"a": {ID: "a", Topics: domain.StringList{"guardrails"}},
	}}
	svc := NewFilterOptionsService(store)

	_, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)

	store.records = map[string]domain.DocumentRecord{
		"b": {ID: "b", Topics: domain.StringList{"deployment"}},
	}

	// Cached until an explicit rebuild.
	catalog, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"guardrails"}, catalog.Topics)

	require.NoError(t, svc.Rebuild(context.Background()))

	catalog, err = svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"deployment"}, catalog.Topics)
}
