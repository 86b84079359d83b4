package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

func TestCollectFilterOptions_OnlyObservedValues(t *testing.T) {
	corpus := map[string]domain.DocumentRecord{
		"a": {
			ID:          "a",
			Topics:      domain.StringList{"guardrails"},
			Tags:        domain.StringList{"validation"},
			ContentType: "guide",
			Audience:    domain.StringList{"developers"},
			Difficulty:  "beginner",
		},
		"b": {
			ID:          "b",
			Topics:      domain.StringList{"deployment", "guardrails"},
			ContentType: "reference",
		},
	}

	catalog := CollectFilterOptions(corpus)

	assert.Equal(t, []string{"deployment", "guardrails"}, catalog.Topics)
	assert.Equal(t, []string{"validation"}, catalog.Tags)
	assert.Equal(t, []string{"guide", "reference"}, catalog.ContentTypes)
	assert.Equal(t, []string{"developers"}, catalog.Audiences)
	assert.Equal(t, []string{"beginner"}, catalog.Difficulties)
	assert.Empty(t, catalog.Facets)
}

func TestCollectFilterOptions_EmptyCorpus(t *testing.T) {
	catalog := CollectFilterOptions(nil)

	assert.Empty(t, catalog.Topics)
	assert.Empty(t, catalog.Tags)
	assert.Empty(t, catalog.ContentTypes)
	assert.Empty(t, catalog.Audiences)
	assert.Empty(t, catalog.Difficulties)
	assert.Empty(t, catalog.Facets)
}

func TestCollectFilterOptions_OpenFacets(t *testing.T) {
	corpus := map[string]domain.DocumentRecord{
		"a": {ID: "a", Facets: map[string]domain.StringList{
			"language":  {"python", "go"},
			"framework": {"fastapi"},
		}},
		"b": {ID: "b", Facets: map[string]domain.StringList{
			"language": {"typescript"},
		}},
	}

	catalog := CollectFilterOptions(corpus)

	assert.Equal(t, []string{"go", "python", "typescript"}, catalog.Facets["language"])
	assert.Equal(t, []string{"fastapi"}, catalog.Facets["framework"])
}

func TestCollectFilterOptions_ImplicitFacets(t *testing.T) {
	corpus := map[string]domain.DocumentRecord{
		"a": {ID: "a", Modality: "text", Author: "docs-team"},
		"b": {ID: "b", Modality: "audio"},
	}

	catalog := CollectFilterOptions(corpus)

	assert.Equal(t, []string{"audio", "text"}, catalog.Facets["modality"])
	assert.Equal(t, []string{"docs-team"}, catalog.Facets["author"])
}

func TestCollectFilterOptions_TopicFallbackFromID(t *testing.T) {
	corpus := map[string]domain.DocumentRecord{
		"guides/advanced/streaming": {ID: "guides/advanced/streaming"},
	}

	catalog := CollectFilterOptions(corpus)

	assert.Equal(t, []string{"advanced", "guides"}, catalog.Topics)
}

func TestCollectFilterOptions_SplitsScalarTagStrings(t *testing.T) {
	corpus := map[string]domain.DocumentRecord{
		"a": {ID: "a", Tags: domain.StringList{"alpha, beta"}},
	}

	catalog := CollectFilterOptions(corpus)

	assert.Equal(t, []string{"alpha", "beta"}, catalog.Tags)
}
