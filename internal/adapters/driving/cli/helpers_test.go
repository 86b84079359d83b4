package cli

import (
	"context"
	"errors"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// mockSearchService returns a fixed result list.
type mockSearchService struct {
	results []domain.SearchResult
	lastOpt domain.SearchOptions
}

func (m *mockSearchService) Search(_ context.Context, _ string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	m.lastOpt = opts
	return m.results, nil
}

func (m *mockSearchService) IsReady() bool { return true }

// mockSearchServiceError always fails.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(_ context.Context, _ string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
	return nil, errors.New("index exploded")
}

func (m *mockSearchServiceError) IsReady() bool { return false }

// mockFilterService returns a fixed catalog.
type mockFilterService struct {
	catalog domain.FilterOptionsCatalog
}

func (m *mockFilterService) FilterOptions(_ context.Context) (domain.FilterOptionsCatalog, error) {
	return m.catalog, nil
}

func (m *mockFilterService) Rebuild(_ context.Context) error { return nil }

// setupTestServices installs mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldSearch := searchService
	oldFilter := filterService

	searchService = &mockSearchService{
		results: []domain.SearchResult{
			{
				Document: domain.DocumentRecord{
					ID:          "guides/streaming",
					Title:       "Streaming",
					Description: "Validate streamed output",
				},
				Score:         12.5,
				CombinedScore: 12.5,
				TotalMatches:  1,
				Sections: []domain.MatchingSection{
					{Kind: domain.SectionTitle, Text: "Streaming", Level: 1, Anchor: "streaming"},
				},
			},
		},
	}
	filterService = &mockFilterService{
		catalog: domain.FilterOptionsCatalog{
			Topics:       []string{"guardrails"},
			Tags:         []string{"validation"},
			ContentTypes: []string{"guide"},
			Difficulties: []string{"beginner"},
			Facets:       map[string][]string{"language": {"python"}},
		},
	}

	return func() {
		searchService = oldSearch
		filterService = oldFilter
	}
}
