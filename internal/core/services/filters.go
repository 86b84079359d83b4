package services

import (
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// applyFilters keeps only results whose documents satisfy every non-empty
// selector. It is a pure filter: order is preserved and nothing is
// re-scored.
func applyFilters(results []domain.SearchResult, filters domain.FilterSet) []domain.SearchResult {
	if filters.IsZero() {
		return results
	}

	filtered := make([]domain.SearchResult, 0, len(results))
	for i := range results {
		if matchesFilters(results[i].Document, filters) {
			filtered = append(filtered, results[i])
		}
	}
	return filtered
}

// matchesFilters reports whether the document satisfies every selector.
// Selectors are ANDed; each requires exact membership in the document's
// value set for that dimension.
func matchesFilters(doc domain.DocumentRecord, filters domain.FilterSet) bool {
	if filters.Topic != "" && !contains(doc.TopicList(), filters.Topic) {
		return false
	}
	if filters.Tag != "" && !contains(doc.TagList(), filters.Tag) {
		return false
	}
	if filters.ContentType != "" && doc.ContentType != filters.ContentType {
		return false
	}
	if filters.Audience != "" && !contains(doc.AudienceList(), filters.Audience) {
		return false
	}
	if filters.Difficulty != "" && doc.Difficulty != filters.Difficulty {
		return false
	}
	for key, want := range filters.Facets {
		if want == "" {
			continue
		}
		if !contains(doc.FacetValues(key), want) {
			return false
		}
	}
	return true
}

// contains reports exact membership (case-sensitive).
func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
