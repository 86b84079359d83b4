package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// defaultResultLimit caps the grouped result list when the caller does
// not request a maximum.
const defaultResultLimit = 20

// groupResults collapses multiple hits on the same document into one
// result carrying a merged section list, a total-matches counter and the
// maximum score among the collapsed hits. Buckets are sorted by combined
// score descending and truncated to limit. Grouping an already-grouped
// list is a no-op apart from section recomputation, which deduplicates to
// the same set.
func groupResults(results []domain.SearchResult, query string, limit int) []domain.SearchResult {
	if limit <= 0 {
		limit = defaultResultLimit
	}

	buckets := make(map[string]int, len(results))
	grouped := make([]domain.SearchResult, 0, len(results))

	for i := range results {
		r := results[i]
		sections := matchingSections(r.Document, query)

		idx, ok := buckets[r.Document.ID]
		if !ok {
			if r.TotalMatches < 1 {
				r.TotalMatches = 1
			}
			if r.Score > r.CombinedScore {
				r.CombinedScore = r.Score
			}
			r.Sections = mergeSections(r.Sections, sections)
			buckets[r.Document.ID] = len(grouped)
			grouped = append(grouped, r)
			continue
		}

		existing := &grouped[idx]
		existing.Sections = mergeSections(existing.Sections, sections)
		existing.TotalMatches++
		if r.Score > existing.CombinedScore {
			existing.CombinedScore = r.Score
		}
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].CombinedScore > grouped[j].CombinedScore
	})

	if len(grouped) > limit {
		grouped = grouped[:limit]
	}
	return grouped
}

// matchingSections derives the highlighted loci for one document. A title
// section is emitted when any query term occurs in the title; a heading
// section for every heading containing any term. When neither matches, a
// single generic content placeholder guarantees every result has at least
// one explanatory section.
func matchingSections(doc domain.DocumentRecord, query string) []domain.MatchingSection {
	terms := strings.Fields(strings.ToLower(query))
	var sections []domain.MatchingSection

	title := strings.ToLower(doc.Title)
	if doc.Title != "" && containsAnyTerm(title, terms) {
		sections = append(sections, domain.MatchingSection{
			Kind:   domain.SectionTitle,
			Text:   doc.Title,
			Level:  1,
			Anchor: domain.Slugify(doc.Title),
		})
	}

	for _, h := range doc.Headings {
		if containsAnyTerm(strings.ToLower(h.Text), terms) {
			sections = append(sections, domain.MatchingSection{
				Kind:   domain.SectionHeading,
				Text:   h.Text,
				Level:  h.Level,
				Anchor: domain.Slugify(h.Text),
			})
		}
	}

	if len(sections) == 0 {
		sections = append(sections, domain.MatchingSection{
			Kind:  domain.SectionContent,
			Text:  "Content match",
			Level: 0,
		})
	}

	return sections
}

// mergeSections appends sections without duplicating any (kind, text) pair.
func mergeSections(existing, extra []domain.MatchingSection) []domain.MatchingSection {
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[sectionKey(s)] = true
	}

	merged := existing
	for _, s := range extra {
		key := sectionKey(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, s)
	}
	return merged
}

func sectionKey(s domain.MatchingSection) string {
	return string(s.Kind) + "\x00" + s.Text
}

func containsAnyTerm(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
