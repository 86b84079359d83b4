package domain

import (
	"regexp"
	"strings"
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of grouped results (default 20).
	Limit int

	// Filters restricts results to documents matching every selector.
	Filters FilterSet
}

// FilterSet holds the caller's filter selectors. An empty selector means
// no constraint on that dimension. Selector values must exactly match a
// value the document exposes for the dimension (case-sensitive, not a
// substring match).
type FilterSet struct {
	// Topic selects a topic/category value.
	Topic string `json:"topic,omitempty"`

	// Tag selects a tag value.
	Tag string `json:"tag,omitempty"`

	// ContentType selects a content type value.
	ContentType string `json:"content_type,omitempty"`

	// Audience selects an audience/persona value.
	Audience string `json:"audience,omitempty"`

	// Difficulty selects a difficulty level.
	Difficulty string `json:"difficulty,omitempty"`

	// Facets selects values for dynamically discovered facets,
	// keyed by facet name.
	Facets map[string]string `json:"facets,omitempty"`
}

// IsZero reports whether no selector is set.
func (f FilterSet) IsZero() bool {
	return f.Topic == "" && f.Tag == "" && f.ContentType == "" &&
		f.Audience == "" && f.Difficulty == "" && len(f.Facets) == 0
}

// SectionKind classifies a MatchingSection.
type SectionKind string

const (
	// SectionTitle marks a match in the document title.
	SectionTitle SectionKind = "title"

	// SectionHeading marks a match in a body heading.
	SectionHeading SectionKind = "heading"

	// SectionContent is the generic placeholder when neither the title
	// nor any heading matched.
	SectionContent SectionKind = "content"
)

// MatchingSection is one highlighted locus within a document, used for
// deep-linking and highlighting. Within one SearchResult no two sections
// share the same (Kind, Text) pair.
type MatchingSection struct {
	// Kind is the section classification.
	Kind SectionKind `json:"kind"`

	// Text is the matched title or heading text.
	Text string `json:"text"`

	// Level is 0 for generic content, 1 for the title, and the original
	// heading level for headings.
	Level int `json:"level"`

	// Anchor is the slugified deep-link anchor for the section.
	Anchor string `json:"anchor"`
}

// SearchResult is one per-document search hit.
type SearchResult struct {
	// Document is the matched record.
	Document DocumentRecord `json:"document"`

	// Score is the boosted relevance score
	// (raw index score × (1 + sum of boosts)).
	Score float64 `json:"score"`

	// Strategy names the query strategy that produced the hit.
	Strategy string `json:"strategy,omitempty"`

	// Sections are the matching loci within the document.
	Sections []MatchingSection `json:"sections,omitempty"`

	// TotalMatches counts the raw index hits collapsed into this result.
	TotalMatches int `json:"total_matches"`

	// CombinedScore is the maximum score among the collapsed hits.
	CombinedScore float64 `json:"combined_score"`
}

// ClauseKind identifies how a query clause is interpreted by the index.
type ClauseKind string

const (
	// ClausePhrase matches the query as an exact phrase.
	ClausePhrase ClauseKind = "phrase"

	// ClauseWildcard matches a wildcard pattern (trailing *).
	ClauseWildcard ClauseKind = "wildcard"

	// ClauseFuzzy matches within an edit distance.
	ClauseFuzzy ClauseKind = "fuzzy"

	// ClauseRaw hands the text to the index's own query parser.
	ClauseRaw ClauseKind = "raw"
)

// QueryClause is one atomic match condition within a query expression.
type QueryClause struct {
	// Kind selects the match semantics.
	Kind ClauseKind

	// Text is the clause text; wildcard clauses include the * characters.
	Text string

	// Fuzziness is the edit distance for fuzzy clauses.
	Fuzziness int
}

// QueryExpr is one alternative rewriting of the user's raw query.
// Clauses are combined as a disjunction by the index adapter.
type QueryExpr struct {
	// Strategy names the rewriting for diagnostics and result tagging.
	Strategy string

	// Clauses are the OR-combined match conditions.
	Clauses []QueryClause
}

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugHyphen   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL anchor from heading text: lowercase, strip
// characters that are not word characters, spaces or hyphens, collapse
// whitespace to hyphens, and trim leading/trailing hyphens.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugHyphen.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
