package domain

// FilterOptionsCatalog is the derived, read-only snapshot of every
// filterable value observed in the corpus. Each dimension is
// deduplicated and lexicographically sorted. The catalog is rebuilt in
// full whenever the corpus changes; it is never partially mutated.
type FilterOptionsCatalog struct {
	// Topics are the observed topic/category values.
	Topics []string `json:"topics"`

	// Tags are the observed tag values.
	Tags []string `json:"tags"`

	// ContentTypes are the observed content type values.
	ContentTypes []string `json:"content_types"`

	// Audiences are the observed audience/persona values.
	Audiences []string `json:"audiences"`

	// Difficulties are the observed difficulty levels.
	Difficulties []string `json:"difficulties"`

	// Facets maps each discovered facet key to its observed values.
	// Legacy flat fields (modality, author) appear here as implicit
	// facets alongside the user-defined ones.
	Facets map[string][]string `json:"facets"`
}
