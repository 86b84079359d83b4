package services

import (
	"sort"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// CollectFilterOptions scans the corpus once and returns the catalog of
// every filterable value it observes. It is a pure function: a fresh
// catalog is built on every call, so rebuild semantics stay obvious.
// Records missing any field simply contribute nothing to that dimension.
func CollectFilterOptions(corpus map[string]domain.DocumentRecord) domain.FilterOptionsCatalog {
	topics := newStringSet()
	tags := newStringSet()
	contentTypes := newStringSet()
	audiences := newStringSet()
	difficulties := newStringSet()
	facets := make(map[string]stringSet)

	for _, rec := range corpus {
		topics.addAll(rec.TopicList())
		tags.addAll(rec.TagList())
		audiences.addAll(rec.AudienceList())
		contentTypes.add(rec.ContentType)
		difficulties.add(rec.Difficulty)

		for key := range rec.Facets {
			set, ok := facets[key]
			if !ok {
				set = newStringSet()
				facets[key] = set
			}
			set.addAll(rec.FacetValues(key))
		}

		// Legacy flat fields surface as implicit facets.
		if rec.Modality != "" {
			set, ok := facets["modality"]
			if !ok {
				set = newStringSet()
				facets["modality"] = set
			}
			set.add(rec.Modality)
		}
		if rec.Author != "" {
			set, ok := facets["author"]
			if !ok {
				set = newStringSet()
				facets["author"] = set
			}
			set.add(rec.Author)
		}
	}

	catalog := domain.FilterOptionsCatalog{
		Topics:       topics.sorted(),
		Tags:         tags.sorted(),
		ContentTypes: contentTypes.sorted(),
		Audiences:    audiences.sorted(),
		Difficulties: difficulties.sorted(),
		Facets:       make(map[string][]string, len(facets)),
	}
	for key, set := range facets {
		catalog.Facets[key] = set.sorted()
	}
	return catalog
}

// stringSet accumulates distinct non-empty values.
type stringSet map[string]struct{}

func newStringSet() stringSet {
	return make(stringSet)
}

func (s stringSet) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

func (s stringSet) addAll(vals []string) {
	for _, v := range vals {
		s.add(v)
	}
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
