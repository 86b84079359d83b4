package services

import (
	"strings"
	"unicode"
)

const (
	// descriptionHeadChars is the window treated as an "early" match
	// in the description.
	descriptionHeadChars = 50

	keywordTermBoost = 1.5
	descEarlyBoost   = 1.0
	descLateBoost    = 0.5
	titleWordBonus   = 2.0
)

// titleBoost scores how well the title matches the query. The tiers run
// from exact equality down to partial term coverage; a flat word bonus is
// added on top when any title word equals or starts with the query.
func titleBoost(title, query string) float64 {
	t := strings.ToLower(title)
	q := strings.ToLower(strings.TrimSpace(query))
	if t == "" || q == "" {
		return 0
	}

	var boost float64
	switch {
	case t == q:
		boost = 10
	case strings.HasPrefix(t, q):
		boost = 8
	case strings.Contains(t, q):
		boost = 5*float64(len(q))/float64(len(t)) + 3
	default:
		terms := strings.Fields(q)
		if len(terms) > 0 {
			matched := 0
			for _, term := range terms {
				if strings.Contains(t, term) {
					matched++
				}
			}
			if matched == len(terms) {
				boost = 4
			} else {
				boost = 2 * float64(matched) / float64(len(terms))
			}
		}
	}

	for _, word := range splitTitleWords(t) {
		if word == q || strings.HasPrefix(word, q) {
			boost += titleWordBonus
			break
		}
	}

	return boost
}

// keywordBoost adds a fixed increment for every query term that equals
// or prefixes any keyword.
func keywordBoost(keywords []string, query string) float64 {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 || len(keywords) == 0 {
		return 0
	}

	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	var boost float64
	for _, term := range terms {
		for _, kw := range lowered {
			if kw == term || strings.HasPrefix(kw, term) {
				boost += keywordTermBoost
				break
			}
		}
	}
	return boost
}

// descriptionBoost rewards query terms found in the description, with a
// larger increment when the term appears within the first 50 characters.
func descriptionBoost(description, query string) float64 {
	d := strings.ToLower(description)
	if d == "" {
		return 0
	}

	var boost float64
	for _, term := range strings.Fields(strings.ToLower(query)) {
		idx := strings.Index(d, term)
		switch {
		case idx < 0:
			continue
		case idx < descriptionHeadChars:
			boost += descEarlyBoost
		default:
			boost += descLateBoost
		}
	}
	return boost
}

// splitTitleWords splits a title on whitespace, hyphens and colons.
func splitTitleWords(title string) []string {
	return strings.FieldsFunc(title, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == ':'
	})
}
