package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleBoost_ExactMatch(t *testing.T) {
	// Tier 10 plus the word bonus for the matching first word.
	assert.InDelta(t, 12.0, titleBoost("Streaming", "streaming"), 0.001)
}

func TestTitleBoost_PrefixMatch(t *testing.T) {
	// Tier 8 plus the word bonus ("stream" prefixes "streaming").
	assert.InDelta(t, 10.0, titleBoost("Streaming validated output", "stream"), 0.001)
}

func TestTitleBoost_SubstringMatch(t *testing.T) {
	// "valid" occurs mid-title: 5*len(q)/len(t) + 3, no word at the
	// boundary starts with the query... except "validated" does, so the
	// word bonus applies too.
	title := "On validated output"
	want := 5.0*5.0/19.0 + 3 + titleWordBonus
	assert.InDelta(t, want, titleBoost(title, "valid"), 0.001)
}

func TestTitleBoost_AllTermsPresent(t *testing.T) {
	// Terms "guard" and "output" both occur but the full query string
	// does not: tier 4. The word bonus compares against the whole query,
	// so it does not apply.
	got := titleBoost("Output rules for guard models", "guard output")
	assert.InDelta(t, 4.0, got, 0.001)
}

func TestTitleBoost_PartialTerms(t *testing.T) {
	// One of two terms matches: 2 * 1/2 = 1, no word bonus because no
	// title word starts with the full query "zzz output".
	got := titleBoost("Output rules", "zzz output")
	assert.InDelta(t, 1.0, got, 0.001)
}

func TestTitleBoost_NoMatch(t *testing.T) {
	assert.Zero(t, titleBoost("Unrelated", "streaming"))
}

func TestTitleBoost_EmptyInputs(t *testing.T) {
	assert.Zero(t, titleBoost("", "query"))
	assert.Zero(t, titleBoost("Title", ""))
	assert.Zero(t, titleBoost("Title", "   "))
}

func TestTitleBoost_WordBonusSplitsOnHyphenAndColon(t *testing.T) {
	// "re-ask" splits into "re" and "ask"; query "ask" hits a word.
	got := titleBoost("re-ask strategies", "ask")
	assert.InDelta(t, 5.0*3.0/17.0+3+titleWordBonus, got, 0.001)
}

func TestKeywordBoost_PerTermIncrement(t *testing.T) {
	keywords := []string{"streaming", "validation", "guardrails"}

	// Both terms hit a keyword: 2 × 1.5.
	assert.InDelta(t, 3.0, keywordBoost(keywords, "streaming validation"), 0.001)

	// Prefix also counts.
	assert.InDelta(t, 1.5, keywordBoost(keywords, "stream"), 0.001)

	// A term matching two keywords counts once.
	assert.InDelta(t, 1.5, keywordBoost([]string{"valid", "validation"}, "valid"), 0.001)
}

func TestKeywordBoost_NoKeywords(t *testing.T) {
	assert.Zero(t, keywordBoost(nil, "query"))
	assert.Zero(t, keywordBoost([]string{"kw"}, ""))
}

func TestDescriptionBoost_EarlyAndLate(t *testing.T) {
	desc := "Validate model output against your schema before it ever reaches production users, with streaming support."

	// "validate" appears at position 0: early window.
	assert.InDelta(t, 1.0, descriptionBoost(desc, "validate"), 0.001)

	// "streaming" appears past the 50-character window.
	assert.InDelta(t, 0.5, descriptionBoost(desc, "streaming"), 0.001)

	// One early term and one late term.
	assert.InDelta(t, 1.5, descriptionBoost(desc, "validate streaming"), 0.001)
}

func TestDescriptionBoost_Absent(t *testing.T) {
	assert.Zero(t, descriptionBoost("", "query"))
	assert.Zero(t, descriptionBoost("Some description", "zzz"))
}
