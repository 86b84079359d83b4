package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/logger"
)

const (
	// minQueryLength is the hard floor below which a search returns
	// nothing. Single-character queries match too broadly to rank.
	minQueryLength = 2

	// maxRawHits stops strategy execution once this many distinct
	// documents have been accumulated.
	maxRawHits = 30

	// fuzzyEditDistance is the edit distance for the fuzzy strategy.
	fuzzyEditDistance = 2
)

// Strategy names, in execution order.
const (
	strategyPhrase = "phrase"
	strategyFuzzy  = "fuzzy"
	strategyTerms  = "terms"
	strategyRaw    = "raw"
)

// rawHit is one deduplicated index hit tagged with its strategy.
type rawHit struct {
	docID    string
	score    float64
	strategy string
}

// planQuery rewrites the trimmed query into the ordered list of
// alternative expressions. The order runs from the most precise form to
// the most permissive fallback:
//
//  1. exact phrase combined with an unmodified wildcard
//  2. wildcard combined with a fuzzy form (edit distance 2)
//  3. each whitespace-separated term with a trailing wildcard
//  4. the raw query string handed to the index's own parser
func planQuery(query string) []domain.QueryExpr {
	exprs := []domain.QueryExpr{
		{
			Strategy: strategyPhrase,
			Clauses: []domain.QueryClause{
				{Kind: domain.ClausePhrase, Text: query},
				{Kind: domain.ClauseWildcard, Text: query + "*"},
			},
		},
		{
			Strategy: strategyFuzzy,
			Clauses: []domain.QueryClause{
				{Kind: domain.ClauseWildcard, Text: query + "*"},
				{Kind: domain.ClauseFuzzy, Text: query, Fuzziness: fuzzyEditDistance},
			},
		},
	}

	termClauses := make([]domain.QueryClause, 0, 4)
	for _, term := range strings.Fields(query) {
		termClauses = append(termClauses, domain.QueryClause{
			Kind: domain.ClauseWildcard,
			Text: term + "*",
		})
	}
	exprs = append(exprs, domain.QueryExpr{
		Strategy: strategyTerms,
		Clauses:  termClauses,
	})

	exprs = append(exprs, domain.QueryExpr{
		Strategy: strategyRaw,
		Clauses: []domain.QueryClause{
			{Kind: domain.ClauseRaw, Text: query},
		},
	})

	return exprs
}

// executePlan runs the expressions in order against the index, merging
// hits while avoiding duplicate documents. Execution short-circuits once
// maxRawHits distinct documents have been seen. A failing expression is
// skipped; the remaining strategies still run.
func executePlan(ctx context.Context, index driven.SearchIndex, exprs []domain.QueryExpr) []rawHit {
	seen := make(map[string]bool)
	hits := make([]rawHit, 0, maxRawHits)

	for _, expr := range exprs {
		if len(hits) >= maxRawHits {
			break
		}

		found, err := index.Search(ctx, expr, maxRawHits)
		if err != nil {
			logger.Warn("Strategy %q failed: %v", expr.Strategy, err)
			continue
		}
		logger.Debug("Strategy %q: %d hits", expr.Strategy, len(found))

		for _, h := range found {
			if seen[h.DocID] {
				continue
			}
			seen[h.DocID] = true
			hits = append(hits, rawHit{
				docID:    h.DocID,
				score:    h.Score,
				strategy: expr.Strategy,
			})
			if len(hits) >= maxRawHits {
				break
			}
		}
	}

	return hits
}
