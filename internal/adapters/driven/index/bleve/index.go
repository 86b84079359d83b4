package bleve

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.SearchIndex = (*Index)(nil)

// maxBodyChars bounds the indexed body text so long documents do not
// dominate term frequency statistics.
const maxBodyChars = 5000

// fieldWeight pairs an indexed field with its query-time boost.
// Matches on curated, short fields (title, hand-written description) are
// near-certain relevance signals; body text is long and noisy so it must
// not dominate.
type fieldWeight struct {
	name   string
	weight float64
}

// fieldWeights is the descending importance table applied to every
// fielded query clause.
var fieldWeights = []fieldWeight{
	{"title", 10},
	{"description", 8},
	{"keywords", 7},
	{"headings", 5},
	{"tags", 4},
	{"summary", 3},
	{"topics", 2},
	{"body", 1},
	{"content_type", 1},
	{"audience", 1},
	{"difficulty", 1},
	{"modality", 1},
	{"section", 1},
	{"author", 1},
}

// indexDocument is the normalised field set submitted to Bleve.
// The record ID is the index key and is not itself an indexed field.
type indexDocument struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Tags        string `json:"tags"`
	Topics      string `json:"topics"`
	ContentType string `json:"content_type"`
	Audience    string `json:"audience"`
	Difficulty  string `json:"difficulty"`
	Headings    string `json:"headings"`
	Summary     string `json:"summary"`
	Body        string `json:"body"`
	Modality    string `json:"modality"`
	Section     string `json:"section"`
	Author      string `json:"author"`
}

// Index is an in-memory Bleve index. The corpus lives for one session;
// nothing is persisted to disk.
type Index struct {
	mu     sync.RWMutex
	index  bleve.Index
	closed bool
}

// New creates a new in-memory index with the docsearch field mapping.
func New() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &Index{index: idx}, nil
}

// buildIndexMapping declares a text field mapping for every weighted field.
func buildIndexMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()
	for _, fw := range fieldWeights {
		docMapping.AddFieldMappingsAt(fw.name, bleve.NewTextFieldMapping())
	}

	m := bleve.NewIndexMapping()
	m.DefaultMapping = docMapping
	return m
}

// Add indexes one document record.
// Returns domain.ErrEmptyDocumentID when the record has no identifier.
func (i *Index) Add(ctx context.Context, rec domain.DocumentRecord) error {
	if rec.ID == "" {
		return domain.ErrEmptyDocumentID
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed || i.index == nil {
		return domain.ErrIndexClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := i.index.Index(rec.ID, toIndexDocument(rec)); err != nil {
		return fmt.Errorf("index document %q: %w", rec.ID, err)
	}
	return nil
}

// Search executes one query expression and returns raw hits in Bleve
// ranking order.
func (i *Index) Search(ctx context.Context, expr domain.QueryExpr, limit int) ([]driven.Hit, error) {
	q, err := buildQuery(expr)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.closed || i.index == nil {
		return nil, domain.ErrIndexClosed
	}

	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", expr.Strategy, err)
	}

	hits := make([]driven.Hit, 0, len(res.Hits))
	for _, hit := range res.Hits {
		hits = append(hits, driven.Hit{DocID: hit.ID, Score: hit.Score})
	}
	return hits, nil
}

// DocCount returns the number of indexed documents.
func (i *Index) DocCount(_ context.Context) (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.closed || i.index == nil {
		return 0, domain.ErrIndexClosed
	}
	return i.index.DocCount()
}

// Close releases the index. Further operations return domain.ErrIndexClosed.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed || i.index == nil {
		return nil
	}
	i.closed = true
	err := i.index.Close()
	i.index = nil
	return err
}

// buildQuery translates a query expression into a Bleve query. Fielded
// clause kinds expand into a per-field disjunction carrying the weight
// table; the raw fallback goes through Bleve's own query string parser.
func buildQuery(expr domain.QueryExpr) (query.Query, error) {
	clauses := make([]query.Query, 0, len(expr.Clauses))

	for _, c := range expr.Clauses {
		switch c.Kind {
		case domain.ClausePhrase:
			clauses = append(clauses, fieldedDisjunction(func(field string, boost float64) query.Query {
				q := bleve.NewMatchPhraseQuery(c.Text)
				q.SetField(field)
				q.SetBoost(boost)
				return q
			}))

		case domain.ClauseWildcard:
			// Wildcard terms bypass analysis; lowercase to line up with
			// the standard analyzer's index terms.
			text := strings.ToLower(c.Text)
			clauses = append(clauses, fieldedDisjunction(func(field string, boost float64) query.Query {
				q := bleve.NewWildcardQuery(text)
				q.SetField(field)
				q.SetBoost(boost)
				return q
			}))

		case domain.ClauseFuzzy:
			text := strings.ToLower(c.Text)
			fuzziness := c.Fuzziness
			clauses = append(clauses, fieldedDisjunction(func(field string, boost float64) query.Query {
				q := bleve.NewFuzzyQuery(text)
				q.SetFuzziness(fuzziness)
				q.SetField(field)
				q.SetBoost(boost)
				return q
			}))

		case domain.ClauseRaw:
			clauses = append(clauses, bleve.NewQueryStringQuery(c.Text))

		default:
			return nil, fmt.Errorf("%w: unknown clause kind %q", domain.ErrInvalidInput, c.Kind)
		}
	}

	if len(clauses) == 0 {
		return nil, nil
	}
	if len(clauses) == 1 {
		return clauses[0], nil
	}
	return bleve.NewDisjunctionQuery(clauses...), nil
}

// fieldedDisjunction builds one sub-query per weighted field.
func fieldedDisjunction(build func(field string, boost float64) query.Query) query.Query {
	subs := make([]query.Query, 0, len(fieldWeights))
	for _, fw := range fieldWeights {
		subs = append(subs, build(fw.name, fw.weight))
	}
	return bleve.NewDisjunctionQuery(subs...)
}

// toIndexDocument flattens a record into the normalised field set.
func toIndexDocument(rec domain.DocumentRecord) indexDocument {
	headings := make([]string, 0, len(rec.Headings))
	for _, h := range rec.Headings {
		if h.Text != "" {
			headings = append(headings, h.Text)
		}
	}

	return indexDocument{
		Title:       rec.Title,
		Description: rec.Description,
		Keywords:    strings.Join(rec.KeywordList(), " "),
		Tags:        strings.Join(rec.TagList(), " "),
		Topics:      strings.Join(rec.TopicList(), " "),
		ContentType: rec.ContentType,
		Audience:    strings.Join(rec.AudienceList(), " "),
		Difficulty:  rec.Difficulty,
		Headings:    strings.Join(headings, " "),
		Summary:     rec.Description,
		Body:        truncate(rec.Body, maxBodyChars),
		Modality:    rec.Modality,
		Section:     rec.Section,
		Author:      rec.Author,
	}
}

// truncate cuts text to at most max runes.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
