package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query       string            `json:"query" jsonschema:"the search query to find documents"`
	Limit       int               `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
	Topic       string            `json:"topic,omitempty" jsonschema:"restrict results to a topic"`
	Tag         string            `json:"tag,omitempty" jsonschema:"restrict results to a tag"`
	ContentType string            `json:"content_type,omitempty" jsonschema:"restrict results to a content type"`
	Audience    string            `json:"audience,omitempty" jsonschema:"restrict results to an audience"`
	Difficulty  string            `json:"difficulty,omitempty" jsonschema:"restrict results to a difficulty level"`
	Facets      map[string]string `json:"facets,omitempty" jsonschema:"restrict results by open facet values, keyed by facet name"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	DocumentID   string          `json:"document_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Score        float64         `json:"score"`
	Strategy     string          `json:"strategy,omitempty"`
	Matches      int             `json:"matches"`
	Sections     []SectionOutput `json:"sections,omitempty"`
	Topics       []string        `json:"topics,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	ContentType  string          `json:"content_type,omitempty"`
	Difficulty   string          `json:"difficulty,omitempty"`
}

// SectionOutput is a matched section within a result document.
type SectionOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Level  int    `json:"level,omitempty"`
	Anchor string `json:"anchor,omitempty"`
}

// FilterOptionsOutput is the output schema for the filter_options tool.
type FilterOptionsOutput struct {
	Topics       []string            `json:"topics"`
	Tags         []string            `json:"tags"`
	ContentTypes []string            `json:"content_types"`
	Audiences    []string            `json:"audiences"`
	Difficulties []string            `json:"difficulties"`
	Facets       map[string][]string `json:"facets,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the documentation corpus with ranked, grouped results",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "filter_options",
		Description: "List the filter values present in the corpus (topics, tags, content types, audiences, difficulties, open facets)",
	}, s.handleFilterOptions)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{
		Limit: input.Limit,
		Filters: domain.FilterSet{
			Topic:       input.Topic,
			Tag:         input.Tag,
			ContentType: input.ContentType,
			Audience:    input.Audience,
			Difficulty:  input.Difficulty,
			Facets:      input.Facets,
		},
	}

	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		doc := results[i].Document
		out := SearchResultOutput{
			DocumentID:  doc.ID,
			Title:       doc.Title,
			Description: doc.Description,
			Score:       results[i].CombinedScore,
			Strategy:    results[i].Strategy,
			Matches:     results[i].TotalMatches,
			Topics:      doc.TopicList(),
			Tags:        doc.TagList(),
			ContentType: doc.ContentType,
			Difficulty:  doc.Difficulty,
		}
		for _, section := range results[i].Sections {
			out.Sections = append(out.Sections, SectionOutput{
				Kind:   string(section.Kind),
				Text:   section.Text,
				Level:  section.Level,
				Anchor: section.Anchor,
			})
		}
		output.Results[i] = out
	}

	return nil, output, nil
}

// handleFilterOptions handles the filter_options tool invocation.
func (s *Server) handleFilterOptions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, FilterOptionsOutput, error) {
	if s.ports.Filters == nil {
		return nil, FilterOptionsOutput{}, nil
	}

	catalog, err := s.ports.Filters.FilterOptions(ctx)
	if err != nil {
		return nil, FilterOptionsOutput{}, err
	}

	return nil, FilterOptionsOutput{
		Topics:       catalog.Topics,
		Tags:         catalog.Tags,
		ContentTypes: catalog.ContentTypes,
		Audiences:    catalog.Audiences,
		Difficulties: catalog.Difficulties,
		Facets:       catalog.Facets,
	}, nil
}
