package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

var (
	searchLimit      int
	searchJSON       bool
	searchTopic      string
	searchTag        string
	searchType       string
	searchAudience   string
	searchDifficulty string
	searchFacets     []string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the documentation corpus",
	Long: `Runs a multi-strategy search over the indexed corpus and prints
ranked, grouped results. Facet filters narrow the result set:

  docsearch search "output validation" --topic guardrails --difficulty beginner
  docsearch search "streaming" --facet language=python`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default 20)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVar(&searchTopic, "topic", "", "filter by topic")
	searchCmd.Flags().StringVar(&searchTag, "tag", "", "filter by tag")
	searchCmd.Flags().StringVar(&searchType, "content-type", "", "filter by content type")
	searchCmd.Flags().StringVar(&searchAudience, "audience", "", "filter by audience")
	searchCmd.Flags().StringVar(&searchDifficulty, "difficulty", "", "filter by difficulty")
	searchCmd.Flags().StringArrayVar(&searchFacets, "facet", nil, "filter by open facet, key=value (repeatable)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	filters, err := buildFilterSet()
	if err != nil {
		return err
	}

	opts := domain.SearchOptions{
		Limit:   searchLimit,
		Filters: filters,
	}

	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

// buildFilterSet converts the filter flags into a domain filter set.
func buildFilterSet() (domain.FilterSet, error) {
	filters := domain.FilterSet{
		Topic:       searchTopic,
		Tag:         searchTag,
		ContentType: searchType,
		Audience:    searchAudience,
		Difficulty:  searchDifficulty,
	}

	for _, pair := range searchFacets {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" || value == "" {
			return domain.FilterSet{}, fmt.Errorf("invalid facet filter %q, expected key=value", pair)
		}
		if filters.Facets == nil {
			filters.Facets = make(map[string]string)
		}
		filters.Facets[key] = value
	}

	return filters, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		title := results[i].Document.Title
		if title == "" {
			title = results[i].Document.ID
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, results[i].CombinedScore)
		if results[i].Document.Description != "" {
			cmd.Printf("      %s\n", results[i].Document.Description)
		}
		for _, section := range results[i].Sections {
			if section.Anchor != "" {
				cmd.Printf("      %s: %s (#%s)\n", section.Kind, section.Text, section.Anchor)
			} else {
				cmd.Printf("      %s: %s\n", section.Kind, section.Text)
			}
		}
		cmd.Println()
	}

	return nil
}
