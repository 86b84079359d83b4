package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

var filtersJSON bool

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List available filter options",
	Long: `Prints the filter options catalog collected from the corpus:
topics, tags, content types, audiences, difficulties, and any open
facets the records declare. Only values that actually occur in the
corpus are listed.`,
	RunE: runFilters,
}

func init() {
	filtersCmd.Flags().BoolVar(&filtersJSON, "json", false, "output catalog as JSON")
	rootCmd.AddCommand(filtersCmd)
}

func runFilters(cmd *cobra.Command, _ []string) error {
	if filterService == nil {
		return errors.New("filter service not configured")
	}

	catalog, err := filterService.FilterOptions(cmd.Context())
	if err != nil {
		return fmt.Errorf("collect filter options: %w", err)
	}

	if filtersJSON {
		data, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputCatalogTable(cmd, catalog)
}

func outputCatalogTable(cmd *cobra.Command, catalog domain.FilterOptionsCatalog) error {
	printGroup := func(name string, values []string) {
		if len(values) == 0 {
			return
		}
		cmd.Printf("%s:\n", name)
		for _, v := range values {
			cmd.Printf("  %s\n", v)
		}
		cmd.Println()
	}

	printGroup("Topics", catalog.Topics)
	printGroup("Tags", catalog.Tags)
	printGroup("Content types", catalog.ContentTypes)
	printGroup("Audiences", catalog.Audiences)
	printGroup("Difficulties", catalog.Difficulties)

	if len(catalog.Facets) > 0 {
		keys := make([]string, 0, len(catalog.Facets))
		for key := range catalog.Facets {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			printGroup("Facet "+key, catalog.Facets[key])
		}
	}

	return nil
}
