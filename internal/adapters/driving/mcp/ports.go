package mcp

import (
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides search capabilities.
	Search driving.SearchService

	// Filters exposes the filter options catalog.
	Filters driving.FilterService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Filters is optional; the tool degrades to an empty catalog.
	return nil
}
