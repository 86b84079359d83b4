// Package tui provides the interactive terminal interface: a search box
// over the indexed corpus with live results, matched section anchors,
// and keyboard navigation.
package tui

import (
	"errors"

	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// ErrNoSearchService is returned when the TUI is created without a
// search service.
var ErrNoSearchService = errors.New("tui: search service is required")

// Ports aggregates the driving port interfaces the TUI depends on.
type Ports struct {
	// Search provides search capabilities.
	Search driving.SearchService

	// Filters exposes the filter options catalog.
	Filters driving.FilterService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrNoSearchService
	}
	// Filters is optional; the filter pane just stays empty.
	return nil
}
