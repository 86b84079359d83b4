// Package domain defines the core business entities for docsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocumentRecord: One indexable documentation page with metadata
//   - FilterOptionsCatalog: The discoverable filter dimensions of a corpus
//   - FilterSet: A caller-supplied set of filter selectors
//   - SearchResult: One ranked, grouped search hit
//   - MatchingSection: One highlighted locus within a document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
