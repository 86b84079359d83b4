// Package services implements the driving port interfaces.
// Services contain the core business logic: filter option collection,
// index building, query planning, relevance boosting, filtering and
// result grouping. Services orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no external dependencies beyond the ports.
package services
