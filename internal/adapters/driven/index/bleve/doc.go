// Package bleve adapts the Bleve full-text engine to the SearchIndex
// port. It owns the field weight table and the translation of query
// expressions into Bleve queries; the core services never see Bleve
// types.
package bleve
