package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexNotReady indicates the search index has not finished
	// building. Searches issued before readiness return empty results
	// rather than surfacing this error.
	ErrIndexNotReady = errors.New("search index not ready")

	// ErrSearchUnavailable indicates the search index is not configured.
	ErrSearchUnavailable = errors.New("search index unavailable")

	// ErrIndexClosed indicates an operation on a closed search index.
	ErrIndexClosed = errors.New("search index closed")

	// ErrEmptyDocumentID indicates a document without an identifier was
	// submitted for indexing.
	ErrEmptyDocumentID = errors.New("document ID cannot be empty")
)
