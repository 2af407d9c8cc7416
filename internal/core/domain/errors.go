package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a required file or directory is missing,
	// or that no source documents matched the expected pattern.
	ErrNotFound = errors.New("not found")

	// ErrMalformedData indicates the reference dataset is present but
	// not parseable, or its records are missing required fields.
	ErrMalformedData = errors.New("malformed dataset")

	// ErrMalformedDocument indicates a source document could not be
	// parsed as TEI XML.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrInvalidInput indicates malformed or invalid input to an
	// operation.
	ErrInvalidInput = errors.New("invalid input")
)
