package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an upload whose file kind cannot be
	// handled. The whole file is rejected; no partial parse is attempted.
	ErrUnsupportedType = errors.New("unsupported file format")

	// ErrMissingColumns indicates a customer-query spreadsheet without the
	// required columns. The whole batch is rejected up front.
	ErrMissingColumns = errors.New("dataset missing required columns")

	// ErrMissingField indicates a row without a required value.
	// Row-level: the offending row is skipped, processing continues.
	ErrMissingField = errors.New("missing required field")

	// ErrMailerUnavailable indicates the notification sender is not
	// configured. Batch processing cannot start without one.
	ErrMailerUnavailable = errors.New("mail sender unavailable")

	// ErrEmbedderUnavailable indicates the embedding service is not
	// configured. Nearest-neighbour retrieval is disabled without it.
	ErrEmbedderUnavailable = errors.New("embedding service unavailable")
)
