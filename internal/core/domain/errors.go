package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownDataset indicates a dataset kind that is not configured.
	ErrUnknownDataset = errors.New("unknown dataset")

	// Load Errors.
	// Only these abort a dataset load; everything else degrades per row.

	// ErrFetchFailed indicates the raw CSV text could not be retrieved.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrParseFailed indicates the CSV text could not be parsed into records.
	ErrParseFailed = errors.New("parse failed")

	// Derivation Errors.

	// ErrInsufficientData indicates too few snapshots to compute statistics.
	// Callers treat this as "not computed", not as a failure.
	ErrInsufficientData = errors.New("insufficient data")
)
