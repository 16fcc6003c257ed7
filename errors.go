package orbrowser

import "errors"

// Sentinel errors for the terminal failure modes. The CLI maps every
// one of them to exit code 1; callers can still tell them apart with
// errors.Is.
var (
	// ErrNoQuery indicates no search query was supplied.
	ErrNoQuery = errors.New("no search query provided")

	// ErrTimeout indicates the catalog request exceeded its time budget.
	ErrTimeout = errors.New("request timed out")

	// ErrFetch indicates a transport or HTTP-status failure.
	ErrFetch = errors.New("failed to fetch models")

	// ErrInvalidResponse indicates the response body could not be
	// decoded or lacks the expected data field.
	ErrInvalidResponse = errors.New("invalid API response")

	// ErrNoMatch indicates the catalog was fetched but no record
	// matched any query.
	ErrNoMatch = errors.New("no models found")
)
