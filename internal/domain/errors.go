package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Provider errors
	ErrMsgDataUnavailable = "data unavailable"

	// Scoring errors
	ErrMsgNoViableData = "no valid plant data found for the given criteria"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"
)

// Error kinds reported to API callers in RecommendationResult.ErrorKind
const (
	ErrorKindInvalidInput    = "invalid_input"
	ErrorKindNoViableData    = "no_viable_data"
	ErrorKindDataUnavailable = "data_unavailable"
	ErrorKindInternal        = "internal"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrDataUnavailable means a climate, catalog or price collaborator failed
	ErrDataUnavailable = errors.New(ErrMsgDataUnavailable)

	// ErrNoViableData means filtering or scoring left nothing to allocate
	ErrNoViableData = errors.New(ErrMsgNoViableData)

	// ErrInvalidInput means the request failed validation before any work was done
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrInvalidCatalog means a catalog source could not be parsed
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)
)

// ErrorKind classifies an error for API responses.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return ErrorKindInvalidInput
	case errors.Is(err, ErrNoViableData):
		return ErrorKindNoViableData
	case errors.Is(err, ErrDataUnavailable):
		return ErrorKindDataUnavailable
	default:
		return ErrorKindInternal
	}
}
