package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Service error messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnavailableError    = "A data source is temporarily unavailable. Please try again later."
	ErrMsgGetCategoriesFailed = "Failed to retrieve categories"
	ErrMsgEstimateFailed      = "Failed to estimate savings"
	ErrMsgCacheNotConfigured  = "No cache is configured"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
