package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// statusForErrorKind maps a result's error kind to the HTTP status it is served with.
// A request with no viable plants is a valid answer, not a failure.
func statusForErrorKind(kind string) int {
	switch kind {
	case "", domain.ErrorKindNoViableData:
		return http.StatusOK
	case domain.ErrorKindInvalidInput:
		return http.StatusBadRequest
	case domain.ErrorKindDataUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError logs a service error and responds with a user-facing message.
// failMsg is shown for errors that are not the caller's fault and not an outage.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName, failMsg string, err error) {
	log := logger.FromContext(r.Context())
	status := statusForErrorKind(domain.ErrorKind(err))

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		log.Warn(opName+" rejected", "error", err)
		respondError(w, status, err.Error())
	case errors.Is(err, domain.ErrDataUnavailable):
		log.Error(opName+" failed", "error", err)
		respondError(w, status, ErrMsgUnavailableError)
	default:
		log.Error(opName+" failed", "error", err)
		respondError(w, http.StatusInternalServerError, failMsg)
	}
}
