package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
)

// User-facing error messages.
const (
	MsgInvalidRequest   = "Invalid request format"
	MsgValidationFailed = "Validation error"
	MsgProductNotFound  = "Product not found"
	MsgTaskNotFound     = "Task not found"
	MsgNotFound         = "Resource not found"
	MsgUnexpected       = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedRequest),
		errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	switch {
	case errors.Is(err, domain.ErrMalformedRequest):
		return MsgInvalidRequest

	case errors.Is(err, domain.ErrValidation):
		return MsgValidationFailed

	case errors.Is(err, store.ErrProductNotFound):
		return MsgProductNotFound

	case errors.Is(err, store.ErrTaskNotFound):
		return MsgTaskNotFound

	case errors.Is(err, store.ErrNotFound):
		return MsgNotFound

	default:
		return MsgUnexpected
	}
}

// HandleAPIError writes the error response for err. The status code and
// message are derived from the error type; a non-empty fallbackMessage
// replaces the generic message for unexpected (5xx) errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
