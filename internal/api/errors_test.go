package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/phrazzld/catalog-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    MsgUnexpected,
		},
		{
			name:           "malformed body",
			err:            domain.NewMalformedRequestError("body", errors.New("unexpected EOF")),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    MsgInvalidRequest,
		},
		{
			name:           "validation error",
			err:            domain.NewValidationError("price", domain.KindRange, "ensure this value is greater than 0"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    MsgValidationFailed,
		},
		{
			name:           "product not found",
			err:            store.NewNotFoundError(store.EntityProduct, "p-1"),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    MsgProductNotFound,
		},
		{
			name: "product not found wrapped by service",
			err: service.NewServiceError("get product", "failed to retrieve product",
				store.NewNotFoundError(store.EntityProduct, "p-1")),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    MsgProductNotFound,
		},
		{
			name:           "task not found",
			err:            fmt.Errorf("lookup: %w", store.ErrTaskNotFound),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    MsgTaskNotFound,
		},
		{
			name:           "generic not found",
			err:            store.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedMsg:    MsgNotFound,
		},
		{
			name:           "duplicate id",
			err:            store.ErrDuplicate,
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    MsgUnexpected,
		},
		{
			name:           "unknown error",
			err:            errors.New("connection reset by peer"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    MsgUnexpected,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.expectedMsg, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestHandleAPIErrorFallbackMessage(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	HandleAPIError(rec, req, errors.New("boom"), "Failed to list products")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to list products","code":500}`, rec.Body.String())

	// The fallback only replaces the generic message of unexpected errors.
	rec = httptest.NewRecorder()
	HandleAPIError(rec, req, store.ErrProductNotFound, "Failed to get product")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found","code":404}`, rec.Body.String())
}

func TestHandleAPIErrorIncludesViolations(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{}
	verr.Add("name", domain.KindRequired, "field required")
	verr.Add("price", domain.KindRange, "ensure this value is greater than 0")

	rec := httptest.NewRecorder()
	HandleAPIError(rec, httptest.NewRequest(http.MethodPost, "/products", nil), verr, "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{
		"error": "Validation error",
		"code": 422,
		"details": ["name: field required", "price: ensure this value is greater than 0"],
		"violations": [
			{"field": "name", "kind": "required", "message": "field required"},
			{"field": "price", "kind": "range", "message": "ensure this value is greater than 0"}
		]
	}`, rec.Body.String())
}
