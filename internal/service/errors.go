package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// Error handling principles:
// 1. Validation failures are returned as *domain.ValidationError, unwrapped
// 2. Store failures are wrapped in ServiceError, keeping the cause reachable
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes

// ServiceError is a custom error type for service errors.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func domainValidation(err error) bool {
	return errors.Is(err, domain.ErrValidation)
}

// rejectedFields lists the fields named by a validation error, for logging.
func rejectedFields(err error) []string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields()
	}
	return nil
}
