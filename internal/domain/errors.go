package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when client-supplied data violates a schema constraint.
	// Concrete failures are reported as *ValidationError, which unwraps to this sentinel.
	ErrValidation = errors.New("validation failed")

	// ErrMalformedRequest is returned when a request body or query cannot be parsed
	// into the expected shape at all.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrInvalidID is returned when an identifier is empty.
	ErrInvalidID = errors.New("invalid ID")
)

// ViolationKind classifies a single schema violation.
type ViolationKind string

// Violation kinds reported by the schema validator.
const (
	KindRequired ViolationKind = "required"
	KindLength   ViolationKind = "length"
	KindRange    ViolationKind = "range"
	KindType     ViolationKind = "type"
	KindEnum     ViolationKind = "enum"
)

// FieldViolation describes one violated field constraint.
type FieldViolation struct {
	Field   string        `json:"field"`
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

// String renders the violation as "<field>: <message>".
func (v FieldViolation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationError collects every violated constraint of an input, not just the first.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates a ValidationError holding a single violation.
func NewValidationError(field string, kind ViolationKind, message string) *ValidationError {
	return &ValidationError{
		Violations: []FieldViolation{{Field: field, Kind: kind, Message: message}},
	}
}

// Add appends a violation.
func (e *ValidationError) Add(field string, kind ViolationKind, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Kind: kind, Message: message})
}

// Merge appends all violations of other, which may be nil.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	e.Violations = append(e.Violations, other.Violations...)
}

// HasViolations reports whether at least one violation was recorded.
func (e *ValidationError) HasViolations() bool {
	return e != nil && len(e.Violations) > 0
}

// Err returns e as an error when it holds violations and nil otherwise,
// avoiding the typed-nil interface trap at call sites.
func (e *ValidationError) Err() error {
	if !e.HasViolations() {
		return nil
	}
	return e
}

// Details renders every violation as a "<field>: <message>" line.
func (e *ValidationError) Details() []string {
	details := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		details = append(details, v.String())
	}
	return details
}

// Fields returns the distinct field paths that failed, in first-seen order.
func (e *ValidationError) Fields() []string {
	seen := make(map[string]bool, len(e.Violations))
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if !seen[v.Field] {
			seen[v.Field] = true
			fields = append(fields, v.Field)
		}
	}
	return fields
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if !e.HasViolations() {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(e.Details(), "; "))
}

// Unwrap returns ErrValidation so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MalformedRequestError reports a request whose body or query could not be parsed.
type MalformedRequestError struct {
	// Source is where the unparseable data came from ("body" or "query").
	Source string
	Err    error
}

// NewMalformedRequestError wraps err as a malformed request from source.
func NewMalformedRequestError(source string, err error) *MalformedRequestError {
	return &MalformedRequestError{Source: source, Err: err}
}

// Error implements the error interface.
func (e *MalformedRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed request %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("malformed request %s", e.Source)
}

// Is matches ErrMalformedRequest.
func (e *MalformedRequestError) Is(target error) bool {
	return target == ErrMalformedRequest
}

// Unwrap returns the underlying parse error.
func (e *MalformedRequestError) Unwrap() error {
	return e.Err
}
