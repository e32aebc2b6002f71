package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions
var (
	// ErrCourtNotFound is returned when a court is not found
	ErrCourtNotFound = errors.New("court not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCatalog is returned when seed data is inconsistent
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// CourtNotFoundError represents a court not found error with context
type CourtNotFoundError struct {
	CourtID string
}

func (e *CourtNotFoundError) Error() string {
	return fmt.Sprintf("court with ID '%s' not found", e.CourtID)
}

func (e *CourtNotFoundError) Is(target error) bool {
	return target == ErrCourtNotFound
}

// NewCourtNotFoundError creates a new CourtNotFoundError
func NewCourtNotFoundError(courtID string) *CourtNotFoundError {
	return &CourtNotFoundError{CourtID: courtID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationErrors collects every field problem found in one request.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

// CatalogError describes a problem in the court catalog seed data
type CatalogError struct {
	Reason string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("invalid catalog: %s", e.Reason)
}

func (e *CatalogError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

// NewCatalogError creates a new CatalogError
func NewCatalogError(format string, args ...interface{}) *CatalogError {
	return &CatalogError{Reason: fmt.Sprintf(format, args...)}
}
