// Package api provides the HTTP surface of the court directory.
package api

import (
	"strings"
	"unicode/utf8"
)

// maxCourtIDLength bounds path parameters before they reach the store.
const maxCourtIDLength = 64

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateCourtID validates a court ID path parameter
func ValidateCourtID(courtID string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if courtID == "" {
		result.AddError("courtId", "Court ID is required")
		return result
	}

	if strings.TrimSpace(courtID) != courtID {
		result.AddError("courtId", "Court ID cannot have leading or trailing whitespace")
		return result
	}

	if utf8.RuneCountInString(courtID) > maxCourtIDLength {
		result.AddError("courtId", "Court ID is too long")
	}

	return result
}
