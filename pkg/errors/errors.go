// Package errors provides custom error types for the shoreleave system.
// These errors enable programmatic error checking and keep the failure
// taxonomy explicit: oracle failures are recoverable (treated as no-match),
// store failures are per-item, and config failures abort startup.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the shoreleave system
var (
	// ErrNotFound indicates that a requested page or entry was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrAPIKeyRequired indicates that an API key is required but not provided
	ErrAPIKeyRequired = errors.New("API key required")

	// ErrNoCandidates indicates that a discovery run produced no usable candidates
	ErrNoCandidates = errors.New("no candidates")

	// ErrEmptyResponse indicates that the model returned no usable text
	ErrEmptyResponse = errors.New("empty model response")
)

// NotFoundError represents an error when a page or entry is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// OracleError represents a failed or unusable similarity classification.
// The reconciler recovers from these by treating the candidate as unmatched,
// so an OracleError never aborts a batch.
type OracleError struct {
	Candidate string
	Raw       string // raw model output, when the failure is a parse failure
	Err       error
}

// Error implements the error interface
func (e *OracleError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("oracle classification for %q returned unusable output: %q", e.Candidate, e.Raw)
	}
	return fmt.Sprintf("oracle classification for %q failed: %v", e.Candidate, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *OracleError) Unwrap() error {
	return e.Err
}

// NewOracleError creates a new OracleError
func NewOracleError(candidate, raw string, err error) *OracleError {
	return &OracleError{Candidate: candidate, Raw: raw, Err: err}
}

// StoreError represents a failed create, update, or query against the
// remote document store. During reconciliation a StoreError is recorded as
// a per-candidate failed outcome and the batch continues.
type StoreError struct {
	Operation string // "query", "retrieve", "create", "update"
	PageID    string
	Err       error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.PageID != "" {
		return fmt.Sprintf("store %s failed for page %s: %v", e.Operation, e.PageID, e.Err)
	}
	return fmt.Sprintf("store %s failed: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError
func NewStoreError(operation, pageID string, err error) *StoreError {
	return &StoreError{Operation: operation, PageID: pageID, Err: err}
}

// APIError represents an error from an upstream API
type APIError struct {
	Service    string // "notion", "gemini"
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Service, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsOracleError checks if an error originated in similarity classification
func IsOracleError(err error) bool {
	var oe *OracleError
	return errors.As(err, &oe)
}

// IsStoreError checks if an error originated in the remote document store
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
