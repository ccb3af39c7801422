// Package errors provides custom error types for the bedrockauth system.
// These errors enable programmatic error checking at process startup,
// where a resolution failure should stop the process rather than let it
// proceed with partial credentials.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for authentication-mode resolution
var (
	// ErrNoAuthSignal indicates that no authentication signal was found:
	// no API key, no IAM role request, and no managed runtime detected
	ErrNoAuthSignal = errors.New("no authentication signal")

	// ErrMissingAPIKey indicates that API key mode was selected but no
	// key could be resolved from any input
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrMissingRegion indicates that IAM role mode was selected but no
	// AWS region could be resolved from any input
	ErrMissingRegion = errors.New("missing AWS region")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ConfigError represents a configuration resolution failure.
// Every resolution error is non-retryable: the operator must fix the
// configuration before the process can start.
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

// ValidationError represents a validation failure on a resolved value
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

// Helper functions for error checking

// IsNoAuthSignal checks if an error indicates that no authentication
// signal was found
func IsNoAuthSignal(err error) bool {
	return errors.Is(err, ErrNoAuthSignal)
}

// IsMissingAPIKey checks if an error indicates a missing API key
func IsMissingAPIKey(err error) bool {
	return errors.Is(err, ErrMissingAPIKey)
}

// IsMissingRegion checks if an error indicates a missing AWS region
func IsMissingRegion(err error) bool {
	return errors.Is(err, ErrMissingRegion)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// WrapConfig wraps an error as a ConfigError for the given component
func WrapConfig(component string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Component: component, Message: err.Error(), Err: err}
}
