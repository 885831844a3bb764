// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeTransport indicates a non-success HTTP response
	TypeTransport Type = "TRANSPORT_ERROR"

	// TypeRetry indicates the retry budget was exhausted
	TypeRetry Type = "RETRY_EXHAUSTED"

	// TypeParsing indicates a malformed CSV/JSON payload
	TypeParsing Type = "PARSING_ERROR"

	// TypePersistence indicates a bulk database write failure
	TypePersistence Type = "PERSISTENCE_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Transport creates a transport error carrying the HTTP status
func Transport(url string, status int) *Error {
	return Newf(TypeTransport, "unexpected HTTP status %d for %s", status, url).
		WithContext("status", status).
		WithContext("url", url)
}

// HTTPStatus extracts the HTTP status from a transport error, 0 if absent
func HTTPStatus(err error) int {
	e, ok := err.(*Error)
	if !ok || e.Context == nil {
		return 0
	}
	if status, ok := e.Context["status"].(int); ok {
		return status
	}
	return 0
}

// RetryExhausted creates a terminal retry error
func RetryExhausted(url string, attempts int, cause error) *Error {
	e := Wrap(TypeRetry, fmt.Sprintf("fetch failed after %d attempts for %s", attempts, url), cause)
	return e.WithContext("attempts", attempts).WithContext("url", url)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Persistence creates a persistence error
func Persistence(message string, cause error) *Error {
	return Wrap(TypePersistence, message, cause)
}

// Config creates a configuration error
func Config(message string) *Error {
	return New(TypeConfig, message)
}
