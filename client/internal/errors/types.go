// Package errors provides the error taxonomy surfaced by the client SDK.
// Every failure carries a Category so the opt-in retry policy can tell
// transient failures from permanent ones.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may succeed when the same request is sent again.
	// Examples: 503 Service Unavailable, connection refused, timeouts.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail the same way on every attempt.
	// Examples: 400 Bad Request, 404 Not Found, malformed JSON, invalid input.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound        = stderrors.New("resource not found")
	ErrInvalidArgument = stderrors.New("invalid argument")
)

// Classified is implemented by every error type in this package.
type Classified interface {
	error
	Category() ErrorCategory
}

// TransportError reports a failure below HTTP: connection refused, DNS
// failure, timeout or a cancelled context. No response was received.
type TransportError struct {
	Op     string
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s %s: transport error: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Category is always Recoverable; the network may come back.
func (e *TransportError) Category() ErrorCategory { return Recoverable }

// HTTPStatusError reports a non-2xx response not otherwise classified.
type HTTPStatusError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Body       string // preview, see MaxBodyPreview
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %s %s: HTTP %d", e.Op, e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s %s: HTTP %d: %s", e.Op, e.Method, e.URL, e.StatusCode, e.Body)
}

// Category classifies by status code (see StatusCategory).
func (e *HTTPStatusError) Category() ErrorCategory { return StatusCategory(e.StatusCode) }

// NotFoundError reports a 404 on a single-resource lookup.
type NotFoundError struct {
	Resource string
	Key      string
	Status   *HTTPStatusError
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// Unwrap exposes the underlying status error.
func (e *NotFoundError) Unwrap() error {
	if e.Status == nil {
		return nil
	}
	return e.Status
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func (e *NotFoundError) Category() ErrorCategory { return Irrecoverable }

// DecodeError reports a successful response whose body could not be decoded.
type DecodeError struct {
	Op   string
	Body string // preview, see MaxBodyPreview
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Category() ErrorCategory { return Irrecoverable }

// ValidationError reports arguments rejected before any request was sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is matches ErrInvalidArgument.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidArgument }

func (e *ValidationError) Category() ErrorCategory { return Irrecoverable }

// CategoryOf returns the category of err. Unclassified errors are treated as
// Irrecoverable so they are never retried blindly.
func CategoryOf(err error) ErrorCategory {
	var c Classified
	if stderrors.As(err, &c) {
		return c.Category()
	}
	return Irrecoverable
}

// IsIrrecoverable returns true if the error should not be retried.
func IsIrrecoverable(err error) bool {
	return CategoryOf(err) == Irrecoverable
}
