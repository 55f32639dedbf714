package errors

import (
	"net/http"
	"unicode/utf8"
)

// MaxBodyPreview bounds the response body kept on HTTPStatusError and DecodeError.
const MaxBodyPreview = 1024

// StatusCategory maps HTTP status codes to error categories:
//   - 4xx client errors are irrecoverable, except 408 and 429
//   - 5xx server errors are recoverable
func StatusCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		return Recoverable
	case statusCode >= 400 && statusCode < 500:
		return Irrecoverable
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// 1xx/3xx surfacing as errors means a protocol mismatch; retrying won't help.
		return Irrecoverable
	}
}

// NewHTTPError creates a status error with a bounded body preview.
func NewHTTPError(op, method, url string, statusCode int, body []byte) *HTTPStatusError {
	return &HTTPStatusError{
		Op:         op,
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Body:       Preview(body),
	}
}

// NewNotFoundError wraps a 404 status error for a single-resource lookup.
func NewNotFoundError(resource, key string, status *HTTPStatusError) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key, Status: status}
}

// NewNetworkError creates a transport error for network-level failures.
func NewNetworkError(op, method, url string, err error) *TransportError {
	return &TransportError{Op: op, Method: method, URL: url, Err: err}
}

// NewDecodeError creates a decode error with a bounded body preview.
func NewDecodeError(op string, body []byte, err error) *DecodeError {
	return &DecodeError{Op: op, Body: Preview(body), Err: err}
}

// Invalid creates a validation error for field.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Preview truncates body to MaxBodyPreview bytes without splitting a rune.
func Preview(body []byte) string {
	if len(body) <= MaxBodyPreview {
		return string(body)
	}
	cut := MaxBodyPreview
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return string(body[:cut]) + "..."
}
