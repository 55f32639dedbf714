package client

import (
	"errors"

	clienterrors "github.com/CannonJunior/x-uav/client/internal/errors"
)

// Error types re-exported so callers can use errors.As without importing
// internal packages.
type (
	TransportError  = clienterrors.TransportError
	HTTPStatusError = clienterrors.HTTPStatusError
	NotFoundError   = clienterrors.NotFoundError
	DecodeError     = clienterrors.DecodeError
	ValidationError = clienterrors.ValidationError
	ErrorCategory   = clienterrors.ErrorCategory
)

const (
	Recoverable   = clienterrors.Recoverable
	Irrecoverable = clienterrors.Irrecoverable
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrNotFound        = clienterrors.ErrNotFound
	ErrInvalidArgument = clienterrors.ErrInvalidArgument
)

// IsNotFound reports whether err is a 404 on a single-resource lookup.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsRecoverable reports whether retrying the same call may succeed.
func IsRecoverable(err error) bool {
	return err != nil && clienterrors.CategoryOf(err) == clienterrors.Recoverable
}

// StatusCode extracts the HTTP status of a failed call, if the server answered.
func StatusCode(err error) (int, bool) {
	var he *HTTPStatusError
	if errors.As(err, &he) {
		return he.StatusCode, true
	}
	return 0, false
}
