package client

// This file defines functional options that configure a Client or V1Client
// during construction. Both client types accept the same options.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// settings collects option values before the request core is built.
type settings struct {
	http        *http.Client
	headers     map[string]string
	attempts    int
	baseBackoff time.Duration
	maxBackoff  time.Duration
	debug       bool
	logger      zerolog.Logger
}

// Option configures a client during construction in New or NewV1.
//
// Options are applied in order. The debug transport, when requested, is
// installed after all options so it always wraps the final transport.
type Option func(*settings) error

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a single HTTP request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(s *settings) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		s.http.Timeout = d
		return nil
	}
}

// WithHTTPClient uses a copy of hc as the underlying HTTP client. The caller's
// client is never modified by later options.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		s.http = &cp
		return nil
	}
}

// WithTransport replaces the RoundTripper of the underlying HTTP client. Tests
// use it to substitute a fake backend.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *settings) error {
		if rt == nil {
			return fmt.Errorf("transport cannot be nil")
		}
		s.http.Transport = rt
		return nil
	}
}

// WithDefaultHeader adds a header sent on every request.
func WithDefaultHeader(key, value string) Option {
	return func(s *settings) error {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("header name cannot be empty")
		}
		s.headers[http.CanonicalHeaderKey(key)] = value
		return nil
	}
}

// WithDebugLogging dumps every request and response at debug level when
// enabled is true. Do not enable it in production: dumps include bodies.
func WithDebugLogging(enabled bool) Option {
	return func(s *settings) error {
		s.debug = s.debug || enabled
		return nil
	}
}

// WithRetry opts into retrying recoverable failures (transport errors, 408,
// 429 and 5xx) with exponential backoff. attempts is the total number of
// tries; 1 keeps the default of exactly one HTTP request per call.
func WithRetry(attempts int) Option {
	return func(s *settings) error {
		if attempts < 1 {
			return fmt.Errorf("retry attempts must be >= 1")
		}
		s.attempts = attempts
		return nil
	}
}

// WithRetryBackoff tunes the initial and maximum wait between retries.
func WithRetryBackoff(initial, max time.Duration) Option {
	return func(s *settings) error {
		if initial <= 0 || max < initial {
			return fmt.Errorf("invalid retry backoff %s..%s", initial, max)
		}
		s.baseBackoff, s.maxBackoff = initial, max
		return nil
	}
}

// WithLogger sets the logger used for retry and debug output. The global
// zerolog logger is used otherwise.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) error {
		s.logger = l
		return nil
	}
}
