package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport dumps every request and response at debug level.
//
// When to use:
//   - Set XUAV_DEBUG=true or DEBUG=true, or pass WithDebugLogging(true)
//   - When a backend answers with an unexpected shape or status
//
// Dumps include full bodies, so keep it out of production.
//
//	export XUAV_DEBUG=true
//	xuav get MQ-9  # logs the raw HTTP exchange
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Returns true if XUAV_DEBUG or DEBUG is set to "true" (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("XUAV_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
