package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	clienterrors "github.com/CannonJunior/x-uav/client/internal/errors"
)

// HeaderRequestID carries a per-call correlation id. Retries of one logical
// call reuse the same id.
const HeaderRequestID = "X-Request-ID"

// Options configures a Transport. It is consumed once by NewTransport.
type Options struct {
	HTTPClient *http.Client
	BaseURL    string
	Headers    map[string]string

	// Attempts is the total number of tries per call; values <= 1 disable retries.
	Attempts    int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration

	// Observe is called after every HTTP attempt with its outcome.
	Observe func(op string, elapsed time.Duration, err error)
	Logger  zerolog.Logger
}

// Transport is the immutable request core shared by every endpoint function.
// It is safe for concurrent use.
type Transport struct {
	rest        *resty.Client
	attempts    int
	baseBackoff time.Duration
	maxBackoff  time.Duration
	observe     func(op string, elapsed time.Duration, err error)
	logger      zerolog.Logger
}

// NewTransport builds the resty client around o.HTTPClient.
func NewTransport(o Options) *Transport {
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	rc := resty.NewWithClient(hc).
		SetBaseURL(o.BaseURL).
		SetHeaders(o.Headers).
		SetLogger(restyLogger{l: o.Logger})

	t := &Transport{
		rest:        rc,
		attempts:    o.Attempts,
		baseBackoff: o.BaseBackoff,
		maxBackoff:  o.MaxBackoff,
		observe:     o.Observe,
		logger:      o.Logger,
	}
	if t.baseBackoff <= 0 {
		t.baseBackoff = 200 * time.Millisecond
	}
	if t.maxBackoff <= 0 {
		t.maxBackoff = 5 * time.Second
	}
	return t
}

// BaseURL returns the configured base URL.
func (t *Transport) BaseURL() string { return t.rest.BaseURL }

// Call describes one endpoint invocation.
type Call struct {
	Op         string
	Method     string
	Path       string // may contain {name} placeholders filled from PathParams
	PathParams map[string]string
	Query      url.Values
	Body       any

	// Resource and Key turn a 404 into a NotFoundError. Leave Resource empty
	// for collection endpoints, where 404 means a misrouted request.
	Resource string
	Key      string
}

// Do executes c and decodes a 2xx JSON body into out (skipped when out is nil).
// Without retries exactly one HTTP request is sent.
func (t *Transport) Do(ctx context.Context, c Call, out any) error {
	if err := ctx.Err(); err != nil {
		return clienterrors.NewNetworkError(c.Op, c.Method, c.Path, err)
	}
	reqID := uuid.NewString()
	if t.attempts <= 1 {
		return t.once(ctx, c, reqID, out)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = t.baseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = t.maxBackoff
	exp.Reset()
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(t.attempts-1)), ctx)

	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		err := t.once(ctx, c, reqID, out)
		if err != nil && clienterrors.IsIrrecoverable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		t.logger.Warn().Err(err).Str("op", c.Op).Int("attempt", attempt).Dur("wait", wait).Msg("retrying request")
	})
	if err == nil {
		return nil
	}
	var classified clienterrors.Classified
	if !errors.As(err, &classified) {
		// The context ended between attempts.
		return clienterrors.NewNetworkError(c.Op, c.Method, c.Path, err)
	}
	return err
}

func (t *Transport) once(ctx context.Context, c Call, reqID string, out any) error {
	req := t.rest.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, reqID)
	if len(c.PathParams) > 0 {
		req.SetPathParams(c.PathParams)
	}
	if len(c.Query) > 0 {
		req.SetQueryParamsFromValues(c.Query)
	}
	if c.Body != nil {
		req.SetBody(c.Body)
	}

	start := time.Now()
	resp, err := req.Execute(c.Method, c.Path)
	err = classify(c, resp, err, out)
	if t.observe != nil {
		t.observe(c.Op, time.Since(start), err)
	}
	return err
}

func classify(c Call, resp *resty.Response, err error, out any) error {
	target := requestURL(c, resp)
	if err != nil {
		return clienterrors.NewNetworkError(c.Op, c.Method, target, err)
	}
	if !resp.IsSuccess() {
		status := clienterrors.NewHTTPError(c.Op, c.Method, target, resp.StatusCode(), resp.Body())
		if resp.StatusCode() == http.StatusNotFound && c.Resource != "" {
			return clienterrors.NewNotFoundError(c.Resource, c.Key, status)
		}
		return status
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return clienterrors.NewDecodeError(c.Op, resp.Body(), err)
	}
	return nil
}

func requestURL(c Call, resp *resty.Response) string {
	if resp != nil && resp.RawResponse != nil && resp.RawResponse.Request != nil {
		return resp.RawResponse.Request.URL.String()
	}
	if resp != nil && resp.Request != nil && resp.Request.URL != "" {
		return resp.Request.URL
	}
	return c.Path
}

// restyLogger routes resty's internal warnings through zerolog.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...any) {
	r.l.Error().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.l.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.l.Debug().Msgf(strings.TrimSpace(format), v...)
}
