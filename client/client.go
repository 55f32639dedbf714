package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/CannonJunior/x-uav/client/internal/api"
	"github.com/CannonJunior/x-uav/client/internal/types"
)

// Version is reported in the User-Agent header.
const Version = "0.1.0"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the legacy X-UAV contract (base URL ends in /api). It holds
// only immutable configuration and is safe for concurrent use.
type Client struct {
	baseURL string
	t       *api.Transport
}

// New constructs a Client for baseURL, e.g. http://localhost:8877/api.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	t, err := newTransport(baseURL, opts)
	if err != nil {
		return nil, err
	}
	return &Client{baseURL: t.BaseURL(), t: t}, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

func newTransport(baseURL string, opts []Option) (*api.Transport, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid baseURL %q", baseURL)
	}

	s := &settings{
		http: &http.Client{Timeout: 30 * time.Second},
		headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": "xuav-client/" + Version,
		},
		attempts: 1,
		logger:   log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.debug {
		s.http.Transport = &debugTransport{base: s.http.Transport, logger: s.logger}
	}

	return api.NewTransport(api.Options{
		HTTPClient:  s.http,
		BaseURL:     baseURL,
		Headers:     s.headers,
		Attempts:    s.attempts,
		BaseBackoff: s.baseBackoff,
		MaxBackoff:  s.maxBackoff,
		Observe:     observeRequest,
		Logger:      s.logger,
	}), nil
}

// --------------------------------------------------------------------
// Platform operations - delegated to internal/api
// --------------------------------------------------------------------

// CheckHealth reports backend liveness.
func (c *Client) CheckHealth(ctx context.Context) (*HealthStatus, error) {
	return api.CheckHealth(ctx, c.t)
}

// GetStats returns record counts grouped by country, type and status.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	return api.GetStats(ctx, c.t)
}

// ListUAVs returns every UAV.
func (c *Client) ListUAVs(ctx context.Context) (*UAVList, error) {
	return api.ListUAVs(ctx, c.t)
}

// GetUAV retrieves a UAV by designation. A 404 yields a *NotFoundError.
func (c *Client) GetUAV(ctx context.Context, designation string) (*UAV, error) {
	return api.GetUAV(ctx, c.t, designation)
}

// CompareUAVs retrieves the named UAVs for side-by-side comparison. At least
// one designation is required.
func (c *Client) CompareUAVs(ctx context.Context, designations []string) (*UAVList, error) {
	return api.CompareUAVs(ctx, c.t, designations)
}

// SearchUAVs runs a filtered search; empty filter fields are not sent.
func (c *Client) SearchUAVs(ctx context.Context, filters SearchFilters) (*UAVList, error) {
	return api.SearchUAVs(ctx, c.t, filters)
}

// --------------------------------------------------------------------
// Filter lookups
// --------------------------------------------------------------------

// ListDistinctValues returns the distinct values of a filter dimension.
func (c *Client) ListDistinctValues(ctx context.Context, dim Dimension) ([]string, error) {
	return api.ListDistinctValues(ctx, c.t, dim)
}

// ListCountries returns the distinct countries of origin.
func (c *Client) ListCountries(ctx context.Context) ([]string, error) {
	return api.ListDistinctValues(ctx, c.t, types.DimensionCountry)
}

// ListTypes returns the distinct UAV types.
func (c *Client) ListTypes(ctx context.Context) ([]string, error) {
	return api.ListDistinctValues(ctx, c.t, types.DimensionType)
}

// --------------------------------------------------------------------
// Armament operations
// --------------------------------------------------------------------

// ListArmaments returns every armament.
func (c *Client) ListArmaments(ctx context.Context) (*ArmamentList, error) {
	return api.ListArmaments(ctx, c.t)
}

// GetArmament retrieves an armament by designation.
func (c *Client) GetArmament(ctx context.Context, designation string) (*Armament, error) {
	return api.GetArmament(ctx, c.t, designation)
}

// SearchArmaments filters armaments.
func (c *Client) SearchArmaments(ctx context.Context, q ArmamentSearch) (*ArmamentList, error) {
	return api.SearchArmaments(ctx, c.t, q)
}

// GetUAVArmaments lists the armaments a UAV can carry.
func (c *Client) GetUAVArmaments(ctx context.Context, designation string) (*UAVArmaments, error) {
	return api.GetUAVArmaments(ctx, c.t, designation)
}

// GetArmamentUAVs lists the UAVs able to carry an armament.
func (c *Client) GetArmamentUAVs(ctx context.Context, designation string) (*ArmamentCarriers, error) {
	return api.GetArmamentUAVs(ctx, c.t, designation)
}
