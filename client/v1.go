package client

import (
	"context"

	"github.com/CannonJunior/x-uav/client/internal/api"
)

// V1Client talks to the versioned catalog contract. Its base URL is the
// service root (no /api suffix); paths live under /api/v1.
type V1Client struct {
	baseURL string
	t       *api.Transport
}

// NewV1 constructs a V1Client for baseURL, e.g. http://localhost:8877.
func NewV1(baseURL string, opts ...Option) (*V1Client, error) {
	t, err := newTransport(baseURL, opts)
	if err != nil {
		return nil, err
	}
	return &V1Client{baseURL: t.BaseURL(), t: t}, nil
}

// BaseURL returns the normalized base URL.
func (c *V1Client) BaseURL() string { return c.baseURL }

// CheckHealth reports backend liveness.
func (c *V1Client) CheckHealth(ctx context.Context) (*HealthStatus, error) {
	return api.CheckHealth(ctx, c.t)
}

// ListUAVs returns one page of platforms. skip must be >= 0; a zero limit
// selects DefaultPageLimit. Callers loop with PlatformPage.HasMore.
func (c *V1Client) ListUAVs(ctx context.Context, skip, limit int) (*PlatformPage, error) {
	return api.ListPlatforms(ctx, c.t, skip, limit)
}

// GetUAV retrieves a platform by id.
func (c *V1Client) GetUAV(ctx context.Context, id string) (*Platform, error) {
	return api.GetPlatform(ctx, c.t, id)
}

// Search posts an arbitrary query object.
func (c *V1Client) Search(ctx context.Context, q SearchQuery) (*SearchResults, error) {
	return api.SearchCatalog(ctx, c.t, q)
}

// Suggestions returns completions for a partial query. limit <= 0 leaves the
// server default.
func (c *V1Client) Suggestions(ctx context.Context, query string, limit int) (*Suggestions, error) {
	return api.Suggest(ctx, c.t, query, limit)
}

// Graph returns the full platform graph.
func (c *V1Client) Graph(ctx context.Context) (*Graph, error) {
	return api.GetGraph(ctx, c.t)
}

// Neighborhood returns nodes within depth hops (1..MaxGraphDepth) of nodeID.
func (c *V1Client) Neighborhood(ctx context.Context, nodeID string, depth int) (*Graph, error) {
	return api.GetNeighborhood(ctx, c.t, nodeID, depth)
}
