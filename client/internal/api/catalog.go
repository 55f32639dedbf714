package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/CannonJunior/x-uav/client/internal/types"
)

// Versioned catalog endpoints. Paths are absolute from the service root.

// ListPlatforms returns one page of the v1 catalog. A zero limit selects
// types.DefaultPageLimit.
func ListPlatforms(ctx context.Context, t *Transport, skip, limit int) (*types.PlatformPage, error) {
	if limit == 0 {
		limit = types.DefaultPageLimit
	}
	if err := types.ValidatePage(skip, limit); err != nil {
		return nil, err
	}
	var out types.PlatformPage
	err := t.Do(ctx, Call{
		Op:     "list_platforms",
		Method: http.MethodGet,
		Path:   "/api/v1/uavs",
		Query:  url.Values{"skip": {strconv.Itoa(skip)}, "limit": {strconv.Itoa(limit)}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPlatform fetches one platform by id.
func GetPlatform(ctx context.Context, t *Transport, id string) (*types.Platform, error) {
	if err := types.ValidateKey("id", id); err != nil {
		return nil, err
	}
	var out types.Platform
	err := t.Do(ctx, Call{
		Op:         "get_platform",
		Method:     http.MethodGet,
		Path:       "/api/v1/uavs/{id}",
		PathParams: map[string]string{"id": id},
		Resource:   "platform",
		Key:        id,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchCatalog posts a free-form query object.
func SearchCatalog(ctx context.Context, t *Transport, q types.SearchQuery) (*types.SearchResults, error) {
	if q == nil {
		q = types.SearchQuery{}
	}
	var out types.SearchResults
	err := t.Do(ctx, Call{
		Op:     "search_catalog",
		Method: http.MethodPost,
		Path:   "/api/v1/search",
		Body:   q,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Suggest returns search completions for a partial query.
func Suggest(ctx context.Context, t *Transport, query string, limit int) (*types.Suggestions, error) {
	if err := types.ValidateKey("query", query); err != nil {
		return nil, err
	}
	v := url.Values{"query": {query}}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out types.Suggestions
	err := t.Do(ctx, Call{
		Op:     "suggest",
		Method: http.MethodGet,
		Path:   "/api/v1/search/suggestions",
		Query:  v,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetGraph returns the full platform graph.
func GetGraph(ctx context.Context, t *Transport) (*types.Graph, error) {
	var out types.Graph
	if err := t.Do(ctx, Call{Op: "get_graph", Method: http.MethodGet, Path: "/api/v1/graph"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNeighborhood returns the subgraph within depth hops of a node.
func GetNeighborhood(ctx context.Context, t *Transport, nodeID string, depth int) (*types.Graph, error) {
	if err := types.ValidateKey("node id", nodeID); err != nil {
		return nil, err
	}
	if err := types.ValidateDepth(depth); err != nil {
		return nil, err
	}
	var out types.Graph
	err := t.Do(ctx, Call{
		Op:         "get_neighborhood",
		Method:     http.MethodGet,
		Path:       "/api/v1/graph/{id}/neighborhood",
		PathParams: map[string]string{"id": nodeID},
		Query:      url.Values{"depth": {strconv.Itoa(depth)}},
		Resource:   "graph node",
		Key:        nodeID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
