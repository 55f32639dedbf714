package api

import (
	"context"
	"net/http"

	"github.com/CannonJunior/x-uav/client/internal/types"
)

// CheckHealth returns the backend liveness report. The path is the same for
// both contracts relative to their base URL.
func CheckHealth(ctx context.Context, t *Transport) (*types.HealthStatus, error) {
	var out types.HealthStatus
	if err := t.Do(ctx, Call{Op: "check_health", Method: http.MethodGet, Path: "/health"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStats returns aggregate record counts.
func GetStats(ctx context.Context, t *Transport) (*types.Stats, error) {
	var out types.Stats
	if err := t.Do(ctx, Call{Op: "get_stats", Method: http.MethodGet, Path: "/stats"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUAVs returns every UAV the backend knows about.
func ListUAVs(ctx context.Context, t *Transport) (*types.UAVList, error) {
	var out types.UAVList
	if err := t.Do(ctx, Call{Op: "list_uavs", Method: http.MethodGet, Path: "/uavs"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUAV fetches one UAV by designation.
func GetUAV(ctx context.Context, t *Transport, designation string) (*types.UAV, error) {
	if err := types.ValidateKey("designation", designation); err != nil {
		return nil, err
	}
	var out types.UAV
	err := t.Do(ctx, Call{
		Op:         "get_uav",
		Method:     http.MethodGet,
		Path:       "/uavs/{designation}",
		PathParams: map[string]string{"designation": designation},
		Resource:   "uav",
		Key:        designation,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CompareUAVs fetches several UAVs side by side. Unknown designations are
// handled by the backend.
func CompareUAVs(ctx context.Context, t *Transport, designations []string) (*types.UAVList, error) {
	if err := types.ValidateDesignations(designations); err != nil {
		return nil, err
	}
	var out types.UAVList
	err := t.Do(ctx, Call{
		Op:     "compare_uavs",
		Method: http.MethodPost,
		Path:   "/uavs/compare",
		Body:   types.CompareRequest{Designations: designations},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchUAVs runs a filtered search. Zero-valued filters are omitted from the body.
func SearchUAVs(ctx context.Context, t *Transport, filters types.SearchFilters) (*types.UAVList, error) {
	var out types.UAVList
	err := t.Do(ctx, Call{
		Op:     "search_uavs",
		Method: http.MethodPost,
		Path:   "/uavs/search",
		Body:   filters,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDistinctValues returns the distinct values of a filter dimension.
func ListDistinctValues(ctx context.Context, t *Transport, dim types.Dimension) ([]string, error) {
	path, err := dim.Path()
	if err != nil {
		return nil, err
	}
	var out []string
	if err := t.Do(ctx, Call{Op: "list_filter_values", Method: http.MethodGet, Path: path}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
