package types

import (
	"encoding/json"
	"sort"
)

// ------------------------------
// Response Types
// ------------------------------

// HealthStatus is returned by the health endpoint of both contracts.
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database,omitempty"`
}

// Healthy reports whether the service declared itself healthy.
func (h HealthStatus) Healthy() bool { return h.Status == "healthy" || h.Status == "ok" }

// StatBucket is one row of a grouped count, e.g. {"country_of_origin": "Turkey", "count": 4}.
type StatBucket map[string]any

// Count returns the bucket's count, or 0 if absent.
func (b StatBucket) Count() int {
	switch v := b["count"].(type) {
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case int:
		return v
	}
	return 0
}

// Label returns the bucket's grouping value: the first string field other
// than "count", in key order. Null groupings yield "".
func (b StatBucket) Label() string {
	keys := make([]string, 0, len(b))
	for k := range b {
		if k != "count" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s, ok := b[k].(string); ok {
			return s
		}
	}
	return ""
}

// Stats wraps GET /stats.
type Stats struct {
	Total     int          `json:"total"`
	ByCountry []StatBucket `json:"by_country"`
	ByType    []StatBucket `json:"by_type"`
	ByStatus  []StatBucket `json:"by_status"`
}

// UAVList wraps list, search and compare responses of the legacy contract.
type UAVList struct {
	Total int   `json:"total"`
	UAVs  []UAV `json:"uavs"`
}

// ArmamentList wraps armament list and search responses.
type ArmamentList struct {
	Total     int        `json:"total"`
	Armaments []Armament `json:"armaments"`
}

// UAVArmaments lists the armaments a UAV can carry.
type UAVArmaments struct {
	UAVDesignation string     `json:"uav_designation"`
	Total          int        `json:"total"`
	Armaments      []Armament `json:"armaments"`
}

// ArmamentCarriers lists the UAVs able to carry an armament.
type ArmamentCarriers struct {
	ArmamentDesignation string `json:"armament_designation"`
	Total               int    `json:"total"`
	UAVs                []UAV  `json:"uavs"`
}

// PlatformPage is one page of the v1 catalog.
type PlatformPage struct {
	Platforms []Platform `json:"platforms"`
	Total     int        `json:"total"`
	Skip      int        `json:"skip"`
	Limit     int        `json:"limit"`
}

// HasMore reports whether records exist past this page.
func (p PlatformPage) HasMore() bool { return p.Skip+len(p.Platforms) < p.Total }

// SearchResults wraps POST /api/v1/search.
type SearchResults struct {
	Results []json.RawMessage `json:"results"`
	Total   int               `json:"total"`
}

// Suggestions wraps GET /api/v1/search/suggestions.
type Suggestions struct {
	Suggestions []string `json:"suggestions"`
}

// Graph wraps the v1 graph endpoints.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
