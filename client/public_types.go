package client

import "github.com/CannonJunior/x-uav/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	SearchFilters  = types.SearchFilters
	CompareRequest = types.CompareRequest
	ArmamentSearch = types.ArmamentSearch
	SearchQuery    = types.SearchQuery
	Dimension      = types.Dimension

	// Domain entities
	UAV       = types.UAV
	Armament  = types.Armament
	Platform  = types.Platform
	GraphNode = types.GraphNode
	GraphEdge = types.GraphEdge

	// Responses
	HealthStatus     = types.HealthStatus
	Stats            = types.Stats
	StatBucket       = types.StatBucket
	UAVList          = types.UAVList
	ArmamentList     = types.ArmamentList
	UAVArmaments     = types.UAVArmaments
	ArmamentCarriers = types.ArmamentCarriers
	PlatformPage     = types.PlatformPage
	SearchResults    = types.SearchResults
	Suggestions      = types.Suggestions
	Graph            = types.Graph
)

const (
	DimensionCountry     = types.DimensionCountry
	DimensionType        = types.DimensionType
	DimensionWeaponType  = types.DimensionWeaponType
	DimensionWeaponClass = types.DimensionWeaponClass

	DefaultPageLimit = types.DefaultPageLimit
	MaxGraphDepth    = types.MaxGraphDepth
)

// Dimensions lists every filter dimension in display order.
func Dimensions() []Dimension {
	return append([]Dimension(nil), types.Dimensions...)
}
