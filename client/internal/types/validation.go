package types

import (
	"fmt"
	"strings"

	clienterrors "github.com/CannonJunior/x-uav/client/internal/errors"
)

// ------------------------------
// Shared Constants
// ------------------------------

const (
	// DefaultPageLimit is the v1 page size used when the caller passes 0.
	DefaultPageLimit = 100
	// MaxGraphDepth bounds neighborhood traversal.
	MaxGraphDepth = 3
)

// Dimension names a lookup served by the legacy /filters endpoints.
type Dimension string

const (
	DimensionCountry     Dimension = "country"
	DimensionType        Dimension = "type"
	DimensionWeaponType  Dimension = "weapon-type"
	DimensionWeaponClass Dimension = "weapon-class"
)

// Dimensions lists every supported lookup in display order.
var Dimensions = []Dimension{DimensionCountry, DimensionType, DimensionWeaponType, DimensionWeaponClass}

// Path returns the endpoint serving the dimension's distinct values.
func (d Dimension) Path() (string, error) {
	switch d {
	case DimensionCountry:
		return "/filters/countries", nil
	case DimensionType:
		return "/filters/types", nil
	case DimensionWeaponType:
		return "/filters/weapon-types", nil
	case DimensionWeaponClass:
		return "/filters/weapon-classes", nil
	}
	return "", clienterrors.Invalid("dimension", fmt.Sprintf("unknown dimension %q", string(d)))
}

// ------------------------------
// Validation
// ------------------------------

// ValidateKey rejects empty or blank path keys (designations, ids).
func ValidateKey(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return clienterrors.Invalid(field, "must not be empty")
	}
	return nil
}

// ValidateDesignations rejects an empty list or blank entries. The upper
// bound and unknown designations are left to the backend.
func ValidateDesignations(ds []string) error {
	if len(ds) == 0 {
		return clienterrors.Invalid("designations", "at least one designation is required")
	}
	for i, d := range ds {
		if strings.TrimSpace(d) == "" {
			return clienterrors.Invalid("designations", fmt.Sprintf("entry %d is empty", i))
		}
	}
	return nil
}

// ValidatePage checks skip/limit for the v1 list endpoint.
func ValidatePage(skip, limit int) error {
	if skip < 0 {
		return clienterrors.Invalid("skip", "must be >= 0")
	}
	if limit <= 0 {
		return clienterrors.Invalid("limit", "must be > 0")
	}
	return nil
}

// ValidateDepth checks graph traversal depth.
func ValidateDepth(depth int) error {
	if depth < 1 || depth > MaxGraphDepth {
		return clienterrors.Invalid("depth", fmt.Sprintf("must be between 1 and %d", MaxGraphDepth))
	}
	return nil
}
