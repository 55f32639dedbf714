package types

import "net/url"

// ------------------------------
// Request Types
// ------------------------------

// SearchFilters narrows a legacy UAV search. Empty fields are not sent and
// mean "no filter on that dimension".
type SearchFilters struct {
	Country   string `json:"country,omitempty"`
	Type      string `json:"type,omitempty"`
	Status    string `json:"status,omitempty"`
	NATOClass string `json:"nato_class,omitempty"`
}

// CompareRequest is the body of POST /uavs/compare.
type CompareRequest struct {
	Designations []string `json:"designations"`
}

// ArmamentSearch narrows an armament search. Empty fields are not sent.
type ArmamentSearch struct {
	WeaponType   string
	WeaponClass  string
	Country      string
	GuidanceType string
}

// Values renders the non-empty filters as query parameters.
func (s ArmamentSearch) Values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("weapon_type", s.WeaponType)
	set("weapon_class", s.WeaponClass)
	set("country", s.Country)
	set("guidance_type", s.GuidanceType)
	return v
}

// SearchQuery is the free-form body of the v1 search endpoint.
type SearchQuery map[string]any
