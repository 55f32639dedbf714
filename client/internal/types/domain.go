package types

import "encoding/json"

// ------------------------------
// Legacy contract entities
// ------------------------------

// UAV is the full platform record served by the legacy contract. The
// designation is the natural key. Dates and timestamps are kept as the
// strings the backend emits (date-only and zone-less values are common).
type UAV struct {
	ID int64 `json:"id"`

	// Identification & classification
	Designation                string  `json:"designation"`
	Name                       *string `json:"name,omitempty"`
	Manufacturer               *string `json:"manufacturer,omitempty"`
	CountryOfOrigin            *string `json:"country_of_origin,omitempty"`
	NATOClass                  *string `json:"nato_class,omitempty"`
	Type                       *string `json:"type,omitempty"`
	OperationalStatus          *string `json:"operational_status,omitempty"`
	InitialOperatingCapability *string `json:"initial_operating_capability,omitempty"`
	TotalUnitsProduced         *int    `json:"total_units_produced,omitempty"`

	// Physical characteristics
	WingspanMeters      *float64 `json:"wingspan_meters,omitempty"`
	WingspanFeet        *float64 `json:"wingspan_feet,omitempty"`
	LengthMeters        *float64 `json:"length_meters,omitempty"`
	LengthFeet          *float64 `json:"length_feet,omitempty"`
	HeightMeters        *float64 `json:"height_meters,omitempty"`
	HeightFeet          *float64 `json:"height_feet,omitempty"`
	EmptyWeightKg       *float64 `json:"empty_weight_kg,omitempty"`
	EmptyWeightLbs      *float64 `json:"empty_weight_lbs,omitempty"`
	MaxTakeoffWeightKg  *float64 `json:"max_takeoff_weight_kg,omitempty"`
	MaxTakeoffWeightLbs *float64 `json:"max_takeoff_weight_lbs,omitempty"`
	PayloadCapacityKg   *float64 `json:"payload_capacity_kg,omitempty"`
	PayloadCapacityLbs  *float64 `json:"payload_capacity_lbs,omitempty"`
	FuelCapacityKg      *float64 `json:"fuel_capacity_kg,omitempty"`
	FuelCapacityGallons *float64 `json:"fuel_capacity_gallons,omitempty"`
	AirframeType        *string  `json:"airframe_type,omitempty"`

	// Propulsion
	EngineType             *string `json:"engine_type,omitempty"`
	EngineManufacturer     *string `json:"engine_manufacturer,omitempty"`
	EngineModel            *string `json:"engine_model,omitempty"`
	ThrustHP               *int    `json:"thrust_hp,omitempty"`
	ThrustLbs              *int    `json:"thrust_lbs,omitempty"`
	NumberOfEngines        *int    `json:"number_of_engines,omitempty"`
	PropellerConfiguration *string `json:"propeller_configuration,omitempty"`

	// Performance
	CruiseSpeedKmh       *float64 `json:"cruise_speed_kmh,omitempty"`
	CruiseSpeedMph       *float64 `json:"cruise_speed_mph,omitempty"`
	CruiseSpeedKnots     *float64 `json:"cruise_speed_knots,omitempty"`
	MaxSpeedKmh          *float64 `json:"max_speed_kmh,omitempty"`
	MaxSpeedMph          *float64 `json:"max_speed_mph,omitempty"`
	MaxSpeedMach         *float64 `json:"max_speed_mach,omitempty"`
	ServiceCeilingMeters *float64 `json:"service_ceiling_meters,omitempty"`
	ServiceCeilingFeet   *float64 `json:"service_ceiling_feet,omitempty"`
	RangeKm              *float64 `json:"range_km,omitempty"`
	RangeMiles           *float64 `json:"range_miles,omitempty"`
	RangeNM              *float64 `json:"range_nm,omitempty"`
	EnduranceHours       *float64 `json:"endurance_hours,omitempty"`
	CombatRadiusKm       *float64 `json:"combat_radius_km,omitempty"`
	CombatRadiusNM       *float64 `json:"combat_radius_nm,omitempty"`

	// Mission capabilities
	PrimaryFunction     *string  `json:"primary_function,omitempty"`
	MissionTypes        []string `json:"mission_types,omitempty"`
	Armament            []string `json:"armament,omitempty"`
	MaxWeaponsLoadKg    *float64 `json:"max_weapons_load_kg,omitempty"`
	MaxWeaponsLoadLbs   *float64 `json:"max_weapons_load_lbs,omitempty"`
	Hardpoints          *int     `json:"hardpoints,omitempty"`
	InternalWeaponsBays *bool    `json:"internal_weapons_bays,omitempty"`

	// Sensors & avionics
	SensorSuite     []string `json:"sensor_suite,omitempty"`
	RadarType       *string  `json:"radar_type,omitempty"`
	Communications  *string  `json:"communications,omitempty"`
	DatalinkType    *string  `json:"datalink_type,omitempty"`
	StealthFeatures *string  `json:"stealth_features,omitempty"`
	AutonomyLevel   *string  `json:"autonomy_level,omitempty"`

	// Operational details
	Operators            []string `json:"operators,omitempty"`
	ExportCountries      []string `json:"export_countries,omitempty"`
	CrewSizeRemote       *int     `json:"crew_size_remote,omitempty"`
	GroundControlStation *string  `json:"ground_control_station,omitempty"`
	LaunchMethod         *string  `json:"launch_method,omitempty"`
	RecoveryMethod       *string  `json:"recovery_method,omitempty"`

	// Economic
	UnitCostUSD    *float64 `json:"unit_cost_usd,omitempty"`
	ProgramCostUSD *float64 `json:"program_cost_usd,omitempty"`
	FiscalYear     *int     `json:"fiscal_year,omitempty"`

	// Visual assets
	ImageryURLs   map[string]string `json:"imagery_urls,omitempty"`
	SilhouetteURL *string           `json:"silhouette_url,omitempty"`
	ModelURLs     map[string]string `json:"model_urls,omitempty"`
	ScaleFactor   *int              `json:"scale_factor,omitempty"`

	// Additional information
	NotableFeatures []string          `json:"notable_features,omitempty"`
	CombatHistory   *string           `json:"combat_history,omitempty"`
	Variants        []json.RawMessage `json:"variants,omitempty"`
	Notes           *string           `json:"notes,omitempty"`

	CreatedAt *string `json:"created_at,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// Armament is a weapon record. The backend serves armaments without a fixed
// schema, so only the stable columns are typed and the rest is kept in Extra.
type Armament struct {
	ID           int64   `json:"id,omitempty"`
	Designation  string  `json:"designation"`
	Name         *string `json:"name,omitempty"`
	WeaponType   *string `json:"weapon_type,omitempty"`
	WeaponClass  *string `json:"weapon_class,omitempty"`
	Country      *string `json:"country_of_origin,omitempty"`
	GuidanceType *string `json:"guidance_type,omitempty"`
	Manufacturer *string `json:"manufacturer,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps every field the typed struct does not name in Extra.
func (a *Armament) UnmarshalJSON(data []byte) error {
	type plain Armament
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range []string{"id", "designation", "name", "weapon_type", "weapon_class", "country_of_origin", "guidance_type", "manufacturer"} {
		delete(all, k)
	}
	*a = Armament(p)
	if len(all) > 0 {
		a.Extra = all
	}
	return nil
}

// MarshalJSON writes Extra back alongside the typed fields.
func (a Armament) MarshalJSON() ([]byte, error) {
	type plain Armament
	b, err := json.Marshal(plain(a))
	if err != nil || len(a.Extra) == 0 {
		return b, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}
	for k, v := range a.Extra {
		if _, ok := all[k]; !ok {
			all[k] = v
		}
	}
	return json.Marshal(all)
}

// ------------------------------
// Versioned (v1) contract entities
// ------------------------------

// Platform is a UAV variant as served by the v1 catalog.
type Platform struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Manufacturer      *string           `json:"manufacturer,omitempty"`
	Country           *string           `json:"country,omitempty"`
	Description       *string           `json:"description,omitempty"`
	Category          *string           `json:"category,omitempty"`
	Designation       *string           `json:"designation,omitempty"`
	DevelopmentStatus *string           `json:"development_status,omitempty"`
	FirstFlight       *string           `json:"first_flight,omitempty"`
	Specifications    []json.RawMessage `json:"specifications,omitempty"`
}

// GraphNode is a vertex of the platform graph.
type GraphNode struct {
	ID         string         `json:"id"`
	Label      string         `json:"label,omitempty"`
	Type       string         `json:"type,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// GraphEdge connects two graph nodes.
type GraphEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}
