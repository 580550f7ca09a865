package placement

// StabilityPlacement fixes a component at a percentage-of-board position
// before general placement proceeds, per spec.md §4.3 step 5: ferrite
// beads, EMC filters, bulk decoupling capacitors, and audio band-limit
// filters declared in configuration become obstacles for everything else.
type StabilityPlacement struct {
	ComponentID string  `yaml:"component_id" json:"component_id"`
	XPercent    float64 `yaml:"x_percent" json:"x_percent"`
	YPercent    float64 `yaml:"y_percent" json:"y_percent"`
}

// Config holds the placement engine's tunable parameters, dual-tagged for
// YAML configuration loading the way the teacher's dungeon.Config is.
type Config struct {
	MarginPercentage            float64               `yaml:"margin_percentage" json:"margin_percentage"`
	CenterSpacingPercentage     float64               `yaml:"center_spacing_percentage" json:"center_spacing_percentage"`
	GridSpacingPercentage       float64               `yaml:"grid_spacing_percentage" json:"grid_spacing_percentage"`
	MinComponentSpacingMM       float64               `yaml:"min_component_spacing_mm" json:"min_component_spacing_mm"`
	MaxComponentDensityRadiusMM float64               `yaml:"max_component_density_radius_mm" json:"max_component_density_radius_mm"`
	MaxNearbyComponents         int                   `yaml:"max_nearby_components" json:"max_nearby_components"`
	FrontPanelSpacingMM         map[string]float64    `yaml:"front_panel_spacing_mm" json:"front_panel_spacing_mm"`
	StabilityComponents         []StabilityPlacement  `yaml:"stability_components" json:"stability_components"`
}

// DefaultConfig returns spec.md §4.3/§4.4-consistent defaults.
func DefaultConfig() *Config {
	return &Config{
		MarginPercentage:            0.10,
		CenterSpacingPercentage:     0.15,
		GridSpacingPercentage:       0.02,
		MinComponentSpacingMM:       1.0,
		MaxComponentDensityRadiusMM: 15.0,
		MaxNearbyComponents:         6,
		FrontPanelSpacingMM: map[string]float64{
			"jack":          3.5,
			"potentiometer": 7.5,
			"led":           5.0,
		},
	}
}

// Validate checks that every parameter is in a usable range.
func (c *Config) Validate() error {
	if c.MarginPercentage <= 0 || c.MarginPercentage >= 0.5 {
		return errInvalidConfig("margin_percentage must be in (0, 0.5)")
	}
	if c.GridSpacingPercentage <= 0 {
		return errInvalidConfig("grid_spacing_percentage must be > 0")
	}
	if c.CenterSpacingPercentage <= 0 {
		return errInvalidConfig("center_spacing_percentage must be > 0")
	}
	if c.MinComponentSpacingMM < 0 {
		return errInvalidConfig("min_component_spacing_mm must be >= 0")
	}
	if c.MaxNearbyComponents < 0 {
		return errInvalidConfig("max_nearby_components must be >= 0")
	}
	return nil
}

type configError string

func (e configError) Error() string { return string(e) }

func errInvalidConfig(msg string) error { return configError("placement: " + msg) }
