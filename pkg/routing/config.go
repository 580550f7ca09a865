package routing

// Config holds the routing engine's tunable parameters.
type Config struct {
	GridMM              float64 `yaml:"grid_mm" json:"grid_mm"`
	ViaPreference       float64 `yaml:"via_preference" json:"via_preference"`
	ViaDiameterMM       float64 `yaml:"via_diameter_mm" json:"via_diameter_mm"`
	ViaDrillMM          float64 `yaml:"via_drill_mm" json:"via_drill_mm"`
	MaxRerouteAttempts  int     `yaml:"max_reroute_attempts" json:"max_reroute_attempts"`
	NonPreferredLayerPenalty float64 `yaml:"non_preferred_layer_penalty" json:"non_preferred_layer_penalty"`
	ParallelRunPenalty  float64 `yaml:"parallel_run_penalty" json:"parallel_run_penalty"`
	MaxSearchExpansions int     `yaml:"max_search_expansions" json:"max_search_expansions"`

	// NetLayerOverride forces a specific net onto a layer instead of its
	// class's table-driven preferred layer, keyed by net id. The signal-
	// integrity remediation path is the only writer: it moves one side of
	// a crosstalk-flagged pair to the opposite layer ahead of the next
	// routing pass.
	NetLayerOverride map[string]string `yaml:"net_layer_override,omitempty" json:"net_layer_override,omitempty"`
}

// DefaultConfig returns spec.md §4.4-consistent defaults.
func DefaultConfig() *Config {
	return &Config{
		GridMM:                   0.5,
		ViaPreference:            2.0,
		ViaDiameterMM:            0.6,
		ViaDrillMM:               0.3,
		MaxRerouteAttempts:       3,
		NonPreferredLayerPenalty: 1.5,
		ParallelRunPenalty:       3.0,
		MaxSearchExpansions:      200000,
	}
}
