package zones

// Config holds the zone synthesizer's tunable parameters.
type Config struct {
	GridMM           float64 `yaml:"grid_mm" json:"grid_mm"`
	ThermalBridgeMM  float64 `yaml:"thermal_bridge_mm" json:"thermal_bridge_mm"`
	ThermalGapMM     float64 `yaml:"thermal_gap_mm" json:"thermal_gap_mm"`
}

// DefaultConfig returns spec.md §4.5-consistent defaults. The thermal gap
// splits the difference of its 0.3-0.5 mm band; the thermal bridge sits at
// the top of its band (0.5 mm) so spokes meet the 0.5 mm minimum track
// width that geometric DRC applies to ground and power tracks.
func DefaultConfig() *Config {
	return &Config{
		GridMM:          1.0,
		ThermalBridgeMM: 0.5,
		ThermalGapMM:    0.4,
	}
}
