// Package board implements the Board Descriptor: a bounded rectangular
// outline, its layer stack, design-rule defaults, and the mutable
// collections (placed components, tracks, vias, zones) owned exclusively by
// the Pipeline Driver across a run. Grounded on the teacher's pkg/dungeon
// artifact shapes and the KiCad pcb.Board struct from the retrieval pack.
package board

import "github.com/dshills/pcbgen/pkg/netlist"

// LayerRole is the electrical role a copper layer plays.
type LayerRole int

const (
	RoleSignal LayerRole = iota
	RolePower
	RoleGround
	RoleMixed
)

func (r LayerRole) String() string {
	switch r {
	case RoleSignal:
		return "signal"
	case RolePower:
		return "power"
	case RoleGround:
		return "ground"
	case RoleMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Layer is one copper layer in the board's stack-up.
type Layer struct {
	ID   string
	Role LayerRole
}

// Point is a board-relative coordinate in millimeters.
type Point struct {
	XMM float64
	YMM float64
}

// Track is one routed copper segment belonging to a net.
type Track struct {
	NetID  string
	Layer  string
	Points []Point
	WidthMM float64
}

// Via connects an ordered pair of layers at a fixed position.
type Via struct {
	NetID       string
	Position    Point
	DrillMM     float64
	OuterDiaMM  float64
	FromLayer   string
	ToLayer     string
}

// Zone is a poured copper region belonging to a single net.
type Zone struct {
	NetID        string
	Layer        string
	Outline      []Point
	ClearanceMM  float64
}

// DesignRules carries the numeric defaults consulted by Placement, Routing,
// and Zones. Every field is expressed in the spec's canonical units
// (distance mm, angle degrees) so stages never need unit conversion.
type DesignRules struct {
	EdgeClearanceMM             float64 `yaml:"edge_clearance_mm" json:"edge_clearance_mm"`
	MinComponentSpacingMM       float64 `yaml:"min_component_spacing_mm" json:"min_component_spacing_mm"`
	MinZoneClearanceMM          float64 `yaml:"min_zone_clearance_mm" json:"min_zone_clearance_mm"`
	ViaDiameterMM               float64 `yaml:"via_diameter_mm" json:"via_diameter_mm"`
	ViaDrillMM                  float64 `yaml:"via_drill_mm" json:"via_drill_mm"`
	ViaPreference               float64 `yaml:"via_preference" json:"via_preference"`
	MaxComponentDensityRadiusMM float64 `yaml:"max_component_density_radius_mm" json:"max_component_density_radius_mm"`
	MaxNearbyComponents         int     `yaml:"max_nearby_components" json:"max_nearby_components"`
	MinThermalBridgeMM          float64 `yaml:"min_thermal_bridge_mm" json:"min_thermal_bridge_mm"`
	MaxThermalBridgeMM          float64 `yaml:"max_thermal_bridge_mm" json:"max_thermal_bridge_mm"`
	MinThermalGapMM             float64 `yaml:"min_thermal_gap_mm" json:"min_thermal_gap_mm"`
	MaxThermalGapMM             float64 `yaml:"max_thermal_gap_mm" json:"max_thermal_gap_mm"`
	StarGrounding               bool    `yaml:"star_grounding" json:"star_grounding"`
	StarPointRef                string  `yaml:"star_point_ref,omitempty" json:"star_point_ref,omitempty"`
}

// DefaultDesignRules returns conservative defaults consistent with
// spec.md's per-class routing table and zone synthesis parameters.
func DefaultDesignRules() DesignRules {
	return DesignRules{
		EdgeClearanceMM:              2.0,
		MinComponentSpacingMM:        1.0,
		MinZoneClearanceMM:           0.3,
		ViaDiameterMM:                0.6,
		ViaDrillMM:                   0.3,
		ViaPreference:                2.0,
		MaxComponentDensityRadiusMM:  15.0,
		MaxNearbyComponents:          6,
		MinThermalBridgeMM:           0.3,
		MaxThermalBridgeMM:           0.5,
		MinThermalGapMM:              0.3,
		MaxThermalGapMM:              0.5,
		StarGrounding:                false,
		StarPointRef:                 "",
	}
}

// Board is the bounded rectangular outline plus everything the pipeline
// places on it. The driver is the single mutable owner: every other stage
// receives it by reference for its turn and never retains a handle past
// that turn (spec.md §5).
type Board struct {
	PresetID   string
	WidthMM    float64
	HeightMM   float64
	Layers     []Layer
	Rules      DesignRules

	Components []*netlist.Component
	Tracks     []Track
	Vias       []Via
	Zones      []Zone

	// FrontPanelEdge names the board edge ("top","bottom","left","right")
	// that front-panel-mount presets constrain jacks/pots/switches/LEDs to.
	// Empty for non-panel presets (desktop, custom without an edge rule).
	FrontPanelEdge string
}

// LayerByID returns the layer with the given id, or false if absent.
func (b *Board) LayerByID(id string) (Layer, bool) {
	for _, l := range b.Layers {
		if l.ID == id {
			return l, true
		}
	}
	return Layer{}, false
}

// ComponentByID returns the placed component with the given reference, or
// false if absent.
func (b *Board) ComponentByID(id string) (*netlist.Component, bool) {
	for _, c := range b.Components {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// TracksForNet returns every track segment belonging to netID.
func (b *Board) TracksForNet(netID string) []Track {
	var out []Track
	for _, t := range b.Tracks {
		if t.NetID == netID {
			out = append(out, t)
		}
	}
	return out
}

// ViasForNet returns every via belonging to netID.
func (b *Board) ViasForNet(netID string) []Via {
	var out []Via
	for _, v := range b.Vias {
		if v.NetID == netID {
			out = append(out, v)
		}
	}
	return out
}
