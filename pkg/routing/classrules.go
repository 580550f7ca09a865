package routing

import "github.com/dshills/pcbgen/pkg/netlist"

// ClassRule is the per-signal-class routing policy from spec.md §4.4's
// table: width/clearance minima, a length ceiling, a preferred layer, a
// layer to avoid, and whether the class requires a ground-plane
// reference.
type ClassRule struct {
	MinWidthMM     float64
	MinClearanceMM float64
	MaxLengthMM    float64
	PreferredLayer string
	AvoidLayer     string
	NeedsGNDPlane  bool
}

// classRules is the fixed table from spec.md §4.4. Layer ids follow the
// board package's default stack-up ("front","back","inner-1","inner-2").
var classRules = map[netlist.SignalClass]ClassRule{
	netlist.ClassAudio: {
		MinWidthMM: 0.3, MinClearanceMM: 0.3, MaxLengthMM: 100,
		PreferredLayer: "front", AvoidLayer: "back", NeedsGNDPlane: true,
	},
	netlist.ClassPower: {
		MinWidthMM: 0.5, MinClearanceMM: 0.3, MaxLengthMM: 50,
		PreferredLayer: "inner-1", AvoidLayer: "", NeedsGNDPlane: true,
	},
	netlist.ClassGround: {
		MinWidthMM: 0.5, MinClearanceMM: 0.3, MaxLengthMM: 50,
		PreferredLayer: "inner-2", AvoidLayer: "", NeedsGNDPlane: false,
	},
	netlist.ClassControl: {
		MinWidthMM: 0.2, MinClearanceMM: 0.2, MaxLengthMM: 200,
		PreferredLayer: "back", AvoidLayer: "front", NeedsGNDPlane: false,
	},
	netlist.ClassDigital: {
		MinWidthMM: 0.2, MinClearanceMM: 0.3, MaxLengthMM: 200,
		PreferredLayer: "back", AvoidLayer: "", NeedsGNDPlane: true,
	},
	netlist.ClassHighSpeed: {
		MinWidthMM: 0.2, MinClearanceMM: 0.3, MaxLengthMM: 50,
		PreferredLayer: "front", AvoidLayer: "", NeedsGNDPlane: true,
	},
}

// RuleFor returns the routing policy for a signal class.
func RuleFor(class netlist.SignalClass) ClassRule {
	return classRules[class]
}

// classPriority orders routing per spec.md §4.4 step 1: power first, then
// ground, audio, high-speed, digital, control.
func classPriority(class netlist.SignalClass) int {
	switch class {
	case netlist.ClassPower:
		return 0
	case netlist.ClassGround:
		return 1
	case netlist.ClassAudio:
		return 2
	case netlist.ClassHighSpeed:
		return 3
	case netlist.ClassDigital:
		return 4
	case netlist.ClassControl:
		return 5
	default:
		return 6
	}
}
