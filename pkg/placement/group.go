package placement

// Group is a placement cohort assigned by reference prefix and kind,
// mirroring the teacher's RoomArchetype closed-set enum shape.
type Group int

const (
	GroupOpamp Group = iota
	GroupConnector
	GroupPassive
	GroupPower
	GroupMechanical
)

func (g Group) String() string {
	switch g {
	case GroupOpamp:
		return "opamps"
	case GroupConnector:
		return "connectors"
	case GroupPassive:
		return "passives"
	case GroupPower:
		return "power"
	case GroupMechanical:
		return "mechanical"
	default:
		return "unknown"
	}
}

// Priority returns the ascending processing priority for a group: opamps
// and power go first (priority 1), connectors second, everything else
// third, per spec.md §4.3 step 1.
func (g Group) Priority() int {
	switch g {
	case GroupOpamp, GroupPower:
		return 1
	case GroupConnector:
		return 2
	default:
		return 3
	}
}

// Zone names the named placement zone a group prefers.
type ZoneName int

const (
	ZoneCenter ZoneName = iota
	ZoneEdges
	ZoneTop
	ZoneNearOpamps
)

// PreferredZone returns the placement_zone a group is assigned to.
func (g Group) PreferredZone() ZoneName {
	switch g {
	case GroupOpamp:
		return ZoneCenter
	case GroupConnector:
		return ZoneEdges
	case GroupPower:
		return ZoneTop
	case GroupPassive:
		return ZoneNearOpamps
	case GroupMechanical:
		return ZoneEdges
	default:
		return ZoneCenter
	}
}

// ThermalConsideration reports whether the group's members participate in
// the density cap check during placement (spec.md §4.3 step 3).
func (g Group) ThermalConsideration() bool {
	return g == GroupPower || g == GroupOpamp
}

// groupFor maps a netlist component kind to its placement Group.
func groupFor(kind string) Group {
	switch kind {
	case "opamp", "vco", "vcf", "vca", "ic-generic", "dac", "adc", "logic", "timer":
		return GroupOpamp
	case "jack", "potentiometer", "switch", "led":
		return GroupConnector
	case "regulator", "transformer":
		return GroupPower
	case "mounting-hole":
		return GroupMechanical
	default:
		return GroupPassive
	}
}
