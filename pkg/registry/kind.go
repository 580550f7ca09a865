package registry

import "fmt"

// Kind enumerates the closed set of symbolic component types the registry
// can resolve. Unknown kinds are rejected at netlist ingestion, not deep in
// the placement or routing engines.
type Kind int

const (
	KindResistor Kind = iota
	KindCapacitor
	KindInductor
	KindDiode
	KindLED
	KindTransistor
	KindOpamp
	KindICGeneric
	KindPotentiometer
	KindSwitch
	KindJack
	KindSpeaker
	KindFerriteBead
	KindCrystal
	KindOscillator
	KindRelay
	KindTransformer
	KindTube
	KindRegulator
	KindDAC
	KindADC
	KindVCO
	KindVCF
	KindVCA
	KindLogic
	KindTimer
	KindMountingHole
)

var kindNames = map[Kind]string{
	KindResistor:      "resistor",
	KindCapacitor:     "capacitor",
	KindInductor:      "inductor",
	KindDiode:         "diode",
	KindLED:           "led",
	KindTransistor:    "transistor",
	KindOpamp:         "opamp",
	KindICGeneric:     "ic-generic",
	KindPotentiometer: "potentiometer",
	KindSwitch:        "switch",
	KindJack:          "jack",
	KindSpeaker:       "speaker",
	KindFerriteBead:   "ferrite-bead",
	KindCrystal:       "crystal",
	KindOscillator:    "oscillator",
	KindRelay:         "relay",
	KindTransformer:   "transformer",
	KindTube:          "tube",
	KindRegulator:     "regulator",
	KindDAC:           "dac",
	KindADC:           "adc",
	KindVCO:           "vco",
	KindVCF:           "vcf",
	KindVCA:           "vca",
	KindLogic:         "logic",
	KindTimer:         "timer",
	KindMountingHole:  "mounting-hole",
}

// AllKinds lists every kind in the closed set, in declaration order. Used by
// the registry totality test to walk every kind.
var AllKinds = func() []Kind {
	ks := make([]Kind, 0, len(kindNames))
	for k := KindResistor; k <= KindMountingHole; k++ {
		ks = append(ks, k)
	}
	return ks
}()

// String returns the symbolic kind name used in netlist documents and YAML
// catalogs (e.g. "opamp", "ferrite-bead").
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", k)
}

// ParseKind resolves a symbolic kind string to its Kind value.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// referencePrefixes maps each kind to its auto-assigned reference-designator
// prefix (R, C, L, D, LED, Q, U, RV, SW, J, XLR, SPK, FB, XTAL, OSC, RLY, T,
// V, REG, ...).
var referencePrefixes = map[Kind]string{
	KindResistor:      "R",
	KindCapacitor:     "C",
	KindInductor:      "L",
	KindDiode:         "D",
	KindLED:           "LED",
	KindTransistor:    "Q",
	KindOpamp:         "U",
	KindICGeneric:     "U",
	KindPotentiometer: "RV",
	KindSwitch:        "SW",
	KindJack:          "J",
	KindSpeaker:       "SPK",
	KindFerriteBead:   "FB",
	KindCrystal:       "XTAL",
	KindOscillator:    "OSC",
	KindRelay:         "RLY",
	KindTransformer:   "T",
	KindTube:          "V",
	KindRegulator:     "REG",
	KindDAC:           "U",
	KindADC:           "U",
	KindVCO:           "U",
	KindVCF:           "U",
	KindVCA:           "U",
	KindLogic:         "U",
	KindTimer:         "U",
	KindMountingHole:  "MH",
}

// ReferencePrefix returns the auto-assigned designator prefix for a kind.
func ReferencePrefix(k Kind) string {
	if p, ok := referencePrefixes[k]; ok {
		return p
	}
	return "U"
}

// ReferencePrefixForPackage returns the designator prefix for a kind,
// taking the package variant into account where spec.md's prefix table
// distinguishes one: an XLR-package jack gets the "XLR" prefix rather than
// the generic jack prefix "J".
func ReferencePrefixForPackage(k Kind, pkg string) string {
	if k == KindJack && pkg == "xlr" {
		return "XLR"
	}
	return ReferencePrefix(k)
}
