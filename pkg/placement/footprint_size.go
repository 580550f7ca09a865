package placement

// FootprintSizeMM returns the nominal bounding-box width/height in
// millimeters for a component kind, used by the candidate-grid search to
// test overlap before a real footprint library is consulted. Values follow
// common through-hole audio-build land patterns (spec.md §4.1's
// through-hole audio_override bias).
func FootprintSizeMM(kind string) (w, h float64) {
	switch kind {
	case "resistor":
		return 8, 3
	case "capacitor":
		return 6, 6
	case "inductor":
		return 8, 8
	case "diode":
		return 7, 2.5
	case "led":
		return 5, 5
	case "transistor":
		return 6, 5
	case "opamp":
		return 10, 8
	case "ic-generic", "dac", "adc", "logic", "timer":
		return 12, 10
	case "potentiometer":
		return 16, 16
	case "switch":
		return 10, 10
	case "jack":
		return 12, 12
	case "speaker":
		return 20, 20
	case "ferrite-bead":
		return 4, 4
	case "crystal", "oscillator":
		return 6, 4
	case "relay":
		return 15, 10
	case "transformer":
		return 18, 18
	case "tube":
		return 22, 22
	case "regulator":
		return 10, 9
	case "vco", "vcf", "vca":
		return 12, 10
	case "mounting-hole":
		return 3, 3
	default:
		return 8, 8
	}
}
