package registry

// defaultCatalog returns the built-in catalog entries covering every kind
// in the closed set, with through-hole audio overrides for the kinds
// spec.md §4.1 names (axial resistor, radial electrolytic, DIP op-amp).
// It is the fallback used by NewDefault and exercised directly by the
// registry totality property test.
func defaultCatalog() *Catalog {
	entries := []CatalogEntry{
		{
			Kind: "resistor",
			Record: FootprintRecord{
				FootprintID: "R_0805_SMD", PinMap: map[int]string{1: "1", 2: "2"},
				ReferencePrefix: "R", DefaultRotation: 0,
			},
			AudioOverride: &FootprintRecord{
				FootprintID: "R_Axial_DIN0207", PinMap: map[int]string{1: "1", 2: "2"},
				ReferencePrefix: "R", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "capacitor", Package: "ceramic",
			Record: FootprintRecord{
				FootprintID: "C_0805_SMD", PinMap: map[int]string{1: "1", 2: "2"},
				ReferencePrefix: "C", DefaultRotation: 0,
			},
		},
		{
			Kind: "capacitor", Package: "electrolytic",
			Record: FootprintRecord{
				FootprintID: "CP_Radial_D5.0mm", PinMap: map[int]string{1: "+", 2: "-"},
				ReferencePrefix: "C", DefaultRotation: 0, ThroughHole: true,
			},
			AudioOverride: &FootprintRecord{
				FootprintID: "CP_Radial_D5.0mm", PinMap: map[int]string{1: "+", 2: "-"},
				ReferencePrefix: "C", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "capacitor", Package: "film",
			Record: FootprintRecord{
				FootprintID: "C_Film_5mm", PinMap: map[int]string{1: "1", 2: "2"},
				ReferencePrefix: "C", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "capacitor", Package: "tantalum",
			Record: FootprintRecord{
				FootprintID: "CP_Tantalum_SMD", PinMap: map[int]string{1: "+", 2: "-"},
				ReferencePrefix: "C", DefaultRotation: 0,
			},
		},
		{
			Kind: "inductor",
			Record: FootprintRecord{
				FootprintID: "L_Radial_D5.0mm", PinMap: map[int]string{1: "1", 2: "2"},
				ReferencePrefix: "L", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "diode",
			Record: FootprintRecord{
				FootprintID: "D_DO-35", PinMap: map[int]string{1: "A", 2: "K"},
				ReferencePrefix: "D", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "led",
			Record: FootprintRecord{
				FootprintID: "LED_D5.0mm", PinMap: map[int]string{1: "A", 2: "K"},
				ReferencePrefix: "LED", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "transistor", Package: "bjt",
			Record: FootprintRecord{
				FootprintID: "TO-92", PinMap: map[int]string{1: "E", 2: "B", 3: "C"},
				ReferencePrefix: "Q", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "transistor", Package: "jfet",
			Record: FootprintRecord{
				FootprintID: "TO-92", PinMap: map[int]string{1: "S", 2: "G", 3: "D"},
				ReferencePrefix: "Q", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "transistor", Package: "mosfet",
			Record: FootprintRecord{
				FootprintID: "TO-220", PinMap: map[int]string{1: "S", 2: "G", 3: "D"},
				ReferencePrefix: "Q", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "opamp", Package: "dual",
			Record: FootprintRecord{
				FootprintID: "SOIC-8", PinMap: map[int]string{
					1: "OUT1", 2: "IN1-", 3: "IN1+", 4: "V-",
					5: "IN2+", 6: "IN2-", 7: "OUT2", 8: "V+",
				},
				ReferencePrefix: "U", DefaultRotation: 0,
			},
			AudioOverride: &FootprintRecord{
				FootprintID: "DIP-8", PinMap: map[int]string{
					1: "OUT1", 2: "IN1-", 3: "IN1+", 4: "V-",
					5: "IN2+", 6: "IN2-", 7: "OUT2", 8: "V+",
				},
				ReferencePrefix: "U", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "opamp", Package: "single",
			Record: FootprintRecord{
				FootprintID: "SOIC-8", PinMap: map[int]string{
					1: "OFFN", 2: "IN-", 3: "IN+", 4: "V-",
					5: "OFFP", 6: "OUT", 7: "V+", 8: "NC",
				},
				ReferencePrefix: "U", DefaultRotation: 0,
			},
		},
		{
			Kind: "opamp", Package: "quad",
			Record: FootprintRecord{
				FootprintID: "SOIC-14", PinMap: map[int]string{
					1: "OUT1", 2: "IN1-", 3: "IN1+", 4: "V-",
					5: "IN2+", 6: "IN2-", 7: "OUT2", 8: "OUT3",
					9: "IN3-", 10: "IN3+", 11: "V+", 12: "IN4+",
					13: "IN4-", 14: "OUT4",
				},
				ReferencePrefix: "U", DefaultRotation: 0,
			},
			AudioOverride: &FootprintRecord{
				FootprintID: "DIP-14", PinMap: map[int]string{
					1: "OUT1", 2: "IN1-", 3: "IN1+", 4: "V-",
					5: "IN2+", 6: "IN2-", 7: "OUT2", 8: "OUT3",
					9: "IN3-", 10: "IN3+", 11: "V+", 12: "IN4+",
					13: "IN4-", 14: "OUT4",
				},
				ReferencePrefix: "U", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "ic-generic",
			Record: FootprintRecord{
				FootprintID: "SOIC-8", PinMap: map[int]string{},
				ReferencePrefix: "U", DefaultRotation: 0,
			},
		},
		{
			Kind: "potentiometer",
			Record: FootprintRecord{
				FootprintID: "RV_Alpha_9mm", PinMap: map[int]string{1: "1", 2: "WIPER", 3: "3"},
				ReferencePrefix: "RV", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "switch",
			Record: FootprintRecord{
				FootprintID: "SW_Tactile_6mm", PinMap: map[int]string{1: "A1", 2: "A2", 3: "B1", 4: "B2"},
				ReferencePrefix: "SW", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "jack", Package: "3.5mm",
			Record: FootprintRecord{
				FootprintID: "Jack_3.5mm_PJ301M", PinMap: map[int]string{1: "TIP", 2: "RING", 3: "SLEEVE"},
				ReferencePrefix: "J", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "jack", Package: "6.35mm",
			Record: FootprintRecord{
				FootprintID: "Jack_6.35mm_Switchcraft", PinMap: map[int]string{1: "TIP", 2: "RING", 3: "SLEEVE"},
				ReferencePrefix: "J", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "jack", Package: "xlr",
			Record: FootprintRecord{
				FootprintID: "XLR_3pin_Neutrik", PinMap: map[int]string{1: "GND", 2: "HOT", 3: "COLD"},
				ReferencePrefix: "XLR", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "speaker",
			Record: FootprintRecord{
				FootprintID: "SPK_Terminal_2pin", PinMap: map[int]string{1: "+", 2: "-"},
				ReferencePrefix: "SPK", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "ferrite-bead",
			Record: FootprintRecord{
				FootprintID: "FB_0805_SMD", PinMap: map[int]string{1: "1", 2: "2"},
				ReferencePrefix: "FB", DefaultRotation: 0,
			},
		},
		{
			Kind: "crystal",
			Record: FootprintRecord{
				FootprintID: "XTAL_HC49", PinMap: map[int]string{1: "1", 2: "2"},
				ReferencePrefix: "XTAL", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "oscillator",
			Record: FootprintRecord{
				FootprintID: "OSC_SMD_4pin", PinMap: map[int]string{1: "EN", 2: "GND", 3: "OUT", 4: "VCC"},
				ReferencePrefix: "OSC", DefaultRotation: 0,
			},
		},
		{
			Kind: "relay",
			Record: FootprintRecord{
				FootprintID: "RLY_THT_5pin", PinMap: map[int]string{1: "COIL+", 2: "COIL-", 3: "COM", 4: "NO", 5: "NC"},
				ReferencePrefix: "RLY", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "transformer",
			Record: FootprintRecord{
				FootprintID: "T_Audio_THT", PinMap: map[int]string{1: "P1", 2: "P2", 3: "S1", 4: "S2"},
				ReferencePrefix: "T", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "tube",
			Record: FootprintRecord{
				FootprintID: "Tube_Octal_Socket", PinMap: map[int]string{1: "P1", 2: "P2", 3: "P3", 4: "P4", 5: "P5", 6: "P6", 7: "P7", 8: "P8"},
				ReferencePrefix: "V", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "regulator",
			Record: FootprintRecord{
				FootprintID: "TO-220-3", PinMap: map[int]string{1: "IN", 2: "GND", 3: "OUT"},
				ReferencePrefix: "REG", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "dac",
			Record: FootprintRecord{
				FootprintID: "SOIC-16", PinMap: map[int]string{},
				ReferencePrefix: "U", DefaultRotation: 0,
			},
		},
		{
			Kind: "adc",
			Record: FootprintRecord{
				FootprintID: "SOIC-16", PinMap: map[int]string{},
				ReferencePrefix: "U", DefaultRotation: 0,
			},
		},
		{
			Kind: "vco",
			Record: FootprintRecord{
				FootprintID: "DIP-16", PinMap: map[int]string{},
				ReferencePrefix: "U", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "vcf",
			Record: FootprintRecord{
				FootprintID: "DIP-16", PinMap: map[int]string{},
				ReferencePrefix: "U", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "vca",
			Record: FootprintRecord{
				FootprintID: "DIP-8", PinMap: map[int]string{},
				ReferencePrefix: "U", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "logic",
			Record: FootprintRecord{
				FootprintID: "SOIC-14", PinMap: map[int]string{},
				ReferencePrefix: "U", DefaultRotation: 0,
			},
		},
		{
			Kind: "timer",
			Record: FootprintRecord{
				FootprintID: "DIP-8", PinMap: map[int]string{1: "GND", 2: "TRIG", 3: "OUT", 4: "RESET", 5: "CTRL", 6: "THRESH", 7: "DISCH", 8: "VCC"},
				ReferencePrefix: "U", DefaultRotation: 0, ThroughHole: true,
			},
		},
		{
			Kind: "mounting-hole",
			Record: FootprintRecord{
				FootprintID: "MountingHole_3.2mm", PinMap: map[int]string{},
				ReferencePrefix: "MH", DefaultRotation: 0,
			},
		},
	}

	return &Catalog{Entries: entries}
}
