package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// kindPackages names, for every kind in the closed set, a package variant
// that resolves (empty string for package-agnostic kinds). This is the
// fixture for the registry totality property in spec.md §8: "for every
// kind in the closed set, resolve(kind) succeeds with a non-empty pin
// map."
var kindPackages = map[string]string{
	"resistor":      "",
	"capacitor":     "ceramic",
	"inductor":      "",
	"diode":         "",
	"led":           "",
	"transistor":    "bjt",
	"opamp":         "dual",
	"ic-generic":    "",
	"potentiometer": "",
	"switch":        "",
	"jack":          "3.5mm",
	"speaker":       "",
	"ferrite-bead":  "",
	"crystal":       "",
	"oscillator":    "",
	"relay":         "",
	"transformer":   "",
	"tube":          "",
	"regulator":     "",
	"dac":           "",
	"adc":           "",
	"vco":           "",
	"vcf":           "",
	"vca":           "",
	"logic":         "",
	"timer":         "",
	"mounting-hole": "",
}

func TestRegistryTotality(t *testing.T) {
	reg := NewDefault()
	require.Equal(t, len(AllKinds), len(kindPackages), "kindPackages fixture must cover every kind in the closed set")

	for _, k := range AllKinds {
		name := k.String()
		pkg, known := kindPackages[name]
		require.True(t, known, "kind %q missing from fixture", name)

		rec, err := reg.Resolve(name, pkg)
		require.NoError(t, err, "resolve(%q, %q) should succeed", name, pkg)
		assert.NotEmpty(t, rec.FootprintID, "kind %q: footprint id must not be empty", name)
		assert.NotEmpty(t, rec.PinMap, "kind %q: pin map must not be empty", name)
		assert.NotEmpty(t, rec.ReferencePrefix, "kind %q: reference prefix must not be empty", name)
	}
}

func TestRegistryTotalityProperty(t *testing.T) {
	reg := NewDefault()
	names := make([]string, 0, len(AllKinds))
	for _, k := range AllKinds {
		names = append(names, k.String())
	}

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom(names).Draw(t, "kind")
		pkg := kindPackages[name]

		rec, err := reg.Resolve(name, pkg)
		if err != nil {
			t.Fatalf("resolve(%q, %q) failed: %v", name, pkg, err)
		}
		if len(rec.PinMap) == 0 {
			t.Fatalf("resolve(%q, %q) returned an empty pin map", name, pkg)
		}
	})
}

func TestResolveUnknownKind(t *testing.T) {
	reg := NewDefault()
	_, err := reg.Resolve("flux-capacitor", "")
	assert.Error(t, err)
}

func TestResolveUnknownPackage(t *testing.T) {
	reg := NewDefault()
	_, err := reg.Resolve("capacitor", "paper-in-oil")
	assert.Error(t, err)
}

func TestAudioOverridePrefersThroughHole(t *testing.T) {
	reg := NewDefault()

	rec, err := reg.Resolve("resistor", "")
	require.NoError(t, err)
	assert.True(t, rec.ThroughHole, "audio default should prefer the through-hole axial resistor")

	override, ok := reg.AudioOverride("resistor")
	require.True(t, ok)
	assert.Equal(t, rec.FootprintID, override.FootprintID)

	reg.SetPreferThroughHole(false)
	rec, err = reg.Resolve("resistor", "")
	require.NoError(t, err)
	assert.False(t, rec.ThroughHole, "with through-hole preference disabled, SMD default should win")
}

func TestPinMapOfOpampVariants(t *testing.T) {
	reg := NewDefault()

	dual, err := reg.PinMapOf("opamp", 8, "")
	require.NoError(t, err)
	assert.Equal(t, "OUT1", dual[1])
	assert.Equal(t, "V+", dual[8])

	quad, err := reg.PinMapOf("opamp", 14, "")
	require.NoError(t, err)
	assert.Equal(t, "OUT4", quad[14])
	assert.Len(t, quad, 14)
}

func TestPinMapOfTransistorVariants(t *testing.T) {
	reg := NewDefault()

	tests := []struct {
		variant string
		want    map[int]string
	}{
		{"bjt", map[int]string{1: "E", 2: "B", 3: "C"}},
		{"jfet", map[int]string{1: "S", 2: "G", 3: "D"}},
		{"mosfet", map[int]string{1: "S", 2: "G", 3: "D"}},
	}
	for _, tc := range tests {
		got, err := reg.PinMapOf("transistor", 0, tc.variant)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestPinMapOfAudioConnectors(t *testing.T) {
	reg := NewDefault()

	jack, err := reg.PinMapOf("jack", 0, "")
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "TIP", 2: "RING", 3: "SLEEVE"}, jack)

	xlr, err := reg.PinMapOf("jack", 0, "xlr")
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "GND", 2: "HOT", 3: "COLD"}, xlr)
}

func TestCatalogValidateRejectsUnknownKind(t *testing.T) {
	cat := &Catalog{Entries: []CatalogEntry{
		{Kind: "unobtainium", Record: FootprintRecord{FootprintID: "X", ReferencePrefix: "X"}},
	}}
	assert.Error(t, cat.Validate())
}

func TestCatalogValidateRejectsMissingFootprintID(t *testing.T) {
	cat := &Catalog{Entries: []CatalogEntry{
		{Kind: "resistor", Record: FootprintRecord{ReferencePrefix: "R"}},
	}}
	assert.Error(t, cat.Validate())
}

func TestCatalogValidateRejectsEmptyCatalog(t *testing.T) {
	cat := &Catalog{}
	assert.Error(t, cat.Validate())
}
