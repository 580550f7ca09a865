package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pcbgen/pkg/registry"
)

func newTestNetlist() *Netlist {
	return New(registry.NewDefault())
}

func TestAddComponentAllocatesSequentialReferences(t *testing.T) {
	nl := newTestNetlist()

	r1, err := nl.AddComponent("resistor", "10k", "", nil)
	require.NoError(t, err)
	r2, err := nl.AddComponent("resistor", "4k7", "", nil)
	require.NoError(t, err)

	assert.Equal(t, "R1", r1)
	assert.Equal(t, "R2", r2)
	assert.Equal(t, "R1", nl.Components[r1].Reference)
}

func TestAddComponentUnknownKindFails(t *testing.T) {
	nl := newTestNetlist()
	_, err := nl.AddComponent("flux-capacitor", "", "", nil)
	assert.Error(t, err)
}

func TestAddNetRejectsDuplicateName(t *testing.T) {
	nl := newTestNetlist()
	_, err := nl.AddNet("GND", ClassGround)
	require.NoError(t, err)
	_, err = nl.AddNet("GND", ClassGround)
	assert.Error(t, err)
}

func TestConnectValidatesPinExistence(t *testing.T) {
	nl := newTestNetlist()
	r1, err := nl.AddComponent("resistor", "10k", "", nil)
	require.NoError(t, err)
	_, err = nl.AddNet("IN", ClassAudio)
	require.NoError(t, err)

	require.NoError(t, nl.Connect("IN", r1, "1"))
	require.NoError(t, nl.Connect("IN", r1, "2"))
	assert.Error(t, nl.Connect("IN", r1, "99"))
	assert.Error(t, nl.Connect("IN", r1, "nonexistent_pin"))
}

func TestConnectAcceptsPinNameOrNumber(t *testing.T) {
	nl := newTestNetlist()
	j1, err := nl.AddComponent("jack", "", "3.5mm", nil)
	require.NoError(t, err)
	_, err = nl.AddNet("GND", ClassGround)
	require.NoError(t, err)

	require.NoError(t, nl.Connect("GND", j1, "SLEEVE"))
	require.NoError(t, nl.Connect("GND", j1, "sleeve"))
	require.NoError(t, nl.Connect("GND", j1, "3"))
}

func TestClassifyHeuristics(t *testing.T) {
	nl := newTestNetlist()

	tests := []struct {
		name string
		want SignalClass
	}{
		{"VCC", ClassPower},
		{"+12V", ClassPower},
		{"GND", ClassGround},
		{"AGND", ClassGround},
		{"CLK", ClassHighSpeed},
		{"FOOBAR", ClassControl},
	}
	for _, tc := range tests {
		_, err := nl.AddNet(tc.name, ClassControl)
		require.NoError(t, err)
		got, err := nl.Classify(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "net %q", tc.name)
	}
}

func TestClassifyPromotesToAudioViaAudioKindPin(t *testing.T) {
	nl := newTestNetlist()
	j1, err := nl.AddComponent("jack", "", "3.5mm", nil)
	require.NoError(t, err)
	_, err = nl.AddNet("SIGNAL_PATH", ClassControl)
	require.NoError(t, err)
	require.NoError(t, nl.Connect("SIGNAL_PATH", j1, "TIP"))

	assert.Equal(t, ClassAudio, nl.Nets["SIGNAL_PATH"].Class)
}

func TestValidateDetectsDanglingEndpoint(t *testing.T) {
	nl := newTestNetlist()
	_, err := nl.AddNet("IN", ClassAudio)
	require.NoError(t, err)
	nl.Nets["IN"].Endpoints = append(nl.Nets["IN"].Endpoints, Endpoint{ComponentID: "R99", Pin: "1"})

	assert.Error(t, nl.Validate())
}

func TestIterNetsAndComponentsAreSortedAndRestartable(t *testing.T) {
	nl := newTestNetlist()
	_, _ = nl.AddComponent("resistor", "", "", nil)
	_, _ = nl.AddComponent("capacitor", "", "ceramic", nil)
	_, _ = nl.AddNet("OUT", ClassAudio)
	_, _ = nl.AddNet("IN", ClassAudio)

	first := nl.IterNets()
	second := nl.IterNets()
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"IN", "OUT"}, first)

	comps := nl.IterComponents()
	assert.Equal(t, []string{"C1", "R1"}, comps)
}
