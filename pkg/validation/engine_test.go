package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
	"github.com/dshills/pcbgen/pkg/registry"
)

func wiredBoardAndNetlist(t *testing.T) (*board.Board, *netlist.Netlist) {
	t.Helper()
	b, err := board.NewFromPreset("pedal")
	require.NoError(t, err)
	nl := netlist.New(registry.NewDefault())

	r1, err := nl.AddComponent("resistor", "10k", "", nil)
	require.NoError(t, err)
	j1, err := nl.AddComponent("jack", "", "3.5mm", nil)
	require.NoError(t, err)

	_, err = nl.AddNet("IN", netlist.ClassAudio)
	require.NoError(t, err)
	_, err = nl.AddNet("GND", netlist.ClassGround)
	require.NoError(t, err)

	require.NoError(t, nl.Connect("IN", r1, "1"))
	require.NoError(t, nl.Connect("IN", j1, "TIP"))
	require.NoError(t, nl.Connect("GND", r1, "2"))
	require.NoError(t, nl.Connect("GND", j1, "SLEEVE"))

	b.Components = append(b.Components, nl.Components["R1"], nl.Components["J1"])
	return b, nl
}

func TestCheckConnectivityFlagsUnroutedMultiEndpointNet(t *testing.T) {
	b, nl := wiredBoardAndNetlist(t)

	issues := checkConnectivity(b, nl, DefaultConfig())
	require.Len(t, issues, 2)
	assert.Equal(t, SeverityCritical, issues[0].Severity)
	assert.Equal(t, CategoryConnectivity, issues[0].Category)
	assert.Equal(t, []string{"GND"}, issues[0].AffectedNets)
	assert.Equal(t, []string{"IN"}, issues[1].AffectedNets)
}

func TestCheckConnectivitySkipsSingleEndpointNets(t *testing.T) {
	b, nl := wiredBoardAndNetlist(t)
	_, err := nl.AddNet("FLOAT", netlist.ClassControl)
	require.NoError(t, err)

	issues := checkConnectivity(b, nl, DefaultConfig())
	for _, iss := range issues {
		assert.NotContains(t, iss.AffectedNets, "FLOAT")
	}
}

func TestCheckConnectivityPassesOnceRouted(t *testing.T) {
	b, nl := wiredBoardAndNetlist(t)
	b.Tracks = append(b.Tracks, board.Track{NetID: "IN", Layer: "front", Points: []board.Point{{XMM: 0, YMM: 0}, {XMM: 1, YMM: 1}}})
	b.Tracks = append(b.Tracks, board.Track{NetID: "GND", Layer: "back", Points: []board.Point{{XMM: 0, YMM: 0}, {XMM: 1, YMM: 1}}})

	issues := checkConnectivity(b, nl, DefaultConfig())
	assert.Empty(t, issues)
}

func TestValidateMergesModulesInFixedOrderAndIsDeterministic(t *testing.T) {
	b, nl := wiredBoardAndNetlist(t)
	eng := New(DefaultConfig())

	r1 := eng.Validate(b, nl)
	r2 := eng.Validate(b, nl)

	assert.Equal(t, r1.Issues, r2.Issues)
	assert.Equal(t, r1.ID, r2.ID, "re-validating an unchanged board must yield a byte-equal report id")
}

func TestReportIDChangesWithIssueSet(t *testing.T) {
	quiet := reportID(nil)
	noisy := reportID([]Issue{{Severity: SeverityError, Category: CategoryConnectivity, Message: "net IN has no routed copper"}})
	assert.NotEqual(t, quiet, noisy)
	assert.Equal(t, quiet, reportID(nil))
}

func TestValidateIsInvalidWhenCriticalIssuePresent(t *testing.T) {
	b, nl := wiredBoardAndNetlist(t)
	eng := New(DefaultConfig())

	report := eng.Validate(b, nl)
	assert.False(t, report.IsValid)
}

func TestValidateSkipsDisabledModules(t *testing.T) {
	b, nl := wiredBoardAndNetlist(t)
	cfg := DefaultConfig()
	cfg.Connectivity.Enabled = false
	eng := New(cfg)

	report := eng.Validate(b, nl)
	for _, iss := range report.Issues {
		assert.NotEqual(t, CategoryConnectivity, iss.Category)
	}
}

func TestBucketSeverityRespectsThresholds(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, SeverityInfo, cfg.bucketSeverity(0.1))
	assert.Equal(t, SeverityWarning, cfg.bucketSeverity(0.3))
	assert.Equal(t, SeverityError, cfg.bucketSeverity(0.7))
	assert.Equal(t, SeverityCritical, cfg.bucketSeverity(0.9))
}

func TestComputeIsValidTrueWithOnlyWarnings(t *testing.T) {
	issues := []Issue{{Severity: SeverityWarning}, {Severity: SeverityInfo}}
	assert.True(t, computeIsValid(issues))
}

func TestReportRenderersProduceNonEmptyOutput(t *testing.T) {
	report := &ValidationReport{
		ID:      "test-report",
		IsValid: false,
		Issues: []Issue{
			{Severity: SeverityError, Category: CategoryConnectivity, Message: "net OUT unrouted"},
		},
	}

	data, err := report.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "net OUT unrouted")

	csvOut, err := report.ToCSV()
	require.NoError(t, err)
	assert.Contains(t, csvOut, "connectivity")

	assert.Contains(t, report.ToMarkdown(), "net OUT unrouted")
	assert.Contains(t, report.ToHTML(), "net OUT unrouted")
}
