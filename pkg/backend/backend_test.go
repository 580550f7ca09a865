package backend

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pcbgen/pkg/board"
)

func sampleBoard() *board.Board {
	b := board.NewCustom(60, 40, 2)
	b.Components = nil
	return b
}

func TestJSONBackendEmit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")
	be := NewJSONBackend(path)

	require.NoError(t, be.PlaceFootprint("R1", "R_0805", board.Point{XMM: 10, YMM: 10}, 90, "top"))
	require.NoError(t, be.CreateTrack("IN", "front", []board.Point{{XMM: 0, YMM: 0}, {XMM: 5, YMM: 0}}, 0.3))
	require.NoError(t, be.CreateVia("GND", board.Point{XMM: 2, YMM: 2}, 0.3, 0.6, "front", "inner-2"))
	require.NoError(t, be.CreateZone("GND", "inner-2", []board.Point{{XMM: 0, YMM: 0}, {XMM: 10, YMM: 0}, {XMM: 10, YMM: 10}}))

	loc, err := be.Persist()
	require.NoError(t, err)
	assert.Equal(t, path, loc)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc jsonDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Footprints, 1)
	assert.Len(t, doc.Tracks, 1)
	assert.Len(t, doc.Vias, 1)
	assert.Len(t, doc.Zones, 1)
}

func TestJSONBackendRejectsDegenerateTrack(t *testing.T) {
	be := NewJSONBackend(filepath.Join(t.TempDir(), "out.json"))
	err := be.CreateTrack("IN", "front", []board.Point{{XMM: 0, YMM: 0}}, 0.3)
	assert.Error(t, err)
}

func TestJSONBackendRejectsBadVia(t *testing.T) {
	be := NewJSONBackend(filepath.Join(t.TempDir(), "out.json"))
	err := be.CreateVia("GND", board.Point{}, 0.6, 0.3, "front", "back")
	assert.Error(t, err)
}

func TestSVGBackendRendersValidXML(t *testing.T) {
	be := NewSVGBackend(filepath.Join(t.TempDir(), "board.svg"), 60, 40)
	require.NoError(t, be.PlaceFootprint("R1", "R_0805", board.Point{XMM: 10, YMM: 10}, 0, "top"))
	require.NoError(t, be.CreateTrack("IN", "front", []board.Point{{XMM: 0, YMM: 0}, {XMM: 5, YMM: 5}}, 0.3))

	out := be.Bytes()
	assert.Contains(t, string(out), "<svg")
	assert.Contains(t, string(out), "</svg>")

	loc, err := be.Persist()
	require.NoError(t, err)
	_, err = os.Stat(loc)
	require.NoError(t, err)
}

func TestEmitDrainsBoardInOrder(t *testing.T) {
	b := sampleBoard()
	be := NewJSONBackend(filepath.Join(t.TempDir(), "out.json"))
	loc, err := Emit(b, be)
	require.NoError(t, err)
	assert.NotEmpty(t, loc)
}
