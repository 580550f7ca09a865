package backend

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/pcberr"
)

// jsonFootprint is one placed footprint in the JSON board document.
type jsonFootprint struct {
	ComponentID string     `json:"component_id"`
	FootprintID string     `json:"footprint_id"`
	Position    board.Point `json:"position"`
	RotationDeg int        `json:"rotation_deg"`
	Side        string     `json:"side"`
}

// jsonTrack is one routed copper segment in the JSON board document.
type jsonTrack struct {
	NetID   string       `json:"net_id"`
	Layer   string       `json:"layer"`
	Points  []board.Point `json:"points"`
	WidthMM float64      `json:"width_mm"`
}

// jsonVia is one plated via in the JSON board document.
type jsonVia struct {
	NetID      string     `json:"net_id"`
	Position   board.Point `json:"position"`
	DrillMM    float64    `json:"drill_mm"`
	OuterDiaMM float64    `json:"outer_dia_mm"`
	FromLayer  string     `json:"from_layer"`
	ToLayer    string     `json:"to_layer"`
}

// jsonZone is one poured copper region in the JSON board document.
type jsonZone struct {
	NetID   string       `json:"net_id"`
	Layer   string       `json:"layer"`
	Outline []board.Point `json:"outline"`
}

// jsonDocument is the on-disk shape persisted by JSONBackend, field-named
// after the KiCad pcb.Board document in the retrieval pack (GetNet*-style
// accessors, flat arrays of primitives keyed by net id).
type jsonDocument struct {
	Footprints []jsonFootprint `json:"footprints"`
	Tracks     []jsonTrack     `json:"tracks"`
	Vias       []jsonVia       `json:"vias"`
	Zones      []jsonZone      `json:"zones"`
}

// JSONBackend is a BoardBackend that accumulates board primitives into an
// in-memory document and persists it to a JSON file. It owns no CAD
// application; it is the pure "emitter" half of spec.md §6's "any backend
// satisfying this capability ... is acceptable."
type JSONBackend struct {
	path string
	doc  jsonDocument
}

// NewJSONBackend returns a JSONBackend that will write its document to
// path on Persist.
func NewJSONBackend(path string) *JSONBackend {
	return &JSONBackend{path: path}
}

func (b *JSONBackend) PlaceFootprint(componentID, footprintID string, pos board.Point, rotationDeg int, side string) error {
	b.doc.Footprints = append(b.doc.Footprints, jsonFootprint{
		ComponentID: componentID,
		FootprintID: footprintID,
		Position:    pos,
		RotationDeg: rotationDeg,
		Side:        side,
	})
	return nil
}

func (b *JSONBackend) CreateTrack(netID, layer string, points []board.Point, widthMM float64) error {
	if len(points) < 2 {
		return &pcberr.BackendError{Op: "create_track", Detail: fmt.Sprintf("net %q: track needs at least 2 points, got %d", netID, len(points))}
	}
	b.doc.Tracks = append(b.doc.Tracks, jsonTrack{NetID: netID, Layer: layer, Points: points, WidthMM: widthMM})
	return nil
}

func (b *JSONBackend) CreateVia(netID string, pos board.Point, drillMM, outerDiaMM float64, fromLayer, toLayer string) error {
	if outerDiaMM <= drillMM {
		return &pcberr.BackendError{Op: "create_via", Detail: fmt.Sprintf("net %q: outer diameter %.3f must exceed drill %.3f", netID, outerDiaMM, drillMM)}
	}
	b.doc.Vias = append(b.doc.Vias, jsonVia{NetID: netID, Position: pos, DrillMM: drillMM, OuterDiaMM: outerDiaMM, FromLayer: fromLayer, ToLayer: toLayer})
	return nil
}

func (b *JSONBackend) CreateZone(netID, layer string, outline []board.Point) error {
	if len(outline) < 3 {
		return &pcberr.BackendError{Op: "create_zone", Detail: fmt.Sprintf("net %q: zone outline needs at least 3 points, got %d", netID, len(outline))}
	}
	b.doc.Zones = append(b.doc.Zones, jsonZone{NetID: netID, Layer: layer, Outline: outline})
	return nil
}

// Persist writes the accumulated document to b.path as indented JSON and
// returns the path.
func (b *JSONBackend) Persist() (string, error) {
	data, err := json.MarshalIndent(b.doc, "", "  ")
	if err != nil {
		return "", &pcberr.BackendError{Op: "persist", Detail: err.Error()}
	}
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return "", &pcberr.BackendError{Op: "persist", Detail: err.Error()}
	}
	return b.path, nil
}

// Document exposes the accumulated document for callers that want the
// bytes without touching disk (tests, in-process previewers).
func (b *JSONBackend) Document() ([]byte, error) {
	return json.MarshalIndent(b.doc, "", "  ")
}
