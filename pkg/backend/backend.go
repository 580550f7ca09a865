// Package backend defines the BoardBackend capability (spec.md §6): the
// abstract interface through which the core asks a host CAD application,
// or a documented file-format emitter, to place footprints, lay copper,
// and persist the finished board. The core never knows which concrete
// implementation it is driving; it only calls the capability.
//
// Grounded on the teacher's pkg/export package (ExportSVG/ExportJSON as
// pure functions of a frozen artifact), generalized from one-shot export
// calls into a stateful capability the driver invokes once per placed
// footprint, track, via, and zone, followed by a single Persist call.
package backend

import "github.com/dshills/pcbgen/pkg/board"

// BoardBackend is the outbound capability the core calls to realize a
// Board in whatever medium the backend owns: a native CAD document, a
// preview rendering, or a serialized file format. Every method reports
// rejection as a *pcberr.BackendError-wrapped error; the core treats a
// non-nil error as fatal to the current stage.
type BoardBackend interface {
	// PlaceFootprint places the footprint for a component by its
	// resolved footprint id, at the component's assigned position,
	// rotation, and layer side.
	PlaceFootprint(componentID, footprintID string, pos board.Point, rotationDeg int, side string) error

	// CreateTrack lays a copper track of the given width on layer,
	// following points in order, belonging to netID.
	CreateTrack(netID, layer string, points []board.Point, widthMM float64) error

	// CreateVia places a plated via connecting fromLayer to toLayer at
	// pos, belonging to netID.
	CreateVia(netID string, pos board.Point, drillMM, outerDiaMM float64, fromLayer, toLayer string) error

	// CreateZone pours a copper zone on layer with the given outline,
	// connected to netID.
	CreateZone(netID, layer string, outline []board.Point) error

	// Persist writes the accumulated board to the backend's native
	// form (a CAD document, a file, an in-memory buffer) and returns
	// any backend-specific locator (a file path, a document id) as a
	// string, or an error if persistence failed.
	Persist() (string, error)
}

// Emit drains a finished Board through a BoardBackend: every placed
// component's footprint, then every track, via, and zone, then Persist.
// It is the one call sites outside this package need — callers never
// have to know the per-primitive call order the capability exposes.
func Emit(b *board.Board, be BoardBackend) (string, error) {
	for _, c := range b.Components {
		if err := be.PlaceFootprint(c.Reference, c.FootprintID, board.Point{XMM: c.Position.XMM, YMM: c.Position.YMM}, c.RotationDeg, c.Side.String()); err != nil {
			return "", err
		}
	}
	for _, t := range b.Tracks {
		if err := be.CreateTrack(t.NetID, t.Layer, t.Points, t.WidthMM); err != nil {
			return "", err
		}
	}
	for _, v := range b.Vias {
		if err := be.CreateVia(v.NetID, v.Position, v.DrillMM, v.OuterDiaMM, v.FromLayer, v.ToLayer); err != nil {
			return "", err
		}
	}
	for _, z := range b.Zones {
		if err := be.CreateZone(z.NetID, z.Layer, z.Outline); err != nil {
			return "", err
		}
	}
	return be.Persist()
}
