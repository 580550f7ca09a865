package backend

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/pcberr"
)

// SVGScale is pixels-per-millimeter used to map board coordinates onto the
// preview canvas.
const SVGScale = 4.0

// layerColor assigns a preview stroke color per layer role, grounded on
// the teacher's ExportSVG archetype-color table.
var layerColor = map[string]string{
	"front":   "#c87137",
	"back":    "#3778c8",
	"inner-1": "#c83737",
	"inner-2": "#37c85a",
}

func colorFor(layer string) string {
	if c, ok := layerColor[layer]; ok {
		return c
	}
	return "#888888"
}

// SVGBackend is a BoardBackend that renders a board preview directly from
// placed-component and routed-copper coordinates (no force-directed
// layout is needed: Placement and Routing have already assigned real
// positions). Grounded on the teacher's pkg/export/svg.go use of
// github.com/ajstarks/svgo as a draw-primitive canvas.
type SVGBackend struct {
	path       string
	widthMM    float64
	heightMM   float64
	footprints []jsonFootprint
	tracks     []jsonTrack
	vias       []jsonVia
	zones      []jsonZone
}

// NewSVGBackend returns an SVGBackend sized to a widthMM x heightMM board,
// writing its rendering to path on Persist.
func NewSVGBackend(path string, widthMM, heightMM float64) *SVGBackend {
	return &SVGBackend{path: path, widthMM: widthMM, heightMM: heightMM}
}

func (b *SVGBackend) PlaceFootprint(componentID, footprintID string, pos board.Point, rotationDeg int, side string) error {
	b.footprints = append(b.footprints, jsonFootprint{ComponentID: componentID, FootprintID: footprintID, Position: pos, RotationDeg: rotationDeg, Side: side})
	return nil
}

func (b *SVGBackend) CreateTrack(netID, layer string, points []board.Point, widthMM float64) error {
	if len(points) < 2 {
		return &pcberr.BackendError{Op: "create_track", Detail: fmt.Sprintf("net %q: track needs at least 2 points", netID)}
	}
	b.tracks = append(b.tracks, jsonTrack{NetID: netID, Layer: layer, Points: points, WidthMM: widthMM})
	return nil
}

func (b *SVGBackend) CreateVia(netID string, pos board.Point, drillMM, outerDiaMM float64, fromLayer, toLayer string) error {
	b.vias = append(b.vias, jsonVia{NetID: netID, Position: pos, DrillMM: drillMM, OuterDiaMM: outerDiaMM, FromLayer: fromLayer, ToLayer: toLayer})
	return nil
}

func (b *SVGBackend) CreateZone(netID, layer string, outline []board.Point) error {
	if len(outline) < 3 {
		return &pcberr.BackendError{Op: "create_zone", Detail: fmt.Sprintf("net %q: zone outline needs at least 3 points", netID)}
	}
	b.zones = append(b.zones, jsonZone{NetID: netID, Layer: layer, Outline: outline})
	return nil
}

func (b *SVGBackend) px(p board.Point) (int, int) {
	return int(p.XMM * SVGScale), int(p.YMM * SVGScale)
}

// Persist renders the accumulated primitives to an SVG file and returns
// the path.
func (b *SVGBackend) Persist() (string, error) {
	data := b.render()
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return "", &pcberr.BackendError{Op: "persist", Detail: err.Error()}
	}
	return b.path, nil
}

func (b *SVGBackend) render() []byte {
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	w := int(b.widthMM * SVGScale)
	h := int(b.heightMM * SVGScale)
	canvas.Start(w, h)
	canvas.Rect(0, 0, w, h, "fill:#0b0b12;stroke:#444;stroke-width:2")

	for _, z := range b.zones {
		xs := make([]int, len(z.Outline))
		ys := make([]int, len(z.Outline))
		for i, p := range z.Outline {
			xs[i], ys[i] = b.px(p)
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;fill-opacity:0.15;stroke:none", colorFor(z.Layer)))
	}

	for _, t := range b.tracks {
		xs := make([]int, len(t.Points))
		ys := make([]int, len(t.Points))
		for i, p := range t.Points {
			xs[i], ys[i] = b.px(p)
		}
		canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", colorFor(t.Layer), int(t.WidthMM*SVGScale)+1))
	}

	for _, v := range b.vias {
		x, y := b.px(v.Position)
		canvas.Circle(x, y, int(v.OuterDiaMM*SVGScale/2)+1, "fill:#ccc;stroke:#000")
	}

	for _, f := range b.footprints {
		x, y := b.px(f.Position)
		canvas.Rect(x-6, y-6, 12, 12, "fill:#e8c35a;stroke:#000")
		canvas.Text(x+8, y+4, f.ComponentID, "font-size:10px;fill:#ddd")
	}

	canvas.End()
	return buf.Bytes()
}

// Bytes renders without writing to disk, for callers that want an
// in-memory preview (tests, embedding in another document).
func (b *SVGBackend) Bytes() []byte {
	return b.render()
}
