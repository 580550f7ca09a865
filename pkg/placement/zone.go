package placement

import "github.com/dshills/pcbgen/pkg/board"

// Rect is an axis-aligned candidate region in board coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point (x,y) lies within the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Circle is a dynamic disk region, used for the near_opamps zone.
type Circle struct {
	CX, CY, Radius float64
}

func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.CX, y-c.CY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// computeZones derives the four named zones from the board rectangle
// inset by marginPercentage, per spec.md §4.3 step 2: center is the middle
// third, edges are four perimeter strips, top is the top band. near_opamps
// is recomputed by the caller every time an op-amp is placed, since it
// depends on placement state.
func computeZones(b *board.Board, marginPercentage float64) (center Rect, edges []Rect, top Rect) {
	mx := b.WidthMM * marginPercentage
	my := b.HeightMM * marginPercentage

	innerX := mx
	innerY := my
	innerW := b.WidthMM - 2*mx
	innerH := b.HeightMM - 2*my

	center = Rect{
		X: innerX + innerW/3,
		Y: innerY + innerH/3,
		W: innerW / 3,
		H: innerH / 3,
	}

	top = Rect{X: innerX, Y: innerY, W: innerW, H: innerH * 0.15}

	edges = []Rect{
		{X: innerX, Y: innerY, W: innerW, H: innerH * 0.1},                      // top strip
		{X: innerX, Y: innerY + innerH*0.9, W: innerW, H: innerH * 0.1},          // bottom strip
		{X: innerX, Y: innerY, W: innerW * 0.1, H: innerH},                      // left strip
		{X: innerX + innerW*0.9, Y: innerY, W: innerW * 0.1, H: innerH},          // right strip
	}

	return center, edges, top
}

// nearOpampCircles builds the dynamic near_opamps zone from every op-amp
// placed so far.
func nearOpampCircles(placedOpampCenters []board.Point, radiusMM float64) []Circle {
	out := make([]Circle, 0, len(placedOpampCenters))
	for _, p := range placedOpampCenters {
		out = append(out, Circle{CX: p.XMM, CY: p.YMM, Radius: radiusMM})
	}
	return out
}
