package placement

// region is a candidate-search area: a bounding rect to step a grid over,
// plus a containment test narrowing the rect to the region's true shape
// (identity for plain rectangles, the circle test for near_opamps disks).
type region struct {
	bounds Rect
	test   func(x, y float64) bool
}

func rectRegion(r Rect) region {
	return region{bounds: r, test: func(x, y float64) bool { return true }}
}

func circleRegion(c Circle) region {
	return region{
		bounds: Rect{X: c.CX - c.Radius, Y: c.CY - c.Radius, W: 2 * c.Radius, H: 2 * c.Radius},
		test:   c.Contains,
	}
}

// regionsForZone selects the candidate regions a group searches, per
// spec.md §4.3 step 2/3. near_opamps falls back to the center rect when no
// op-amp has been placed yet (nothing to anchor a disk to).
func regionsForZone(zone ZoneName, center Rect, edges []Rect, top Rect, opampCircles []Circle) []region {
	switch zone {
	case ZoneCenter:
		return []region{rectRegion(center)}
	case ZoneTop:
		return []region{rectRegion(top)}
	case ZoneEdges:
		regions := make([]region, len(edges))
		for i, e := range edges {
			regions[i] = rectRegion(e)
		}
		return regions
	case ZoneNearOpamps:
		if len(opampCircles) == 0 {
			return []region{rectRegion(center)}
		}
		regions := make([]region, len(opampCircles))
		for i, c := range opampCircles {
			regions[i] = circleRegion(c)
		}
		return regions
	default:
		return []region{rectRegion(center)}
	}
}
