package route

import "math"

// Routing tuning constants, in viewport units.
const (
	// DefaultMargin is the approach distance kept before an anchor when a
	// connector has to jog around the destination side.
	DefaultMargin = 14.0

	// DefaultPad is the clearance added around obstacle rectangles so
	// avoiding connectors do not graze entity borders.
	DefaultPad = 8.0
)

// Orthogonal builds an axis-aligned connector between the facing sides
// of src and dst. Aligned anchors yield a straight segment; same-axis
// sides yield a Z shape with the crossing leg kept margin away from the
// destination; mixed sides yield an L shape.
func Orthogonal(src, dst Rect, margin float64) []Point {
	srcSide, dstSide := pickSides(src, dst)
	s := anchor(src, srcSide)
	e := anchor(dst, dstSide)

	pts := []Point{s}

	switch {
	case srcSide.horizontal() && dstSide.horizontal():
		if math.Round(s.Y) == math.Round(e.Y) {
			pts = append(pts, e)
			break
		}
		var midX float64
		if dstSide == SideLeft {
			midX = math.Min(e.X-margin, (s.X+e.X)/2)
		} else {
			midX = math.Max(e.X+margin, (s.X+e.X)/2)
		}
		pts = append(pts, Point{midX, s.Y}, Point{midX, e.Y}, e)

	case !srcSide.horizontal() && !dstSide.horizontal():
		if math.Round(s.X) == math.Round(e.X) {
			pts = append(pts, e)
			break
		}
		var midY float64
		if dstSide == SideTop {
			midY = math.Min(e.Y-margin, (s.Y+e.Y)/2)
		} else {
			midY = math.Max(e.Y+margin, (s.Y+e.Y)/2)
		}
		pts = append(pts, Point{s.X, midY}, Point{e.X, midY}, e)

	default:
		// Mixed axes: a single corner is enough.
		if srcSide.horizontal() {
			pts = append(pts, Point{e.X, s.Y}, e)
		} else {
			pts = append(pts, Point{s.X, e.Y}, e)
		}
	}

	return pts
}
