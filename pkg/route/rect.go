package route

// Point is a 2D coordinate. The zero value is the origin.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle identified by its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// expand grows the rectangle by pad on all four sides.
func (r Rect) expand(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + pad*2, H: r.H + pad*2}
}

// contains reports whether the point lies strictly inside the rectangle.
// Points on the border are outside, so connectors may run along edges.
func (r Rect) contains(x, y float64) bool {
	return r.Left() < x && x < r.Right() && r.Top() < y && y < r.Bottom()
}

// Side identifies one edge of a rectangle.
type Side int

// Rectangle sides.
const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// horizontal reports whether the side faces left or right, i.e. a
// connector leaving it travels horizontally first.
func (s Side) horizontal() bool {
	return s == SideLeft || s == SideRight
}

// anchor returns the midpoint of the given side.
func anchor(r Rect, s Side) Point {
	switch s {
	case SideLeft:
		return Point{r.Left(), r.CenterY()}
	case SideRight:
		return Point{r.Right(), r.CenterY()}
	case SideTop:
		return Point{r.CenterX(), r.Top()}
	default:
		return Point{r.CenterX(), r.Bottom()}
	}
}

// pickSides chooses the facing sides of src and dst by the dominant axis
// between their centers: mostly-horizontal separation connects right to
// left, mostly-vertical connects bottom to top.
func pickSides(src, dst Rect) (Side, Side) {
	dx := dst.CenterX() - src.CenterX()
	dy := dst.CenterY() - src.CenterY()
	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return SideRight, SideLeft
		}
		return SideLeft, SideRight
	}
	if dy >= 0 {
		return SideBottom, SideTop
	}
	return SideTop, SideBottom
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
