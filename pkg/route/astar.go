package route

import (
	"container/heap"
	"sort"
)

// Avoid routes an orthogonal connector from src to dst that does not cut
// through any of the other rectangles. Obstacles are padded so the route
// keeps clearance from entity borders. Candidate turning coordinates come
// from the obstacle edges (plus margin offsets) and the endpoints, which
// keeps the search grid sparse. When no route exists the plain
// Orthogonal connector is returned instead.
func Avoid(src, dst Rect, others []Rect, pad, margin float64) []Point {
	srcSide, dstSide := pickSides(src, dst)
	start := anchor(src, srcSide)
	goal := anchor(dst, dstSide)

	obstacles := make([]Rect, 0, len(others))
	for _, r := range others {
		obstacles = append(obstacles, r.expand(pad))
	}

	xs := map[float64]struct{}{start.X: {}, goal.X: {}}
	ys := map[float64]struct{}{start.Y: {}, goal.Y: {}}
	for _, r := range obstacles {
		for _, x := range []float64{r.Left() - margin, r.Left(), r.Right(), r.Right() + margin} {
			xs[x] = struct{}{}
		}
		for _, y := range []float64{r.Top() - margin, r.Top(), r.Bottom(), r.Bottom() + margin} {
			ys[y] = struct{}{}
		}
	}
	// Raw entity edges (endpoints included) let routes run between
	// neighboring rows and columns cleanly.
	all := make([]Rect, 0, len(others)+2)
	all = append(all, src, dst)
	all = append(all, others...)
	for _, r := range all {
		xs[r.Left()] = struct{}{}
		xs[r.Right()] = struct{}{}
		ys[r.Top()] = struct{}{}
		ys[r.Bottom()] = struct{}{}
	}

	blocked := func(x, y float64) bool {
		for _, r := range obstacles {
			if r.contains(x, y) {
				return true
			}
		}
		return false
	}

	nodes := map[Point]struct{}{start: {}, goal: {}}
	for x := range xs {
		for y := range ys {
			if !blocked(x, y) {
				nodes[Point{x, y}] = struct{}{}
			}
		}
	}

	edges := buildGridEdges(nodes, obstacles)

	path := aStar(start, goal, edges)
	if path == nil {
		return Orthogonal(src, dst, margin)
	}
	return compressCollinear(path)
}

// buildGridEdges links each node to its nearest neighbors along the same
// x and y coordinate, skipping segments that cross an obstacle.
func buildGridEdges(nodes map[Point]struct{}, obstacles []Rect) map[Point][]Point {
	edges := make(map[Point][]Point, len(nodes))

	byX := make(map[float64][]Point)
	byY := make(map[float64][]Point)
	for p := range nodes {
		byX[p.X] = append(byX[p.X], p)
		byY[p.Y] = append(byY[p.Y], p)
	}

	link := func(a, b Point) {
		if segmentClear(a, b, obstacles) {
			edges[a] = append(edges[a], b)
			edges[b] = append(edges[b], a)
		}
	}

	for _, pts := range byX {
		sort.Slice(pts, func(i, j int) bool { return pts[i].Y < pts[j].Y })
		for i := 1; i < len(pts); i++ {
			link(pts[i-1], pts[i])
		}
	}
	for _, pts := range byY {
		sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
		for i := 1; i < len(pts); i++ {
			link(pts[i-1], pts[i])
		}
	}

	return edges
}

// segmentClear reports whether the axis-aligned segment a-b crosses any
// obstacle. Overlap checks are strict so a segment running along an
// obstacle border stays clear.
func segmentClear(a, b Point, obstacles []Rect) bool {
	if a.X != b.X && a.Y != b.Y {
		return false
	}
	if a.X == b.X {
		x := a.X
		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		for _, r := range obstacles {
			if !(r.Left() < x && x < r.Right()) {
				continue
			}
			if max(lo, r.Top()) < min(hi, r.Bottom()) {
				return false
			}
		}
		return true
	}
	y := a.Y
	lo, hi := a.X, b.X
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, r := range obstacles {
		if !(r.Top() < y && y < r.Bottom()) {
			continue
		}
		if max(lo, r.Left()) < min(hi, r.Right()) {
			return false
		}
	}
	return true
}

func manhattan(a, b Point) float64 {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// openItem is a frontier entry in the A* search.
type openItem struct {
	f float64 // g + heuristic
	p Point
}

// openHeap is a min-heap of frontier entries ordered by f.
type openHeap []openItem

func (h openHeap) Len() int           { return len(h) }
func (h openHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h openHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x any)        { *h = append(*h, x.(openItem)) }

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// aStar searches the grid for the cheapest path from start to goal using
// the Manhattan distance heuristic. Returns nil when goal is unreachable.
func aStar(start, goal Point, edges map[Point][]Point) []Point {
	open := &openHeap{{f: manhattan(start, goal), p: start}}
	heap.Init(open)

	cameFrom := make(map[Point]Point)
	gScore := map[Point]float64{start: 0}
	inOpen := map[Point]bool{start: true}

	for open.Len() > 0 {
		current := heap.Pop(open).(openItem).p
		delete(inOpen, current)

		if current == goal {
			path := []Point{current}
			for {
				prev, ok := cameFrom[current]
				if !ok {
					break
				}
				current = prev
				path = append(path, current)
			}
			reverse(path)
			return path
		}

		for _, next := range edges[current] {
			tentative := gScore[current] + manhattan(current, next)
			if old, seen := gScore[next]; seen && tentative >= old {
				continue
			}
			cameFrom[next] = current
			gScore[next] = tentative
			if !inOpen[next] {
				heap.Push(open, openItem{f: tentative + manhattan(next, goal), p: next})
				inOpen[next] = true
			}
		}
	}
	return nil
}

// compressCollinear removes interior points that lie on a straight
// horizontal or vertical run.
func compressCollinear(points []Point) []Point {
	if len(points) <= 2 {
		return points
	}
	out := []Point{points[0]}
	for i := 1; i < len(points)-1; i++ {
		p0 := out[len(out)-1]
		p1 := points[i]
		p2 := points[i+1]
		if (p0.X == p1.X && p1.X == p2.X) || (p0.Y == p1.Y && p1.Y == p2.Y) {
			continue
		}
		out = append(out, p1)
	}
	return append(out, points[len(points)-1])
}

func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
