package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/diagraft/diagraft/pkg/errors"
	"github.com/diagraft/diagraft/pkg/model"
	"github.com/diagraft/diagraft/pkg/route"
)

// pathData builds the SVG path data for one relation: a move to the
// first point followed by a line to each subsequent point.
func (r *renderer) pathData(rel model.Relation, idx model.Index) (string, error) {
	if !rel.Kind.Valid() {
		return "", errors.New(errors.ErrCodeInvalidKind,
			"unknown relation kind %q (%s -> %s)", rel.Kind, rel.From, rel.To)
	}
	if !rel.Route.Valid() {
		return "", errors.New(errors.ErrCodeInvalidRoute,
			"unknown route mode %q (%s -> %s)", rel.Route, rel.From, rel.To)
	}

	from, ok := idx[rel.From]
	if !ok {
		return "", errors.New(errors.ErrCodeDanglingRelation,
			"relation references unknown entity %q (%s -> %s)", rel.From, rel.From, rel.To)
	}
	to, ok := idx[rel.To]
	if !ok {
		return "", errors.New(errors.ErrCodeDanglingRelation,
			"relation references unknown entity %q (%s -> %s)", rel.To, rel.From, rel.To)
	}

	if rel.Route == "" || rel.Route == model.RouteDirect {
		points := make([]model.Point, 0, len(rel.Via)+2)
		points = append(points, *from.Pos)
		points = append(points, rel.Via...)
		points = append(points, *to.Pos)
		return formatPath(points, formatNum), nil
	}

	return r.routedPathData(rel, from, to, idx)
}

// routedPathData computes an orthogonal connector between the entity
// rectangles for the ortho and avoid route modes.
func (r *renderer) routedPathData(rel model.Relation, from, to model.Entity, idx model.Index) (string, error) {
	if len(rel.Via) > 0 {
		return "", errors.New(errors.ErrCodeInvalidRoute,
			"via waypoints cannot be combined with route %q (%s -> %s)", rel.Route, rel.From, rel.To)
	}
	if from.Size == nil || to.Size == nil {
		return "", errors.New(errors.ErrCodeInvalidRoute,
			"route %q requires size on both endpoints (%s -> %s)", rel.Route, rel.From, rel.To)
	}

	src := entityRect(from)
	dst := entityRect(to)

	var pts []route.Point
	if rel.Route == model.RouteOrtho {
		pts = route.Orthogonal(src, dst, r.margin)
	} else {
		obstacles := make([]route.Rect, 0, len(idx))
		for id, e := range idx {
			if id == rel.From || id == rel.To || e.Size == nil {
				continue
			}
			obstacles = append(obstacles, entityRect(e))
		}
		pts = route.Avoid(src, dst, obstacles, r.pad, r.margin)
	}

	points := make([]model.Point, len(pts))
	for i, p := range pts {
		points[i] = model.Point{X: p.X, Y: p.Y}
	}
	// Computed routes round to whole units; authored coordinates are
	// emitted verbatim.
	return formatPath(points, formatRounded), nil
}

func entityRect(e model.Entity) route.Rect {
	return route.Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.Size.W, H: e.Size.H}
}

// formatPath renders points as "M x y L x y ..." using the given
// coordinate formatter.
func formatPath(points []model.Point, format func(float64) string) string {
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(format(p.X))
		b.WriteByte(' ')
		b.WriteString(format(p.Y))
	}
	return b.String()
}

// formatNum renders a coordinate exactly as authored, without rounding
// or exponent notation.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatRounded renders a computed coordinate as a whole unit.
func formatRounded(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
