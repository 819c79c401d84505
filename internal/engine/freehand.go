package engine

import (
	"math"
	"slices"

	"honnef.co/go/curve"

	"github.com/edgedraw/edgedraw/internal/document"
)

// Freehand stroke model parameters.
const (
	freehandThinning = 0.6
	// freehandSmoothing is the simplification accuracy as a fraction of the
	// stroke size.
	freehandSmoothing = 0.025

	// pressureRate scales how quickly simulated pressure follows speed.
	pressureRate = 0.275
	// capTolerance bounds the error of the round caps, in document units.
	capTolerance = 0.05
)

// FreehandOutline converts traced points into the closed outline of a
// variable-width stroke. The width thins with simulated pressure (faster
// movement draws thinner), both sides are splined through their offset
// points, the ends get round caps and the whole outline is simplified to
// cubic segments. The result is deterministic for a given input.
func FreehandOutline(points []document.Point, strokeWidth float64) curve.BezPath {
	if len(points) == 0 {
		return nil
	}
	size := max(strokeWidth*2, 1)

	pts := make([]curve.Point, len(points))
	for i, p := range points {
		pts[i] = curve.Pt(p.X, p.Y)
	}
	pts = slices.Compact(pts)
	if len(pts) == 1 {
		dot := curve.Circle{Center: pts[0], Radius: strokeRadius(size, 0.5)}
		return dot.Path(capTolerance)
	}

	radii := pressureRadii(pts, size)
	left := make([]curve.Point, len(pts))
	right := make([]curve.Point, len(pts))
	normals := make([]curve.Vec2, len(pts))
	for i, p := range pts {
		t := tangentAt(pts, i)
		normals[i] = curve.Vec(-t.Y, t.X)
		off := normals[i].Mul(radii[i])
		left[i] = p.Translate(off)
		right[i] = p.Translate(off.Negate())
	}
	slices.Reverse(right)

	last := len(pts) - 1
	var outline curve.BezPath
	outline.MoveTo(left[0])
	spline(&outline, left)
	roundCap(&outline, pts[last], normals[last], radii[last])
	spline(&outline, right)
	roundCap(&outline, pts[0], normals[0].Negate(), radii[0])
	outline.ClosePath()

	accuracy := size * freehandSmoothing
	return slices.Collect(curve.Simplify(outline.Elements(), accuracy, curve.DefaultSimplifyOptions))
}

// OutlinePath turns an outline into path commands for the renderer.
func OutlinePath(outline curve.BezPath) []PathCommand {
	if len(outline) == 0 {
		return nil
	}
	path := make([]PathCommand, 0, len(outline))
	for _, el := range outline {
		switch el.Kind {
		case curve.MoveToKind:
			path = append(path, PathCommand{"M", el.P0.X, el.P0.Y})
		case curve.LineToKind:
			path = append(path, PathCommand{"L", el.P0.X, el.P0.Y})
		case curve.QuadToKind:
			path = append(path, PathCommand{"Q", el.P0.X, el.P0.Y, el.P1.X, el.P1.Y})
		case curve.CubicToKind:
			path = append(path, PathCommand{"C", el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y})
		case curve.ClosePathKind:
			path = append(path, PathCommand{"Z"})
		}
	}
	return path
}

// pressureRadii simulates pen pressure from the distance between
// consecutive points and returns the half width at each of them. Pressure
// starts at rest and drifts toward one for slow movement and toward zero for
// fast movement.
func pressureRadii(pts []curve.Point, size float64) []float64 {
	radii := make([]float64, len(pts))
	pressure := 0.5
	radii[0] = strokeRadius(size, pressure)
	for i := 1; i < len(pts); i++ {
		sp := min(1, pts[i].Distance(pts[i-1])/size)
		rp := min(1, 1-sp)
		pressure = min(1, pressure+(rp-pressure)*(sp*pressureRate))
		radii[i] = strokeRadius(size, pressure)
	}
	return radii
}

func strokeRadius(size, pressure float64) float64 {
	return max(size*(0.5-freehandThinning*(0.5-pressure)), 0.01)
}

// tangentAt returns the unit direction of travel at pts[i], taken across its
// neighbours. A point where the stroke doubles back falls back to the
// incoming segment.
func tangentAt(pts []curve.Point, i int) curve.Vec2 {
	prev, next := pts[max(i-1, 0)], pts[min(i+1, len(pts)-1)]
	d := next.Sub(prev)
	if d.Hypot2() == 0 && i > 0 {
		d = pts[i].Sub(pts[i-1])
	}
	return d.Normalize()
}

// spline continues path from side[0] with quadratic segments through the
// midpoints of side, ending on its last point.
func spline(path *curve.BezPath, side []curve.Point) {
	for i := 1; i < len(side)-1; i++ {
		path.QuadTo(side[i], side[i].Midpoint(side[i+1]))
	}
	path.LineTo(side[len(side)-1])
}

// roundCap continues path with a half turn about center, from the point at
// normal to the point opposite it, sweeping around the side the stroke
// travels toward.
func roundCap(path *curve.BezPath, center curve.Point, normal curve.Vec2, r float64) {
	arc := curve.Arc{
		Center:     center,
		Radii:      curve.Vec(r, r),
		StartAngle: normal.Angle(),
		SweepAngle: -math.Pi,
	}
	for el := range arc.PathElements(capTolerance) {
		if el.Kind == curve.MoveToKind {
			continue
		}
		path.Push(el)
	}
}
