package paving

import "math"

// Line represents a line segment.
type Line struct {
	P0 Point
	P1 Point
}

// Ln returns the segment from (x0, y0) to (x1, y1).
func Ln(x0, y0, x1, y1 float64) Line {
	return Line{Pt(x0, y0), Pt(x1, y1)}
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, with t=0 at P0 and t=1 at P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Direction returns the segment's direction, not normalized.
func (l Line) Direction() Vec2 {
	return l.P1.Sub(l.P0)
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. Parallel and degenerate lines report no crossing.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if math.Abs(pcd) < parallelEps {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// DistanceToPoint returns the euclidean distance from pt to the nearest point
// on the segment.
func (l Line) DistanceToPoint(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	dSquared := d.Hypot2()
	if dSquared == 0 {
		return pt.Distance(l.P0)
	}
	t := d.Dot(pt.Sub(l.P0)) / dSquared
	t = min(max(t, 0), 1)
	return pt.Distance(l.Eval(t))
}

// parallelEps is the magnitude below which a 2×2 intersection denominator is
// treated as parallel, yielding "no intersection" instead of a blow-up.
const parallelEps = 1e-10
