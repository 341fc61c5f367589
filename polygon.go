package paving

import (
	"iter"
	"math"
)

// Ring is a simple polygon, stored as an unclosed vertex sequence. The
// constructor tolerates input that duplicates the first vertex at the end, so
// both open and closed conventions round-trip through it. A Ring is an
// immutable value; all methods return new values.
type Ring struct {
	pts []Point
}

// coincidentEps merges vertices closer than this, covering rounding noise in
// hand-drawn outlines.
const coincidentEps = 1e-7

// NewRing returns a ring over the given vertices. A final vertex that
// duplicates the first is dropped.
func NewRing(pts ...Point) Ring {
	if n := len(pts); n > 1 && pts[0].Distance(pts[n-1]) < coincidentEps {
		pts = pts[:n-1]
	}
	out := make([]Point, len(pts))
	copy(out, pts)
	return Ring{pts: out}
}

// Len returns the number of vertices, not counting any closing duplicate.
func (rg Ring) Len() int {
	return len(rg.pts)
}

// At returns the i-th vertex. The index wraps around.
func (rg Ring) At(i int) Point {
	return rg.pts[((i%len(rg.pts))+len(rg.pts))%len(rg.pts)]
}

// Points returns a copy of the unclosed vertex sequence.
func (rg Ring) Points() []Point {
	out := make([]Point, len(rg.pts))
	copy(out, rg.pts)
	return out
}

// Closed returns the vertex sequence with the first vertex duplicated at the
// end, the convention expected at serialization boundaries.
func (rg Ring) Closed() []Point {
	if len(rg.pts) == 0 {
		return nil
	}
	out := make([]Point, 0, len(rg.pts)+1)
	out = append(out, rg.pts...)
	out = append(out, rg.pts[0])
	return out
}

// IsDegenerate reports whether the ring has fewer than 3 vertices and
// therefore bounds no area.
func (rg Ring) IsDegenerate() bool {
	return len(rg.pts) < 3
}

// Edges yields the ring's edges in order, including the closing edge.
func (rg Ring) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		n := len(rg.pts)
		if n < 2 {
			return
		}
		for i := range n {
			if !yield(Line{rg.pts[i], rg.pts[(i+1)%n]}) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing every vertex. The
// zero Rect is returned for an empty ring.
func (rg Ring) BoundingBox() Rect {
	if len(rg.pts) == 0 {
		return Rect{}
	}
	bb := NewRectFromPoints(rg.pts[0], rg.pts[0])
	for _, pt := range rg.pts[1:] {
		bb = bb.UnionPoint(pt)
	}
	return bb
}

// SignedArea returns the area via the shoelace formula. In a Y-down
// coordinate system the sign is negative for clockwise winding.
func (rg Ring) SignedArea() float64 {
	n := len(rg.pts)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := range n {
		j := (i + 1) % n
		area += rg.pts[i].X * rg.pts[j].Y
		area -= rg.pts[j].X * rg.pts[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the ring.
func (rg Ring) Area() float64 {
	return math.Abs(rg.SignedArea())
}

// IsClockwise reports the winding order in a Y-down coordinate system, via
// the signed trapezoid sum Σ(x[i+1]−x[i])·(y[i+1]+y[i]).
func (rg Ring) IsClockwise() bool {
	n := len(rg.pts)
	sum := 0.0
	for i := range n {
		j := (i + 1) % n
		sum += (rg.pts[j].X - rg.pts[i].X) * (rg.pts[j].Y + rg.pts[i].Y)
	}
	return sum < 0
}

// Contains reports whether pt lies inside the ring, using even-odd ray
// casting. Points on the outline may report either side.
func (rg Ring) Contains(pt Point) bool {
	n := len(rg.pts)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := range n {
		vi := rg.pts[i]
		vj := rg.pts[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// DistanceToOutline returns the distance from pt to the nearest point on the
// ring's outline.
func (rg Ring) DistanceToOutline(pt Point) float64 {
	best := math.Inf(1)
	for edge := range rg.Edges() {
		if d := edge.DistanceToPoint(pt); d < best {
			best = d
		}
	}
	return best
}

// Translate returns the ring moved by v.
func (rg Ring) Translate(v Vec2) Ring {
	out := make([]Point, len(rg.pts))
	for i, pt := range rg.pts {
		out[i] = pt.Translate(v)
	}
	return Ring{pts: out}
}

// Transform returns the ring with every vertex transformed by aff.
func (rg Ring) Transform(aff Affine) Ring {
	out := make([]Point, len(rg.pts))
	for i, pt := range rg.pts {
		out[i] = pt.Transform(aff)
	}
	return Ring{pts: out}
}

// Reverse returns the ring with the opposite winding order.
func (rg Ring) Reverse() Ring {
	out := make([]Point, len(rg.pts))
	for i, pt := range rg.pts {
		out[len(out)-1-i] = pt
	}
	return Ring{pts: out}
}
