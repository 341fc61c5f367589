package paving

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// miterFloor damps vertex displacement near ~180° turns; without it the
// miter length 1/cos(turn/2) spikes toward infinity.
const miterFloor = 0.3

// perEdgeEps is the distance difference below which two adjacent per-edge
// offsets are treated as uniform and resolved by the simple bisector.
const perEdgeEps = 0.01

// Expand returns the ring displaced outward by distance at every vertex,
// along the bisector of the two adjacent edge outward-normals. Winding order
// is auto-detected, so callers may pass clockwise or counter-clockwise rings
// interchangeably. Negative distances shrink the ring.
//
// Degenerate rings are returned unchanged.
func (rg Ring) Expand(distance float64) Ring {
	n := rg.Len()
	if n < 3 || distance == 0 {
		return rg
	}
	cw := rg.IsClockwise()
	out := make([]Point, n)
	for i := range n {
		out[i] = offsetVertex(rg.At(i-1), rg.At(i), rg.At(i+1), cw, distance)
	}
	return Ring{pts: out}
}

// ExpandPerEdge is the asymmetric variant of Expand: edge i (from vertex i
// to vertex i+1) is pushed out by distances[i]. Each vertex is resolved as
// the crossing of its two offset edge lines, which keeps edges straight even
// when adjacent distances differ (a pool with a wider coping on one end).
// When the two adjacent distances are effectively equal, or the offset lines
// are parallel, the vertex falls back to the simple bisector.
//
// A short distances slice is extended with its final entry; an empty one
// returns the ring unchanged.
func (rg Ring) ExpandPerEdge(distances []float64) Ring {
	n := rg.Len()
	if n < 3 || len(distances) == 0 {
		return rg
	}
	distAt := func(i int) float64 {
		return distances[min(((i%n)+n)%n, len(distances)-1)]
	}
	cw := rg.IsClockwise()
	out := make([]Point, n)
	for i := range n {
		prev, cur, next := rg.At(i-1), rg.At(i), rg.At(i+1)
		dPrev, dNext := distAt(i-1), distAt(i)
		if math.Abs(dPrev-dNext) < perEdgeEps {
			out[i] = offsetVertex(prev, cur, next, cw, (dPrev+dNext)/2)
			continue
		}
		d1 := cur.Sub(prev)
		d2 := next.Sub(cur)
		if d1.Hypot() < coincidentEps || d2.Hypot() < coincidentEps {
			out[i] = cur
			continue
		}
		n1 := outwardNormal(d1.Normalize(), cw)
		n2 := outwardNormal(d2.Normalize(), cw)
		// The vertex lies on both edges, so translating it by each edge's
		// offset yields a point on each offset line.
		p1 := cur.Translate(n1.Mul(dPrev))
		p2 := cur.Translate(n2.Mul(dNext))
		a := mat.NewDense(2, 2, []float64{d1.X, -d2.X, d1.Y, -d2.Y})
		b := mat.NewVecDense(2, []float64{p2.X - p1.X, p2.Y - p1.Y})
		var x mat.VecDense
		if err := x.SolveVec(a, b); err != nil {
			// Parallel offset lines; the bisector is as good as it gets.
			out[i] = offsetVertex(prev, cur, next, cw, (dPrev+dNext)/2)
			continue
		}
		out[i] = p1.Translate(d1.Mul(x.AtVec(0)))
	}
	return Ring{pts: out}
}

// offsetVertex displaces cur along the bisector of its adjacent edges'
// outward normals, damping the miter near sharp turns.
func offsetVertex(prev, cur, next Point, clockwise bool, distance float64) Point {
	d1 := cur.Sub(prev)
	d2 := next.Sub(cur)
	if d1.Hypot() < coincidentEps || d2.Hypot() < coincidentEps {
		return cur
	}
	n1 := outwardNormal(d1.Normalize(), clockwise)
	n2 := outwardNormal(d2.Normalize(), clockwise)
	bis := n1.Add(n2)
	if bis.Hypot() < parallelEps {
		// Full U-turn; push along the incoming edge's normal.
		return cur.Translate(n1.Mul(distance))
	}
	bis = bis.Normalize()
	scale := max(miterFloor, math.Abs(bis.Dot(n1)))
	return cur.Translate(bis.Mul(distance / scale))
}

// outwardNormal returns the unit normal pointing away from the ring
// interior, which flips with winding order (Y-down).
func outwardNormal(dir Vec2, clockwise bool) Vec2 {
	if clockwise {
		return dir.Turn90().Negate()
	}
	return dir.Turn90()
}
