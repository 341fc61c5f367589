package paving

import "math"

// rayEps rejects hits at the ray origin itself, so a ray cast from a face
// never reports the face it started on.
const rayEps = 1e-9

// BoundaryHit is the nearest forward intersection found by
// FindNearestBoundary. It is transient: valid only against the component
// snapshot it was computed from, so callers re-query after any component
// moves.
type BoundaryHit struct {
	ComponentID  string
	Distance     float64
	Intersection Point
	Segment      Line
}

// FindNearestBoundary casts a half-line from origin along dir and returns
// the nearest forward intersection among the segments contributed by every
// component except the one identified by excludeID. The second return value
// is false when no segment lies ahead of the ray.
func FindNearestBoundary(origin Point, dir Vec2, components []Component, excludeID string) (BoundaryHit, bool) {
	if dir.Hypot() < parallelEps {
		return BoundaryHit{}, false
	}
	dir = dir.Normalize()

	best := BoundaryHit{Distance: math.Inf(1)}
	found := false
	for _, c := range components {
		if c.ID == excludeID {
			continue
		}
		for seg := range c.Segments() {
			t, pt, ok := raySegment(origin, dir, seg)
			if !ok || t >= best.Distance {
				continue
			}
			best = BoundaryHit{
				ComponentID:  c.ID,
				Distance:     t,
				Intersection: pt,
				Segment:      seg,
			}
			found = true
		}
	}
	if !found {
		return BoundaryHit{}, false
	}
	return best, true
}

// raySegment intersects the half-line origin + t·dir with seg, accepting
// t ≥ 0 (past the origin) and u ∈ [0, 1] (within the segment). dir must be a
// unit vector, so t is the hit distance. Near-parallel pairs report no
// intersection.
func raySegment(origin Point, dir Vec2, seg Line) (float64, Point, bool) {
	pt, ok := Line{origin, origin.Translate(dir)}.CrossingPoint(seg)
	if !ok {
		return 0, Point{}, false
	}
	t := pt.Sub(origin).Dot(dir)
	sd := seg.Direction()
	u := pt.Sub(seg.P0).Dot(sd) / sd.Hypot2()
	if t < rayEps || u < -rayEps || u > 1+rayEps {
		return 0, Point{}, false
	}
	return t, pt, true
}
