package paving

// Rect is an axis-aligned rectangle described by its minimum and maximum
// corners.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1,
// ensuring that width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle with the given size, extending to the
// right and down from the origin.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

// Abs returns a new rectangle with the same extents as r, but ensuring that
// width and height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Origin() Point {
	return Point{
		X: r.X0,
		Y: r.Y0,
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty reports whether the rectangle covers zero area.
func (r Rect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// ContainsRect reports whether r contains o entirely.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X0 >= r.X0 &&
		o.Y0 >= r.Y0 &&
		o.X1 <= r.X1 &&
		o.Y1 <= r.Y1
}

// UnionPoint computes the union with one point. A succession of UnionPoint
// operations on a series of points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Intersect returns the largest rectangle covered by both r and o. If the
// rectangles are disjoint the result is empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
}

// Inflate returns a rectangle expanded by dx on the left and right and by dy
// on the top and bottom. Negative values shrink the rectangle.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X0: r.X0 - dx,
		Y0: r.Y0 - dy,
		X1: r.X1 + dx,
		Y1: r.Y1 + dy,
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

// Corners returns the rectangle's four corners in ring order, starting at the
// origin corner.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}
