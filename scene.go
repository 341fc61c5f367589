package paving

import "iter"

// ComponentKind selects which geometry a scene component contributes to
// boundary queries.
type ComponentKind int

const (
	// ComponentLinear is a fence, wall, or drainage run: one segment of a
	// declared length.
	ComponentLinear ComponentKind = iota
	// ComponentPolygon is a generic boundary or house footprint: a closed
	// edge ring.
	ComponentPolygon
	// ComponentRect is a paver or paving area: its rotated bounding
	// rectangle's four edges.
	ComponentRect
)

// Component is a caller-supplied snapshot of one scene component. Position
// and Rotation place the component's local geometry in world coordinates;
// exactly one of Length, Outline, or Size is meaningful per kind.
type Component struct {
	ID       string
	Kind     ComponentKind
	Position Point
	// Rotation is in radians, clockwise in the Y-down plane.
	Rotation float64

	Length  float64
	Outline Ring
	Size    Size
}

// Segments yields the component's boundary edges in world coordinates.
func (c Component) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		switch c.Kind {
		case ComponentLinear:
			if c.Length <= 0 {
				return
			}
			end := c.Position.Translate(VecFromAngle(c.Rotation).Mul(c.Length))
			yield(Line{c.Position, end})
		case ComponentPolygon:
			aff := Rotate(c.Rotation).ThenTranslate(Vec2(c.Position))
			for edge := range c.Outline.Transform(aff).Edges() {
				if !yield(edge) {
					return
				}
			}
		case ComponentRect:
			r := NewRectFromOrigin(c.Position, c.Size)
			aff := RotateAbout(c.Rotation, c.Position)
			corners := r.Corners()
			for i := range corners {
				edge := Line{corners[i], corners[(i+1)%len(corners)]}.Transform(aff)
				if !yield(edge) {
					return
				}
			}
		}
	}
}
