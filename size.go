package paving

import "fmt"

// Size is a 2D extent, typically the along×inward dimensions of a tile.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

func (sz Size) Area() float64 {
	return sz.Width * sz.Height
}

// Swap returns the size with width and height exchanged, i.e. the same tile
// rotated a quarter turn.
func (sz Size) Swap() Size {
	return Size{
		Width:  sz.Height,
		Height: sz.Width,
	}
}
