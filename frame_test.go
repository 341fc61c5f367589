package paving

import (
	"math"
	"testing"
)

func TestNewTilingFrame(t *testing.T) {
	bb := Rect{0, 0, 1000, 800}
	f := NewTilingFrame(bb, 205)
	if !f.Contains(bb, 205) {
		t.Fatalf("fresh frame %+v does not contain its bounding box", f)
	}
	if rem := math.Mod(f.Side, 205); !approxEqual(rem, 0) && !approxEqual(rem, 205) {
		t.Errorf("side %v is not a whole number of grid steps", f.Side)
	}
}

func TestTilingFrameEnsureNoChangeWhenContained(t *testing.T) {
	f := NewTilingFrame(Rect{0, 0, 1000, 800}, 205)
	diff(t, f, f.Ensure(Rect{100, 100, 900, 700}, 205))
	diff(t, f, f.Ensure(Rect{0, 0, 1000, 800}, 205))
}

func TestTilingFrameEnsureGrowsRight(t *testing.T) {
	f := NewTilingFrame(Rect{0, 0, 1000, 800}, 205)
	bb := Rect{0, 0, 1600, 800}
	g := f.Ensure(bb, 205)
	if g.X != f.X || g.Y != f.Y {
		t.Errorf("growing rightward moved the origin: %+v -> %+v", f, g)
	}
	if g.Side <= f.Side {
		t.Errorf("frame did not grow: %v -> %v", f.Side, g.Side)
	}
	if !g.Contains(bb, 205) {
		t.Errorf("grown frame %+v does not contain %+v", g, bb)
	}
}

func TestTilingFrameEnsureKeepsPhase(t *testing.T) {
	f := NewTilingFrame(Rect{0, 0, 1000, 800}, 205)
	bb := Rect{-500, -300, 1000, 800}
	g := f.Ensure(bb, 205)
	if !g.Contains(bb, 205) {
		t.Fatalf("grown frame %+v does not contain %+v", g, bb)
	}
	// The origin may only move by whole grid steps, so the anchored tile
	// grid keeps its absolute phase.
	if rem := math.Mod(f.X-g.X, 205); !approxEqual(rem, 0) {
		t.Errorf("origin X moved by a fractional step: %v -> %v", f.X, g.X)
	}
	if rem := math.Mod(f.Y-g.Y, 205); !approxEqual(rem, 0) {
		t.Errorf("origin Y moved by a fractional step: %v -> %v", f.Y, g.Y)
	}
}

func TestTilingFrameNeverShrinks(t *testing.T) {
	f := NewTilingFrame(Rect{0, 0, 1000, 800}, 205)
	g := f.Ensure(Rect{400, 400, 600, 500}, 205)
	diff(t, f, g)

	// Reset is the only way back to a tight frame.
	r := f.Reset(Rect{400, 400, 600, 500}, 205)
	if r.Side >= f.Side {
		t.Errorf("reset frame %+v is not tighter than %+v", r, f)
	}
}
