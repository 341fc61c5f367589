package paving

import "math"

// frameMarginSteps is the safety margin, in grid steps, a tiling frame keeps
// around the boundary it anchors.
const frameMarginSteps = 2

// TilingFrame is the persisted square anchoring a free-form area's tile-grid
// phase. It always contains the boundary's bounding box plus a margin of at
// least two grid steps, and once enlarged it is never shrunk except by
// Reset, so shape edits never shift previously visible tiles.
type TilingFrame struct {
	X    float64
	Y    float64
	Side float64
}

// NewTilingFrame returns a frame containing bb plus the safety margin, sized
// in whole grid steps.
func NewTilingFrame(bb Rect, step float64) TilingFrame {
	margin := frameMarginSteps * step
	side := max(bb.Width(), bb.Height()) + 2*margin
	side = math.Ceil(side/step) * step
	return TilingFrame{
		X:    bb.X0 - margin,
		Y:    bb.Y0 - margin,
		Side: side,
	}
}

// Rect returns the frame's extent.
func (f TilingFrame) Rect() Rect {
	return Rect{f.X, f.Y, f.X + f.Side, f.Y + f.Side}
}

// Origin returns the frame's top-left corner, the grid phase anchor passed
// to FillAreaFromOrigin.
func (f TilingFrame) Origin() Point {
	return Pt(f.X, f.Y)
}

// Contains reports whether the frame still covers bb with the required
// margin.
func (f TilingFrame) Contains(bb Rect, step float64) bool {
	return f.Rect().ContainsRect(bb.Inflate(frameMarginSteps*step, frameMarginSteps*step))
}

// Ensure grows the frame, if needed, to contain bb plus the safety margin.
// Growth is expand-only and phase-preserving: the origin moves only by whole
// multiples of step, so every tile laid against the old frame keeps its
// absolute position.
func (f TilingFrame) Ensure(bb Rect, step float64) TilingFrame {
	if step <= 0 || f.Contains(bb, step) {
		return f
	}
	need := bb.Inflate(frameMarginSteps*step, frameMarginSteps*step)
	out := f
	if need.X0 < out.X {
		shift := math.Ceil((out.X-need.X0)/step) * step
		out.X -= shift
		out.Side += shift
	}
	if need.Y0 < out.Y {
		shift := math.Ceil((out.Y-need.Y0)/step) * step
		out.Y -= shift
		out.Side += shift
	}
	grow := max(need.X1-(out.X+out.Side), need.Y1-(out.Y+out.Side))
	if grow > 0 {
		out.Side += math.Ceil(grow/step) * step
	}
	return out
}

// Reset discards the accumulated extent and re-anchors the frame on bb. The
// grid phase may change; callers use it only when the user explicitly
// re-lays an area.
func (f TilingFrame) Reset(bb Rect, step float64) TilingFrame {
	return NewTilingFrame(bb, step)
}
