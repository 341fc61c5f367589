package paving

import (
	"math"
	"slices"
)

// ExcludeZone is a region no tile may be placed in, owned by another scene
// component (a second pool, a house footprint).
type ExcludeZone struct {
	Outline Ring
	OwnerID string
}

// Orientation selects how the tile's along×inward dimensions map onto the
// grid axes.
type Orientation int

const (
	// OrientationDefault lays the tile's width along X.
	OrientationDefault Orientation = iota
	// OrientationRotated lays the tile a quarter turn around.
	OrientationRotated
)

// AreaFill configures FillAreaFromOrigin.
type AreaFill struct {
	Tile        Size
	Orientation Orientation
	Grout       float64
	// ShowEdgeTiles includes boundary/exclude cut tiles; full tiles are
	// always included.
	ShowEdgeTiles bool
	// Origin anchors the grid phase. When nil the boundary's bounding-box
	// minimum is used; persistent callers pass a TilingFrame origin so
	// shape edits never re-lay existing tiles.
	Origin *Point
	// SeamsX and SeamsY are explicit extra grid coordinates, used to
	// phase-align with a neighbouring tiled region. Cells they split are
	// emitted as partial tiles.
	SeamsX []float64
	SeamsY []float64
	Exclude []ExcludeZone
}

const (
	// seamMergeEps collapses grid lines and seams that coincide.
	seamMergeEps = 1e-6
	// seamAlignEps reclassifies cells whose corners already sit on a
	// neighbouring tiling's joint as full, avoiding slivers at aligned
	// seams.
	seamAlignEps = 2.0
)

// FillAreaFromOrigin produces every grid cell whose body overlaps the
// boundary, phase-aligned to the configured origin.
//
// The result is deterministic and phase-stable: identical inputs yield
// identical output, and a boundary translated by exactly one grid pitch
// (origin fixed) yields the same tile set translated by that pitch. The
// interactive editor relies on tiles never jittering while a boundary is
// dragged.
func FillAreaFromOrigin(boundary Ring, cfg AreaFill) []PaverRect {
	if boundary.IsDegenerate() {
		return nil
	}
	tile := cfg.Tile
	if cfg.Orientation == OrientationRotated {
		tile = tile.Swap()
	}
	pitchX := tile.Width + cfg.Grout
	pitchY := tile.Height + cfg.Grout
	if pitchX <= 0 || pitchY <= 0 {
		return nil
	}

	bb := boundary.BoundingBox()
	origin := bb.Origin()
	if cfg.Origin != nil {
		origin = *cfg.Origin
	}
	xs := gridLines(origin.X, bb.X0, bb.X1, pitchX, cfg.SeamsX)
	ys := gridLines(origin.Y, bb.Y0, bb.Y1, pitchY, cfg.SeamsY)

	var out []PaverRect
	for i := 0; i < len(xs)-1; i++ {
		bodyW := min(tile.Width, xs[i+1]-xs[i]-cfg.Grout)
		if bodyW <= seamMergeEps {
			continue
		}
		for j := 0; j < len(ys)-1; j++ {
			bodyH := min(tile.Height, ys[j+1]-ys[j]-cfg.Grout)
			if bodyH <= seamMergeEps {
				continue
			}
			cell := Rect{xs[i], ys[j], xs[i] + bodyW, ys[j] + bodyH}
			if pv, ok := classifyCell(cell, tile, boundary, cfg); ok {
				out = append(out, pv)
			}
		}
	}
	return out
}

// gridLines builds the phase-locked grid coordinates spanning one extra step
// beyond [lo, hi] on each side, merged with explicit seam coordinates. Lines
// are computed by index multiplication so the phase carries no accumulation
// drift.
func gridLines(origin, lo, hi, pitch float64, seams []float64) []float64 {
	first := int(math.Floor((lo-origin)/pitch)) - 1
	last := int(math.Ceil((hi-origin)/pitch)) + 1
	lines := make([]float64, 0, last-first+1+len(seams))
	for k := first; k <= last; k++ {
		lines = append(lines, origin+float64(k)*pitch)
	}
	for _, s := range seams {
		if s > lines[0] && s < lines[len(lines)-1] {
			lines = append(lines, s)
		}
	}
	slices.Sort(lines)
	out := lines[:1]
	for _, v := range lines[1:] {
		if v-out[len(out)-1] > seamMergeEps {
			out = append(out, v)
		}
	}
	return out
}

// classifyCell tests a cell body's 4 corners plus centroid against the
// boundary and exclude zones and decides full / edge / dropped.
func classifyCell(cell Rect, tile Size, boundary Ring, cfg AreaFill) (PaverRect, bool) {
	corners := cell.Corners()
	probes := [5]Point{corners[0], corners[1], corners[2], corners[3], cell.Center()}

	var inside, excluded [5]bool
	insideCount := 0
	insideCorners := 0
	for k, pt := range probes {
		if boundary.Contains(pt) {
			inside[k] = true
			insideCount++
			if k < 4 {
				insideCorners++
			}
		}
	}
	if insideCount == 0 {
		return PaverRect{}, false
	}

	for _, zone := range cfg.Exclude {
		if zone.Outline.IsDegenerate() {
			continue
		}
		var inZone [5]bool
		inZoneCount := 0
		alignedCorners := 0
		zoneCorners := 0
		for k, pt := range probes {
			if !zone.Outline.Contains(pt) {
				continue
			}
			inZone[k] = true
			inZoneCount++
			if k < 4 {
				zoneCorners++
				if zone.Outline.DistanceToOutline(pt) <= seamAlignEps {
					alignedCorners++
				}
			}
		}
		if inZoneCount == len(probes) {
			// Effectively covered by the zone; no tile here.
			return PaverRect{}, false
		}
		if zoneCorners > 0 && alignedCorners == zoneCorners {
			// Every overlapping corner sits on the zone's outline: the
			// cell is already phase-aligned with the neighbour's tiling.
			continue
		}
		for k := range probes {
			excluded[k] = excluded[k] || inZone[k]
		}
	}

	survivors := 0
	excludedCorners := 0
	for k := range probes {
		if inside[k] && !excluded[k] {
			survivors++
		}
		if k < 4 && excluded[k] {
			excludedCorners++
		}
	}
	if survivors == 0 {
		// The zones claim everything the boundary let in.
		return PaverRect{}, false
	}

	seamSplit := bodyBelow(cell.Width(), tile.Width) || bodyBelow(cell.Height(), tile.Height)
	pv := PaverRect{Rect: cell}
	if insideCount == len(probes) && excludedCorners == 0 && !excluded[4] {
		if !seamSplit {
			return pv, true
		}
		pv.Partial = true
		pv.CutPercentage = (1 - cell.Area()/tile.Area()) * 100
		return pv, true
	}

	if !cfg.ShowEdgeTiles {
		return PaverRect{}, false
	}
	pv.Partial = true
	cut := float64(4-insideCorners+excludedCorners) / 4
	if excluded[4] {
		// A zone overlapping only the centroid still removes material.
		cut = max(cut, 0.25)
	}
	pv.CutPercentage = 100 * min(1, cut)
	return pv, true
}

func bodyBelow(body, full float64) bool {
	return body < full-seamMergeEps
}
