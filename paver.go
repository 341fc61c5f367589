package paving

import "gonum.org/v1/gonum/floats"

// PoolEdge identifies which coping side a paver belongs to. Left and right
// run along the pool's length; shallow and deep are the two ends.
type PoolEdge int

const (
	EdgeNone PoolEdge = iota
	EdgeLeft
	EdgeRight
	EdgeShallow
	EdgeDeep
)

func (e PoolEdge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeShallow:
		return "shallow"
	case EdgeDeep:
		return "deep"
	default:
		return "none"
	}
}

// PaverRect is one tile placed in world coordinates, ready for rendering and
// bill-of-materials aggregation.
type PaverRect struct {
	Rect
	Partial bool
	// CutPercentage is how much of a full tile was removed, 0–100. It is
	// meaningful only when Partial is true. Boundary cut rows deeper than
	// one tile measure it against every tile the depth consumes.
	CutPercentage float64

	// Edge, Row, and BoundaryCutRow place the tile within a coping band or
	// extension; they are zero-valued for free-form area tiles.
	Edge           PoolEdge
	Row            int
	BoundaryCutRow bool
}

// PaverStats aggregates a tile set for bill-of-materials display.
type PaverStats struct {
	Full    int
	Partial int
	Total   int
	Area    float64
}

// CountPavers tallies full, partial, and total tiles and their combined area.
func CountPavers(pavers []PaverRect) PaverStats {
	stats := PaverStats{Total: len(pavers)}
	areas := make([]float64, len(pavers))
	for i, pv := range pavers {
		areas[i] = pv.Area()
		if pv.Partial {
			stats.Partial++
		} else {
			stats.Full++
		}
	}
	stats.Area = floats.Sum(areas)
	return stats
}
