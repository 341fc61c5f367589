package paving

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CentreMode describes how an axis plan absorbs the leftover length at the
// middle of an edge.
type CentreMode int

const (
	// CentrePerfect means full tiles meet at a single grout joint.
	CentrePerfect CentreMode = iota
	// CentreSingleCut means one cut tile sits at the edge midpoint.
	CentreSingleCut
	// CentreDoubleCut means two near-equal cut tiles straddle the midpoint.
	CentreDoubleCut
)

func (m CentreMode) String() string {
	switch m {
	case CentrePerfect:
		return "perfect"
	case CentreSingleCut:
		return "single_cut"
	case CentreDoubleCut:
		return "double_cut"
	default:
		return "unknown"
	}
}

// axisEps is the tolerance, in caller units (nominally 1mm), within which a
// centre gap counts as exactly one grout joint.
const axisEps = 1.0

// AxisPlan is the symmetric corner-first tile layout for one straight edge.
// Full tiles are laid from both corners toward the centre at pitch
// TileAlong+Grout; whatever remains at the middle is resolved into zero, one,
// or two cut tiles.
type AxisPlan struct {
	EdgeLength float64
	TileAlong  float64
	Grout      float64
	MinCut     float64

	PaversPerCorner int
	CentreMode      CentreMode
	// CutSizes holds the centre cut tile lengths, 0–2 entries, left to
	// right. The entries always sum exactly to GapBeforeCuts minus the
	// centre joints.
	CutSizes     []float64
	CentreJoints int
	// RemovedFromEachSide counts full tiles given back from each corner run
	// so that a legal cut could fit.
	RemovedFromEachSide int
	// GapBeforeCuts is the residual centre gap the cuts were resolved from,
	// inclusive of its grout joints.
	GapBeforeCuts float64
	// MeetsMinCut is false when no layout without an undersized cut exists.
	// The plan is still returned; callers decide whether to warn or block.
	MeetsMinCut bool

	FullPaversTotal    int
	PartialPaversTotal int
	PaversTotal        int
}

// CutTotal returns the combined length of the centre cut tiles.
func (p AxisPlan) CutTotal() float64 {
	return floats.Sum(p.CutSizes)
}

// PlanAxis plans a symmetric corner-first layout for a straight edge of
// length edgeLength, using tiles of length tileAlong separated by grout.
// Cuts shorter than minCut are avoided by giving back one full tile per
// corner and retrying; when even that fails the plan is returned with
// MeetsMinCut set to false rather than rejected.
//
// Edges shorter than one tile per corner yield PaversPerCorner 0 and resolve
// the whole span through the centre-cut logic.
func PlanAxis(edgeLength, tileAlong, grout, minCut float64) AxisPlan {
	plan := AxisPlan{
		EdgeLength: edgeLength,
		TileAlong:  tileAlong,
		Grout:      grout,
		MinCut:     minCut,
	}
	pitch := tileAlong + grout
	if pitch <= 0 || edgeLength <= 0 {
		plan.CentreMode = CentrePerfect
		plan.CentreJoints = 1
		plan.MeetsMinCut = edgeLength <= 0
		return plan
	}

	p := int(math.Floor((edgeLength + grout) / (2 * pitch)))
	if p < 0 {
		p = 0
	}
	gap := edgeLength - 2*float64(p)*pitch + 2*grout

	// Give back one tile per corner until the centre gap can host a legal
	// cut, a perfect joint, or the corners are exhausted.
	removed := 0
	for p > 0 && gap < 2*grout+minCut && math.Abs(gap-grout) > axisEps {
		p--
		removed++
		gap += 2 * pitch
	}

	plan.PaversPerCorner = p
	plan.RemovedFromEachSide = removed
	plan.GapBeforeCuts = gap

	switch {
	case math.Abs(gap-grout) <= axisEps:
		plan.CentreMode = CentrePerfect
		plan.CentreJoints = 1
	case gap >= 3*grout+2*minCut:
		plan.CentreMode = CentreDoubleCut
		plan.CentreJoints = 3
		avail := gap - 3*grout
		left := math.Floor(avail / 2)
		plan.CutSizes = []float64{left, avail - left}
	case gap >= 2*grout+minCut:
		plan.CentreMode = CentreSingleCut
		plan.CentreJoints = 2
		plan.CutSizes = []float64{gap - 2*grout}
	default:
		plan.CentreMode = CentreSingleCut
		plan.CentreJoints = 2
		plan.CutSizes = []float64{max(0, gap-2*grout)}
	}

	plan.MeetsMinCut = true
	for _, cut := range plan.CutSizes {
		if cut < minCut-axisEps {
			plan.MeetsMinCut = false
		}
	}

	plan.FullPaversTotal = 2 * p
	plan.PartialPaversTotal = len(plan.CutSizes)
	plan.PaversTotal = plan.FullPaversTotal + plan.PartialPaversTotal
	return plan
}

// TileInterval is one tile's 1D placement along an edge, measured from the
// edge's start corner.
type TileInterval struct {
	Offset  float64
	Length  float64
	Partial bool
}

// Intervals projects the plan onto its edge, returning every tile's interval
// in ascending offset order: the left corner run, the centre cuts, then the
// right corner run. Zero-length fallback cuts are omitted so the result is
// always renderable.
func (p AxisPlan) Intervals() []TileInterval {
	pitch := p.TileAlong + p.Grout
	out := make([]TileInterval, 0, p.PaversTotal)
	for i := range p.PaversPerCorner {
		out = append(out, TileInterval{Offset: float64(i) * pitch, Length: p.TileAlong})
	}
	cut := float64(p.PaversPerCorner) * pitch
	for _, size := range p.CutSizes {
		if size <= 0 {
			continue
		}
		out = append(out, TileInterval{Offset: cut, Length: size, Partial: true})
		cut += size + p.Grout
	}
	for i := p.PaversPerCorner - 1; i >= 0; i-- {
		out = append(out, TileInterval{
			Offset: p.EdgeLength - p.TileAlong - float64(i)*pitch,
			Length: p.TileAlong,
		})
	}
	return out
}
