package paving

// Pool is the catalogue entry a coping plan is computed for. Length runs
// along the pool's long axis, width across it; the waterline outline is
// carried for free-form callers but the rectangular planner uses only the
// dimensions.
type Pool struct {
	Waterline Ring
	Length    float64
	Width     float64
}

// CopingConfig is the tile configuration for a coping band. TileAlong runs
// parallel to the edge being tiled, TileInward perpendicular to it.
type CopingConfig struct {
	TileAlong  float64
	TileInward float64
	Grout      float64
	MinCut     float64
	// SideRows and EndRows are how many rows deep the side and end bands
	// are laid.
	SideRows int
	EndRows  int
}

// EdgeTotals is one coping side's tile count: an axis plan scaled by the
// side's row count.
type EdgeTotals struct {
	Rows          int
	FullPavers    int
	PartialPavers int
	Pavers        int
}

func scaleAxis(plan AxisPlan, rows int) EdgeTotals {
	return EdgeTotals{
		Rows:          rows,
		FullPavers:    plan.FullPaversTotal * rows,
		PartialPavers: plan.PartialPaversTotal * rows,
		Pavers:        plan.PaversTotal * rows,
	}
}

// CopingSymmetry reports which opposing coping sides mirror each other. Both
// flags are true by construction: each pair of opposing sides is scaled from
// a single axis plan.
type CopingSymmetry struct {
	SidesMirror bool
	EndsMirror  bool
}

// CopingPlan is the four-sided coping layout for a rectangular pool.
type CopingPlan struct {
	// LengthAxis is the plan shared by the left and right sides; WidthAxis
	// is shared by the shallow and deep ends and covers the corner
	// wrap-around.
	LengthAxis AxisPlan
	WidthAxis  AxisPlan

	Left    EdgeTotals
	Right   EdgeTotals
	Shallow EdgeTotals
	Deep    EdgeTotals

	FullPavers    int
	PartialPavers int
	Pavers        int

	Symmetry CopingSymmetry
	// MeetsMinCut is false when either axis needed an undersized cut.
	MeetsMinCut bool
}

// PlanPoolCoping plans the coping ring around a rectangular pool. The end
// bands wrap around the corners in front of the side bands, so their
// effective edge length grows by the side bands' depth on both ends.
func PlanPoolCoping(pool Pool, cfg CopingConfig) CopingPlan {
	lengthAxis := PlanAxis(pool.Length, cfg.TileAlong, cfg.Grout, cfg.MinCut)
	wrap := 2 * float64(cfg.SideRows) * cfg.TileInward
	widthAxis := PlanAxis(pool.Width+wrap, cfg.TileAlong, cfg.Grout, cfg.MinCut)

	plan := CopingPlan{
		LengthAxis: lengthAxis,
		WidthAxis:  widthAxis,
		Left:       scaleAxis(lengthAxis, cfg.SideRows),
		Right:      scaleAxis(lengthAxis, cfg.SideRows),
		Shallow:    scaleAxis(widthAxis, cfg.EndRows),
		Deep:       scaleAxis(widthAxis, cfg.EndRows),
		Symmetry:   CopingSymmetry{SidesMirror: true, EndsMirror: true},
	}
	for _, e := range []EdgeTotals{plan.Left, plan.Right, plan.Shallow, plan.Deep} {
		plan.FullPavers += e.FullPavers
		plan.PartialPavers += e.PartialPavers
		plan.Pavers += e.Pavers
	}
	plan.MeetsMinCut = lengthAxis.MeetsMinCut && widthAxis.MeetsMinCut
	return plan
}

// CopingPavers projects a coping plan into world-space paver rectangles. The
// pool's waterline rectangle has its top-left corner at origin, width along
// X and length along Y; rows stack outward from the waterline. The end bands
// span the extended width so the four bands meet corner to corner with no
// gap and no overlap.
func CopingPavers(pool Pool, cfg CopingConfig, origin Point, plan CopingPlan) []PaverRect {
	water := NewRectFromOrigin(origin, Sz(pool.Width, pool.Length))
	rowPitch := cfg.TileInward + cfg.Grout
	wrap := float64(cfg.SideRows) * cfg.TileInward

	var out []PaverRect
	sideIvs := plan.LengthAxis.Intervals()
	endIvs := plan.WidthAxis.Intervals()

	// Side bands run exactly the pool length.
	for row := range cfg.SideRows {
		off := float64(row) * rowPitch
		for _, iv := range sideIvs {
			out = append(out,
				edgePaver(EdgeLeft, row, iv, Rect{
					X0: water.X0 - off - cfg.TileInward,
					Y0: water.Y0 + iv.Offset,
					X1: water.X0 - off,
					Y1: water.Y0 + iv.Offset + iv.Length,
				}, cfg.TileAlong),
				edgePaver(EdgeRight, row, iv, Rect{
					X0: water.X1 + off,
					Y0: water.Y0 + iv.Offset,
					X1: water.X1 + off + cfg.TileInward,
					Y1: water.Y0 + iv.Offset + iv.Length,
				}, cfg.TileAlong),
			)
		}
	}

	// End bands cover the corner squares in front of the side bands.
	endStart := water.X0 - wrap
	for row := range cfg.EndRows {
		off := float64(row) * rowPitch
		for _, iv := range endIvs {
			out = append(out,
				edgePaver(EdgeShallow, row, iv, Rect{
					X0: endStart + iv.Offset,
					Y0: water.Y0 - off - cfg.TileInward,
					X1: endStart + iv.Offset + iv.Length,
					Y1: water.Y0 - off,
				}, cfg.TileAlong),
				edgePaver(EdgeDeep, row, iv, Rect{
					X0: endStart + iv.Offset,
					Y0: water.Y1 + off,
					X1: endStart + iv.Offset + iv.Length,
					Y1: water.Y1 + off + cfg.TileInward,
				}, cfg.TileAlong),
			)
		}
	}
	return out
}

func edgePaver(edge PoolEdge, row int, iv TileInterval, r Rect, tileAlong float64) PaverRect {
	pv := PaverRect{
		Rect:    r,
		Partial: iv.Partial,
		Edge:    edge,
		Row:     row,
	}
	if iv.Partial && tileAlong > 0 {
		pv.CutPercentage = (1 - iv.Length/tileAlong) * 100
	}
	return pv
}
