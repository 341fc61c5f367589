package paving

import "testing"

var testPool = Pool{Length: 7000, Width: 3000}

var testCopingConfig = CopingConfig{
	TileAlong:  400,
	TileInward: 300,
	Grout:      5,
	MinCut:     200,
	SideRows:   1,
	EndRows:    1,
}

func TestPlanPoolCoping(t *testing.T) {
	plan := PlanPoolCoping(testPool, testCopingConfig)

	if !plan.Symmetry.SidesMirror || !plan.Symmetry.EndsMirror {
		t.Error("opposing sides must mirror by construction")
	}
	if !approxEqual(plan.LengthAxis.EdgeLength, 7000) {
		t.Errorf("length axis edge %v, want 7000", plan.LengthAxis.EdgeLength)
	}
	// The end bands wrap around the corners: width + 2·sideRows·tileInward.
	if !approxEqual(plan.WidthAxis.EdgeLength, 3600) {
		t.Errorf("width axis edge %v, want 3600", plan.WidthAxis.EdgeLength)
	}

	diff(t, EdgeTotals{Rows: 1, FullPavers: 16, PartialPavers: 2, Pavers: 18}, plan.Left)
	diff(t, plan.Left, plan.Right)
	diff(t, EdgeTotals{Rows: 1, FullPavers: 8, PartialPavers: 1, Pavers: 9}, plan.Shallow)
	diff(t, plan.Shallow, plan.Deep)

	if plan.Pavers != plan.Left.Pavers+plan.Right.Pavers+plan.Shallow.Pavers+plan.Deep.Pavers {
		t.Errorf("aggregate pavers %d do not match the edge totals", plan.Pavers)
	}
	if !plan.MeetsMinCut {
		t.Error("expected both axes to meet the minimum cut")
	}
}

func TestPlanPoolCopingMultiRow(t *testing.T) {
	cfg := testCopingConfig
	cfg.SideRows = 2
	cfg.EndRows = 3
	plan := PlanPoolCoping(testPool, cfg)
	if plan.Left.Pavers != 2*plan.LengthAxis.PaversTotal {
		t.Errorf("left pavers %d, want %d", plan.Left.Pavers, 2*plan.LengthAxis.PaversTotal)
	}
	if plan.Shallow.Pavers != 3*plan.WidthAxis.PaversTotal {
		t.Errorf("shallow pavers %d, want %d", plan.Shallow.Pavers, 3*plan.WidthAxis.PaversTotal)
	}
	// Wider wrap, since the side bands are now two rows deep.
	if !approxEqual(plan.WidthAxis.EdgeLength, 3000+2*2*300) {
		t.Errorf("width axis edge %v, want %v", plan.WidthAxis.EdgeLength, 3000+2*2*300.0)
	}
}

func TestCopingPaversRing(t *testing.T) {
	plan := PlanPoolCoping(testPool, testCopingConfig)
	pavers := CopingPavers(testPool, testCopingConfig, Pt(0, 0), plan)

	if len(pavers) != plan.Pavers {
		t.Fatalf("got %d pavers, want %d", len(pavers), plan.Pavers)
	}

	// No two pavers overlap.
	for i := range pavers {
		for j := i + 1; j < len(pavers); j++ {
			isect := pavers[i].Rect.Intersect(pavers[j].Rect)
			if !isect.IsEmpty() && isect.Area() > 1e-6 {
				t.Fatalf("pavers %d and %d overlap: %+v %+v", i, j, pavers[i].Rect, pavers[j].Rect)
			}
		}
	}

	// No paver intrudes into the waterline.
	water := NewRectFromOrigin(Pt(0, 0), Sz(testPool.Width, testPool.Length))
	for i, pv := range pavers {
		if isect := water.Intersect(pv.Rect); !isect.IsEmpty() && isect.Area() > 1e-6 {
			t.Fatalf("paver %d overlaps the waterline: %+v", i, pv.Rect)
		}
	}

	// The end bands cover the corner squares in front of the side bands.
	probe := Pt(-150, -150)
	covered := false
	for _, pv := range pavers {
		if pv.Rect.Contains(probe) {
			if pv.Edge != EdgeShallow {
				t.Errorf("corner probe covered by %v, want %v", pv.Edge, EdgeShallow)
			}
			covered = true
		}
	}
	if !covered {
		t.Error("corner square not covered by any paver")
	}

	// Each edge contributes its planned count.
	byEdge := map[PoolEdge]int{}
	for _, pv := range pavers {
		byEdge[pv.Edge]++
	}
	diff(t, map[PoolEdge]int{
		EdgeLeft:    plan.Left.Pavers,
		EdgeRight:   plan.Right.Pavers,
		EdgeShallow: plan.Shallow.Pavers,
		EdgeDeep:    plan.Deep.Pavers,
	}, byEdge)
}

func TestCopingPaversCutMetadata(t *testing.T) {
	plan := PlanPoolCoping(testPool, testCopingConfig)
	pavers := CopingPavers(testPool, testCopingConfig, Pt(0, 0), plan)
	partial := 0
	for _, pv := range pavers {
		if !pv.Partial {
			if pv.CutPercentage != 0 {
				t.Errorf("full paver carries cut percentage %v", pv.CutPercentage)
			}
			continue
		}
		partial++
		if pv.CutPercentage <= 0 || pv.CutPercentage >= 100 {
			t.Errorf("partial paver cut percentage %v out of range", pv.CutPercentage)
		}
	}
	if partial != plan.PartialPavers {
		t.Errorf("got %d partial pavers, want %d", partial, plan.PartialPavers)
	}
}

func TestCountPavers(t *testing.T) {
	plan := PlanPoolCoping(testPool, testCopingConfig)
	pavers := CopingPavers(testPool, testCopingConfig, Pt(0, 0), plan)
	stats := CountPavers(pavers)
	diff(t, PaverStats{
		Full:    plan.FullPavers,
		Partial: plan.PartialPavers,
		Total:   plan.Pavers,
		Area:    stats.Area, // checked separately below
	}, stats)
	if stats.Area <= 0 {
		t.Errorf("non-positive paver area %v", stats.Area)
	}
}
