package paving

import "testing"

// testExtensionConfig extends the deep end of a pool whose edge lays out to
// ten full tiles per row with a single perfect centre joint.
var testExtensionConfig = ExtensionConfig{
	Edge:      EdgeDeep,
	Face:      Ln(0, 0, 4045, 0),
	Outward:   Vec(0, 1),
	RowDepth:  300,
	TileAlong: 400,
	Grout:     5,
	MinCut:    200,
	ExcludeID: "pool-1",
}

func testScene() []Component {
	return []Component{
		{
			ID:       "wall-1",
			Kind:     ComponentLinear,
			Position: Pt(-100, 1000),
			Length:   5000,
		},
	}
}

func TestEdgeDragFullRows(t *testing.T) {
	var ext EdgeExtension
	s := StartEdgeDrag(&ext, testExtensionConfig)
	preview := s.Move(700, testScene())
	diff(t, ExtensionPreview{FullRows: 2, MaxDistance: 700}, preview)

	added := s.Commit()
	if len(added) != 20 {
		t.Fatalf("got %d pavers, want 20 (2 rows of 10)", len(added))
	}
	if ext.CurrentRows != 2 {
		t.Errorf("got %d committed rows, want 2", ext.CurrentRows)
	}
	diff(t, added, ext.Pavers)

	// Row 0 hugs the face; row 1 sits one row pitch further out.
	diff(t, Rect{0, 0, 400, 300}, added[0].Rect)
	diff(t, Rect{0, 305, 400, 605}, added[10].Rect)
	for i, pv := range added {
		if pv.Partial || pv.BoundaryCutRow {
			t.Errorf("paver %d unexpectedly partial: %+v", i, pv)
		}
		if pv.Edge != EdgeDeep {
			t.Errorf("paver %d tagged %v, want %v", i, pv.Edge, EdgeDeep)
		}
	}
}

func TestEdgeDragBoundaryCutRow(t *testing.T) {
	ext := EdgeExtension{CurrentRows: 2}
	s := StartEdgeDrag(&ext, testExtensionConfig)

	// The wall sits 390 beyond the current outer face (2 rows at 305 pitch
	// leave 1000−610); one more full row would leave an 85 sliver, so the
	// row is given back and the whole remainder becomes one deep cut row.
	preview := s.Move(2000, testScene())
	want := ExtensionPreview{
		FullRows:        0,
		CutRowDepth:     385,
		ReachedBoundary: true,
		BoundaryID:      "wall-1",
		MaxDistance:     390,
	}
	diff(t, want, preview)

	added := s.Commit()
	if len(added) != 10 {
		t.Fatalf("got %d pavers, want 10", len(added))
	}
	for i, pv := range added {
		if !pv.BoundaryCutRow || !pv.Partial {
			t.Errorf("paver %d not marked as boundary cut row: %+v", i, pv)
		}
		if !approxEqual(pv.Y0, 610) || !approxEqual(pv.Y1, 995) {
			t.Errorf("paver %d spans y %v..%v, want 610..995", i, pv.Y0, pv.Y1)
		}
		// The 385 depth consumes two 300 tiles per column, so the waste is
		// measured against 600 of material.
		if want := (1 - 385.0/600) * 100; !approxEqual(pv.CutPercentage, want) {
			t.Errorf("paver %d cut percentage %v, want %v", i, pv.CutPercentage, want)
		}
	}
	if !ext.ReachedBoundary || ext.BoundaryID != "wall-1" {
		t.Errorf("edge state did not record the boundary: %+v", ext)
	}
	if !approxEqual(ext.CutRowDepth, 385) {
		t.Errorf("got cut row depth %v, want 385", ext.CutRowDepth)
	}

	// A finished edge ignores further drags.
	s2 := StartEdgeDrag(&ext, testExtensionConfig)
	diff(t, ExtensionPreview{}, s2.Move(5000, testScene()))
	if got := s2.Commit(); got != nil {
		t.Errorf("got %d pavers after the boundary was reached, want none", len(got))
	}
}

func TestEdgeDragClampedRemainder(t *testing.T) {
	var ext EdgeExtension
	s := StartEdgeDrag(&ext, testExtensionConfig)
	// 920 buys 3 full rows (915) with a 5 remainder; no boundary, so the
	// remainder is simply dropped.
	preview := s.Move(920, testScene())
	diff(t, ExtensionPreview{FullRows: 3, MaxDistance: 920}, preview)
}

func TestEdgeDragCancel(t *testing.T) {
	ext := EdgeExtension{CurrentRows: 1}
	s := StartEdgeDrag(&ext, testExtensionConfig)
	s.Commit()
	before := ext.snapshot()

	s2 := StartEdgeDrag(&ext, testExtensionConfig)
	s2.Move(700, testScene())
	s2.Cancel()
	diff(t, before, ext)

	// A cancelled session is spent.
	if got := s2.Commit(); got != nil {
		t.Errorf("commit after cancel returned %d pavers", len(got))
	}
	diff(t, before, ext)
}

func TestEdgeDragNothingToCommit(t *testing.T) {
	var ext EdgeExtension
	s := StartEdgeDrag(&ext, testExtensionConfig)
	preview := s.Move(100, testScene())
	diff(t, ExtensionPreview{MaxDistance: 100}, preview)
	if got := s.Commit(); got != nil {
		t.Errorf("got %d pavers for a sub-row drag, want none", len(got))
	}
	diff(t, EdgeExtension{}, ext)
}
