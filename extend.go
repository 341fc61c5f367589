package paving

import "math"

// DefaultMinBoundaryCutRow is the smallest boundary cut row worth laying, in
// caller units (nominally 100mm).
const DefaultMinBoundaryCutRow = 100

// ExtensionConfig describes the coping edge a drag session extends.
type ExtensionConfig struct {
	// Edge tags emitted pavers; Face is the edge's outer face at zero rows,
	// in world coordinates, and Outward is the direction rows grow in.
	Edge    PoolEdge
	Face    Line
	Outward Vec2

	// RowDepth is the tile dimension perpendicular to the face; TileAlong,
	// Grout, and MinCut feed the per-row axis layout.
	RowDepth  float64
	TileAlong float64
	Grout     float64
	MinCut    float64

	// MinBoundaryCutRow is the smallest cut row emitted when the drag meets
	// a boundary; zero means DefaultMinBoundaryCutRow.
	MinBoundaryCutRow float64

	// ExcludeID is the component the edge belongs to, so rays never hit the
	// pool itself.
	ExcludeID string
}

// EdgeExtension is the persistent per-edge state bag: the rows committed so
// far and the pavers they produced. One instance exists per coping edge and
// is mutated only by committed drag sessions; at most one session may be in
// flight per edge.
type EdgeExtension struct {
	CurrentRows     int
	ReachedBoundary bool
	BoundaryID      string
	CutRowDepth     float64
	Pavers          []PaverRect
}

func (e *EdgeExtension) snapshot() EdgeExtension {
	cp := *e
	cp.Pavers = append([]PaverRect(nil), e.Pavers...)
	return cp
}

// ExtensionPreview is the non-committing result of a drag move: how many
// full rows the gesture currently buys, plus an optional boundary cut row.
type ExtensionPreview struct {
	FullRows        int
	CutRowDepth     float64
	ReachedBoundary bool
	BoundaryID      string
	// MaxDistance is the drag distance after clamping to the nearest
	// boundary.
	MaxDistance float64
}

// EdgeDragSession converts one interactive drag gesture into committed tile
// rows. Start snapshots the edge state; Move previews; Commit appends the
// previewed rows; Cancel restores the snapshot verbatim. A session is used
// by exactly one drag at a time and is spent after Commit or Cancel.
type EdgeDragSession struct {
	ext     *EdgeExtension
	cfg     ExtensionConfig
	snap    EdgeExtension
	preview ExtensionPreview
	active  bool
}

// StartEdgeDrag opens a drag session against the edge's state bag, capturing
// the rollback snapshot.
func StartEdgeDrag(ext *EdgeExtension, cfg ExtensionConfig) *EdgeDragSession {
	if cfg.MinBoundaryCutRow == 0 {
		cfg.MinBoundaryCutRow = DefaultMinBoundaryCutRow
	}
	return &EdgeDragSession{
		ext:    ext,
		cfg:    cfg,
		snap:   ext.snapshot(),
		active: true,
	}
}

// Move updates the preview for the current drag distance against a snapshot
// of the scene. The drag is clamped to the nearest boundary ahead of the
// edge's outer face; if the clamped remainder is deep enough it becomes a
// boundary cut row, otherwise one full row is given back and the remainder
// retested.
func (s *EdgeDragSession) Move(dragDistance float64, components []Component) ExtensionPreview {
	s.preview = ExtensionPreview{}
	if !s.active || s.ext.ReachedBoundary {
		return s.preview
	}
	rowPitch := s.cfg.RowDepth + s.cfg.Grout
	if rowPitch <= 0 || s.cfg.Outward.Hypot() < parallelEps {
		return s.preview
	}
	outward := s.cfg.Outward.Normalize()

	face := float64(s.ext.CurrentRows) * rowPitch
	rayOrigin := s.cfg.Face.Translate(outward.Mul(face)).Midpoint()
	hit, hitOK := FindNearestBoundary(rayOrigin, outward, components, s.cfg.ExcludeID)

	maxDist := max(0, dragDistance)
	reached := false
	if hitOK && hit.Distance <= maxDist {
		maxDist = hit.Distance
		reached = true
	}

	fullRows := int(math.Floor(maxDist / rowPitch))
	remaining := maxDist - float64(fullRows)*rowPitch
	cut := 0.0
	if reached {
		if remaining >= s.cfg.Grout+s.cfg.MinBoundaryCutRow {
			cut = remaining - s.cfg.Grout
		} else if fullRows > 0 {
			fullRows--
			remaining += rowPitch
			if remaining >= s.cfg.Grout+s.cfg.MinBoundaryCutRow {
				cut = remaining - s.cfg.Grout
			}
		}
	}

	s.preview = ExtensionPreview{
		FullRows:        fullRows,
		CutRowDepth:     cut,
		ReachedBoundary: reached,
		MaxDistance:     maxDist,
	}
	if reached {
		s.preview.BoundaryID = hit.ComponentID
	}
	return s.preview
}

// Commit turns the last preview into committed geometry: each new full row
// is laid with the edge's corner-first axis layout, the optional boundary
// cut row is appended, and the edge state advances. The newly added pavers
// are returned; the rollback snapshot is discarded.
func (s *EdgeDragSession) Commit() []PaverRect {
	if !s.active {
		return nil
	}
	s.active = false
	prev := s.preview
	if prev.FullRows == 0 && prev.CutRowDepth == 0 && !prev.ReachedBoundary {
		return nil
	}

	plan := PlanAxis(s.cfg.Face.Length(), s.cfg.TileAlong, s.cfg.Grout, s.cfg.MinCut)
	ivs := plan.Intervals()
	along := s.cfg.Face.Direction().Normalize()
	outward := s.cfg.Outward.Normalize()
	rowPitch := s.cfg.RowDepth + s.cfg.Grout

	var added []PaverRect
	appendRow := func(rowIdx int, depth float64, boundaryCut bool) {
		base := float64(rowIdx) * rowPitch
		for _, iv := range ivs {
			near := s.cfg.Face.P0.
				Translate(along.Mul(iv.Offset)).
				Translate(outward.Mul(base))
			far := near.
				Translate(along.Mul(iv.Length)).
				Translate(outward.Mul(depth))
			pv := PaverRect{
				Rect:           NewRectFromPoints(near, far),
				Partial:        iv.Partial || boundaryCut,
				Edge:           s.cfg.Edge,
				Row:            rowIdx,
				BoundaryCutRow: boundaryCut,
			}
			if iv.Partial && s.cfg.TileAlong > 0 {
				pv.CutPercentage = (1 - iv.Length/s.cfg.TileAlong) * 100
			}
			if boundaryCut && s.cfg.RowDepth > 0 {
				// A give-back cut row can be deeper than one tile; the cut
				// comes out of however many tiles the depth consumes.
				consumed := math.Ceil(depth/s.cfg.RowDepth) * s.cfg.RowDepth
				pv.CutPercentage = max(pv.CutPercentage, (1-depth/consumed)*100)
			}
			added = append(added, pv)
		}
	}

	for r := range prev.FullRows {
		appendRow(s.ext.CurrentRows+r, s.cfg.RowDepth, false)
	}
	if prev.CutRowDepth > 0 {
		appendRow(s.ext.CurrentRows+prev.FullRows, prev.CutRowDepth, true)
		s.ext.CutRowDepth = prev.CutRowDepth
	}

	s.ext.CurrentRows += prev.FullRows
	if prev.ReachedBoundary {
		s.ext.ReachedBoundary = true
		s.ext.BoundaryID = prev.BoundaryID
	}
	s.ext.Pavers = append(s.ext.Pavers, added...)
	return added
}

// Cancel restores the edge state to the snapshot taken at Start. No partial
// state is retained.
func (s *EdgeDragSession) Cancel() {
	if !s.active {
		return
	}
	s.active = false
	*s.ext = s.snap
}
