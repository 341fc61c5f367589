// Package paving plans how paving and coping tiles cover pool edges and
// free-form paved areas. It is the geometry core of a pool/landscape design
// tool; rendering, persistence, and interaction live elsewhere and talk to
// this package through plain geometric values.
//
// # Features
//
// We provide the following notable features:
//
//   - Symmetric corner-first tile layout for a straight edge (see [PlanAxis])
//   - Four-sided coping plans for rectangular pools (see [PlanPoolCoping])
//   - Phase-stable tile grids masked by arbitrary polygons (see [FillAreaFromOrigin])
//   - Winding-aware polygon offsetting (see [Ring.Expand] and [Ring.ExpandPerEdge])
//   - Ray casting against scene boundaries (see [FindNearestBoundary])
//   - Interactive edge extension as a drag session (see [StartEdgeDrag])
//
// # Coordinates and units
//
// All geometry is planar and Y-down, matching canvas conventions. Lengths are
// unit-agnostic: callers pick millimetres or scaled pixels and use them
// consistently. Polygons are represented by [Ring], which stores an unclosed
// vertex sequence internally and tolerates a duplicated closing vertex on
// input.
//
// # Purity and degradation
//
// Every planner in this package is a pure, synchronous function: identical
// inputs produce identical outputs, with no shared state and no iteration-
// order drift, so results may be computed concurrently on independent inputs.
// Malformed-but-well-typed geometry never raises; planners degrade to a
// best-effort renderable result and report constraint violations through
// fields such as [AxisPlan.MeetsMinCut]. The one stateful type is
// [EdgeExtension], which must see at most one in-flight [EdgeDragSession] at
// a time.
package paving
