// SPDX-License-Identifier: MIT

// Package cluster groups the active cells of a 2D occupancy grid into
// connected aggregates and reduces each aggregate to a centroid and size.
//
// What:
//
//   - Grid wraps a rectangular boolean occupancy matrix. It is immutable once built.
//   - Label finds every maximal connected set of active cells ("cluster").
//   - AggregateCluster reduces a cluster to (CY, CX, Size), unwrapping
//     clusters that straddle the periodic x seam.
//
// Labeling contract:
//
//   - Seeds are found by a row-major scan (y ascending, then x ascending), so
//     clusters come out in discovery order. Order only affects indexing.
//   - Traversal uses an explicit FIFO work list; depth never grows with cluster size.
//   - Visited state lives in a private bitmask allocated per call; the Grid is
//     never written to.
//
// Options:
//
//   - Options.Conn: Conn4 (orthogonal) or Conn8 (orthogonal + diagonal).
//   - Options.Cyclic: x neighbors wrap modulo Width. y never wraps.
//
// Complexity:
//
//   - Label:            O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - AggregateCluster: O(n),     Memory: O(n)    (n = cluster size).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidWidth: AggregateCluster called with nx <= 0.
package cluster
