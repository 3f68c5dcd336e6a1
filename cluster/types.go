// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"strings"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: all cells of the surrounding 3×3 block.
	Conn8
)

// String returns "four" or "eight".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "eight"
	}
	return "four"
}

// ParseConnectivity maps "four"/"4" and "eight"/"8" (case-insensitive) to a Connectivity.
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "four", "4", "conn4":
		return Conn4, nil
	case "eight", "8", "conn8":
		return Conn8, nil
	}
	return Conn4, fmt.Errorf("%q: %w", s, ErrUnknownConnectivity)
}

// Options contains tunable parameters for labeling.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Cyclic wraps x neighbors modulo the grid width (channel domain).
	Cyclic bool
}

// DefaultOptions returns Options with Conn=Conn4 and no periodic boundary.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Offsets as (dy, dx), scanned over the 3×3 block in row-major order.
var (
	offsets4 = [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	offsets8 = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// offsets returns the neighbor offsets for the chosen connectivity.
func (o Options) offsets() [][2]int {
	if o.Conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Cell is a grid coordinate. Y indexes rows, X indexes columns.
type Cell struct {
	Y, X int
}

// Cluster is a maximal connected set of active cells.
// Cells[0] is always the seed found by the row-major scan.
type Cluster struct {
	Cells []Cell
}

// Size returns the number of cells in the cluster.
func (c Cluster) Size() int { return len(c.Cells) }

// Aggregate is the reduced form of a Cluster used by the metrics.
// CX may lie outside [0, nx) when the periodic unwrap was applied.
type Aggregate struct {
	CY, CX float64
	Size   int
}

// Grid is an immutable boolean occupancy matrix. Width and Height are nx and ny;
// cells holds Height*Width flags in row-major order.
type Grid struct {
	Width, Height int
	cells         []bool
}
