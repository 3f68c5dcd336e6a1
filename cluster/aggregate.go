// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AggregateCluster reduces a cluster to its centroid and size.
//
// Size is the cell count and CY the mean row. CX is the mean column, except in
// cyclic mode when the cluster's column span exceeds nx/2: the cluster is then
// taken to straddle the x seam, every cell with x > nx/2 is shifted by -nx,
// and the shifted columns are averaged. CX can therefore be negative.
//
// Precondition for cyclic mode: the cluster's true horizontal extent is under
// nx/2. Wider clusters are not detected and yield a misplaced centroid.
//
// Returns ErrInvalidWidth if nx <= 0. An empty cluster yields the zero Aggregate.
// Complexity: O(n) time and memory.
func AggregateCluster(c Cluster, nx int, cyclic bool) (Aggregate, error) {
	if nx <= 0 {
		return Aggregate{}, fmt.Errorf("AggregateCluster(nx=%d): %w", nx, ErrInvalidWidth)
	}
	n := len(c.Cells)
	if n == 0 {
		return Aggregate{}, nil
	}
	ys := make([]float64, n)
	xs := make([]float64, n)
	for i, cell := range c.Cells {
		ys[i] = float64(cell.Y)
		xs[i] = float64(cell.X)
	}

	half := float64(nx) / 2
	if cyclic && floats.Max(xs)-floats.Min(xs) > half {
		for i, x := range xs {
			if x > half {
				xs[i] = x - float64(nx)
			}
		}
	}

	return Aggregate{
		CY:   stat.Mean(ys, nil),
		CX:   stat.Mean(xs, nil),
		Size: n,
	}, nil
}

// AggregateAll applies AggregateCluster to every cluster, preserving order.
func AggregateAll(clusters []Cluster, nx int, cyclic bool) ([]Aggregate, error) {
	out := make([]Aggregate, 0, len(clusters))
	for i, c := range clusters {
		a, err := AggregateCluster(c, nx, cyclic)
		if err != nil {
			return nil, fmt.Errorf("cluster %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}
