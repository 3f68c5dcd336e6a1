// SPDX-License-Identifier: MIT

package orgmetrics

import (
	"math"

	"github.com/katalvlaran/orgindex/cluster"
	"github.com/katalvlaran/orgindex/matrix"
)

const opDistanceMatrix = "DistanceMatrix"

// DistanceMatrix returns the N×N matrix of effective centroid distances.
//
// Implementation:
//   - Stage 1: validate domain, aggregates and options.
//   - Stage 2: Euclidean distances √(Δy²+Δx²) between centroids; +Inf on the diagonal.
//   - Stage 3 (cyclic only): repeat with every centroid at x ≥ nx/2 shifted
//     by −nx and keep the elementwise minimum.
//   - Stage 4: clamp off-diagonal entries to the minimum distance.
//
// Returns matrix.ErrInvalidDimensions (wrapped) when aggs is empty.
// Complexity: O(N²) time and memory (twice that in cyclic mode).
func DistanceMatrix(aggs []cluster.Aggregate, dom Domain, opts Options) (*matrix.Dense, error) {
	if err := validate(aggs, dom, opts); err != nil {
		return nil, metricsErrorf(opDistanceMatrix, err)
	}
	ys := make([]float64, len(aggs))
	xs := make([]float64, len(aggs))
	for i, a := range aggs {
		ys[i], xs[i] = a.CY, a.CX
	}

	dist, err := pairwise(ys, xs)
	if err != nil {
		return nil, metricsErrorf(opDistanceMatrix, err)
	}

	if opts.Cyclic {
		half, width := float64(dom.NX)/2, float64(dom.NX)
		shifted := make([]float64, len(xs))
		for i, x := range xs {
			if x >= half {
				x -= width
			}
			shifted[i] = x
		}
		around, err := pairwise(ys, shifted)
		if err != nil {
			return nil, metricsErrorf(opDistanceMatrix, err)
		}
		if err = matrix.MinInPlace(dist, around); err != nil {
			return nil, metricsErrorf(opDistanceMatrix, err)
		}
	}

	if err = matrix.ClampMin(dist, opts.minDistance()); err != nil {
		return nil, metricsErrorf(opDistanceMatrix, err)
	}
	return dist, nil
}

// pairwise builds the symmetric Euclidean distance table of the points
// (ys[i], xs[i]) with +Inf on the diagonal. Distances are √(Δy²+Δx²) so
// that lattice distances such as 2.6 fall exactly on the 0.1 Iorg bin edges.
func pairwise(ys, xs []float64) (*matrix.Dense, error) {
	n := len(xs)
	m, err := matrix.NewSquare(n, matrix.WithAllowInf())
	if err != nil {
		return nil, err
	}
	if err = matrix.FillDiagonal(m, math.Inf(1)); err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			dy, dx := ys[i]-ys[j], xs[i]-xs[j]
			d := math.Sqrt(dy*dy + dx*dx)
			if err = m.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = m.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
