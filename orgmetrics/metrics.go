// SPDX-License-Identifier: MIT

package orgmetrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/orgindex/cluster"
	"github.com/katalvlaran/orgindex/matrix"
)

const opCompute = "Compute"

// Compute returns the organization metrics of aggs on dom.
//
// Implementation:
//   - Stage 1: validate inputs; N = 0 and N = 1 return sentinel tuples.
//   - Stage 2: build the effective distance matrix (DistanceMatrix).
//   - Stage 3: one pass over unordered pairs for SCAI, MCAI and COP.
//   - Stage 4: one pass per aggregate for ABCOP and nearest-neighbor distances.
//   - Stage 5: Iorg from the nearest-neighbor distances; mean size.
//
// Errors: ErrInvalidDomain, ErrInvalidAggregate, ErrInvalidOptions (wrapped).
// Determinism: fixed i→j loop order; identical inputs give identical bits.
// Complexity: O(N²) time and memory.
func Compute(aggs []cluster.Aggregate, dom Domain, opts Options) (Result, error) {
	if err := validate(aggs, dom, opts); err != nil {
		return Result{}, metricsErrorf(opCompute, err)
	}
	area := dom.Area()
	n := len(aggs)

	switch n {
	case 0:
		return Result{SCAI: SentinelIndex, MCAI: SentinelIndex}, nil
	case 1:
		size := float64(aggs[0].Size)
		a := size / area
		return Result{
			SCAI:     SentinelIndex,
			MCAI:     SentinelIndex,
			ABCOP:    math.Sqrt(math.Pi) / 2 * a / (2 - math.Sqrt(a)),
			N:        1,
			MeanSize: size,
		}, nil
	}

	dist, err := DistanceMatrix(aggs, dom, opts)
	if err != nil {
		return Result{}, metricsErrorf(opCompute, err)
	}
	length := math.Sqrt(area)

	sizes := make([]float64, n)
	radii := make([]float64, n)
	for i, a := range aggs {
		sizes[i] = float64(a.Size)
		radii[i] = math.Sqrt(sizes[i] / math.Pi)
	}

	rows := make([][]float64, n)
	for i := range rows {
		if rows[i], err = dist.Row(i); err != nil {
			return Result{}, metricsErrorf(opCompute, err)
		}
	}

	// Unordered pairs i<j.
	pairs := n * (n - 1) / 2
	dists := make([]float64, 0, pairs)
	gaps := make([]float64, 0, pairs)
	ratios := make([]float64, 0, pairs)
	var i, j int
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			d := rows[i][j]
			dists = append(dists, d)
			gaps = append(gaps, math.Max(d-radii[i]-radii[j], 0))
			ratios = append(ratios, (radii[i]+radii[j])/d)
		}
	}

	nMax := length * length / 2
	scale := float64(n) / (nMax * length) * indexScale

	// Per aggregate: strongest interaction and nearest neighbor.
	strongest := make([]float64, n)
	nnd := make([]float64, n)
	potentials := make([]float64, 0, n-1)
	for i = 0; i < n; i++ {
		potentials = potentials[:0]
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			gap := math.Max(rows[i][j]-radii[i]-radii[j], abcopMinGap)
			potentials = append(potentials, (sizes[i]+sizes[j])/2/area/(gap/length))
		}
		strongest[i] = floats.Max(potentials)
		if nnd[i], err = matrix.RowMin(dist, i, i); err != nil {
			return Result{}, metricsErrorf(opCompute, err)
		}
	}

	return Result{
		SCAI:     scale * stat.GeometricMean(dists, nil),
		MCAI:     scale * stat.Mean(gaps, nil),
		COP:      stat.Mean(ratios, nil),
		Iorg:     Iorg(nnd, length),
		ABCOP:    floats.Sum(strongest),
		N:        n,
		MeanSize: stat.Mean(sizes, nil),
	}, nil
}

// validate checks domain, options and every aggregate.
func validate(aggs []cluster.Aggregate, dom Domain, opts Options) error {
	if dom.NY <= 0 || dom.NX <= 0 {
		return fmt.Errorf("domain %dx%d: %w", dom.NY, dom.NX, ErrInvalidDomain)
	}
	if opts.MinDistance < 0 || !finite(opts.MinDistance) {
		return fmt.Errorf("MinDistance=%g: %w", opts.MinDistance, ErrInvalidOptions)
	}
	for i, a := range aggs {
		if a.Size < 1 || !finite(a.CY) || !finite(a.CX) {
			return fmt.Errorf("aggregate %d (%+v): %w", i, a, ErrInvalidAggregate)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
