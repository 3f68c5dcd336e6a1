// SPDX-License-Identifier: MIT

package orgmetrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// Iorg returns the organization index of the nearest-neighbor distances nnd
// on a domain of characteristic length length (√area).
//
// Bins have width 0.1 and edges k·0.1 for k = 0..⌈1.5·length/0.1⌉−1. The
// last bin is closed on the right; distances outside the binned range are
// not counted. The empirical CDF (cumulative count / len(nnd)) is integrated
// with the trapezoidal rule against the Poisson CDF
// 1 − exp(−n/length²·π·d²) evaluated at the bin midpoints.
//
// Returns 0 for empty nnd or a range too short to hold two bins.
// Complexity: O(n log n + length/0.1).
func Iorg(nnd []float64, length float64) float64 {
	n := len(nnd)
	if n == 0 || !(length > 0) {
		return 0
	}
	edges := binEdges(0, iorgRangeFactor*length, iorgBinWidth)
	if len(edges) < 3 {
		return 0
	}
	bins := len(edges) - 1

	mids := make([]float64, bins)
	for k := range mids {
		mids[k] = (edges[k] + edges[k+1]) / 2
	}

	// Nudge the top divider so values equal to the last edge land in the last bin.
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[bins] = math.Nextafter(edges[bins], math.Inf(1))

	sorted := make([]float64, 0, n)
	for _, v := range nnd {
		if v >= dividers[0] && v < dividers[bins] {
			sorted = append(sorted, v)
		}
	}
	sort.Float64s(sorted)

	counts := make([]float64, bins)
	if len(sorted) > 0 {
		stat.Histogram(counts, dividers, sorted, nil)
	}
	floats.Scale(1/float64(n), counts)
	empirical := floats.CumSum(make([]float64, bins), counts)

	density := float64(n) / (length * length)
	random := make([]float64, bins)
	for k, d := range mids {
		random[k] = 1 - math.Exp(-density*math.Pi*d*d)
	}

	return integrate.Trapezoidal(random, empirical)
}

// binEdges mirrors an arange: start + k·step for every k with start + k·step
// below stop, the count taken as ⌈(stop−start)/step⌉.
func binEdges(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for k := range out {
		out[k] = start + float64(k)*step
	}
	return out
}
