// SPDX-License-Identifier: MIT

package orgmetrics

import "fmt"

const (
	// SentinelIndex is reported for SCAI and MCAI when fewer than two aggregates exist.
	SentinelIndex = 99.9

	// DefaultMinDistance is the floor applied to pairwise distances.
	DefaultMinDistance = 1e-6

	// iorgBinWidth is the width of the nearest-neighbor distance bins.
	iorgBinWidth = 0.1
	// iorgRangeFactor sets the binned range to [0, iorgRangeFactor·L).
	iorgRangeFactor = 1.5
	// abcopMinGap is the floor, in grid units, of the gap distance in ABCOP.
	abcopMinGap = 1.0
	// indexScale multiplies SCAI and MCAI.
	indexScale = 1000.0
)

// Domain is the grid shape (NY rows, NX columns) the aggregates live on.
type Domain struct {
	NY, NX int
}

// Area returns NX·NY.
func (d Domain) Area() float64 { return float64(d.NX) * float64(d.NY) }

// Options configures Compute.
type Options struct {
	// Cyclic treats the x axis as periodic when measuring distances.
	Cyclic bool
	// MinDistance is the smallest pairwise distance used. Zero selects
	// DefaultMinDistance; negative or non-finite values are rejected.
	MinDistance float64
}

func (o Options) minDistance() float64 {
	if o.MinDistance == 0 {
		return DefaultMinDistance
	}
	return o.MinDistance
}

// DefaultOptions returns non-cyclic Options with MinDistance = DefaultMinDistance.
func DefaultOptions() Options {
	return Options{MinDistance: DefaultMinDistance}
}

// Result is the metrics tuple of one grid.
type Result struct {
	SCAI     float64 `json:"scai"`
	MCAI     float64 `json:"mcai"`
	COP      float64 `json:"cop"`
	Iorg     float64 `json:"iorg"`
	ABCOP    float64 `json:"abcop"`
	N        int     `json:"n"`
	MeanSize float64 `json:"mean_size"`
}

// Tuple returns (SCAI, MCAI, COP, Iorg, ABCOP, N, MeanSize).
func (r Result) Tuple() [7]float64 {
	return [7]float64{r.SCAI, r.MCAI, r.COP, r.Iorg, r.ABCOP, float64(r.N), r.MeanSize}
}

// String formats the tuple with three decimals.
func (r Result) String() string {
	return fmt.Sprintf("SCAI=%.3f MCAI=%.3f COP=%.3f Iorg=%.3f ABCOP=%.3f N=%d mean_size=%.3f",
		r.SCAI, r.MCAI, r.COP, r.Iorg, r.ABCOP, r.N, r.MeanSize)
}
