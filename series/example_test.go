// SPDX-License-Identifier: MIT

package series_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/orgindex/series"
)

// ExampleComputeMetrics runs a three-step series of 0/1 grids.
func ExampleComputeMetrics() {
	frames := [][][]int{
		{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{1, 1, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{1, 0, 0, 1},
			{0, 0, 0, 0},
		},
	}
	opts := series.DefaultOptions()
	opts.Cluster.Cyclic = true

	m, err := series.ComputeMetrics(context.Background(), frames, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for t, r := range m.Results {
		fmt.Printf("t=%d N=%d mean_size=%.1f\n", t, r.N, r.MeanSize)
	}
	// Output:
	// t=0 N=0 mean_size=0.0
	// t=1 N=1 mean_size=2.0
	// t=2 N=1 mean_size=2.0
}
