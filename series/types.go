// SPDX-License-Identifier: MIT

package series

import (
	"github.com/katalvlaran/orgindex/cluster"
	"github.com/katalvlaran/orgindex/orgmetrics"
)

const (
	// progressEverySmall is the default progress cadence for short series.
	progressEverySmall = 1000
	// progressEveryLarge is the default cadence once a series reaches largeSeries slices.
	progressEveryLarge = 5000
	largeSeries        = 10000
)

// ProgressFunc observes a running series. done is the number of completed
// slices and r the result of the slice that completed the batch. Calls are
// serialized.
type ProgressFunc func(done int, r orgmetrics.Result)

// Options configures the per-slice pipeline and the worker pool.
type Options struct {
	// Cluster selects adjacency and periodicity. Cluster.Cyclic governs both
	// labeling and distance measurement; Metrics.Cyclic is overridden.
	Cluster cluster.Options
	// Metrics carries the remaining metric options (MinDistance).
	Metrics orgmetrics.Options
	// Workers bounds concurrent slices; ≤ 1 runs sequentially.
	Workers int
	// Progress is optional.
	Progress ProgressFunc
	// ProgressEvery is the progress cadence in completed slices; ≤ 0 selects
	// 1000, or 5000 for series of 10000 slices or more.
	ProgressEvery int
}

// DefaultOptions returns Conn4, non-cyclic, sequential options without progress.
func DefaultOptions() Options {
	return Options{
		Cluster: cluster.DefaultOptions(),
		Metrics: orgmetrics.DefaultOptions(),
		Workers: 1,
	}
}

func (o Options) metrics() orgmetrics.Options {
	m := o.Metrics
	m.Cyclic = o.Cluster.Cyclic
	return m
}

func (o Options) progressEvery(total int) int {
	if o.ProgressEvery > 0 {
		return o.ProgressEvery
	}
	if total >= largeSeries {
		return progressEveryLarge
	}
	return progressEverySmall
}

// Metrics is the outcome of ComputeMetrics.
type Metrics struct {
	// Results holds one tuple per slice, in time order.
	Results []orgmetrics.Result `json:"results"`
	// Series is false when the input held a single slice (2D, or 3D with t = 1).
	Series bool `json:"series"`
}

// Single returns the tuple of single-slice input. ok is false for a series.
func (m Metrics) Single() (r orgmetrics.Result, ok bool) {
	if m.Series || len(m.Results) != 1 {
		return orgmetrics.Result{}, false
	}
	return m.Results[0], true
}
