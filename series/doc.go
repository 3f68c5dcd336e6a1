// SPDX-License-Identifier: MIT

// Package series drives the organization-metrics pipeline over one grid or a
// time series of grids.
//
// Each slice runs the same synchronous pipeline:
//
//	cluster.Grid.Label → cluster.AggregateAll → orgmetrics.Compute
//
// ComputeMetrics is the entry point for raw input. It accepts a 2D or 3D
// slice (or array) of bool or of any integer or floating-point type, with
// nonzero meaning active, and reports whether the input was a series.
// ComputeSeries runs already-built grids through a bounded errgroup worker
// pool; results are written by slice index, so parallel and sequential runs
// return identical sequences.
//
// Failures are slice-local: a slice that fails is reported as a *SliceError
// and the remaining slices keep their results. Malformed input is reported as
// an *InputShapeError, which matches ErrInputShape under errors.Is.
//
// An optional ProgressFunc observes the run every ProgressEvery completed
// slices; LogProgress adapts it to a slog.Logger.
package series
