// Package orgindex measures how organized the active cells of a binary grid
// are: whether they huddle into a few compact aggregates or scatter evenly
// across the domain.
//
// 🚀 What is orgindex?
//
//	A small library and command that brings together:
//		• Labeling: 4- or 8-connected aggregates, optional periodic x axis
//		• Aggregation: centroid and size per aggregate, seam-aware
//		• Indices: SCAI, MCAI, COP, Iorg and ABCOP
//		• Time series: bounded worker pool over 3D input, progress hooks
//
// Everything is organized under these subpackages:
//
//	cluster/        Grid, connected-component labeling, aggregate summaries
//	matrix/         dense float64 matrix with elementwise helpers (distances)
//	orgmetrics/     distance matrix and the organization indices
//	series/         2D/3D input normalisation and the per-slice driver
//	config/         YAML and environment configuration
//	logging/        leveled slog construction
//	cmd/orgmetrics  command-line front end
//
// Quick ASCII example (Conn4, cyclic):
//
//	#..#            one aggregate of size 2: the two cells touch across the seam
//	....
//
// Typical use:
//
//	m, err := series.ComputeMetrics(ctx, frames, series.DefaultOptions())
package orgindex
