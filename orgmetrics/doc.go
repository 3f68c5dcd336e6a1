// SPDX-License-Identifier: MIT

// Package orgmetrics computes organization indices of aggregates on a 2D domain.
//
// Given the aggregates of one grid (centroid and size, see package cluster)
// and the domain shape (ny, nx), Compute returns:
//
//   - SCAI:  N/(N_max·L)·D0·1000, D0 = geometric mean of pairwise centroid distances.
//   - MCAI:  N/(N_max·L)·D2·1000, D2 = mean pairwise gap max(d − rᵢ − rⱼ, 0).
//   - COP:   mean pairwise (rᵢ + rⱼ)/d.
//   - Iorg:  area under the empirical nearest-neighbor CDF plotted against
//     the CDF of a Poisson point process of equal density.
//   - ABCOP: Σᵢ maxⱼ≠ᵢ of the pairwise interaction potential
//     ((sᵢ+sⱼ)/2/A) / (max(d − rᵢ − rⱼ, 1)/L).
//   - N and the mean aggregate size.
//
// where A = nx·ny, L = √A, N_max = L²/2 and rᵢ = √(sizeᵢ/π).
//
// Degenerate inputs return sentinel tuples instead of errors:
//
//	N = 0: (99.9, 99.9, 0, 0, 0, 0, 0)
//	N = 1: (99.9, 99.9, 0, 0, √π/2·a/(2−√a), 1, size), a = size/A
//
// Distances:
//
//   - DistanceMatrix holds Euclidean centroid distances with +Inf on the diagonal.
//   - In cyclic mode a second matrix is built after shifting centroids with
//     x ≥ nx/2 by −nx, and the elementwise minimum is kept.
//   - Off-diagonal distances are clamped to Options.MinDistance so coincident
//     centroids never produce Inf or NaN.
//
// Complexity: O(N²) time and memory for N aggregates, plus O(L/0.1) for Iorg bins.
package orgmetrics
