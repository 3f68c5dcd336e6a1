// SPDX-License-Identifier: MIT

package series

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orgindex/cluster"
	"github.com/katalvlaran/orgindex/orgmetrics"
)

// ComputeSlice runs the per-slice pipeline on g: label, aggregate, measure.
// Complexity: O(H×W + N²) for N aggregates.
func ComputeSlice(g *cluster.Grid, opts Options) (orgmetrics.Result, error) {
	if g == nil {
		return orgmetrics.Result{}, shapeErrorf(-1, nil, "nil grid")
	}
	clusters := g.Label(opts.Cluster)
	aggs, err := cluster.AggregateAll(clusters, g.Width, opts.Cluster.Cyclic)
	if err != nil {
		return orgmetrics.Result{}, err
	}
	return orgmetrics.Compute(aggs, orgmetrics.Domain{NY: g.Height, NX: g.Width}, opts.metrics())
}

// ComputeSeries computes one Result per grid, in order.
//
// Slices run on at most opts.Workers goroutines. ctx is checked before each
// slice starts; slices that never start fail with the context error. Failures
// are returned as *SliceError values joined with errors.Join, and every other
// slice keeps its result. A shape problem fails the whole call with an
// *InputShapeError before any slice runs.
func ComputeSeries(ctx context.Context, grids []*cluster.Grid, opts Options) ([]orgmetrics.Result, error) {
	if err := checkShapes(grids); err != nil {
		return nil, err
	}
	results := make([]orgmetrics.Result, len(grids))
	errs := make([]error, len(grids))
	prog := newProgress(opts, len(grids))

	run := func(t int) {
		if err := ctx.Err(); err != nil {
			errs[t] = &SliceError{Index: t, Err: err}
			return
		}
		r, err := ComputeSlice(grids[t], opts)
		if err != nil {
			errs[t] = &SliceError{Index: t, Err: err}
			return
		}
		results[t] = r
		prog.observe(r)
	}

	if opts.Workers <= 1 {
		for t := range grids {
			run(t)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(opts.Workers)
		for t := range grids {
			t := t // per-iteration copy; go directive is below 1.22
			eg.Go(func() error {
				run(t)
				return nil
			})
		}
		_ = eg.Wait()
	}

	return results, errors.Join(errs...)
}

// ComputeMetrics normalises input with ToGrids and runs ComputeSeries.
// On slice failures the returned Metrics still holds every result.
func ComputeMetrics(ctx context.Context, input any, opts Options) (Metrics, error) {
	grids, isSeries, err := ToGrids(input)
	if err != nil {
		return Metrics{Series: isSeries}, err
	}
	results, err := ComputeSeries(ctx, grids, opts)
	return Metrics{Results: results, Series: isSeries}, err
}
