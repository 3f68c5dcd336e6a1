// SPDX-License-Identifier: MIT

package series_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orgindex/cluster"
	"github.com/katalvlaran/orgindex/orgmetrics"
	"github.com/katalvlaran/orgindex/series"
)

// randomSeries builds nt h×w grids with activation probability p.
func randomSeries(t testing.TB, seed int64, nt, h, w int, p float64) []*cluster.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	grids := make([]*cluster.Grid, nt)
	for i := range grids {
		vals := make([][]bool, h)
		for y := range vals {
			vals[y] = make([]bool, w)
			for x := range vals[y] {
				vals[y][x] = rng.Float64() < p
			}
		}
		g, err := cluster.NewGrid(vals)
		require.NoError(t, err)
		grids[i] = g
	}
	return grids
}

func TestComputeMetrics_Single(t *testing.T) {
	in := make([][]int, 10)
	for y := range in {
		in[y] = make([]int, 10)
	}
	in[0][0], in[0][3] = 1, 1

	m, err := series.ComputeMetrics(context.Background(), in, series.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, m.Series)
	r, ok := m.Single()
	require.True(t, ok)
	assert.InDelta(t, 12.0, r.SCAI, 1e-9)
	assert.InDelta(t, 0.568094326870596, r.Iorg, 1e-9)
	assert.Equal(t, 2, r.N)
}

func TestComputeMetrics_Series(t *testing.T) {
	in := [][][]bool{
		{{false, false}, {false, false}},
		{{true, false}, {false, false}},
	}
	m, err := series.ComputeMetrics(context.Background(), in, series.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, m.Series)
	_, ok := m.Single()
	assert.False(t, ok)
	require.Len(t, m.Results, 2)
	assert.Equal(t, orgmetrics.Result{SCAI: 99.9, MCAI: 99.9}, m.Results[0])
	assert.Equal(t, 1, m.Results[1].N)
	assert.Equal(t, 1.0, m.Results[1].MeanSize)
}

// TestComputeMetrics_OneSliceStack: a 3D input with one slice reports a
// single tuple, same as the equivalent 2D input.
func TestComputeMetrics_OneSliceStack(t *testing.T) {
	flat := [][]bool{{true, false}, {false, true}}
	stacked, err := series.ComputeMetrics(context.Background(), [][][]bool{flat}, series.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, stacked.Series)
	got, ok := stacked.Single()
	require.True(t, ok)

	single, err := series.ComputeMetrics(context.Background(), flat, series.DefaultOptions())
	require.NoError(t, err)
	want, ok := single.Single()
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, 2, got.N)
}

func TestComputeMetrics_ShapeError(t *testing.T) {
	_, err := series.ComputeMetrics(context.Background(), []float64{1, 2}, series.DefaultOptions())
	assert.ErrorIs(t, err, series.ErrInputShape)
}

// TestComputeSeries_ParallelMatchesSequential checks index-ordered results
// are identical for any worker count and option set.
func TestComputeSeries_ParallelMatchesSequential(t *testing.T) {
	grids := randomSeries(t, 3, 40, 16, 24, 0.3)
	for _, copts := range []cluster.Options{
		{Conn: cluster.Conn4},
		{Conn: cluster.Conn8, Cyclic: true},
	} {
		opts := series.DefaultOptions()
		opts.Cluster = copts
		seq, err := series.ComputeSeries(context.Background(), grids, opts)
		require.NoError(t, err)

		for _, workers := range []int{2, 4, 16} {
			opts.Workers = workers
			par, err := series.ComputeSeries(context.Background(), grids, opts)
			require.NoError(t, err)
			assert.Equal(t, seq, par, "workers=%d opts=%+v", workers, copts)
		}
	}
}

// TestComputeSeries_MatchesComputeSlice: each entry equals the standalone pipeline.
func TestComputeSeries_MatchesComputeSlice(t *testing.T) {
	grids := randomSeries(t, 5, 6, 12, 12, 0.25)
	opts := series.DefaultOptions()
	opts.Cluster.Cyclic = true
	got, err := series.ComputeSeries(context.Background(), grids, opts)
	require.NoError(t, err)
	for i, g := range grids {
		want, err := series.ComputeSlice(g, opts)
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "slice %d", i)
	}
}

func TestComputeSeries_Cancelled(t *testing.T) {
	grids := randomSeries(t, 1, 3, 4, 4, 0.5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := series.ComputeSeries(ctx, grids, series.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 3)

	var sliceErr *series.SliceError
	require.True(t, errors.As(err, &sliceErr))
	assert.Equal(t, 0, sliceErr.Index)
}

// TestComputeSeries_PartialResults: slices finished before cancellation keep
// their results; later ones fail individually.
func TestComputeSeries_PartialResults(t *testing.T) {
	grids := randomSeries(t, 9, 5, 6, 6, 0.4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := series.DefaultOptions()
	opts.ProgressEvery = 1
	opts.Progress = func(done int, _ orgmetrics.Result) {
		if done == 2 {
			cancel()
		}
	}
	results, err := series.ComputeSeries(ctx, grids, opts)
	require.Error(t, err)

	for i := 0; i < 2; i++ {
		want, werr := series.ComputeSlice(grids[i], series.DefaultOptions())
		require.NoError(t, werr)
		assert.Equal(t, want, results[i])
	}
	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	var failed []int
	for _, e := range joined.Unwrap() {
		var sliceErr *series.SliceError
		require.True(t, errors.As(e, &sliceErr))
		failed = append(failed, sliceErr.Index)
	}
	assert.Equal(t, []int{2, 3, 4}, failed)
}

func TestComputeSeries_InvalidOptions(t *testing.T) {
	grids := randomSeries(t, 2, 2, 5, 5, 0.5)
	opts := series.DefaultOptions()
	opts.Metrics.MinDistance = -1
	_, err := series.ComputeSeries(context.Background(), grids, opts)
	assert.ErrorIs(t, err, orgmetrics.ErrInvalidOptions)
	assert.Contains(t, err.Error(), "series: slice 1:")
}

func TestComputeSeries_ShapeMismatch(t *testing.T) {
	a := randomSeries(t, 1, 1, 3, 3, 0.5)
	b := randomSeries(t, 1, 1, 3, 4, 0.5)
	_, err := series.ComputeSeries(context.Background(), append(a, b...), series.DefaultOptions())
	var shapeErr *series.InputShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 1, shapeErr.Slice)
}

func TestComputeSlice_NilGrid(t *testing.T) {
	_, err := series.ComputeSlice(nil, series.DefaultOptions())
	assert.ErrorIs(t, err, series.ErrInputShape)
}

func TestProgress_Cadence(t *testing.T) {
	cases := []struct {
		name  string
		total int
		every int
		want  []int
	}{
		{"Explicit", 25, 10, []int{10, 20}},
		{"DefaultSmall", 2500, 0, []int{1000, 2000}},
		{"DefaultLarge", 10000, 0, []int{5000, 10000}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grids := randomSeries(t, 4, tc.total, 1, 1, 0.5)
			var got []int
			opts := series.DefaultOptions()
			opts.Workers = 4
			opts.ProgressEvery = tc.every
			opts.Progress = func(done int, _ orgmetrics.Result) { got = append(got, done) }
			_, err := series.ComputeSeries(context.Background(), grids, opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLogProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	opts := series.DefaultOptions()
	opts.ProgressEvery = 2
	opts.Progress = series.LogProgress(logger)

	_, err := series.ComputeSeries(context.Background(), randomSeries(t, 8, 4, 3, 3, 0.5), opts)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "slices computed")
	assert.Contains(t, out, "component=series")
	assert.Contains(t, out, "done=2")
	assert.Contains(t, out, "done=4")
}
