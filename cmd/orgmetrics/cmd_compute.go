// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orgindex/cluster"
	"github.com/katalvlaran/orgindex/config"
	"github.com/katalvlaran/orgindex/logging"
	"github.com/katalvlaran/orgindex/orgmetrics"
	"github.com/katalvlaran/orgindex/series"
)

func newComputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute [file...]",
		Short: "Compute organization metrics for each grid in the input",
		Long: `Reads grids from the given files (or stdin) and prints one line per grid:

  index SCAI MCAI COP Iorg ABCOP N mean_size

Rows are whitespace or comma separated numbers (nonzero = active), or a
single token such as "..##." or "00110". A lone token made only of 0 and 1
with two or more characters is always read as cells, so in a one-column
numeric grid write 10 as 10.0. Blank lines separate grids; lines starting
with ';' are comments. Grids from all inputs form one time series and must
share a shape.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			opts, err := cfg.SeriesOptions()
			if err != nil {
				return err
			}
			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()).With("component", "compute")
			opts.Progress = series.LogProgress(logger)

			grids, err := readGrids(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if len(grids) == 0 {
				return errors.New("no grids in input")
			}

			start := time.Now()
			results, runErr := series.ComputeSeries(cmd.Context(), grids, opts)
			var shapeErr *series.InputShapeError
			if errors.As(runErr, &shapeErr) {
				return runErr
			}
			failed := failedSlices(runErr)
			for t, g := range grids {
				if failed[t] {
					continue
				}
				logger.Debug("slice computed",
					"index", t,
					"active", g.ActiveCount(),
					"n", results[t].N,
					"mean_size", results[t].MeanSize)
				if err := traceAggregates(cmd.Context(), logger, t, g, opts); err != nil {
					return err
				}
			}
			logger.Info("run complete",
				"slices", len(grids),
				"failed", len(failed),
				"shape", fmt.Sprintf("%dx%d", grids[0].Height, grids[0].Width),
				"connectivity", opts.Cluster.Conn.String(),
				"cyclic", opts.Cluster.Cyclic,
				"elapsed", time.Since(start))

			jsonOut, _ := cmd.Flags().GetBool("json")
			if err := writeResults(cmd.OutOrStdout(), results, failed, jsonOut); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().String("connectivity", "", "Adjacency rule: four or eight")
	cmd.Flags().Bool("cyclic", false, "Treat the x axis as periodic")
	cmd.Flags().Int("workers", 0, "Number of slices computed concurrently")
	cmd.Flags().Int("progress-every", 0, "Log progress every N slices (0 = automatic)")
	cmd.Flags().Float64("min-distance", 0, "Floor for pairwise centroid distances (0 = default)")

	return cmd
}

// loadConfig layers defaults, the config file, the environment and then any
// flag set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("connectivity") {
		cfg.Connectivity, _ = flags.GetString("connectivity")
	}
	if flags.Changed("cyclic") {
		cfg.Cyclic, _ = flags.GetBool("cyclic")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("progress-every") {
		cfg.ProgressEvery, _ = flags.GetInt("progress-every")
	}
	if flags.Changed("min-distance") {
		cfg.MinDistance, _ = flags.GetFloat64("min-distance")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// traceAggregates logs every aggregate of slice t at trace level. It does
// nothing unless trace logging is enabled.
func traceAggregates(ctx context.Context, logger *slog.Logger, t int, g *cluster.Grid, opts series.Options) error {
	if !logger.Enabled(ctx, logging.LevelTrace) {
		return nil
	}
	aggs, err := cluster.AggregateAll(g.Label(opts.Cluster), g.Width, opts.Cluster.Cyclic)
	if err != nil {
		return fmt.Errorf("slice %d: %w", t, err)
	}
	for k, a := range aggs {
		logger.Log(ctx, logging.LevelTrace, "aggregate",
			"index", t,
			"id", k,
			"cy", a.CY,
			"cx", a.CX,
			"size", a.Size)
	}
	return nil
}

// readGrids parses every input in order; "-" or no argument means stdin.
func readGrids(stdin io.Reader, paths []string) ([]*cluster.Grid, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var grids []*cluster.Grid
	for _, path := range paths {
		var (
			raw [][][]bool
			err error
		)
		if path == "-" {
			raw, err = parseGrids(stdin, "<stdin>")
		} else {
			raw, err = parseFile(path)
		}
		if err != nil {
			return nil, err
		}
		for i, vals := range raw {
			g, err := cluster.NewGrid(vals)
			if err != nil {
				return nil, fmt.Errorf("%s: grid %d: %w", path, i+1, err)
			}
			grids = append(grids, g)
		}
	}
	return grids, nil
}

func parseFile(path string) ([][][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseGrids(f, path)
}

// failedSlices collects the indices of every *series.SliceError in err.
func failedSlices(err error) map[int]bool {
	failed := make(map[int]bool)
	if err == nil {
		return failed
	}
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	for _, e := range errs {
		var sliceErr *series.SliceError
		if errors.As(e, &sliceErr) {
			failed[sliceErr.Index] = true
		}
	}
	return failed
}

type resultRow struct {
	Index int `json:"index"`
	orgmetrics.Result
}

// writeResults prints successful slices as text lines or a JSON array.
func writeResults(w io.Writer, results []orgmetrics.Result, failed map[int]bool, jsonOut bool) error {
	rows := make([]resultRow, 0, len(results))
	for t, r := range results {
		if !failed[t] {
			rows = append(rows, resultRow{Index: t, Result: r})
		}
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	for _, row := range rows {
		r := row.Result
		if _, err := fmt.Fprintf(w, "%d %.6f %.6f %.6f %.6f %.6f %d %.6f\n",
			row.Index, r.SCAI, r.MCAI, r.COP, r.Iorg, r.ABCOP, r.N, r.MeanSize); err != nil {
			return err
		}
	}
	return nil
}
