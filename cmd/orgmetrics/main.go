// SPDX-License-Identifier: MIT

// Command orgmetrics computes organization indices (SCAI, MCAI, COP, Iorg,
// ABCOP) of binary grids read from text files or stdin.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orgmetrics",
		Short: "Organization indices of binary grids",
		Long: `orgmetrics groups adjacent active cells of a binary grid into aggregates
and reports how organized they are: SCAI, MCAI, COP, Iorg and ABCOP, plus
the aggregate count and mean size. A blank-line separated sequence of grids
is processed as a time series.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newComputeCmd(),
	)
	return rootCmd
}
