package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "copasweep",
		Short: "Batch parameter sweeps for COPASI models",
		Long: `copasweep prepares, runs and digests batches of COPASI model files.

It rewrites optimization targets inside .cps files, fans the resulting
copies out to CopasiSE through GNU parallel, and collects the report
files back into steady-state tables and per-scan objective summaries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a copasweep.yaml config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log verbosity: info or debug")

	// Add subcommands
	rootCmd.AddCommand(
		newVersionCmd(),
		newInfoCmd(),
		newTargetCmd(),
		newReplicateCmd(),
		newTuneCmd(),
		newExtractCmd(),
		newSummarizeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			// The diagnostic line is already on stderr.
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
