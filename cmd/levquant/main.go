// Package main provides the levquant CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "levquant",
		Short: "Deterministic leverage scoring and settlement bands for disputes",
		Long: `Levquant scores dispute evidence into a leverage position, resolves the
defensible settlement band from evidentiary flags, and renders the results
as terminal reports, JSON, CSV, or settlement letters.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newEvaluateCmd(),
		newBandCmd(),
		newSimulateCmd(),
		newExportCmd(),
		newLetterCmd(),
		newEstimateCmd(),
		newJournalCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
