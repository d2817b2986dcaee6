package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/levquant/levquant/pkg/band"
)

func newBandCmd() *cobra.Command {
	var (
		flags     []string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "band",
		Short: "Resolve the settlement band for a set of evidentiary flags",
		Long: `Resolves which settlement band the given flags support and reports what
additional flags would move the matter up a band.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBand(flags, outputFmt)
		},
	}

	cmd.Flags().StringSliceVar(&flags, "flag", nil, "Evidentiary flag (repeatable)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func runBand(flags []string, outputFmt string) error {
	fs, err := band.NewFlagSet(flags...)
	if err != nil {
		return err
	}
	summary := band.Summarize(fs)

	if outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Printf("Band:    %s (%s)\n", summary.CurrentBand, summary.CurrentBandName)
	fmt.Printf("Range:   %s\n", summary.CurrentRange)
	fmt.Printf("Meaning: %s\n", summary.Meaning)
	if summary.FlagCount > 0 {
		fmt.Printf("Flags:   %d active\n", summary.FlagCount)
		for _, f := range summary.ActiveFlags {
			fmt.Printf("  - %s\n", f)
		}
	} else {
		fmt.Println("Flags:   none")
	}
	fmt.Printf("\n%s\n", summary.WhatMovesUp.Message)
	for _, f := range summary.WhatMovesUp.Missing {
		fmt.Printf("  - %s\n", f)
	}
	return nil
}
