package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/levquant/levquant/pkg/engine"
	"github.com/levquant/levquant/pkg/montecarlo"
)

func newSimulateCmd() *cobra.Command {
	var (
		claimValidity       string
		proceduralAdvantage string
		costAsymmetry       string
		runs                int
		seed                int64
		workers             int
		outputFmt           string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Monte-Carlo decision stability analysis",
		Long: `Samples the evidence inputs from the given distributions and reports how
often each decision comes out. Distribution specs:

  uniform:MIN,MAX
  normal:MEAN,STDDEV       (samples clipped to [0,1])
  triangular:MIN,MODE,MAX
  VALUE                    (fixed scalar)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, simulateOpts{
				claimValidity:       claimValidity,
				proceduralAdvantage: proceduralAdvantage,
				costAsymmetry:       costAsymmetry,
				runs:                runs,
				seed:                seed,
				workers:             workers,
				outputFmt:           outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&claimValidity, "claim-validity", "", "Claim validity distribution (required)")
	cmd.Flags().StringVar(&proceduralAdvantage, "procedural-advantage", "", "Procedural advantage distribution (required)")
	cmd.Flags().StringVar(&costAsymmetry, "cost-asymmetry", "", "Cost asymmetry distribution (required)")
	cmd.Flags().IntVar(&runs, "runs", 10000, "Number of samples")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed for reproducible runs")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker pool size (default: GOMAXPROCS)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("claim-validity")
	_ = cmd.MarkFlagRequired("procedural-advantage")
	_ = cmd.MarkFlagRequired("cost-asymmetry")

	return cmd
}

type simulateOpts struct {
	claimValidity       string
	proceduralAdvantage string
	costAsymmetry       string
	runs                int
	seed                int64
	workers             int
	outputFmt           string
}

func runSimulate(cmd *cobra.Command, opts simulateOpts) error {
	cv, err := montecarlo.ParseDistribution(opts.claimValidity)
	if err != nil {
		return fmt.Errorf("claim-validity: %w", err)
	}
	pa, err := montecarlo.ParseDistribution(opts.proceduralAdvantage)
	if err != nil {
		return fmt.Errorf("procedural-advantage: %w", err)
	}
	ca, err := montecarlo.ParseDistribution(opts.costAsymmetry)
	if err != nil {
		return fmt.Errorf("cost-asymmetry: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Sampling %d runs (seed %d)...\n", opts.runs, opts.seed)

	result, err := montecarlo.Run(cmd.Context(), montecarlo.Spec{
		ClaimValidity:       cv,
		ProceduralAdvantage: pa,
		CostAsymmetry:       ca,
	}, montecarlo.Config{
		Runs:    opts.runs,
		Seed:    opts.seed,
		Workers: opts.workers,
	})
	if err != nil {
		return err
	}

	if opts.outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printSimulation(result)
	return nil
}

func printSimulation(r *montecarlo.Result) {
	fmt.Printf("Runs:          %d\n", r.Runs)
	fmt.Printf("Mean leverage: %.3f\n", r.MeanLeverage)
	fmt.Printf("Trigger rate:  %.1f%%\n", r.TriggerRate*100)

	fmt.Println("\nDecision frequencies:")
	for _, d := range []engine.Decision{engine.DecisionAccept, engine.DecisionHold, engine.DecisionCounter, engine.DecisionReject} {
		if c, ok := r.DecisionCounts[d]; ok {
			fmt.Printf("  %-8s %6d  (%.1f%%)\n", d, c, r.DecisionFrequencies[d]*100)
		}
	}

	fmt.Println("\nLeverage percentiles:")
	pcts := make([]int, 0, len(r.LeveragePercentiles))
	for p := range r.LeveragePercentiles {
		pcts = append(pcts, p)
	}
	sort.Ints(pcts)
	for _, p := range pcts {
		fmt.Printf("  p%-3d %.3f\n", p, r.LeveragePercentiles[p])
	}
}
