// Package montecarlo estimates decision stability by sampling evidence
// inputs from caller-supplied distributions and running each sample through
// the engine gateway independently. The engine itself is untouched: every
// sample is one ordinary engine.Run call.
package montecarlo

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/levquant/levquant/pkg/engine"
)

// Spec holds one distribution per evidence input.
type Spec struct {
	ClaimValidity       Distribution
	ProceduralAdvantage Distribution
	CostAsymmetry       Distribution
}

// Config controls a sampling run.
type Config struct {
	Runs    int
	Seed    int64
	Workers int // 0 means GOMAXPROCS
}

// Result aggregates a full sampling run.
type Result struct {
	Runs                int                         `json:"runs"`
	Seed                int64                       `json:"seed"`
	DecisionCounts      map[engine.Decision]int     `json:"decision_counts"`
	DecisionFrequencies map[engine.Decision]float64 `json:"decision_frequencies"`
	TriggerRate         float64                     `json:"trigger_rate"`
	MeanLeverage        float64                     `json:"mean_leverage"`
	LeveragePercentiles map[int]float64             `json:"leverage_percentiles"`
}

// percentiles reported in every result.
var reportedPercentiles = []int{5, 25, 50, 75, 95}

// Run samples the distributions Config.Runs times and aggregates the
// outcomes.
// Samples are drawn sequentially from one seeded source, so a fixed seed
// reproduces the identical result regardless of worker count; only the
// engine calls run concurrently.
func Run(ctx context.Context, spec Spec, cfg Config) (*Result, error) {
	if cfg.Runs <= 0 {
		return nil, fmt.Errorf("montecarlo: runs must be positive, got %d", cfg.Runs)
	}
	if spec.ClaimValidity == nil || spec.ProceduralAdvantage == nil || spec.CostAsymmetry == nil {
		return nil, fmt.Errorf("montecarlo: all three input distributions are required")
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Draw all inputs up front from a single source.
	rng := rand.New(rand.NewSource(cfg.Seed))
	inputs := make([]engine.EvidenceInputs, cfg.Runs)
	for i := range inputs {
		in, err := engine.NewEvidenceInputs(
			clamp01(spec.ClaimValidity.Sample(rng)),
			clamp01(spec.ProceduralAdvantage.Sample(rng)),
			clamp01(spec.CostAsymmetry.Sample(rng)),
		)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: sample %d: %w", i, err)
		}
		inputs[i] = in
	}

	snapshots := make([]engine.Snapshot, cfg.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			snap, err := engine.Run(inputs[i])
			if err != nil {
				return fmt.Errorf("montecarlo: run %d: %w", i, err)
			}
			snapshots[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return aggregate(snapshots, cfg.Seed), nil
}

func aggregate(snapshots []engine.Snapshot, seed int64) *Result {
	n := len(snapshots)
	counts := make(map[engine.Decision]int)
	triggered := 0
	sum := 0.0
	leverages := make([]float64, n)

	for i, snap := range snapshots {
		counts[snap.Evaluation.Decision]++
		if snap.Evaluation.Triggered {
			triggered++
		}
		sum += snap.Scores.LeverageScore
		leverages[i] = snap.Scores.LeverageScore
	}
	sort.Float64s(leverages)

	freqs := make(map[engine.Decision]float64, len(counts))
	for d, c := range counts {
		freqs[d] = float64(c) / float64(n)
	}

	pcts := make(map[int]float64, len(reportedPercentiles))
	for _, p := range reportedPercentiles {
		pcts[p] = percentile(leverages, p)
	}

	return &Result{
		Runs:                n,
		Seed:                seed,
		DecisionCounts:      counts,
		DecisionFrequencies: freqs,
		TriggerRate:         float64(triggered) / float64(n),
		MeanLeverage:        sum / float64(n),
		LeveragePercentiles: pcts,
	}
}

// percentile uses the nearest-rank method on a sorted slice.
func percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
