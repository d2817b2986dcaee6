package engine

import "math"

// Version identifies the released weight/threshold set. Any change to the
// weights, decision boundaries, or escalation threshold is a version bump.
const Version = "1.3.0"

// Scoring weights. Fixed constants of the release; they must sum to exactly
// 1.0 and are not runtime-configurable.
const (
	weightClaimValidity       = 0.40
	weightProceduralAdvantage = 0.35
	weightCostAsymmetry       = 0.25

	costPressureMultiplier = 10.0
)

// ScoreResult is the output of the scoring layer. Both values are derived,
// never mutated after creation.
type ScoreResult struct {
	// LeverageScore is the weighted aggregate of the three evidence
	// scalars, in [0.0, 1.0], rounded to 3 decimal places.
	LeverageScore float64 `json:"leverage_score"`
	// CostPressure is the leverage score scaled by a fixed factor of 10,
	// rounded to 2 decimal places. It feeds the escalation signal only.
	CostPressure float64 `json:"cost_pressure_indicator"`
}

// score computes the leverage score and cost-pressure indicator for a set of
// validated inputs. Pure and total over the valid domain: range checking
// happened at input construction.
func score(in EvidenceInputs) ScoreResult {
	leverage := round3(
		weightClaimValidity*in.claimValidity +
			weightProceduralAdvantage*in.proceduralAdvantage +
			weightCostAsymmetry*in.costAsymmetry)

	return ScoreResult{
		LeverageScore: leverage,
		CostPressure:  round2(leverage * costPressureMultiplier),
	}
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
