package engine

import "math"

// Decision is the categorical recommendation produced by evaluation.
type Decision string

const (
	DecisionAccept  Decision = "ACCEPT"
	DecisionCounter Decision = "COUNTER"
	DecisionHold    Decision = "HOLD"
	DecisionReject  Decision = "REJECT"
)

// Confidence is the ordered qualitative label for how far the leverage score
// sits from its nearest decision boundary.
type Confidence string

const (
	ConfidenceLow      Confidence = "Low"
	ConfidenceModerate Confidence = "Moderate"
	ConfidenceHigh     Confidence = "High"
)

// Decision boundaries over the leverage score. The bands are exhaustive and
// non-overlapping: [0, 0.30) REJECT, [0.30, 0.50) COUNTER, [0.50, 0.85) HOLD,
// [0.85, 1.0] ACCEPT.
var decisionBoundaries = [...]float64{0.30, 0.50, 0.85}

// escalationThreshold is the cost-pressure level at or above which the
// escalation signal fires. Deliberately decoupled from the decision bands.
const escalationThreshold = 7.5

// Confidence cut-points over distance-to-nearest-boundary.
const (
	confidenceLowWithin      = 0.05
	confidenceModerateWithin = 0.15
)

// Evaluation is the classification of a ScoreResult.
type Evaluation struct {
	Decision   Decision   `json:"decision"`
	Confidence Confidence `json:"confidence"`
	// Triggered reports that the cost-pressure indicator crossed the
	// escalation threshold. Independent of Decision.
	Triggered bool `json:"triggered"`
}

// evaluate classifies a score. It treats the ScoreResult as opaque: the
// leverage score is never recomputed here. An out-of-range score means an
// upstream invariant broke, surfaced as *ContractError.
func evaluate(s ScoreResult) (Evaluation, error) {
	// Negated inclusion tests, matching the input constructor, so a NaN
	// score cannot slip past into classification.
	if !(s.LeverageScore >= 0.0 && s.LeverageScore <= 1.0) {
		return Evaluation{}, &ContractError{Field: "leverage_score", Value: s.LeverageScore}
	}
	if !(s.CostPressure >= 0.0 && s.CostPressure <= 10.0) {
		return Evaluation{}, &ContractError{Field: "cost_pressure_indicator", Value: s.CostPressure}
	}

	return Evaluation{
		Decision:   decisionFor(s.LeverageScore),
		Confidence: confidenceFor(s.LeverageScore),
		Triggered:  s.CostPressure >= escalationThreshold,
	}, nil
}

func decisionFor(leverage float64) Decision {
	switch {
	case leverage < decisionBoundaries[0]:
		return DecisionReject
	case leverage < decisionBoundaries[1]:
		return DecisionCounter
	case leverage < decisionBoundaries[2]:
		return DecisionHold
	default:
		return DecisionAccept
	}
}

// confidenceFor grades confidence by distance from the nearest decision
// boundary: scores close to a boundary are low-confidence, mid-band scores
// high-confidence. Monotonic in the distance.
func confidenceFor(leverage float64) Confidence {
	nearest := math.Inf(1)
	for _, b := range decisionBoundaries {
		if d := math.Abs(leverage - b); d < nearest {
			nearest = d
		}
	}

	switch {
	case nearest < confidenceLowWithin:
		return ConfidenceLow
	case nearest < confidenceModerateWithin:
		return ConfidenceModerate
	default:
		return ConfidenceHigh
	}
}
