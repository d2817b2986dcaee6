package engine

// Interpretation carries the four fixed human-readable phrases for a
// snapshot. Pure template lookup: no thresholds are applied here, only the
// classifications the evaluation layer already produced. All phrases use
// qualified language by design; none state outcomes as fact.
type Interpretation struct {
	LeveragePosition      string `json:"leverage_position"`
	DecisionExplanation   string `json:"decision_explanation"`
	PressureStatus        string `json:"pressure_status"`
	ConfidenceExplanation string `json:"confidence_explanation"`
}

var leveragePositionText = map[Decision]string{
	DecisionReject:  "Low procedural leverage - weak positioning",
	DecisionCounter: "Limited leverage - defensive posture required",
	DecisionHold:    "Moderate leverage - routine dispute parameters",
	DecisionAccept:  "Very high procedural leverage - upper-bound positioning",
}

// decisionText is keyed by decision and escalation state.
var decisionText = map[Decision][2]string{
	DecisionAccept: {
		"Model indicates acceptance is consistent with current leverage posture.",
		"Model indicates acceptance is consistent with current leverage posture; cost-pressure escalation is active.",
	},
	DecisionCounter: {
		"Model indicates counter-offer is appropriate given current leverage posture.",
		"Model indicates counter-offer is appropriate given current leverage posture; cost-pressure escalation is active.",
	},
	DecisionHold: {
		"Model indicates maintaining position is appropriate given current leverage posture.",
		"Model indicates maintaining position is appropriate given current leverage posture; cost-pressure escalation is active.",
	},
	DecisionReject: {
		"Model indicates rejection is consistent with current leverage posture.",
		"Model indicates rejection is consistent with current leverage posture; cost-pressure escalation is active.",
	},
}

var pressureStatusText = [2]string{
	"Cost pressure below escalation threshold - no immediate procedural concerns indicated.",
	"Cost pressure at or above escalation threshold - elevated attention indicated.",
}

var confidenceText = map[Confidence]string{
	ConfidenceLow:      "Model indicates limited confidence: the leverage score sits close to a decision boundary.",
	ConfidenceModerate: "Model indicates moderate confidence in the current leverage assessment.",
	ConfidenceHigh:     "Model indicates high confidence: the leverage score sits well inside its decision band.",
}

func interpret(ev Evaluation) Interpretation {
	idx := 0
	if ev.Triggered {
		idx = 1
	}
	return Interpretation{
		LeveragePosition:      leveragePositionText[ev.Decision],
		DecisionExplanation:   decisionText[ev.Decision][idx],
		PressureStatus:        pressureStatusText[idx],
		ConfidenceExplanation: confidenceText[ev.Confidence],
	}
}
