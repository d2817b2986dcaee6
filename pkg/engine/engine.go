// Package engine implements the deterministic procedural leverage engine.
// It converts three bounded evidence scalars into a leverage score, a
// cost-pressure escalation signal, a categorical decision with a confidence
// label, and fixed interpretation text.
//
// Run is the only computation entry point. The scoring, evaluation, and
// interpretation layers are package-private so downstream consumers cannot
// invoke or reimplement them directly; everything they need is on the
// Snapshot value.
package engine

// InputsView is the read-only snapshot form of the evidence inputs.
type InputsView struct {
	ClaimValidity       float64 `json:"claim_validity"`
	ProceduralAdvantage float64 `json:"procedural_advantage"`
	CostAsymmetry       float64 `json:"cost_asymmetry"`
}

// Snapshot is the complete, immutable output of one engine run. It is a
// value: downstream consumers may persist or render it but must treat every
// field as read-only.
type Snapshot struct {
	Inputs         InputsView     `json:"inputs"`
	Scores         ScoreResult    `json:"scores"`
	Evaluation     Evaluation     `json:"evaluation"`
	Interpretation Interpretation `json:"interpretation"`
	EngineVersion  string         `json:"engine_version"`
}

// Run executes the full pipeline: scoring, evaluation, interpretation.
// Stateless and side-effect free; identical inputs yield identical
// snapshots. The only error path is a *ContractError from the evaluation
// layer's defensive range check.
func Run(in EvidenceInputs) (Snapshot, error) {
	scores := score(in)

	ev, err := evaluate(scores)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Inputs: InputsView{
			ClaimValidity:       in.claimValidity,
			ProceduralAdvantage: in.proceduralAdvantage,
			CostAsymmetry:       in.costAsymmetry,
		},
		Scores:         scores,
		Evaluation:     ev,
		Interpretation: interpret(ev),
		EngineVersion:  Version,
	}, nil
}
