// Package analysis assembles the full case analysis consumed by surfaces,
// the archive, and the service: one engine snapshot plus the resolved
// settlement band, stamped with case identity and run time.
package analysis

import (
	"time"

	"github.com/levquant/levquant/pkg/band"
	"github.com/levquant/levquant/pkg/config"
	"github.com/levquant/levquant/pkg/engine"
)

// Analysis is the aggregate output of one case run. The snapshot and band
// summary are computed once and treated as read-only from here on.
type Analysis struct {
	CaseName  string          `json:"case_name"`
	Reference string          `json:"reference,omitempty"`
	RunAt     time.Time       `json:"run_at"`
	Snapshot  engine.Snapshot `json:"snapshot"`
	Band      band.Summary    `json:"band"`
}

// New runs the engine and resolves the band for already-validated inputs.
func New(caseName, reference string, in engine.EvidenceInputs, fs band.FlagSet, runAt time.Time) (*Analysis, error) {
	snap, err := engine.Run(in)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		CaseName:  caseName,
		Reference: reference,
		RunAt:     runAt.UTC(),
		Snapshot:  snap,
		Band:      band.Summarize(fs),
	}, nil
}

// FromCaseFile validates a case file's raw values and runs the analysis.
// Out-of-range scalars surface as *engine.DomainError, unknown flags as
// *band.UnknownFlagError.
func FromCaseFile(cf *config.CaseFile, runAt time.Time) (*Analysis, error) {
	in, err := engine.NewEvidenceInputs(
		cf.Inputs.ClaimValidity,
		cf.Inputs.ProceduralAdvantage,
		cf.Inputs.CostAsymmetry,
	)
	if err != nil {
		return nil, err
	}

	fs, err := band.NewFlagSet(cf.Flags...)
	if err != nil {
		return nil, err
	}

	return New(cf.Name, cf.Reference, in, fs, runAt)
}
