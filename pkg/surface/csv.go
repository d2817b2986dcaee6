package surface

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/levquant/levquant/pkg/analysis"
)

// csvHeader is the flat export shape: one analysis per row.
var csvHeader = []string{
	"case_name",
	"reference",
	"run_at",
	"claim_validity",
	"procedural_advantage",
	"cost_asymmetry",
	"leverage_score",
	"cost_pressure",
	"decision",
	"confidence",
	"escalation_triggered",
	"band",
	"band_range",
	"active_flags",
	"engine_version",
}

// CSVRenderer writes analyses as flat CSV rows, one per analysis.
type CSVRenderer struct{}

func (r *CSVRenderer) Render(w io.Writer, a *analysis.Analysis) error {
	return r.RenderAll(w, []*analysis.Analysis{a})
}

// RenderAll writes a header row followed by one row per analysis.
func (r *CSVRenderer) RenderAll(w io.Writer, analyses []*analysis.Analysis) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, a := range analyses {
		if err := cw.Write(csvRow(a)); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", a.CaseName, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(a *analysis.Analysis) []string {
	snap := a.Snapshot
	return []string{
		a.CaseName,
		a.Reference,
		a.RunAt.Format(time.RFC3339),
		formatScalar(snap.Inputs.ClaimValidity),
		formatScalar(snap.Inputs.ProceduralAdvantage),
		formatScalar(snap.Inputs.CostAsymmetry),
		strconv.FormatFloat(snap.Scores.LeverageScore, 'f', 3, 64),
		strconv.FormatFloat(snap.Scores.CostPressure, 'f', 2, 64),
		string(snap.Evaluation.Decision),
		string(snap.Evaluation.Confidence),
		strconv.FormatBool(snap.Evaluation.Triggered),
		string(a.Band.CurrentBand),
		a.Band.CurrentRange,
		joinFlags(a.Band.ActiveFlags),
		snap.EngineVersion,
	}
}

func formatScalar(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Flags pack into a single semicolon-separated cell so the row stays flat.
func joinFlags(flags []string) string {
	return strings.Join(flags, ";")
}
