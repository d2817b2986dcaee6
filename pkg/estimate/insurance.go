package estimate

import (
	"github.com/shopspring/decimal"

	"github.com/levquant/levquant/pkg/band"
)

// Coverage-stress weights per tail flag, in percent. The sum can exceed
// 100; the score is capped there. Integer percents keep the summed score
// exact.
var stressWeights = map[band.TailFlag]int{
	band.FlagCriminalInvestigationEscalation: 40,
	band.FlagSRAFormalAction:                 30,
	band.FlagAdverseJudicialLanguage:         25,
	band.FlagShadowDirectorProven:            20,
	band.FlagInsuranceCoverageStress:         15,
}

// ReserveInput is the insurer-side reserve configuration.
type ReserveInput struct {
	CaseReserve   decimal.Decimal
	CoverageLimit decimal.Decimal
	IBNRPercent   float64 // Incurred But Not Reported reserve fraction
}

// ReserveReport is the reserve position measured against the settlement
// exposure implied by the active band.
type ReserveReport struct {
	SettlementExposure decimal.Decimal `json:"settlement_exposure"`
	CaseReserve        decimal.Decimal `json:"case_reserve"`
	IBNRReserve        decimal.Decimal `json:"ibnr_reserve"`
	TotalReserve       decimal.Decimal `json:"total_reserve"`
	ReserveGap         decimal.Decimal `json:"reserve_gap"`
	ReserveAdequate    bool            `json:"reserve_adequate"`
	WithinPolicyLimit  bool            `json:"within_policy_limit"`
	StressScore        float64         `json:"coverage_stress_score"`
	StressLevel        string          `json:"stress_level"`
	TriggeredFlags     []string        `json:"triggered_flags,omitempty"`
}

// InsuranceReserve measures the gap between the insurer's reserve position
// and the upper bound of the active settlement band. A positive gap means
// the insurer must escalate reserves to cover the current band.
func InsuranceReserve(in ReserveInput, current band.Band, fs band.FlagSet) ReserveReport {
	exposure := band.RangeOf(current).Max

	ibnr := exposure.Mul(decimal.NewFromFloat(in.IBNRPercent))
	total := in.CaseReserve.Add(ibnr)
	gap := exposure.Sub(total)

	score, triggered := coverageStress(fs)

	return ReserveReport{
		SettlementExposure: exposure,
		CaseReserve:        in.CaseReserve,
		IBNRReserve:        ibnr,
		TotalReserve:       total,
		ReserveGap:         gap,
		ReserveAdequate:    !gap.IsPositive(),
		WithinPolicyLimit:  exposure.LessThanOrEqual(in.CoverageLimit),
		StressScore:        score,
		StressLevel:        stressLevel(score),
		TriggeredFlags:     triggered,
	}
}

func coverageStress(fs band.FlagSet) (float64, []string) {
	percent := 0
	var triggered []string
	for _, f := range fs.ActiveTailFlags() {
		if w, ok := stressWeights[f]; ok {
			percent += w
			triggered = append(triggered, string(f))
		}
	}
	if percent > 100 {
		percent = 100
	}
	return float64(percent) / 100, triggered
}

func stressLevel(score float64) string {
	switch {
	case score >= 0.7:
		return "CRITICAL - Coverage voidance likely"
	case score >= 0.5:
		return "HIGH - Iniquity exclusion triggered"
	case score >= 0.3:
		return "ELEVATED - Reserve escalation required"
	case score > 0:
		return "MODERATE - Monitor closely"
	default:
		return "NORMAL - Standard reserve position"
	}
}
