// Package estimate provides monetary exposure estimators layered on top of
// the resolved settlement band. Estimators are pure functions over their
// inputs; none of them feed back into scoring or band resolution.
package estimate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/levquant/levquant/pkg/band"
)

// DistressLevel grades Article 82 non-material distress, following the UK
// case-law ranges (Vidal-Hall v Google, Lloyd v Google).
type DistressLevel string

const (
	DistressLow      DistressLevel = "low"
	DistressModerate DistressLevel = "moderate"
	DistressHigh     DistressLevel = "high"
	DistressSevere   DistressLevel = "severe"
)

// Article 82 distress damages per data subject, GBP.
var distressRanges = map[DistressLevel][2]int64{
	DistressLow:      {100, 500},
	DistressModerate: {500, 2_000},
	DistressHigh:     {2_000, 5_000},
	DistressSevere:   {5_000, 10_000},
}

// ICO fine bands, fraction of annual turnover (GDPR Article 83).
var fineBands = map[band.Band]struct {
	name    string
	percent decimal.Decimal
}{
	band.BandBase:       {"minor", decimal.NewFromFloat(0.005)},
	band.BandValidation: {"moderate", decimal.NewFromFloat(0.02)},
	band.BandTail:       {"serious", decimal.NewFromFloat(0.04)},
}

// Statutory maximum for serious infringements: £17.5m or 4% of turnover,
// whichever is higher (Article 83(5) UK GDPR).
var seriousFineFloor = decimal.NewFromInt(17_500_000)

// GDPRInput is the data-controller exposure configuration.
type GDPRInput struct {
	DataSubjects   int
	AnnualTurnover decimal.Decimal
	DistressLevel  DistressLevel
}

// GDPRReport is the combined Article 82 and ICO fine exposure.
type GDPRReport struct {
	DataSubjects      int             `json:"data_subjects"`
	DistressLevel     DistressLevel   `json:"distress_level"`
	PerSubjectLow     decimal.Decimal `json:"per_subject_low"`
	PerSubjectHigh    decimal.Decimal `json:"per_subject_high"`
	DistressTotalLow  decimal.Decimal `json:"distress_total_low"`
	DistressTotalHigh decimal.Decimal `json:"distress_total_high"`
	FineBand          string          `json:"fine_band"`
	FinePercent       decimal.Decimal `json:"fine_percent"`
	MaxFine           decimal.Decimal `json:"max_fine"`
	TotalExposureHigh decimal.Decimal `json:"total_exposure_high"`
}

// GDPRExposure estimates data-protection exposure given the active
// settlement band. The band drives the fine tier only; distress damages
// depend on subject count and distress level alone.
func GDPRExposure(in GDPRInput, current band.Band) (GDPRReport, error) {
	rng, ok := distressRanges[in.DistressLevel]
	if !ok {
		return GDPRReport{}, fmt.Errorf("unknown distress level %q", in.DistressLevel)
	}
	if in.DataSubjects < 0 {
		return GDPRReport{}, fmt.Errorf("negative data subject count %d", in.DataSubjects)
	}

	subjects := decimal.NewFromInt(int64(in.DataSubjects))
	perLow := decimal.NewFromInt(rng[0])
	perHigh := decimal.NewFromInt(rng[1])

	tier := fineBands[current]
	maxFine := in.AnnualTurnover.Mul(tier.percent)
	if current == band.BandTail && maxFine.LessThan(seriousFineFloor) {
		maxFine = seriousFineFloor
	}

	distressHigh := subjects.Mul(perHigh)
	return GDPRReport{
		DataSubjects:      in.DataSubjects,
		DistressLevel:     in.DistressLevel,
		PerSubjectLow:     perLow,
		PerSubjectHigh:    perHigh,
		DistressTotalLow:  subjects.Mul(perLow),
		DistressTotalHigh: distressHigh,
		FineBand:          tier.name,
		FinePercent:       tier.percent,
		MaxFine:           maxFine,
		TotalExposureHigh: distressHigh.Add(maxFine),
	}, nil
}
