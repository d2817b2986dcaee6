package estimate_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/levquant/levquant/pkg/band"
	"github.com/levquant/levquant/pkg/estimate"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestGDPRExposureModerate(t *testing.T) {
	report, err := estimate.GDPRExposure(estimate.GDPRInput{
		DataSubjects:   1200,
		AnnualTurnover: dec(85_000_000),
		DistressLevel:  estimate.DistressModerate,
	}, band.BandValidation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1200 subjects × £500–£2,000 per subject.
	if !report.DistressTotalLow.Equal(dec(600_000)) {
		t.Errorf("distress low = %s, want 600000", report.DistressTotalLow)
	}
	if !report.DistressTotalHigh.Equal(dec(2_400_000)) {
		t.Errorf("distress high = %s, want 2400000", report.DistressTotalHigh)
	}

	// VALIDATION band maps to the 2% moderate fine tier.
	if report.FineBand != "moderate" {
		t.Errorf("fine band = %q, want moderate", report.FineBand)
	}
	if !report.MaxFine.Equal(dec(1_700_000)) {
		t.Errorf("max fine = %s, want 1700000 (2%% of 85m)", report.MaxFine)
	}
	if !report.TotalExposureHigh.Equal(dec(4_100_000)) {
		t.Errorf("total exposure = %s, want 4100000", report.TotalExposureHigh)
	}
}

func TestGDPRSeriousFineFloor(t *testing.T) {
	// 4% of £100m is £4m, below the £17.5m statutory maximum; the serious
	// tier takes whichever is higher.
	report, err := estimate.GDPRExposure(estimate.GDPRInput{
		DataSubjects:   10,
		AnnualTurnover: dec(100_000_000),
		DistressLevel:  estimate.DistressSevere,
	}, band.BandTail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.FineBand != "serious" {
		t.Errorf("fine band = %q, want serious", report.FineBand)
	}
	if !report.MaxFine.Equal(dec(17_500_000)) {
		t.Errorf("max fine = %s, want 17500000 floor", report.MaxFine)
	}
}

func TestGDPRSeriousFineAboveFloor(t *testing.T) {
	// 4% of £600m = £24m exceeds the £17.5m floor.
	report, err := estimate.GDPRExposure(estimate.GDPRInput{
		DataSubjects:   10,
		AnnualTurnover: dec(600_000_000),
		DistressLevel:  estimate.DistressLow,
	}, band.BandTail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.MaxFine.Equal(dec(24_000_000)) {
		t.Errorf("max fine = %s, want 24000000", report.MaxFine)
	}
}

func TestGDPRMinorTierIgnoresFloor(t *testing.T) {
	report, err := estimate.GDPRExposure(estimate.GDPRInput{
		DataSubjects:   100,
		AnnualTurnover: dec(10_000_000),
		DistressLevel:  estimate.DistressLow,
	}, band.BandBase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.FineBand != "minor" {
		t.Errorf("fine band = %q, want minor", report.FineBand)
	}
	if !report.MaxFine.Equal(dec(50_000)) {
		t.Errorf("max fine = %s, want 50000 (0.5%% of 10m)", report.MaxFine)
	}
}

func TestGDPRRejectsUnknownDistressLevel(t *testing.T) {
	_, err := estimate.GDPRExposure(estimate.GDPRInput{
		DataSubjects:  1,
		DistressLevel: "catastrophic",
	}, band.BandBase)
	if err == nil {
		t.Error("expected error for unknown distress level")
	}
}

func TestGDPRRejectsNegativeSubjects(t *testing.T) {
	_, err := estimate.GDPRExposure(estimate.GDPRInput{
		DataSubjects:  -5,
		DistressLevel: estimate.DistressLow,
	}, band.BandBase)
	if err == nil {
		t.Error("expected error for negative data subjects")
	}
}

func TestInsuranceReserveGap(t *testing.T) {
	fs, err := band.NewFlagSet()
	if err != nil {
		t.Fatalf("flags: %v", err)
	}

	report := estimate.InsuranceReserve(estimate.ReserveInput{
		CaseReserve:   dec(2_000_000),
		CoverageLimit: dec(10_000_000),
		IBNRPercent:   0.15,
	}, band.BandValidation, fs)

	// Exposure = £9m band max; IBNR = 15% of 9m = £1.35m; total = £3.35m.
	if !report.SettlementExposure.Equal(dec(9_000_000)) {
		t.Errorf("exposure = %s, want 9000000", report.SettlementExposure)
	}
	if !report.IBNRReserve.Equal(dec(1_350_000)) {
		t.Errorf("ibnr = %s, want 1350000", report.IBNRReserve)
	}
	if !report.TotalReserve.Equal(dec(3_350_000)) {
		t.Errorf("total reserve = %s, want 3350000", report.TotalReserve)
	}
	if !report.ReserveGap.Equal(dec(5_650_000)) {
		t.Errorf("gap = %s, want 5650000", report.ReserveGap)
	}
	if report.ReserveAdequate {
		t.Error("reserve should be inadequate with a positive gap")
	}
	if !report.WithinPolicyLimit {
		t.Error("£9m exposure is within the £10m policy limit")
	}
	if report.StressScore != 0 {
		t.Errorf("stress score = %v, want 0 with no tail flags", report.StressScore)
	}
}

func TestInsuranceReserveAdequate(t *testing.T) {
	fs, _ := band.NewFlagSet()
	report := estimate.InsuranceReserve(estimate.ReserveInput{
		CaseReserve:   dec(5_000_000),
		CoverageLimit: dec(10_000_000),
		IBNRPercent:   0.10,
	}, band.BandBase, fs)

	// Exposure £4m vs £5m case reserve + £0.4m IBNR.
	if !report.ReserveAdequate {
		t.Errorf("expected adequate reserve, gap = %s", report.ReserveGap)
	}
}

func TestCoverageStressScore(t *testing.T) {
	fs, err := band.NewFlagSet("sra_formal_action", "adverse_judicial_language")
	if err != nil {
		t.Fatalf("flags: %v", err)
	}

	report := estimate.InsuranceReserve(estimate.ReserveInput{
		CaseReserve:   dec(1_000_000),
		CoverageLimit: dec(10_000_000),
		IBNRPercent:   0.15,
	}, band.BandTail, fs)

	// 0.30 + 0.25 = 0.55: iniquity-exclusion territory.
	if report.StressScore != 0.55 {
		t.Errorf("stress score = %v, want 0.55", report.StressScore)
	}
	if report.StressLevel != "HIGH - Iniquity exclusion triggered" {
		t.Errorf("stress level = %q", report.StressLevel)
	}
	if len(report.TriggeredFlags) != 2 {
		t.Errorf("triggered flags = %v", report.TriggeredFlags)
	}
	// £15m TAIL exposure exceeds the £10m policy limit.
	if report.WithinPolicyLimit {
		t.Error("TAIL exposure should exceed the policy limit")
	}
}

func TestCoverageStressCapped(t *testing.T) {
	fs, err := band.NewFlagSet(
		"adverse_judicial_language",
		"sra_formal_action",
		"insurance_coverage_stress",
		"criminal_investigation_escalation",
		"shadow_director_proven",
	)
	if err != nil {
		t.Fatalf("flags: %v", err)
	}

	report := estimate.InsuranceReserve(estimate.ReserveInput{}, band.BandTail, fs)
	if report.StressScore != 1.0 {
		t.Errorf("stress score = %v, want capped at 1.0", report.StressScore)
	}
	if report.StressLevel != "CRITICAL - Coverage voidance likely" {
		t.Errorf("stress level = %q", report.StressLevel)
	}
}
