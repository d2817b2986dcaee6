package engine_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/levquant/levquant/pkg/engine"
)

func mustInputs(t *testing.T, a, b, c float64) engine.EvidenceInputs {
	t.Helper()
	in, err := engine.NewEvidenceInputs(a, b, c)
	if err != nil {
		t.Fatalf("NewEvidenceInputs(%v, %v, %v): %v", a, b, c, err)
	}
	return in
}

func mustRun(t *testing.T, a, b, c float64) engine.Snapshot {
	t.Helper()
	snap, err := engine.Run(mustInputs(t, a, b, c))
	if err != nil {
		t.Fatalf("Run(%v, %v, %v): %v", a, b, c, err)
	}
	return snap
}

func TestGoldenScenarioHold(t *testing.T) {
	// 0.40*0.38 + 0.35*0.86 + 0.25*0.75 = 0.641
	snap := mustRun(t, 0.38, 0.86, 0.75)

	if snap.Scores.LeverageScore != 0.641 {
		t.Errorf("leverage score = %v, want 0.641", snap.Scores.LeverageScore)
	}
	if snap.Scores.CostPressure != 6.41 {
		t.Errorf("cost pressure = %v, want 6.41", snap.Scores.CostPressure)
	}
	if snap.Evaluation.Decision != engine.DecisionHold {
		t.Errorf("decision = %s, want HOLD", snap.Evaluation.Decision)
	}
	if snap.Evaluation.Confidence != engine.ConfidenceModerate {
		t.Errorf("confidence = %s, want Moderate", snap.Evaluation.Confidence)
	}
	if snap.Evaluation.Triggered {
		t.Error("expected escalation not triggered at cost pressure 6.41")
	}
}

func TestGoldenScenarioReject(t *testing.T) {
	snap := mustRun(t, 0.1, 0.1, 0.1)

	if snap.Scores.LeverageScore != 0.1 {
		t.Errorf("leverage score = %v, want 0.1", snap.Scores.LeverageScore)
	}
	if snap.Evaluation.Decision != engine.DecisionReject {
		t.Errorf("decision = %s, want REJECT", snap.Evaluation.Decision)
	}
}

func TestGoldenScenarioAccept(t *testing.T) {
	snap := mustRun(t, 1.0, 1.0, 1.0)

	if snap.Scores.LeverageScore != 1.0 {
		t.Errorf("leverage score = %v, want 1.0", snap.Scores.LeverageScore)
	}
	if snap.Scores.CostPressure != 10.0 {
		t.Errorf("cost pressure = %v, want 10.0", snap.Scores.CostPressure)
	}
	if snap.Evaluation.Decision != engine.DecisionAccept {
		t.Errorf("decision = %s, want ACCEPT", snap.Evaluation.Decision)
	}
	if !snap.Evaluation.Triggered {
		t.Error("expected escalation triggered at cost pressure 10.0")
	}
}

func TestLeverageScoreStaysInRange(t *testing.T) {
	steps := []float64{0.0, 0.25, 0.5, 0.75, 1.0}
	for _, a := range steps {
		for _, b := range steps {
			for _, c := range steps {
				snap := mustRun(t, a, b, c)
				if snap.Scores.LeverageScore < 0.0 || snap.Scores.LeverageScore > 1.0 {
					t.Fatalf("leverage score %v out of range for inputs (%v, %v, %v)",
						snap.Scores.LeverageScore, a, b, c)
				}
			}
		}
	}
}

func TestMonotonicityInEachInput(t *testing.T) {
	base := mustRun(t, 0.3, 0.4, 0.5)

	cases := []struct {
		name    string
		a, b, c float64
	}{
		{"claim validity", 0.6, 0.4, 0.5},
		{"procedural advantage", 0.3, 0.7, 0.5},
		{"cost asymmetry", 0.3, 0.4, 0.8},
	}
	for _, tc := range cases {
		raised := mustRun(t, tc.a, tc.b, tc.c)
		if raised.Scores.LeverageScore < base.Scores.LeverageScore {
			t.Errorf("raising %s decreased leverage: %v -> %v",
				tc.name, base.Scores.LeverageScore, raised.Scores.LeverageScore)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	first := mustRun(t, 0.38, 0.86, 0.75)
	second := mustRun(t, 0.38, 0.86, 0.75)

	if first != second {
		t.Errorf("identical inputs produced different snapshots:\n%+v\n%+v", first, second)
	}
}

func TestDecisionExhaustiveAndDisjoint(t *testing.T) {
	known := map[engine.Decision]bool{
		engine.DecisionReject:  true,
		engine.DecisionCounter: true,
		engine.DecisionHold:    true,
		engine.DecisionAccept:  true,
	}

	// Sweep the leverage domain, including values at and around boundaries.
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		snap := mustRun(t, v, v, v) // weights sum to 1, so leverage == v
		if !known[snap.Evaluation.Decision] {
			t.Fatalf("unknown decision %q at leverage %v", snap.Evaluation.Decision, v)
		}
	}
}

func TestDecisionBoundaries(t *testing.T) {
	cases := []struct {
		leverage float64
		want     engine.Decision
	}{
		{0.0, engine.DecisionReject},
		{0.299, engine.DecisionReject},
		{0.30, engine.DecisionCounter},
		{0.499, engine.DecisionCounter},
		{0.50, engine.DecisionHold},
		{0.70, engine.DecisionHold},
		{0.849, engine.DecisionHold},
		{0.85, engine.DecisionAccept},
		{1.0, engine.DecisionAccept},
	}
	for _, tc := range cases {
		snap := mustRun(t, tc.leverage, tc.leverage, tc.leverage)
		if snap.Evaluation.Decision != tc.want {
			t.Errorf("leverage %v: decision = %s, want %s", tc.leverage, snap.Evaluation.Decision, tc.want)
		}
	}
}

func TestConfidenceTracksBoundaryDistance(t *testing.T) {
	cases := []struct {
		leverage float64
		want     engine.Confidence
	}{
		{0.31, engine.ConfidenceLow},      // 0.01 from the 0.30 boundary
		{0.49, engine.ConfidenceLow},      // 0.01 from the 0.50 boundary
		{0.40, engine.ConfidenceModerate}, // 0.10 from both
		{0.641, engine.ConfidenceModerate},
		{0.10, engine.ConfidenceHigh},
		{0.675, engine.ConfidenceHigh}, // mid-HOLD
		{1.0, engine.ConfidenceHigh},
	}
	for _, tc := range cases {
		snap := mustRun(t, tc.leverage, tc.leverage, tc.leverage)
		if snap.Evaluation.Confidence != tc.want {
			t.Errorf("leverage %v: confidence = %s, want %s", tc.leverage, snap.Evaluation.Confidence, tc.want)
		}
	}
}

func TestEscalationIndependentOfDecision(t *testing.T) {
	// Leverage 0.78 is a HOLD, but cost pressure 7.8 crosses the
	// escalation threshold.
	snap := mustRun(t, 0.78, 0.78, 0.78)

	if snap.Evaluation.Decision != engine.DecisionHold {
		t.Fatalf("decision = %s, want HOLD", snap.Evaluation.Decision)
	}
	if !snap.Evaluation.Triggered {
		t.Error("expected escalation triggered at cost pressure 7.8")
	}
}

func TestInputValidation(t *testing.T) {
	cases := []struct{ a, b, c float64 }{
		{-0.1, 0.5, 0.5},
		{0.5, 1.1, 0.5},
		{0.5, 0.5, 2.0},
		// Non-finite values are outside [0,1] too; NaN in particular must
		// not pass the range check and drift through to a decision.
		{math.NaN(), 0.5, 0.5},
		{0.5, math.NaN(), 0.5},
		{0.5, 0.5, math.NaN()},
		{math.Inf(1), 0.5, 0.5},
		{0.5, math.Inf(-1), 0.5},
	}
	for _, tc := range cases {
		_, err := engine.NewEvidenceInputs(tc.a, tc.b, tc.c)
		if err == nil {
			t.Errorf("NewEvidenceInputs(%v, %v, %v): expected error", tc.a, tc.b, tc.c)
			continue
		}
		var de *engine.DomainError
		if !errors.As(err, &de) {
			t.Errorf("expected *DomainError, got %T", err)
		}
	}
}

func TestSnapshotCarriesVersion(t *testing.T) {
	snap := mustRun(t, 0.5, 0.5, 0.5)
	if snap.EngineVersion != engine.Version {
		t.Errorf("engine version = %q, want %q", snap.EngineVersion, engine.Version)
	}
}

func TestInterpretationUsesQualifiedLanguage(t *testing.T) {
	for _, v := range []float64{0.1, 0.4, 0.6, 0.78, 0.95} {
		snap := mustRun(t, v, v, v)
		texts := []string{
			snap.Interpretation.LeveragePosition,
			snap.Interpretation.DecisionExplanation,
			snap.Interpretation.PressureStatus,
			snap.Interpretation.ConfidenceExplanation,
		}
		for _, s := range texts {
			if s == "" {
				t.Fatalf("empty interpretation text at leverage %v: %+v", v, snap.Interpretation)
			}
		}
		for _, banned := range []string{"guaranteed", "proven", "will win", "certain"} {
			for _, s := range texts {
				if strings.Contains(strings.ToLower(s), banned) {
					t.Errorf("interpretation contains absolute claim %q: %s", banned, s)
				}
			}
		}
	}
}
