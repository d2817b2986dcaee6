package surface_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/levquant/levquant/pkg/surface"
)

func TestRenderLetter(t *testing.T) {
	var buf bytes.Buffer
	err := surface.RenderLetter(&buf, surface.LetterData{
		Analysis:       sampleAnalysis(t, "judicial_comment_on_record"),
		Claimant:       "Meridian Holdings Ltd",
		Respondent:     "Blackwood Partners LLP",
		PrincipalClaim: decimal.NewFromInt(2_100_000),
	})
	if err != nil {
		t.Fatalf("RenderLetter() error: %v", err)
	}

	output := buf.String()

	if !strings.HasPrefix(output, "WITHOUT PREJUDICE SAVE AS TO COSTS") {
		t.Error("letter must open with the without-prejudice header")
	}
	if !strings.Contains(output, "Re: Meridian Holdings Ltd v Blackwood Partners LLP") {
		t.Error("expected Re: line with party names")
	}
	if !strings.Contains(output, "CURRENT SETTLEMENT BAND: Validation Settlement Band") {
		t.Error("expected current band heading")
	}
	if !strings.Contains(output, "£5.0m–£9.0m") {
		t.Error("expected band range")
	}
	if !strings.Contains(output, "Judicial Comment On Record") {
		t.Error("expected active flag in display form")
	}
	if !strings.Contains(output, "WHAT MOVES THIS UP A BAND?") {
		t.Error("expected what-moves-up section")
	}
	if !strings.Contains(output, "Band Methodology Note:") {
		t.Error("expected methodology note")
	}

	// Monetary breakdown: £5m floor = £2.1m principal + £2.9m premium.
	if !strings.Contains(output, "£5,000,000") {
		t.Error("expected settlement floor £5,000,000")
	}
	if !strings.Contains(output, "£2,100,000") {
		t.Error("expected principal claim £2,100,000")
	}
	if !strings.Contains(output, "£2,900,000") {
		t.Error("expected leverage premium £2,900,000")
	}
	if !strings.Contains(output, "open for 14 days") {
		t.Error("expected default 14-day window")
	}
}

func TestRenderLetterQualifiedLanguage(t *testing.T) {
	var buf bytes.Buffer
	err := surface.RenderLetter(&buf, surface.LetterData{
		Analysis:       sampleAnalysis(t, "adverse_judicial_language", "sra_formal_action"),
		Claimant:       "A",
		Respondent:     "B",
		PrincipalClaim: decimal.NewFromInt(66_000),
	})
	if err != nil {
		t.Fatalf("RenderLetter() error: %v", err)
	}

	lower := strings.ToLower(buf.String())
	for _, banned := range []string{"guaranteed", "will win", "fraud is proven", "certain to"} {
		if strings.Contains(lower, banned) {
			t.Errorf("letter contains absolute claim %q", banned)
		}
	}
}

func TestRenderLetterNilAnalysis(t *testing.T) {
	var buf bytes.Buffer
	if err := surface.RenderLetter(&buf, surface.LetterData{}); err == nil {
		t.Error("expected error for nil analysis")
	}
}
