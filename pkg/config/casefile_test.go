package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadCaseFile(t *testing.T) {
	cf, err := LoadCaseFile(filepath.Join("testdata", "meridian.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cf.Name != "Meridian v Blackwood" {
		t.Errorf("name = %q", cf.Name)
	}
	if cf.Reference != "CL-2026-000317" {
		t.Errorf("reference = %q", cf.Reference)
	}
	if cf.Inputs.ClaimValidity != 0.38 || cf.Inputs.ProceduralAdvantage != 0.86 || cf.Inputs.CostAsymmetry != 0.75 {
		t.Errorf("inputs = %+v", cf.Inputs)
	}
	if len(cf.Flags) != 2 {
		t.Errorf("flags = %v, want 2", cf.Flags)
	}
	if !cf.Monetary.PrincipalDebt.Equal(decimal.NewFromInt(2_100_000)) {
		t.Errorf("principal debt = %s", cf.Monetary.PrincipalDebt)
	}
	if cf.GDPR.DataSubjects != 1200 {
		t.Errorf("data subjects = %d", cf.GDPR.DataSubjects)
	}
	if cf.GDPR.DistressLevel != "moderate" {
		t.Errorf("distress level = %q", cf.GDPR.DistressLevel)
	}
	if cf.Insurance.IBNRPercent != 0.15 {
		t.Errorf("ibnr percent = %v", cf.Insurance.IBNRPercent)
	}
}

func TestLoadCaseFileMissing(t *testing.T) {
	_, err := LoadCaseFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing case file")
	}
}

func TestLoadCaseFileRequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	if err := os.WriteFile(path, []byte("inputs:\n  claim_validity: 0.5\n"), 0o644); err != nil {
		t.Fatalf("write case file: %v", err)
	}
	_, err := LoadCaseFile(path)
	if err == nil {
		t.Fatal("expected error for case file without a name")
	}
}
