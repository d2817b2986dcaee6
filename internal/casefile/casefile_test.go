package casefile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMemoryStoreCases(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.CreateCase(ctx, Case{
		Name:       "Meridian v Blackwood",
		Reference:  "CL-2026-000317",
		Claimant:   "Meridian Holdings Ltd",
		Respondent: "Blackwood Partners LLP",
	})
	if err != nil {
		t.Fatalf("CreateCase: %v", err)
	}
	if created.ID == "" {
		t.Error("expected assigned case id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected assigned created_at")
	}

	got, err := s.GetCase(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Name != "Meridian v Blackwood" {
		t.Errorf("name = %q", got.Name)
	}

	cases, err := s.ListCases(ctx)
	if err != nil {
		t.Fatalf("ListCases: %v", err)
	}
	if len(cases) != 1 {
		t.Errorf("listed %d cases, want 1", len(cases))
	}
}

func TestMemoryStoreGetCaseNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetCase(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreAnalyses(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	c, err := s.CreateCase(ctx, Case{Name: "Test"})
	if err != nil {
		t.Fatalf("CreateCase: %v", err)
	}

	row := AnalysisRow{
		CaseID:        c.ID,
		LeverageScore: 0.641,
		CostPressure:  6.41,
		Decision:      "HOLD",
		Confidence:    "Moderate",
		Band:          "VALIDATION",
		EngineVersion: "1.3.0",
		Payload:       json.RawMessage(`{"case_name":"Test"}`),
	}
	saved, err := s.SaveAnalysis(ctx, row)
	if err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected assigned analysis id")
	}

	got, err := s.GetAnalysis(ctx, c.ID, saved.ID)
	if err != nil {
		t.Fatalf("GetAnalysis: %v", err)
	}
	if got.LeverageScore != 0.641 || got.Decision != "HOLD" {
		t.Errorf("analysis row = %+v", got)
	}

	listed, err := s.ListAnalyses(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListAnalyses: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("listed %d analyses, want 1", len(listed))
	}
}

func TestMemoryStoreSaveAnalysisUnknownCase(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.SaveAnalysis(context.Background(), AnalysisRow{CaseID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNewService(t *testing.T) {
	// NewService should not panic with nil db (it just stores the reference).
	svc := NewService(nil)
	if svc == nil {
		t.Fatal("NewService returned nil")
	}
	// Compile-time check that the Postgres service satisfies Store.
	var _ Store = svc
	var _ Store = NewMemoryStore()
}
