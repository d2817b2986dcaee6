// Package casefile manages persisted dispute cases and their saved
// analyses.
package casefile

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a case or analysis does not exist.
var ErrNotFound = errors.New("not found")

// Case is a persisted dispute case.
type Case struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Reference  string    `json:"reference,omitempty"`
	Claimant   string    `json:"claimant,omitempty"`
	Respondent string    `json:"respondent,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AnalysisRow is a saved analysis: the headline figures as columns for
// listing, the full analysis JSON as payload.
type AnalysisRow struct {
	ID            string          `json:"id"`
	CaseID        string          `json:"case_id"`
	LeverageScore float64         `json:"leverage_score"`
	CostPressure  float64         `json:"cost_pressure"`
	Decision      string          `json:"decision"`
	Confidence    string          `json:"confidence"`
	Triggered     bool            `json:"escalation_triggered"`
	Band          string          `json:"band"`
	EngineVersion string          `json:"engine_version"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Store persists cases and analyses. Analyses are append-only: saved once,
// never updated.
type Store interface {
	CreateCase(ctx context.Context, c Case) (*Case, error)
	GetCase(ctx context.Context, id string) (*Case, error)
	ListCases(ctx context.Context) ([]Case, error)
	SaveAnalysis(ctx context.Context, row AnalysisRow) (*AnalysisRow, error)
	GetAnalysis(ctx context.Context, caseID, analysisID string) (*AnalysisRow, error)
	ListAnalyses(ctx context.Context, caseID string) ([]AnalysisRow, error)
}
