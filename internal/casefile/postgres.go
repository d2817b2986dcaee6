package casefile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Service provides case and analysis persistence backed by Postgres.
type Service struct {
	db *sql.DB
}

// NewService creates a new casefile Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) CreateCase(ctx context.Context, c Case) (*Case, error) {
	out := &Case{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO cases (name, reference, claimant, respondent)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, reference, claimant, respondent, created_at`,
		c.Name, c.Reference, c.Claimant, c.Respondent,
	).Scan(&out.ID, &out.Name, &out.Reference, &out.Claimant, &out.Respondent, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create case %s: %w", c.Name, err)
	}
	return out, nil
}

func (s *Service) GetCase(ctx context.Context, id string) (*Case, error) {
	out := &Case{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, reference, claimant, respondent, created_at
		 FROM cases WHERE id = $1`,
		id,
	).Scan(&out.ID, &out.Name, &out.Reference, &out.Claimant, &out.Respondent, &out.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get case %s: %w", id, err)
	}
	return out, nil
}

func (s *Service) ListCases(ctx context.Context) ([]Case, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, reference, claimant, respondent, created_at
		 FROM cases ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	var cases []Case
	for rows.Next() {
		var c Case
		if err := rows.Scan(&c.ID, &c.Name, &c.Reference, &c.Claimant, &c.Respondent, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}

func (s *Service) SaveAnalysis(ctx context.Context, row AnalysisRow) (*AnalysisRow, error) {
	out := row
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO analyses (case_id, leverage_score, cost_pressure, decision,
		                       confidence, triggered, band, engine_version, payload)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		row.CaseID, row.LeverageScore, row.CostPressure, row.Decision,
		row.Confidence, row.Triggered, row.Band, row.EngineVersion, row.Payload,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save analysis for case %s: %w", row.CaseID, err)
	}
	return &out, nil
}

func (s *Service) GetAnalysis(ctx context.Context, caseID, analysisID string) (*AnalysisRow, error) {
	out := &AnalysisRow{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, case_id, leverage_score, cost_pressure, decision,
		        confidence, triggered, band, engine_version, payload, created_at
		 FROM analyses WHERE case_id = $1 AND id = $2`,
		caseID, analysisID,
	).Scan(
		&out.ID, &out.CaseID, &out.LeverageScore, &out.CostPressure, &out.Decision,
		&out.Confidence, &out.Triggered, &out.Band, &out.EngineVersion, &out.Payload, &out.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis %s: %w", analysisID, err)
	}
	return out, nil
}

func (s *Service) ListAnalyses(ctx context.Context, caseID string) ([]AnalysisRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, case_id, leverage_score, cost_pressure, decision,
		        confidence, triggered, band, engine_version, created_at
		 FROM analyses WHERE case_id = $1 ORDER BY created_at DESC`,
		caseID,
	)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisRow
	for rows.Next() {
		var a AnalysisRow
		if err := rows.Scan(
			&a.ID, &a.CaseID, &a.LeverageScore, &a.CostPressure, &a.Decision,
			&a.Confidence, &a.Triggered, &a.Band, &a.EngineVersion, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}
