package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresStore persists journal entries in Postgres. The table has no
// UPDATE or DELETE path; rows are inserted and read back in insertion
// order.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a journal store on an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, e Entry) (Entry, error) {
	var status sql.NullString
	if e.FactStatus != "" {
		status = sql.NullString{String: string(e.FactStatus), Valid: true}
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO journal_entries (case_id, entry_type, source, text, fact_status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		e.CaseID, e.EntryType, e.Source, e.Text, status, time.Now().UTC(),
	).Scan(&e.ID, &e.Timestamp)
	if err != nil {
		return Entry{}, fmt.Errorf("append journal entry: %w", err)
	}
	e.Timestamp = e.Timestamp.UTC()
	return e, nil
}

func (s *PostgresStore) List(ctx context.Context, caseID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, case_id, entry_type, source, text, fact_status, created_at
		 FROM journal_entries WHERE case_id = $1 ORDER BY created_at, id`,
		caseID,
	)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var status sql.NullString
		if err := rows.Scan(&e.ID, &e.CaseID, &e.EntryType, &e.Source, &e.Text, &status, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		if status.Valid {
			e.FactStatus = FactStatus(status.String)
		}
		e.Timestamp = e.Timestamp.UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
