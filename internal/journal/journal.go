// Package journal keeps the append-only case journal: free-text context
// notes with UTC timestamps and an optional fact-status classification.
// Entries are never updated or deleted; stores expose append and read only.
package journal

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// FactStatus classifies how solid a journal note is.
type FactStatus string

const (
	FactRealised    FactStatus = "REALISED"
	FactEvidenced   FactStatus = "EVIDENCED"
	FactAlleged     FactStatus = "ALLEGED"
	FactProspective FactStatus = "PROSPECTIVE"
)

var factStatuses = map[FactStatus]bool{
	FactRealised:    true,
	FactEvidenced:   true,
	FactAlleged:     true,
	FactProspective: true,
}

// Entry is one journal record. FactStatus may be empty for unclassified
// notes.
type Entry struct {
	ID         string     `json:"id"`
	CaseID     string     `json:"case_id"`
	Timestamp  time.Time  `json:"timestamp_utc"`
	EntryType  string     `json:"entry_type"`
	Source     string     `json:"source"`
	Text       string     `json:"text"`
	FactStatus FactStatus `json:"fact_status,omitempty"`
}

// NewEntry validates and normalizes a journal entry before it is stored.
// Text must be non-empty once trimmed; an unknown fact status is rejected.
func NewEntry(caseID, entryType, source, text string, status FactStatus) (Entry, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Entry{}, fmt.Errorf("journal entry text cannot be empty or whitespace-only")
	}
	if status != "" && !factStatuses[status] {
		return Entry{}, fmt.Errorf("invalid fact status %q: must be REALISED, EVIDENCED, ALLEGED, or PROSPECTIVE", status)
	}
	if entryType == "" {
		entryType = "text"
	}
	if source == "" {
		source = "user"
	}
	return Entry{
		CaseID:     caseID,
		EntryType:  entryType,
		Source:     source,
		Text:       trimmed,
		FactStatus: status,
	}, nil
}

// Store is an append-only journal backend. Append assigns the entry's ID
// and timestamp; List returns a case's entries oldest first.
type Store interface {
	Append(ctx context.Context, e Entry) (Entry, error)
	List(ctx context.Context, caseID string) ([]Entry, error)
}
