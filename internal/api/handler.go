// Package api implements the hosted Levquant REST API: case management,
// analysis runs, band resolution, and the case journal.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/levquant/levquant/internal/archive"
	"github.com/levquant/levquant/internal/casefile"
	"github.com/levquant/levquant/internal/journal"
)

// Handler is the top-level API handler for the hosted Levquant service.
type Handler struct {
	db      *sql.DB // nil in handler tests; used by the health check only
	cases   casefile.Store
	journal journal.Store
	storage archive.StorageClient // optional analysis archive
}

// NewHandler creates a new API handler. storage may be nil, in which case
// analyses are persisted to the case store only.
func NewHandler(db *sql.DB, cases casefile.Store, js journal.Store, storage archive.StorageClient) *Handler {
	return &Handler{
		db:      db,
		cases:   cases,
		journal: js,
		storage: storage,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints
	mux.HandleFunc("POST /api/v1/cases", h.handleCreateCase)
	mux.HandleFunc("POST /api/v1/cases/{caseID}/analyses", h.handleRunAnalysis)
	mux.HandleFunc("POST /api/v1/cases/{caseID}/journal", h.handleAppendJournal)

	// Read endpoints
	mux.HandleFunc("GET /api/v1/cases", h.handleListCases)
	mux.HandleFunc("GET /api/v1/cases/{caseID}", h.handleGetCase)
	mux.HandleFunc("GET /api/v1/cases/{caseID}/analyses", h.handleListAnalyses)
	mux.HandleFunc("GET /api/v1/cases/{caseID}/analyses/{analysisID}", h.handleGetAnalysis)
	mux.HandleFunc("GET /api/v1/cases/{caseID}/journal", h.handleListJournal)

	// Stateless band resolution
	mux.HandleFunc("POST /api/v1/band", h.handleResolveBand)

	mux.HandleFunc("GET /healthz", h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
