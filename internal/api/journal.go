package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/levquant/levquant/internal/casefile"
	"github.com/levquant/levquant/internal/journal"
)

type appendJournalRequest struct {
	EntryType  string `json:"entry_type"`
	Source     string `json:"source"`
	Text       string `json:"text"`
	FactStatus string `json:"fact_status"`
}

func (h *Handler) handleAppendJournal(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("caseID")

	if _, err := h.cases.GetCase(r.Context(), caseID); err != nil {
		if errors.Is(err, casefile.ErrNotFound) {
			writeError(w, http.StatusNotFound, "case not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get case: "+err.Error())
		return
	}

	var req appendJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	entry, err := journal.NewEntry(caseID, req.EntryType, req.Source, req.Text, journal.FactStatus(req.FactStatus))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	stored, err := h.journal.Append(r.Context(), entry)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to append entry: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) handleListJournal(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("caseID")

	entries, err := h.journal.List(r.Context(), caseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entries: "+err.Error())
		return
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}
