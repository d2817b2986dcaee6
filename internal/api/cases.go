package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/levquant/levquant/internal/casefile"
)

type createCaseRequest struct {
	Name       string `json:"name"`
	Reference  string `json:"reference"`
	Claimant   string `json:"claimant"`
	Respondent string `json:"respondent"`
}

func (h *Handler) handleCreateCase(w http.ResponseWriter, r *http.Request) {
	var req createCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := h.cases.CreateCase(r.Context(), casefile.Case{
		Name:       req.Name,
		Reference:  req.Reference,
		Claimant:   req.Claimant,
		Respondent: req.Respondent,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create case: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleListCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.cases.ListCases(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list cases: "+err.Error())
		return
	}
	if cases == nil {
		cases = []casefile.Case{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"cases": cases})
}

func (h *Handler) handleGetCase(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("caseID")

	c, err := h.cases.GetCase(r.Context(), caseID)
	if errors.Is(err, casefile.ErrNotFound) {
		writeError(w, http.StatusNotFound, "case not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get case: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}
