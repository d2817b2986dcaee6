package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/levquant/levquant/internal/casefile"
	"github.com/levquant/levquant/pkg/analysis"
	"github.com/levquant/levquant/pkg/band"
	"github.com/levquant/levquant/pkg/engine"
)

type runAnalysisRequest struct {
	ClaimValidity       float64  `json:"claim_validity"`
	ProceduralAdvantage float64  `json:"procedural_advantage"`
	CostAsymmetry       float64  `json:"cost_asymmetry"`
	Flags               []string `json:"flags"`
}

func (h *Handler) handleRunAnalysis(w http.ResponseWriter, r *http.Request) {
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

	var req runAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	in, err := engine.NewEvidenceInputs(req.ClaimValidity, req.ProceduralAdvantage, req.CostAsymmetry)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	fs, err := band.NewFlagSet(req.Flags...)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	a, err := analysis.New(c.Name, c.Reference, in, fs, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "analysis failed: "+err.Error())
		return
	}

	payload, err := json.Marshal(a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode analysis: "+err.Error())
		return
	}

	saved, err := h.cases.SaveAnalysis(r.Context(), casefile.AnalysisRow{
		CaseID:        caseID,
		LeverageScore: a.Snapshot.Scores.LeverageScore,
		CostPressure:  a.Snapshot.Scores.CostPressure,
		Decision:      string(a.Snapshot.Evaluation.Decision),
		Confidence:    string(a.Snapshot.Evaluation.Confidence),
		Triggered:     a.Snapshot.Evaluation.Triggered,
		Band:          string(a.Band.CurrentBand),
		EngineVersion: a.Snapshot.EngineVersion,
		Payload:       payload,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save analysis: "+err.Error())
		return
	}

	// Archive is best-effort: the saved row is the source of truth.
	if h.storage != nil {
		if err := h.storage.PutAnalysis(r.Context(), caseID, saved.ID, payload); err != nil {
			log.Printf("archive analysis %s: %v", saved.ID, err)
		}
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("caseID")

	rows, err := h.cases.ListAnalyses(r.Context(), caseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list analyses: "+err.Error())
		return
	}
	if rows == nil {
		rows = []casefile.AnalysisRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"analyses": rows})
}

func (h *Handler) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("caseID")
	analysisID := r.PathValue("analysisID")

	row, err := h.cases.GetAnalysis(r.Context(), caseID, analysisID)
	if errors.Is(err, casefile.ErrNotFound) {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get analysis: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, row)
}
