package api

import (
	"encoding/json"
	"net/http"

	"github.com/levquant/levquant/pkg/band"
)

type resolveBandRequest struct {
	Flags []string `json:"flags"`
}

// handleResolveBand resolves the settlement band for a flag set without
// touching any stored case.
func (h *Handler) handleResolveBand(w http.ResponseWriter, r *http.Request) {
	var req resolveBandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	fs, err := band.NewFlagSet(req.Flags...)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, band.Summarize(fs))
}
