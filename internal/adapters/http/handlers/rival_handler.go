package handlers

import (
	"net/http"

	"github.com/commitly/web/internal/adapters/http/dto"
	"github.com/commitly/web/internal/app/epoch"
	"github.com/commitly/web/internal/ports"
)

// RivalHandler handles rival page and action endpoints.
type RivalHandler struct {
	svc    ports.RivalService
	epochs *epoch.Registry
}

// NewRivalHandler creates a new RivalHandler.
func NewRivalHandler(svc ports.RivalService, epochs *epoch.Registry) *RivalHandler {
	return &RivalHandler{svc: svc, epochs: epochs}
}

// RivalsPage handles GET /api/pages/rivals.
func (h *RivalHandler) RivalsPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.RivalsPage(r.Context(), identity(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRivalsPageResponse(page, h.epochs.Current(epoch.PageRivals)))
}

// AddRival handles POST /api/actions/rivals.
func (h *RivalHandler) AddRival(w http.ResponseWriter, r *http.Request) {
	var req dto.AddRivalRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	outcome := h.svc.AddRival(r.Context(), identity(r), req.Username)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}

// RemoveRival handles DELETE /api/actions/rivals/{id}. The id is the
// rival's GitHub user id.
func (h *RivalHandler) RemoveRival(w http.ResponseWriter, r *http.Request) {
	rivalID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	outcome := h.svc.RemoveRival(r.Context(), identity(r), rivalID)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}
