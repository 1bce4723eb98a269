package handlers

import (
	"net/http"

	"github.com/commitly/web/internal/adapters/http/dto"
	"github.com/commitly/web/internal/app/epoch"
	"github.com/commitly/web/internal/ports"
)

// ActivityHandler handles the activity page endpoint.
type ActivityHandler struct {
	svc    ports.ActivityService
	epochs *epoch.Registry
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(svc ports.ActivityService, epochs *epoch.Registry) *ActivityHandler {
	return &ActivityHandler{svc: svc, epochs: epochs}
}

// ActivityPage handles GET /api/pages/activity.
func (h *ActivityHandler) ActivityPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ActivityPage(r.Context(), identity(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActivityPageResponse(page, h.epochs.Current(epoch.PageActivity)))
}
