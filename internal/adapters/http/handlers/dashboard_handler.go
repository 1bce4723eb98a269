package handlers

import (
	"net/http"

	"github.com/commitly/web/internal/adapters/http/dto"
	"github.com/commitly/web/internal/app/epoch"
	"github.com/commitly/web/internal/ports"
)

// DashboardHandler handles the dashboard page endpoint.
type DashboardHandler struct {
	svc    ports.DashboardService
	epochs *epoch.Registry
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc ports.DashboardService, epochs *epoch.Registry) *DashboardHandler {
	return &DashboardHandler{svc: svc, epochs: epochs}
}

// DashboardPage handles GET /api/pages/dashboard?period={weekly|monthly}.
// A missing period defaults to weekly; an unknown one yields 400.
func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	page, err := h.svc.DashboardPage(r.Context(), identity(r), period)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDashboardPageResponse(page, h.epochs.Current(epoch.PageDashboard)))
}
