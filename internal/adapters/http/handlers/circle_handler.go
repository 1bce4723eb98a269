package handlers

import (
	"net/http"

	"github.com/commitly/web/internal/adapters/http/dto"
	"github.com/commitly/web/internal/app/epoch"
	"github.com/commitly/web/internal/ports"
)

// CircleHandler handles circle page and action endpoints.
type CircleHandler struct {
	svc    ports.CircleService
	epochs *epoch.Registry
}

// NewCircleHandler creates a new CircleHandler.
func NewCircleHandler(svc ports.CircleService, epochs *epoch.Registry) *CircleHandler {
	return &CircleHandler{svc: svc, epochs: epochs}
}

// CirclesPage handles GET /api/pages/circles.
func (h *CircleHandler) CirclesPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.CirclesPage(r.Context(), identity(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCirclesPageResponse(page, h.epochs.Current(epoch.PageCircles)))
}

// CircleDetailPage handles GET /api/pages/circles/{id}. Returns 404 when
// the user has no circle with the given id.
func (h *CircleHandler) CircleDetailPage(w http.ResponseWriter, r *http.Request) {
	circleID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.svc.CircleDetailPage(r.Context(), identity(r), circleID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCircleDetailPageResponse(page, h.epochs.Current(epoch.PageCircles)))
}

// CreateCircle handles POST /api/actions/circles.
func (h *CircleHandler) CreateCircle(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCircleRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	outcome := h.svc.CreateCircle(r.Context(), identity(r), req.Name)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}

// JoinCircle handles POST /api/actions/circles/join.
func (h *CircleHandler) JoinCircle(w http.ResponseWriter, r *http.Request) {
	var req dto.JoinCircleRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	outcome := h.svc.JoinCircle(r.Context(), identity(r), req.InviteCode)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}

// LeaveCircle handles POST /api/actions/circles/{id}/leave.
func (h *CircleHandler) LeaveCircle(w http.ResponseWriter, r *http.Request) {
	circleID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	outcome := h.svc.LeaveCircle(r.Context(), identity(r), circleID)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}

// DeleteCircle handles DELETE /api/actions/circles/{id}.
func (h *CircleHandler) DeleteCircle(w http.ResponseWriter, r *http.Request) {
	circleID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	outcome := h.svc.DeleteCircle(r.Context(), identity(r), circleID)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}
