package handlers

import (
	"net/http"

	"github.com/commitly/web/internal/adapters/http/dto"
	"github.com/commitly/web/internal/app/epoch"
	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

// NotificationHandler handles notification settings page and action
// endpoints, covering both per-channel settings and the Slack webhook
// integration.
type NotificationHandler struct {
	svc    ports.NotificationService
	epochs *epoch.Registry
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc ports.NotificationService, epochs *epoch.Registry) *NotificationHandler {
	return &NotificationHandler{svc: svc, epochs: epochs}
}

// NotificationsPage handles GET /api/pages/notifications.
func (h *NotificationHandler) NotificationsPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.NotificationsPage(r.Context(), identity(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNotificationsPageResponse(page, h.epochs.Current(epoch.PageNotifications)))
}

// CreateSetting handles POST /api/actions/notifications.
func (h *NotificationHandler) CreateSetting(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNotificationSettingRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	setting := domain.NotificationSetting{
		ChannelType: domain.ChannelType(req.ChannelType),
		WebhookURL:  req.WebhookURL,
		LineUserID:  req.LineUserID,
	}

	outcome := h.svc.CreateSetting(r.Context(), identity(r), setting)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}

// UpdateSetting handles PUT /api/actions/notifications/{id}.
func (h *NotificationHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	settingID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateNotificationSettingRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	setting := domain.NotificationSetting{
		ID:         settingID,
		IsEnabled:  req.IsEnabled,
		WebhookURL: req.WebhookURL,
		LineUserID: req.LineUserID,
	}

	outcome := h.svc.UpdateSetting(r.Context(), identity(r), setting)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}

// DeleteSetting handles DELETE /api/actions/notifications/{id}.
func (h *NotificationHandler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	settingID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	outcome := h.svc.DeleteSetting(r.Context(), identity(r), settingID)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}

// RegisterSlack handles POST /api/actions/notifications/slack.
func (h *NotificationHandler) RegisterSlack(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterSlackRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	outcome := h.svc.RegisterSlack(r.Context(), identity(r), req.WebhookURL)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}

// SetSlackEnabled handles PUT /api/actions/notifications/slack.
func (h *NotificationHandler) SetSlackEnabled(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSlackEnabledRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	outcome := h.svc.SetSlackEnabled(r.Context(), identity(r), req.IsEnabled)
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}

// RemoveSlack handles DELETE /api/actions/notifications/slack.
func (h *NotificationHandler) RemoveSlack(w http.ResponseWriter, r *http.Request) {
	outcome := h.svc.RemoveSlack(r.Context(), identity(r))
	writeJSON(w, http.StatusOK, dto.ToActionOutcomeResponse(outcome))
}
