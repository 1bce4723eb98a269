package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/commitly/web/internal/adapters/clients/acl/activity"
	"github.com/commitly/web/internal/adapters/clients/acl/circle"
	"github.com/commitly/web/internal/adapters/clients/acl/dashboard"
	"github.com/commitly/web/internal/adapters/clients/acl/notification"
	"github.com/commitly/web/internal/adapters/clients/acl/rival"
	"github.com/commitly/web/internal/adapters/clients/acl/signal"
	"github.com/commitly/web/internal/adapters/clients/acl/user"
	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/platform/httpclient"
	"github.com/commitly/web/internal/ports"
)

// Compile-time interface check.
var _ ports.BackendClient = (*CommitlyClient)(nil)

// CommitlyClient is the outbound adapter for the Commitly backend API.
// It implements [ports.BackendClient].
//
// All methods translate between our domain types and the backend's
// representations via the ACL translators in sub-packages. Backend
// error responses are carried verbatim as *domain.BackendError by
// [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry
// with exponential backoff, OpenTelemetry tracing, and health checking
// for every outbound call.
type CommitlyClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewCommitlyClient creates a CommitlyClient that sends requests through
// the given [httpclient.Client]. The client's BaseURL should point to
// the backend API root (e.g. "https://api.commitly.example.com"). The
// logger is used for error-level diagnostics on failed or unexpected
// responses.
func NewCommitlyClient(client *httpclient.Client, logger *slog.Logger) *CommitlyClient {
	return &CommitlyClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// --- Auth operations ---

// UpsertUser sends a POST /api/auth/callback with the sign-in profile.
// The backend creates or refreshes the user record; the returned user
// payload is not needed here.
func (c *CommitlyClient) UpsertUser(ctx context.Context, profile domain.GitHubProfile) error {
	reqDTO := user.ToAuthCallbackRequest(profile)
	return c.req.DoPublic(ctx, http.MethodPost, "/api/auth/callback", http.StatusOK, reqDTO, nil)
}

// --- Activity operations ---

// ActivityStream fetches GET /api/activity/stream: the recent commit
// stream for the user and their rivals.
func (c *CommitlyClient) ActivityStream(ctx context.Context, id domain.Identity) (*domain.ActivityStream, error) {
	var dto activity.StreamResponseDTO
	if err := c.req.Do(ctx, id, http.MethodGet, "/api/activity/stream", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return activity.ToDomainStream(dto), nil
}

// ActivityRhythm fetches GET /api/activity/rhythm: the weekly commit
// rhythm for the user and their rivals.
func (c *CommitlyClient) ActivityRhythm(ctx context.Context, id domain.Identity) (*domain.Rhythm, error) {
	var dto activity.RhythmResponseDTO
	if err := c.req.Do(ctx, id, http.MethodGet, "/api/activity/rhythm", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return activity.ToDomainRhythm(dto), nil
}

// --- Circle operations ---

// ListCircles fetches GET /api/circles with plan-quota metadata.
func (c *CommitlyClient) ListCircles(ctx context.Context, id domain.Identity) (*domain.CircleList, error) {
	var dto circle.ListResponseDTO
	if err := c.req.Do(ctx, id, http.MethodGet, "/api/circles", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return circle.ToDomainCircleList(dto), nil
}

// CreateCircle sends a POST /api/circles and returns the created circle.
func (c *CommitlyClient) CreateCircle(ctx context.Context, id domain.Identity, name string) (*domain.Circle, error) {
	reqDTO := circle.CreateRequestDTO{Name: name}

	var respDTO circle.CircleDTO
	if err := c.req.Do(ctx, id, http.MethodPost, "/api/circles", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	result := circle.ToDomainCircle(&respDTO)
	return &result, nil
}

// JoinCircle sends a POST /api/circles/join with the invite code and
// returns the joined circle.
func (c *CommitlyClient) JoinCircle(ctx context.Context, id domain.Identity, inviteCode string) (*domain.Circle, error) {
	reqDTO := circle.JoinRequestDTO{InviteCode: inviteCode}

	var respDTO circle.CircleDTO
	if err := c.req.Do(ctx, id, http.MethodPost, "/api/circles/join", http.StatusOK, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	result := circle.ToDomainCircle(&respDTO)
	return &result, nil
}

// LeaveCircle sends a DELETE /api/circles/{id}/leave.
func (c *CommitlyClient) LeaveCircle(ctx context.Context, id domain.Identity, circleID uint64) error {
	path := fmt.Sprintf("/api/circles/%d/leave", circleID)
	return c.req.Do(ctx, id, http.MethodDelete, path, http.StatusNoContent, nil, nil)
}

// DeleteCircle sends a DELETE /api/circles/{id}. Only the owner may
// delete a circle; the backend rejects anyone else.
func (c *CommitlyClient) DeleteCircle(ctx context.Context, id domain.Identity, circleID uint64) error {
	path := fmt.Sprintf("/api/circles/%d", circleID)
	return c.req.Do(ctx, id, http.MethodDelete, path, http.StatusNoContent, nil, nil)
}

// --- Signal operations ---

// CircleSignals fetches GET /api/circles/{id}/signals.
func (c *CommitlyClient) CircleSignals(ctx context.Context, id domain.Identity, circleID uint64) ([]domain.Signal, error) {
	path := fmt.Sprintf("/api/circles/%d/signals", circleID)

	var dto signal.ListResponseDTO
	if err := c.req.Do(ctx, id, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return signal.ToDomainSignals(dto), nil
}

// RecentSignals fetches GET /api/signals/recent across all of the
// user's circles.
func (c *CommitlyClient) RecentSignals(ctx context.Context, id domain.Identity) ([]domain.Signal, error) {
	var dto signal.ListResponseDTO
	if err := c.req.Do(ctx, id, http.MethodGet, "/api/signals/recent", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return signal.ToDomainSignals(dto), nil
}

// --- Dashboard operations ---

// Dashboard fetches GET /api/dashboard/{period}. The period must be
// "weekly" or "monthly"; the backend has a separate route for each.
func (c *CommitlyClient) Dashboard(ctx context.Context, id domain.Identity, period string) (*domain.Dashboard, error) {
	path := "/api/dashboard/" + period

	var dto dashboard.ResponseDTO
	if err := c.req.Do(ctx, id, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return dashboard.ToDomainDashboard(dto), nil
}

// --- Rival operations ---

// ListRivals fetches GET /api/rivals with plan-quota metadata.
func (c *CommitlyClient) ListRivals(ctx context.Context, id domain.Identity) (*domain.RivalList, error) {
	var dto rival.ListResponseDTO
	if err := c.req.Do(ctx, id, http.MethodGet, "/api/rivals", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return rival.ToDomainRivalList(dto), nil
}

// AddRival sends a POST /api/rivals with the rival's GitHub username and
// returns the added rival.
func (c *CommitlyClient) AddRival(ctx context.Context, id domain.Identity, githubUsername string) (*domain.Rival, error) {
	reqDTO := rival.AddRequestDTO{Username: githubUsername}

	var respDTO rival.RivalDTO
	if err := c.req.Do(ctx, id, http.MethodPost, "/api/rivals", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	result := rival.ToDomainRival(&respDTO)
	return &result, nil
}

// RemoveRival sends a DELETE /api/rivals/{id}.
func (c *CommitlyClient) RemoveRival(ctx context.Context, id domain.Identity, rivalGitHubUserID uint64) error {
	path := fmt.Sprintf("/api/rivals/%d", rivalGitHubUserID)
	return c.req.Do(ctx, id, http.MethodDelete, path, http.StatusNoContent, nil, nil)
}

// --- Notification operations ---

// ListNotificationSettings fetches GET /api/notifications.
func (c *CommitlyClient) ListNotificationSettings(ctx context.Context, id domain.Identity) ([]domain.NotificationSetting, error) {
	var dto notification.SettingsListResponseDTO
	if err := c.req.Do(ctx, id, http.MethodGet, "/api/notifications", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return notification.ToDomainSettingList(dto), nil
}

// CreateNotificationSetting sends a POST /api/notifications and returns
// the created setting.
func (c *CommitlyClient) CreateNotificationSetting(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) (*domain.NotificationSetting, error) {
	reqDTO := notification.ToCreateSettingRequest(setting)

	var respDTO notification.SettingDTO
	if err := c.req.Do(ctx, id, http.MethodPost, "/api/notifications", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	result := notification.ToDomainSetting(&respDTO)
	return &result, nil
}

// UpdateNotificationSetting sends a PUT /api/notifications/{id} and
// returns the updated setting.
func (c *CommitlyClient) UpdateNotificationSetting(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) (*domain.NotificationSetting, error) {
	path := fmt.Sprintf("/api/notifications/%d", setting.ID)
	reqDTO := notification.ToUpdateSettingRequest(setting)

	var respDTO notification.SettingDTO
	if err := c.req.Do(ctx, id, http.MethodPut, path, http.StatusOK, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	result := notification.ToDomainSetting(&respDTO)
	return &result, nil
}

// DeleteNotificationSetting sends a DELETE /api/notifications/{id}.
func (c *CommitlyClient) DeleteNotificationSetting(ctx context.Context, id domain.Identity, settingID uint64) error {
	path := fmt.Sprintf("/api/notifications/%d", settingID)
	return c.req.Do(ctx, id, http.MethodDelete, path, http.StatusNoContent, nil, nil)
}

// SlackSetting fetches GET /api/notifications/slack. A 404 means no
// webhook is registered yet, which is an ordinary state: it yields
// (nil, nil), never an error.
func (c *CommitlyClient) SlackSetting(ctx context.Context, id domain.Identity) (*domain.SlackSetting, error) {
	var dto notification.SlackSettingDTO
	if err := c.req.Do(ctx, id, http.MethodGet, "/api/notifications/slack", http.StatusOK, nil, &dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return notification.ToDomainSlackSetting(&dto), nil
}

// CreateSlackSetting sends a POST /api/notifications/slack and returns
// the created setting.
func (c *CommitlyClient) CreateSlackSetting(ctx context.Context, id domain.Identity, webhookURL string) (*domain.SlackSetting, error) {
	reqDTO := notification.CreateSlackRequestDTO{WebhookURL: webhookURL}

	var respDTO notification.SlackSettingDTO
	if err := c.req.Do(ctx, id, http.MethodPost, "/api/notifications/slack", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	return notification.ToDomainSlackSetting(&respDTO), nil
}

// UpdateSlackEnabled sends a PUT /api/notifications/slack toggling
// notifications on or off.
func (c *CommitlyClient) UpdateSlackEnabled(ctx context.Context, id domain.Identity, enabled bool) error {
	reqDTO := notification.UpdateSlackEnabledRequestDTO{IsEnabled: enabled}

	var respDTO notification.UpdateSlackEnabledResponseDTO
	return c.req.Do(ctx, id, http.MethodPut, "/api/notifications/slack", http.StatusOK, reqDTO, &respDTO)
}

// DeleteSlackSetting sends a DELETE /api/notifications/slack.
func (c *CommitlyClient) DeleteSlackSetting(ctx context.Context, id domain.Identity) error {
	return c.req.Do(ctx, id, http.MethodDelete, "/api/notifications/slack", http.StatusNoContent, nil, nil)
}
