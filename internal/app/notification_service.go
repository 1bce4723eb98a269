package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/commitly/web/internal/app/epoch"
	"github.com/commitly/web/internal/app/fanout"
	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

// Compile-time check that NotificationService implements
// ports.NotificationService.
var _ ports.NotificationService = (*NotificationService)(nil)

// NotificationService assembles the notification settings page and
// performs settings mutations for both the generic per-channel settings
// and the Slack-specific webhook integration.
type NotificationService struct {
	backend ports.BackendClient
	epochs  *epoch.Registry
	logger  *slog.Logger
}

// NewNotificationService creates a NotificationService. Mutations bump
// the notifications page epoch on success.
func NewNotificationService(backend ports.BackendClient, epochs *epoch.Registry, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		backend: backend,
		epochs:  epochs,
		logger:  logger,
	}
}

// NotificationsPage fetches the channel settings and the Slack setting
// in parallel. A Slack setting that does not exist yet is an ordinary
// state (nil Slack, no error); fetch failures are folded into the page.
func (s *NotificationService) NotificationsPage(ctx context.Context, id domain.Identity) (*domain.NotificationsPage, error) {
	s.logger.InfoContext(ctx, "assembling notifications page",
		slog.Uint64("github_user_id", id.GitHubUserID),
	)

	page := &domain.NotificationsPage{Settings: []domain.NotificationSetting{}}

	errs := fanout.RunSteps(ctx, pageFetchWorkers, []fanout.Step{
		{Name: "settings", Fn: func(ctx context.Context) error {
			settings, err := s.backend.ListNotificationSettings(ctx, id)
			if err != nil {
				return err
			}
			page.Settings = settings
			return nil
		}},
		{Name: "slack", Fn: func(ctx context.Context) error {
			slack, err := s.backend.SlackSetting(ctx, id)
			if err != nil {
				return err
			}
			page.Slack = slack
			return nil
		}},
	})

	for _, err := range errs {
		if err != nil {
			s.logger.ErrorContext(ctx, "notifications page fetch failed",
				slog.String("operation", "NotificationsPage"),
				slog.Uint64("github_user_id", id.GitHubUserID),
				slog.Any("error", err),
			)
			page.ErrorMessage = domain.UserMessage(err)
		}
	}

	return page, nil
}

// CreateSetting creates a per-channel setting after validating the
// channel type.
func (s *NotificationService) CreateSetting(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) domain.ActionOutcome {
	if !setting.ChannelType.IsValid() {
		return domain.ActionOutcome{Status: domain.OutcomeError, Message: "channel type must be line, slack, or discord"}
	}

	s.logger.InfoContext(ctx, "creating notification setting",
		slog.Uint64("github_user_id", id.GitHubUserID),
		slog.String("channel_type", string(setting.ChannelType)),
	)

	if _, err := s.backend.CreateNotificationSetting(ctx, id, setting); err != nil {
		s.logger.ErrorContext(ctx, "failed to create notification setting",
			slog.String("operation", "CreateSetting"),
			slog.Uint64("github_user_id", id.GitHubUserID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageNotifications)
	return domain.SuccessOutcome("notification setting created")
}

// UpdateSetting updates a per-channel setting.
func (s *NotificationService) UpdateSetting(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) domain.ActionOutcome {
	s.logger.InfoContext(ctx, "updating notification setting",
		slog.Uint64("github_user_id", id.GitHubUserID),
		slog.Uint64("setting_id", setting.ID),
	)

	if _, err := s.backend.UpdateNotificationSetting(ctx, id, setting); err != nil {
		s.logger.ErrorContext(ctx, "failed to update notification setting",
			slog.String("operation", "UpdateSetting"),
			slog.Uint64("setting_id", setting.ID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageNotifications)
	return domain.SuccessOutcome("notification setting updated")
}

// DeleteSetting deletes a per-channel setting by id.
func (s *NotificationService) DeleteSetting(ctx context.Context, id domain.Identity, settingID uint64) domain.ActionOutcome {
	s.logger.InfoContext(ctx, "deleting notification setting",
		slog.Uint64("github_user_id", id.GitHubUserID),
		slog.Uint64("setting_id", settingID),
	)

	if err := s.backend.DeleteNotificationSetting(ctx, id, settingID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete notification setting",
			slog.String("operation", "DeleteSetting"),
			slog.Uint64("setting_id", settingID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageNotifications)
	return domain.SuccessOutcome("notification setting deleted")
}

// RegisterSlack registers a Slack webhook after validating the URL.
func (s *NotificationService) RegisterSlack(ctx context.Context, id domain.Identity, webhookURL string) domain.ActionOutcome {
	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		return domain.ActionOutcome{Status: domain.OutcomeError, Message: "webhook URL is required"}
	}

	s.logger.InfoContext(ctx, "registering slack webhook",
		slog.Uint64("github_user_id", id.GitHubUserID),
	)

	if _, err := s.backend.CreateSlackSetting(ctx, id, webhookURL); err != nil {
		s.logger.ErrorContext(ctx, "failed to register slack webhook",
			slog.String("operation", "RegisterSlack"),
			slog.Uint64("github_user_id", id.GitHubUserID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageNotifications)
	return domain.SuccessOutcome("Slack notifications configured")
}

// SetSlackEnabled toggles Slack notifications on or off.
func (s *NotificationService) SetSlackEnabled(ctx context.Context, id domain.Identity, enabled bool) domain.ActionOutcome {
	s.logger.InfoContext(ctx, "updating slack enabled flag",
		slog.Uint64("github_user_id", id.GitHubUserID),
		slog.Bool("enabled", enabled),
	)

	if err := s.backend.UpdateSlackEnabled(ctx, id, enabled); err != nil {
		s.logger.ErrorContext(ctx, "failed to update slack enabled flag",
			slog.String("operation", "SetSlackEnabled"),
			slog.Uint64("github_user_id", id.GitHubUserID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageNotifications)
	return domain.SuccessOutcome("settings updated")
}

// RemoveSlack removes the Slack webhook integration.
func (s *NotificationService) RemoveSlack(ctx context.Context, id domain.Identity) domain.ActionOutcome {
	s.logger.InfoContext(ctx, "removing slack integration",
		slog.Uint64("github_user_id", id.GitHubUserID),
	)

	if err := s.backend.DeleteSlackSetting(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove slack integration",
			slog.String("operation", "RemoveSlack"),
			slog.Uint64("github_user_id", id.GitHubUserID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageNotifications)
	return domain.SuccessOutcome("Slack integration removed")
}
