package ports

import (
	"context"
	"time"

	"github.com/commitly/web/internal/domain"
)

// BackendClient is the outbound port to the Commitly backend API. Every
// method that operates on user-owned data takes the caller's identity
// explicitly; implementations attach it to the request as the
// X-GitHub-User-ID header.
//
// Backend-declared failures surface as *domain.BackendError carrying
// the backend's message verbatim. Transport failures surface as plain
// errors wrapping domain.ErrUnavailable.
type BackendClient interface {
	// UpsertUser registers or refreshes the user's profile at sign-in.
	UpsertUser(ctx context.Context, profile domain.GitHubProfile) error

	// ActivityStream fetches the recent commit stream for the user and
	// their rivals.
	ActivityStream(ctx context.Context, id domain.Identity) (*domain.ActivityStream, error)

	// ActivityRhythm fetches the weekly commit rhythm for the user and
	// their rivals.
	ActivityRhythm(ctx context.Context, id domain.Identity) (*domain.Rhythm, error)

	// ListCircles fetches the user's circles with plan-quota metadata.
	ListCircles(ctx context.Context, id domain.Identity) (*domain.CircleList, error)

	// CreateCircle creates a circle owned by the user.
	CreateCircle(ctx context.Context, id domain.Identity, name string) (*domain.Circle, error)

	// JoinCircle joins a circle by invite code.
	JoinCircle(ctx context.Context, id domain.Identity, inviteCode string) (*domain.Circle, error)

	// LeaveCircle removes the user from a circle.
	LeaveCircle(ctx context.Context, id domain.Identity, circleID uint64) error

	// DeleteCircle deletes a circle the user owns.
	DeleteCircle(ctx context.Context, id domain.Identity, circleID uint64) error

	// CircleSignals fetches the signals detected within one circle.
	CircleSignals(ctx context.Context, id domain.Identity, circleID uint64) ([]domain.Signal, error)

	// RecentSignals fetches recent signals across all of the user's
	// circles.
	RecentSignals(ctx context.Context, id domain.Identity) ([]domain.Signal, error)

	// Dashboard fetches the commit comparison for the given period
	// ("weekly" or "monthly").
	Dashboard(ctx context.Context, id domain.Identity, period string) (*domain.Dashboard, error)

	// ListRivals fetches the user's rivals with plan-quota metadata.
	ListRivals(ctx context.Context, id domain.Identity) (*domain.RivalList, error)

	// AddRival registers a rival by GitHub username.
	AddRival(ctx context.Context, id domain.Identity, githubUsername string) (*domain.Rival, error)

	// RemoveRival removes a rival by GitHub user id.
	RemoveRival(ctx context.Context, id domain.Identity, rivalGitHubUserID uint64) error

	// ListNotificationSettings fetches all channel settings.
	ListNotificationSettings(ctx context.Context, id domain.Identity) ([]domain.NotificationSetting, error)

	// CreateNotificationSetting creates a channel setting.
	CreateNotificationSetting(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) (*domain.NotificationSetting, error)

	// UpdateNotificationSetting updates a channel setting.
	UpdateNotificationSetting(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) (*domain.NotificationSetting, error)

	// DeleteNotificationSetting deletes a channel setting by id.
	DeleteNotificationSetting(ctx context.Context, id domain.Identity, settingID uint64) error

	// SlackSetting fetches the Slack webhook setting. A missing setting
	// is an ordinary state: implementations return (nil, nil).
	SlackSetting(ctx context.Context, id domain.Identity) (*domain.SlackSetting, error)

	// CreateSlackSetting registers a Slack webhook.
	CreateSlackSetting(ctx context.Context, id domain.Identity, webhookURL string) (*domain.SlackSetting, error)

	// UpdateSlackEnabled toggles Slack notifications on or off.
	UpdateSlackEnabled(ctx context.Context, id domain.Identity, enabled bool) error

	// DeleteSlackSetting removes the Slack webhook setting.
	DeleteSlackSetting(ctx context.Context, id domain.Identity) error
}

// SessionStore persists opaque session tokens to identities. A missing
// or expired token yields domain.ErrSessionNotFound.
type SessionStore interface {
	// Save stores the identity under the token for the given TTL.
	Save(ctx context.Context, token string, id domain.Identity, ttl time.Duration) error

	// Load resolves a token back to its identity.
	Load(ctx context.Context, token string) (domain.Identity, error)

	// Delete invalidates a token. Deleting an unknown token is not an
	// error.
	Delete(ctx context.Context, token string) error
}
