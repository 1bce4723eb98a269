package ports

import (
	"context"

	"github.com/commitly/web/internal/domain"
)

// Page services assemble everything a view needs from the backend,
// folding individual fetch failures into the page aggregate instead of
// failing the whole page. Action services perform mutations and always
// return an outcome; backend failures become ERROR outcomes carrying
// the backend's message, never raw errors.

// ActivityService assembles the activity page.
type ActivityService interface {
	ActivityPage(ctx context.Context, id domain.Identity) (*domain.ActivityPage, error)
}

// CircleService assembles circle pages and performs circle mutations.
type CircleService interface {
	CirclesPage(ctx context.Context, id domain.Identity) (*domain.CirclesPage, error)

	// CircleDetailPage returns domain.ErrNotFound when the user has no
	// circle with the given id.
	CircleDetailPage(ctx context.Context, id domain.Identity, circleID uint64) (*domain.CircleDetailPage, error)

	CreateCircle(ctx context.Context, id domain.Identity, name string) domain.ActionOutcome
	JoinCircle(ctx context.Context, id domain.Identity, inviteCode string) domain.ActionOutcome
	LeaveCircle(ctx context.Context, id domain.Identity, circleID uint64) domain.ActionOutcome
	DeleteCircle(ctx context.Context, id domain.Identity, circleID uint64) domain.ActionOutcome
}

// DashboardService assembles the dashboard page.
type DashboardService interface {
	DashboardPage(ctx context.Context, id domain.Identity, period string) (*domain.DashboardPage, error)
}

// RivalService assembles the rivals page and performs rival mutations.
type RivalService interface {
	RivalsPage(ctx context.Context, id domain.Identity) (*domain.RivalsPage, error)

	AddRival(ctx context.Context, id domain.Identity, githubUsername string) domain.ActionOutcome
	RemoveRival(ctx context.Context, id domain.Identity, rivalGitHubUserID uint64) domain.ActionOutcome
}

// NotificationService assembles the notification settings page and
// performs settings mutations.
type NotificationService interface {
	NotificationsPage(ctx context.Context, id domain.Identity) (*domain.NotificationsPage, error)

	CreateSetting(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) domain.ActionOutcome
	UpdateSetting(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) domain.ActionOutcome
	DeleteSetting(ctx context.Context, id domain.Identity, settingID uint64) domain.ActionOutcome

	RegisterSlack(ctx context.Context, id domain.Identity, webhookURL string) domain.ActionOutcome
	SetSlackEnabled(ctx context.Context, id domain.Identity, enabled bool) domain.ActionOutcome
	RemoveSlack(ctx context.Context, id domain.Identity) domain.ActionOutcome
}

// AuthService manages sign-in and sign-out: it upserts the user's
// profile with the backend and issues or revokes session tokens.
type AuthService interface {
	// SignIn registers the profile with the backend and creates a
	// session, returning the opaque token to set as a cookie.
	SignIn(ctx context.Context, profile domain.GitHubProfile) (string, error)

	// SignOut invalidates the session token.
	SignOut(ctx context.Context, token string) error
}
