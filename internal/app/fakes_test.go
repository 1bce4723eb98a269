package app_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

// fakeBackend is a function-field test double for ports.BackendClient.
// Unset fields return zero values so each test only wires the calls it
// cares about.
type fakeBackend struct {
	upsertUser       func(ctx context.Context, profile domain.GitHubProfile) error
	activityStream   func(ctx context.Context, id domain.Identity) (*domain.ActivityStream, error)
	activityRhythm   func(ctx context.Context, id domain.Identity) (*domain.Rhythm, error)
	listCircles      func(ctx context.Context, id domain.Identity) (*domain.CircleList, error)
	createCircle     func(ctx context.Context, id domain.Identity, name string) (*domain.Circle, error)
	joinCircle       func(ctx context.Context, id domain.Identity, inviteCode string) (*domain.Circle, error)
	leaveCircle      func(ctx context.Context, id domain.Identity, circleID uint64) error
	deleteCircle     func(ctx context.Context, id domain.Identity, circleID uint64) error
	circleSignals    func(ctx context.Context, id domain.Identity, circleID uint64) ([]domain.Signal, error)
	recentSignals    func(ctx context.Context, id domain.Identity) ([]domain.Signal, error)
	dashboard        func(ctx context.Context, id domain.Identity, period string) (*domain.Dashboard, error)
	listRivals       func(ctx context.Context, id domain.Identity) (*domain.RivalList, error)
	addRival         func(ctx context.Context, id domain.Identity, githubUsername string) (*domain.Rival, error)
	removeRival      func(ctx context.Context, id domain.Identity, rivalGitHubUserID uint64) error
	listSettings     func(ctx context.Context, id domain.Identity) ([]domain.NotificationSetting, error)
	createSetting    func(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) (*domain.NotificationSetting, error)
	updateSetting    func(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) (*domain.NotificationSetting, error)
	deleteSetting    func(ctx context.Context, id domain.Identity, settingID uint64) error
	slackSetting     func(ctx context.Context, id domain.Identity) (*domain.SlackSetting, error)
	createSlack      func(ctx context.Context, id domain.Identity, webhookURL string) (*domain.SlackSetting, error)
	updateSlack      func(ctx context.Context, id domain.Identity, enabled bool) error
	deleteSlack      func(ctx context.Context, id domain.Identity) error
}

var _ ports.BackendClient = (*fakeBackend)(nil)

func (f *fakeBackend) UpsertUser(ctx context.Context, profile domain.GitHubProfile) error {
	if f.upsertUser == nil {
		return nil
	}
	return f.upsertUser(ctx, profile)
}

func (f *fakeBackend) ActivityStream(ctx context.Context, id domain.Identity) (*domain.ActivityStream, error) {
	if f.activityStream == nil {
		return &domain.ActivityStream{}, nil
	}
	return f.activityStream(ctx, id)
}

func (f *fakeBackend) ActivityRhythm(ctx context.Context, id domain.Identity) (*domain.Rhythm, error) {
	if f.activityRhythm == nil {
		return &domain.Rhythm{}, nil
	}
	return f.activityRhythm(ctx, id)
}

func (f *fakeBackend) ListCircles(ctx context.Context, id domain.Identity) (*domain.CircleList, error) {
	if f.listCircles == nil {
		return &domain.CircleList{}, nil
	}
	return f.listCircles(ctx, id)
}

func (f *fakeBackend) CreateCircle(ctx context.Context, id domain.Identity, name string) (*domain.Circle, error) {
	if f.createCircle == nil {
		return &domain.Circle{}, nil
	}
	return f.createCircle(ctx, id, name)
}

func (f *fakeBackend) JoinCircle(ctx context.Context, id domain.Identity, inviteCode string) (*domain.Circle, error) {
	if f.joinCircle == nil {
		return &domain.Circle{}, nil
	}
	return f.joinCircle(ctx, id, inviteCode)
}

func (f *fakeBackend) LeaveCircle(ctx context.Context, id domain.Identity, circleID uint64) error {
	if f.leaveCircle == nil {
		return nil
	}
	return f.leaveCircle(ctx, id, circleID)
}

func (f *fakeBackend) DeleteCircle(ctx context.Context, id domain.Identity, circleID uint64) error {
	if f.deleteCircle == nil {
		return nil
	}
	return f.deleteCircle(ctx, id, circleID)
}

func (f *fakeBackend) CircleSignals(ctx context.Context, id domain.Identity, circleID uint64) ([]domain.Signal, error) {
	if f.circleSignals == nil {
		return []domain.Signal{}, nil
	}
	return f.circleSignals(ctx, id, circleID)
}

func (f *fakeBackend) RecentSignals(ctx context.Context, id domain.Identity) ([]domain.Signal, error) {
	if f.recentSignals == nil {
		return []domain.Signal{}, nil
	}
	return f.recentSignals(ctx, id)
}

func (f *fakeBackend) Dashboard(ctx context.Context, id domain.Identity, period string) (*domain.Dashboard, error) {
	if f.dashboard == nil {
		return &domain.Dashboard{}, nil
	}
	return f.dashboard(ctx, id, period)
}

func (f *fakeBackend) ListRivals(ctx context.Context, id domain.Identity) (*domain.RivalList, error) {
	if f.listRivals == nil {
		return &domain.RivalList{}, nil
	}
	return f.listRivals(ctx, id)
}

func (f *fakeBackend) AddRival(ctx context.Context, id domain.Identity, githubUsername string) (*domain.Rival, error) {
	if f.addRival == nil {
		return &domain.Rival{}, nil
	}
	return f.addRival(ctx, id, githubUsername)
}

func (f *fakeBackend) RemoveRival(ctx context.Context, id domain.Identity, rivalGitHubUserID uint64) error {
	if f.removeRival == nil {
		return nil
	}
	return f.removeRival(ctx, id, rivalGitHubUserID)
}

func (f *fakeBackend) ListNotificationSettings(ctx context.Context, id domain.Identity) ([]domain.NotificationSetting, error) {
	if f.listSettings == nil {
		return []domain.NotificationSetting{}, nil
	}
	return f.listSettings(ctx, id)
}

func (f *fakeBackend) CreateNotificationSetting(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) (*domain.NotificationSetting, error) {
	if f.createSetting == nil {
		return &domain.NotificationSetting{}, nil
	}
	return f.createSetting(ctx, id, setting)
}

func (f *fakeBackend) UpdateNotificationSetting(ctx context.Context, id domain.Identity, setting domain.NotificationSetting) (*domain.NotificationSetting, error) {
	if f.updateSetting == nil {
		return &domain.NotificationSetting{}, nil
	}
	return f.updateSetting(ctx, id, setting)
}

func (f *fakeBackend) DeleteNotificationSetting(ctx context.Context, id domain.Identity, settingID uint64) error {
	if f.deleteSetting == nil {
		return nil
	}
	return f.deleteSetting(ctx, id, settingID)
}

func (f *fakeBackend) SlackSetting(ctx context.Context, id domain.Identity) (*domain.SlackSetting, error) {
	if f.slackSetting == nil {
		return nil, nil
	}
	return f.slackSetting(ctx, id)
}

func (f *fakeBackend) CreateSlackSetting(ctx context.Context, id domain.Identity, webhookURL string) (*domain.SlackSetting, error) {
	if f.createSlack == nil {
		return &domain.SlackSetting{}, nil
	}
	return f.createSlack(ctx, id, webhookURL)
}

func (f *fakeBackend) UpdateSlackEnabled(ctx context.Context, id domain.Identity, enabled bool) error {
	if f.updateSlack == nil {
		return nil
	}
	return f.updateSlack(ctx, id, enabled)
}

func (f *fakeBackend) DeleteSlackSetting(ctx context.Context, id domain.Identity) error {
	if f.deleteSlack == nil {
		return nil
	}
	return f.deleteSlack(ctx, id)
}

// fakeSessionStore is a function-field test double for ports.SessionStore.
type fakeSessionStore struct {
	save   func(ctx context.Context, token string, id domain.Identity, ttl time.Duration) error
	load   func(ctx context.Context, token string) (domain.Identity, error)
	delete func(ctx context.Context, token string) error
}

var _ ports.SessionStore = (*fakeSessionStore)(nil)

func (f *fakeSessionStore) Save(ctx context.Context, token string, id domain.Identity, ttl time.Duration) error {
	if f.save == nil {
		return nil
	}
	return f.save(ctx, token, id, ttl)
}

func (f *fakeSessionStore) Load(ctx context.Context, token string) (domain.Identity, error) {
	if f.load == nil {
		return domain.Identity{}, domain.ErrSessionNotFound
	}
	return f.load(ctx, token)
}

func (f *fakeSessionStore) Delete(ctx context.Context, token string) error {
	if f.delete == nil {
		return nil
	}
	return f.delete(ctx, token)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testIdentity = domain.Identity{GitHubUserID: 42, GitHubUsername: "octocat"}
