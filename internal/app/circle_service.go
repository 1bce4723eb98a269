package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/commitly/web/internal/app/epoch"
	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

// Compile-time check that CircleService implements ports.CircleService.
var _ ports.CircleService = (*CircleService)(nil)

// CircleService assembles circle pages and performs circle mutations.
type CircleService struct {
	backend ports.BackendClient
	epochs  *epoch.Registry
	logger  *slog.Logger
}

// NewCircleService creates a CircleService. Mutations bump the circles
// and dashboard page epochs on success; the dashboard's signals section
// depends on circle membership.
func NewCircleService(backend ports.BackendClient, epochs *epoch.Registry, logger *slog.Logger) *CircleService {
	return &CircleService{
		backend: backend,
		epochs:  epochs,
		logger:  logger,
	}
}

// CirclesPage fetches the circle list. On failure the page carries the
// error message and an empty list.
func (s *CircleService) CirclesPage(ctx context.Context, id domain.Identity) (*domain.CirclesPage, error) {
	s.logger.InfoContext(ctx, "assembling circles page",
		slog.Uint64("github_user_id", id.GitHubUserID),
	)

	list, err := s.backend.ListCircles(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list circles",
			slog.String("operation", "CirclesPage"),
			slog.Uint64("github_user_id", id.GitHubUserID),
			slog.Any("error", err),
		)
		return &domain.CirclesPage{
			Circles:      []domain.Circle{},
			ErrorMessage: domain.UserMessage(err),
		}, nil
	}

	return &domain.CirclesPage{
		Circles:    list.Circles,
		Count:      list.Count,
		MaxCircles: list.MaxCircles,
	}, nil
}

// CircleDetailPage locates the circle in the user's own list by exact id
// match, then fetches its signals. The backend has no single-circle
// endpoint, so membership is established by the list itself; an id
// missing from the list yields domain.ErrNotFound regardless of whether
// the circle exists for someone else. Signal fetches are best effort: a
// failure leaves the signals empty without failing the page.
func (s *CircleService) CircleDetailPage(ctx context.Context, id domain.Identity, circleID uint64) (*domain.CircleDetailPage, error) {
	s.logger.InfoContext(ctx, "assembling circle detail page",
		slog.Uint64("github_user_id", id.GitHubUserID),
		slog.Uint64("circle_id", circleID),
	)

	list, err := s.backend.ListCircles(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list circles",
			slog.String("operation", "CircleDetailPage"),
			slog.Uint64("github_user_id", id.GitHubUserID),
			slog.Any("error", err),
		)
		return nil, err
	}

	circle := list.FindByID(circleID)
	if circle == nil {
		return nil, domain.ErrNotFound
	}

	signals := []domain.Signal{}
	if fetched, err := s.backend.CircleSignals(ctx, id, circleID); err != nil {
		s.logger.WarnContext(ctx, "failed to fetch circle signals",
			slog.String("operation", "CircleDetailPage"),
			slog.Uint64("circle_id", circleID),
			slog.Any("error", err),
		)
	} else {
		signals = fetched
	}

	return &domain.CircleDetailPage{
		Circle:  circle,
		Signals: signals,
	}, nil
}

// CreateCircle creates a circle after validating the name.
func (s *CircleService) CreateCircle(ctx context.Context, id domain.Identity, name string) domain.ActionOutcome {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ActionOutcome{Status: domain.OutcomeError, Message: "circle name is required"}
	}

	s.logger.InfoContext(ctx, "creating circle",
		slog.Uint64("github_user_id", id.GitHubUserID),
	)

	if _, err := s.backend.CreateCircle(ctx, id, name); err != nil {
		s.logger.ErrorContext(ctx, "failed to create circle",
			slog.String("operation", "CreateCircle"),
			slog.Uint64("github_user_id", id.GitHubUserID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageCircles, epoch.PageDashboard)
	return domain.SuccessOutcome("circle created")
}

// JoinCircle joins a circle by invite code after validating the code.
func (s *CircleService) JoinCircle(ctx context.Context, id domain.Identity, inviteCode string) domain.ActionOutcome {
	inviteCode = strings.TrimSpace(inviteCode)
	if inviteCode == "" {
		return domain.ActionOutcome{Status: domain.OutcomeError, Message: "invite code is required"}
	}

	s.logger.InfoContext(ctx, "joining circle",
		slog.Uint64("github_user_id", id.GitHubUserID),
	)

	if _, err := s.backend.JoinCircle(ctx, id, inviteCode); err != nil {
		s.logger.ErrorContext(ctx, "failed to join circle",
			slog.String("operation", "JoinCircle"),
			slog.Uint64("github_user_id", id.GitHubUserID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageCircles, epoch.PageDashboard)
	return domain.SuccessOutcome("joined circle")
}

// LeaveCircle removes the user from a circle.
func (s *CircleService) LeaveCircle(ctx context.Context, id domain.Identity, circleID uint64) domain.ActionOutcome {
	s.logger.InfoContext(ctx, "leaving circle",
		slog.Uint64("github_user_id", id.GitHubUserID),
		slog.Uint64("circle_id", circleID),
	)

	if err := s.backend.LeaveCircle(ctx, id, circleID); err != nil {
		s.logger.ErrorContext(ctx, "failed to leave circle",
			slog.String("operation", "LeaveCircle"),
			slog.Uint64("circle_id", circleID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageCircles, epoch.PageDashboard)
	return domain.SuccessOutcome("left circle")
}

// DeleteCircle deletes a circle the user owns.
func (s *CircleService) DeleteCircle(ctx context.Context, id domain.Identity, circleID uint64) domain.ActionOutcome {
	s.logger.InfoContext(ctx, "deleting circle",
		slog.Uint64("github_user_id", id.GitHubUserID),
		slog.Uint64("circle_id", circleID),
	)

	if err := s.backend.DeleteCircle(ctx, id, circleID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete circle",
			slog.String("operation", "DeleteCircle"),
			slog.Uint64("circle_id", circleID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageCircles, epoch.PageDashboard)
	return domain.SuccessOutcome("circle deleted")
}
