package app

import (
	"context"
	"log/slog"

	"github.com/commitly/web/internal/app/fanout"
	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

// Compile-time check that DashboardService implements ports.DashboardService.
var _ ports.DashboardService = (*DashboardService)(nil)

// DashboardService assembles the dashboard page: the commit comparison
// for the requested period plus, when the user belongs to at least one
// circle, the recent signals across their circles.
type DashboardService struct {
	backend ports.BackendClient
	logger  *slog.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(backend ports.BackendClient, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		backend: backend,
		logger:  logger,
	}
}

// DashboardPage fetches the dashboard and the circle list in parallel.
// An empty period defaults to weekly; an unknown period yields a
// validation error before any backend call. Recent signals are fetched
// only when the circle list came back non-empty, and their failure is
// folded into the page like any other fetch failure.
func (s *DashboardService) DashboardPage(ctx context.Context, id domain.Identity, period string) (*domain.DashboardPage, error) {
	if period == "" {
		period = domain.PeriodWeekly
	}
	if !domain.ValidPeriod(period) {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"period": "must be weekly or monthly",
		}}
	}

	s.logger.InfoContext(ctx, "assembling dashboard page",
		slog.Uint64("github_user_id", id.GitHubUserID),
		slog.String("period", period),
	)

	page := &domain.DashboardPage{RecentSignals: []domain.Signal{}}
	var circles *domain.CircleList

	errs := fanout.RunSteps(ctx, pageFetchWorkers, []fanout.Step{
		{Name: "dashboard", Fn: func(ctx context.Context) error {
			dash, err := s.backend.Dashboard(ctx, id, period)
			if err != nil {
				return err
			}
			page.Dashboard = dash
			return nil
		}},
		{Name: "circles", Fn: func(ctx context.Context) error {
			list, err := s.backend.ListCircles(ctx, id)
			if err != nil {
				return err
			}
			circles = list
			return nil
		}},
	})

	for _, err := range errs {
		if err != nil {
			s.logger.ErrorContext(ctx, "dashboard page fetch failed",
				slog.String("operation", "DashboardPage"),
				slog.Uint64("github_user_id", id.GitHubUserID),
				slog.Any("error", err),
			)
			page.ErrorMessage = domain.UserMessage(err)
		}
	}

	page.HasCircles = circles != nil && len(circles.Circles) > 0

	if page.HasCircles {
		signals, err := s.backend.RecentSignals(ctx, id)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch recent signals",
				slog.String("operation", "DashboardPage"),
				slog.Uint64("github_user_id", id.GitHubUserID),
				slog.Any("error", err),
			)
			page.ErrorMessage = domain.UserMessage(err)
		} else {
			page.RecentSignals = signals
		}
	}

	return page, nil
}
