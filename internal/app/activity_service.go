// Package app provides application services that assemble page data and
// perform mutation actions by coordinating the backend API through port
// interfaces. Page services fold individual fetch failures into the page
// aggregate; action services fold failures into action outcomes.
package app

import (
	"context"
	"log/slog"

	"github.com/commitly/web/internal/app/fanout"
	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

// pageFetchWorkers bounds concurrent backend calls per page assembly.
const pageFetchWorkers = 4

// Compile-time check that ActivityService implements ports.ActivityService.
var _ ports.ActivityService = (*ActivityService)(nil)

// ActivityService assembles the activity page: the recent commit stream
// and the weekly rhythm, fetched concurrently.
type ActivityService struct {
	backend ports.BackendClient
	logger  *slog.Logger
}

// NewActivityService creates an ActivityService.
func NewActivityService(backend ports.BackendClient, logger *slog.Logger) *ActivityService {
	return &ActivityService{
		backend: backend,
		logger:  logger,
	}
}

// ActivityPage fetches the stream and rhythm in parallel. A failed fetch
// leaves its section nil and sets the page's error message; when both
// fail, the rhythm failure's message wins. The page always renders what
// succeeded.
func (s *ActivityService) ActivityPage(ctx context.Context, id domain.Identity) (*domain.ActivityPage, error) {
	s.logger.InfoContext(ctx, "assembling activity page",
		slog.Uint64("github_user_id", id.GitHubUserID),
	)

	page := &domain.ActivityPage{}

	errs := fanout.RunSteps(ctx, pageFetchWorkers, []fanout.Step{
		{Name: "stream", Fn: func(ctx context.Context) error {
			stream, err := s.backend.ActivityStream(ctx, id)
			if err != nil {
				return err
			}
			page.Stream = stream
			return nil
		}},
		{Name: "rhythm", Fn: func(ctx context.Context) error {
			rhythm, err := s.backend.ActivityRhythm(ctx, id)
			if err != nil {
				return err
			}
			page.Rhythm = rhythm
			return nil
		}},
	})

	for _, err := range errs {
		if err != nil {
			s.logger.ErrorContext(ctx, "activity page fetch failed",
				slog.String("operation", "ActivityPage"),
				slog.Uint64("github_user_id", id.GitHubUserID),
				slog.Any("error", err),
			)
			page.ErrorMessage = domain.UserMessage(err)
		}
	}

	return page, nil
}
