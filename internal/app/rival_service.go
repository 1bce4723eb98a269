package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/commitly/web/internal/app/epoch"
	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

// Compile-time check that RivalService implements ports.RivalService.
var _ ports.RivalService = (*RivalService)(nil)

// RivalService assembles the rivals page and performs rival mutations.
type RivalService struct {
	backend ports.BackendClient
	epochs  *epoch.Registry
	logger  *slog.Logger
}

// NewRivalService creates a RivalService. Mutations bump the rivals and
// dashboard page epochs on success; rivals appear in the dashboard's
// commit comparison.
func NewRivalService(backend ports.BackendClient, epochs *epoch.Registry, logger *slog.Logger) *RivalService {
	return &RivalService{
		backend: backend,
		epochs:  epochs,
		logger:  logger,
	}
}

// RivalsPage fetches the rival list. On failure the page carries the
// error message and an empty list.
func (s *RivalService) RivalsPage(ctx context.Context, id domain.Identity) (*domain.RivalsPage, error) {
	s.logger.InfoContext(ctx, "assembling rivals page",
		slog.Uint64("github_user_id", id.GitHubUserID),
	)

	list, err := s.backend.ListRivals(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list rivals",
			slog.String("operation", "RivalsPage"),
			slog.Uint64("github_user_id", id.GitHubUserID),
			slog.Any("error", err),
		)
		return &domain.RivalsPage{
			Rivals:       []domain.Rival{},
			ErrorMessage: domain.UserMessage(err),
		}, nil
	}

	return &domain.RivalsPage{
		Rivals:    list.Rivals,
		Count:     list.Count,
		MaxRivals: list.MaxRivals,
	}, nil
}

// AddRival registers a rival by GitHub username after validating it.
func (s *RivalService) AddRival(ctx context.Context, id domain.Identity, githubUsername string) domain.ActionOutcome {
	githubUsername = strings.TrimSpace(githubUsername)
	if githubUsername == "" {
		return domain.ActionOutcome{Status: domain.OutcomeError, Message: "username is required"}
	}

	s.logger.InfoContext(ctx, "adding rival",
		slog.Uint64("github_user_id", id.GitHubUserID),
		slog.String("rival_username", githubUsername),
	)

	if _, err := s.backend.AddRival(ctx, id, githubUsername); err != nil {
		s.logger.ErrorContext(ctx, "failed to add rival",
			slog.String("operation", "AddRival"),
			slog.Uint64("github_user_id", id.GitHubUserID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageRivals, epoch.PageDashboard)
	return domain.SuccessOutcome("rival added")
}

// RemoveRival removes a rival by GitHub user id.
func (s *RivalService) RemoveRival(ctx context.Context, id domain.Identity, rivalGitHubUserID uint64) domain.ActionOutcome {
	s.logger.InfoContext(ctx, "removing rival",
		slog.Uint64("github_user_id", id.GitHubUserID),
		slog.Uint64("rival_github_user_id", rivalGitHubUserID),
	)

	if err := s.backend.RemoveRival(ctx, id, rivalGitHubUserID); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove rival",
			slog.String("operation", "RemoveRival"),
			slog.Uint64("rival_github_user_id", rivalGitHubUserID),
			slog.Any("error", err),
		)
		return domain.ErrorOutcome(err)
	}

	s.epochs.Bump(epoch.PageRivals, epoch.PageDashboard)
	return domain.SuccessOutcome("rival removed")
}
