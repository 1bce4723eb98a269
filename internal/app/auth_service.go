package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

// sessionTokenBytes is the entropy of a session token before hex encoding.
const sessionTokenBytes = 32

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService manages sign-in and sign-out. Sign-in forwards the GitHub
// profile to the backend for the identity upsert and issues an opaque
// session token; sign-out revokes the token.
type AuthService struct {
	backend    ports.BackendClient
	sessions   ports.SessionStore
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAuthService creates an AuthService issuing sessions with the given TTL.
func NewAuthService(backend ports.BackendClient, sessions ports.SessionStore, sessionTTL time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		backend:    backend,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// SignIn validates the profile, upserts it with the backend, and creates
// a session. An upsert failure is logged but does not block sign-in; the
// backend record catches up on the next sign-in.
func (s *AuthService) SignIn(ctx context.Context, profile domain.GitHubProfile) (string, error) {
	if profile.GitHubUserID == 0 || profile.GitHubUsername == "" {
		return "", &domain.ValidationError{Fields: map[string]string{
			"profile": "github user id and username are required",
		}}
	}

	s.logger.InfoContext(ctx, "signing in",
		slog.Uint64("github_user_id", profile.GitHubUserID),
	)

	if err := s.backend.UpsertUser(ctx, profile); err != nil {
		s.logger.WarnContext(ctx, "user upsert failed, continuing sign-in",
			slog.String("operation", "SignIn"),
			slog.Uint64("github_user_id", profile.GitHubUserID),
			slog.Any("error", err),
		)
	}

	token, err := newSessionToken()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}

	identity := domain.Identity{
		GitHubUserID:   profile.GitHubUserID,
		GitHubUsername: profile.GitHubUsername,
	}
	if err := s.sessions.Save(ctx, token, identity, s.sessionTTL); err != nil {
		s.logger.ErrorContext(ctx, "failed to save session",
			slog.String("operation", "SignIn"),
			slog.Uint64("github_user_id", profile.GitHubUserID),
			slog.Any("error", err),
		)
		return "", err
	}

	return token, nil
}

// SignOut invalidates the session token. Revoking an unknown token is
// not an error.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete session",
			slog.String("operation", "SignOut"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
