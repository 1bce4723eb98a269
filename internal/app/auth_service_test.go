package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/commitly/web/internal/app"
	"github.com/commitly/web/internal/domain"
)

var testProfile = domain.GitHubProfile{
	GitHubUserID:   42,
	GitHubUsername: "octocat",
	Email:          "octocat@example.com",
	AvatarURL:      "https://example.com/a.png",
}

func TestSignIn_IssuesToken(t *testing.T) {
	t.Parallel()

	var savedToken string
	var savedIdentity domain.Identity
	var savedTTL time.Duration

	sessions := &fakeSessionStore{
		save: func(_ context.Context, token string, id domain.Identity, ttl time.Duration) error {
			savedToken, savedIdentity, savedTTL = token, id, ttl
			return nil
		},
	}

	svc := app.NewAuthService(&fakeBackend{}, sessions, 720*time.Hour, testLogger())
	token, err := svc.SignIn(context.Background(), testProfile)
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	if token == "" {
		t.Fatal("token is empty")
	}
	if len(token) != 64 {
		t.Errorf("len(token) = %d, want 64 hex chars", len(token))
	}
	if savedToken != token {
		t.Error("saved token differs from returned token")
	}
	if savedIdentity.GitHubUserID != 42 || savedIdentity.GitHubUsername != "octocat" {
		t.Errorf("saved identity = %+v", savedIdentity)
	}
	if savedTTL != 720*time.Hour {
		t.Errorf("saved ttl = %v, want 720h", savedTTL)
	}
}

func TestSignIn_TokensAreUnique(t *testing.T) {
	t.Parallel()

	svc := app.NewAuthService(&fakeBackend{}, &fakeSessionStore{}, time.Hour, testLogger())

	first, err := svc.SignIn(context.Background(), testProfile)
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	second, err := svc.SignIn(context.Background(), testProfile)
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	if first == second {
		t.Error("two sign-ins produced the same token")
	}
}

func TestSignIn_InvalidProfile(t *testing.T) {
	t.Parallel()

	svc := app.NewAuthService(&fakeBackend{}, &fakeSessionStore{}, time.Hour, testLogger())

	_, err := svc.SignIn(context.Background(), domain.GitHubProfile{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestSignIn_UpsertFailureDoesNotBlock(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		upsertUser: func(context.Context, domain.GitHubProfile) error {
			return &domain.BackendError{Message: "backend down", Status: 503}
		},
	}

	svc := app.NewAuthService(backend, &fakeSessionStore{}, time.Hour, testLogger())
	token, err := svc.SignIn(context.Background(), testProfile)
	if err != nil {
		t.Fatalf("SignIn() error = %v, want nil despite upsert failure", err)
	}
	if token == "" {
		t.Error("token is empty, want a session despite upsert failure")
	}
}

func TestSignIn_SessionSaveFailurePropagates(t *testing.T) {
	t.Parallel()

	saveErr := errors.New("redis down")
	sessions := &fakeSessionStore{
		save: func(context.Context, string, domain.Identity, time.Duration) error {
			return saveErr
		},
	}

	svc := app.NewAuthService(&fakeBackend{}, sessions, time.Hour, testLogger())
	_, err := svc.SignIn(context.Background(), testProfile)
	if !errors.Is(err, saveErr) {
		t.Errorf("error = %v, want session save error", err)
	}
}

func TestSignOut_DeletesToken(t *testing.T) {
	t.Parallel()

	var deleted string
	sessions := &fakeSessionStore{
		delete: func(_ context.Context, token string) error {
			deleted = token
			return nil
		},
	}

	svc := app.NewAuthService(&fakeBackend{}, sessions, time.Hour, testLogger())
	if err := svc.SignOut(context.Background(), "tok-1"); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if deleted != "tok-1" {
		t.Errorf("deleted token = %q, want tok-1", deleted)
	}
}

func TestSignOut_EmptyTokenIsNoop(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessionStore{
		delete: func(context.Context, string) error {
			t.Fatal("Delete should not be called for an empty token")
			return nil
		},
	}

	svc := app.NewAuthService(&fakeBackend{}, sessions, time.Hour, testLogger())
	if err := svc.SignOut(context.Background(), ""); err != nil {
		t.Errorf("SignOut(\"\") = %v, want nil", err)
	}
}
