package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/commitly/web/internal/adapters/session"
	"github.com/commitly/web/internal/domain"
)

func newTestStore(t *testing.T) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	store := session.NewRedisStoreFromClient(client)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	id := domain.Identity{GitHubUserID: 42, GitHubUsername: "octocat"}

	if err := store.Save(context.Background(), "tok-1", id, time.Hour); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := store.Load(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != id {
		t.Errorf("Load = %+v, want %+v", got, id)
	}
}

func TestRedisStore_LoadUnknownToken(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	_, err := store.Load(context.Background(), "missing")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Load error = %v, want ErrSessionNotFound", err)
	}
}

func TestRedisStore_TokenExpires(t *testing.T) {
	t.Parallel()

	store, mr := newTestStore(t)
	id := domain.Identity{GitHubUserID: 7, GitHubUsername: "gopher"}

	if err := store.Save(context.Background(), "tok-exp", id, time.Minute); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, err := store.Load(context.Background(), "tok-exp")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Load error = %v, want ErrSessionNotFound for expired token", err)
	}
}

func TestRedisStore_Delete(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	id := domain.Identity{GitHubUserID: 1, GitHubUsername: "a"}

	if err := store.Save(context.Background(), "tok-del", id, time.Hour); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := store.Delete(context.Background(), "tok-del"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	_, err := store.Load(context.Background(), "tok-del")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Load after Delete = %v, want ErrSessionNotFound", err)
	}
}

func TestRedisStore_DeleteUnknownToken(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	if err := store.Delete(context.Background(), "never-existed"); err != nil {
		t.Errorf("Delete of unknown token = %v, want nil", err)
	}
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	store := session.NewRedisStoreFromClient(client, session.WithPrefix("custom:"))
	t.Cleanup(func() { _ = store.Close() })

	id := domain.Identity{GitHubUserID: 9, GitHubUsername: "prefixed"}
	if err := store.Save(context.Background(), "tok-p", id, time.Hour); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if !mr.Exists("custom:tok-p") {
		t.Errorf("key %q not found in redis, keys = %v", "custom:tok-p", mr.Keys())
	}
}

func TestRedisStore_HealthCheck(t *testing.T) {
	t.Parallel()

	store, mr := newTestStore(t)

	if err := store.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck = %v, want nil while redis is up", err)
	}

	mr.Close()

	if err := store.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck = nil, want error after redis is down")
	}
}

func TestRedisStore_Name(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	if got := store.Name(); got != "session-store" {
		t.Errorf("Name() = %q, want %q", got, "session-store")
	}
}
