// Package session provides session token stores: a Redis-backed store
// for production and an in-memory store for local development and tests.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SessionStore  = (*RedisStore)(nil)
	_ ports.HealthChecker = (*RedisStore)(nil)
)

// sessionRecord is the JSON shape persisted per token.
type sessionRecord struct {
	GitHubUserID   uint64 `json:"github_user_id"`
	GitHubUsername string `json:"github_username"`
}

// RedisStore implements ports.SessionStore using Redis. Tokens are
// stored as JSON values under a configurable key prefix; expiry is
// delegated to Redis TTLs.
type RedisStore struct {
	client *backend.Client
	prefix string
}

// RedisOption customizes a RedisStore.
type RedisOption func(*RedisStore)

// WithPrefix sets the key prefix for session tokens.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a Redis session store with its own client.
func NewRedisStore(address, password string, db int, opts ...RedisOption) *RedisStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreFromClient(rdb, opts...)
}

// NewRedisStoreFromClient creates a Redis session store from an existing
// client.
func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	store := &RedisStore{
		client: client,
		prefix: "commitly:session:",
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

// Save persists the identity under the token with the given TTL.
func (s *RedisStore) Save(ctx context.Context, token string, id domain.Identity, ttl time.Duration) error {
	data, err := json.Marshal(sessionRecord{
		GitHubUserID:   id.GitHubUserID,
		GitHubUsername: id.GitHubUsername,
	})
	if err != nil {
		return fmt.Errorf("marshaling session record: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token), data, ttl).Err(); err != nil {
		return fmt.Errorf("saving session to redis: %w", err)
	}
	return nil
}

// Load resolves a token back to its identity. An unknown or expired
// token yields domain.ErrSessionNotFound.
func (s *RedisStore) Load(ctx context.Context, token string) (domain.Identity, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if err == backend.Nil {
			return domain.Identity{}, domain.ErrSessionNotFound
		}
		return domain.Identity{}, fmt.Errorf("loading session from redis: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return domain.Identity{}, fmt.Errorf("unmarshaling session record: %w", err)
	}

	return domain.Identity{
		GitHubUserID:   rec.GitHubUserID,
		GitHubUsername: rec.GitHubUsername,
	}, nil
}

// Delete invalidates a token. Deleting an unknown token is not an error.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

// Name identifies the store in health reports.
func (s *RedisStore) Name() string {
	return "session-store"
}

// HealthCheck pings Redis.
func (s *RedisStore) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
