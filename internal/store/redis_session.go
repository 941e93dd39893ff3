package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/quote-sync/models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "quote-sync:session:"

// RedisSessionStore implements [SessionStore] on Redis. Each session is a
// JSON value whose key expires together with the session.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionStore connects to redisURL and verifies the connection.
func NewRedisSessionStore(ctx context.Context, redisURL string) (*RedisSessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisSessionStoreWithClient(client), nil
}

// NewRedisSessionStoreWithClient creates a store from an existing client.
func NewRedisSessionStoreWithClient(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		prefix: sessionKeyPrefix,
	}
}

func (s *RedisSessionStore) key(guestID string) string {
	return s.prefix + guestID
}

// SaveSession stores session for ttl.
func (s *RedisSessionStore) SaveSession(ctx context.Context, session models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(session.GuestID), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// GetSession retrieves a live session.
func (s *RedisSessionStore) GetSession(ctx context.Context, guestID string) (models.Session, error) {
	data, err := s.client.Get(ctx, s.key(guestID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("lookup session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return session, nil
}

// TouchSession moves the session's expiry to now+ttl, rewriting the stored
// ExpiresAt so it agrees with the key's TTL.
func (s *RedisSessionStore) TouchSession(ctx context.Context, guestID string, ttl time.Duration) error {
	session, err := s.GetSession(ctx, guestID)
	if err != nil {
		return err
	}

	session.ExpiresAt = time.Now().Add(ttl)
	return s.SaveSession(ctx, session, ttl)
}

// Ping checks that Redis is reachable.
func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
