package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"signup-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:view:"

// RedisClient is the subset of *redis.Client the cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionCache is a best-effort read-through cache of session views. Redis
// failures are logged and reported as misses; they never fail a request.
type SessionCache struct {
	client RedisClient
	ttl    time.Duration
}

func NewSessionCache(client RedisClient, ttl time.Duration) *SessionCache {
	return &SessionCache{client: client, ttl: ttl}
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func (c *SessionCache) GetSession(ctx context.Context, id uuid.UUID) (*queries.SessionView, bool) {
	raw, err := c.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("session cache read failed", "session_id", id, "error", err.Error())
		}
		return nil, false
	}

	var view queries.SessionView
	if err := json.Unmarshal(raw, &view); err != nil {
		slog.Warn("session cache entry corrupt", "session_id", id, "error", err.Error())
		c.InvalidateSession(ctx, id)
		return nil, false
	}
	return &view, true
}

// PutSession never lets an entry outlive the session itself.
func (c *SessionCache) PutSession(ctx context.Context, view *queries.SessionView) {
	ttl := c.ttl
	if left := time.Until(view.ExpiresAt); left < ttl {
		ttl = left
	}
	if ttl <= 0 {
		return
	}

	raw, err := json.Marshal(view)
	if err != nil {
		slog.Warn("session cache encode failed", "session_id", view.ID, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, sessionKey(view.ID), raw, ttl).Err(); err != nil {
		slog.Warn("session cache write failed", "session_id", view.ID, "error", err.Error())
	}
}

func (c *SessionCache) InvalidateSession(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		slog.Warn("session cache invalidation failed", "session_id", id, "error", err.Error())
	}
}

// NoopSessionCache is used when no redis address is configured.
type NoopSessionCache struct{}

func (NoopSessionCache) GetSession(context.Context, uuid.UUID) (*queries.SessionView, bool) {
	return nil, false
}

func (NoopSessionCache) PutSession(context.Context, *queries.SessionView) {}

func (NoopSessionCache) InvalidateSession(context.Context, uuid.UUID) {}
