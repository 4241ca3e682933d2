//go:build unit

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"signup-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failAll error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failAll != nil {
		return redis.NewStringResult("", f.failAll)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failAll != nil {
		return redis.NewStatusResult("", f.failAll)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.failAll != nil {
		return redis.NewIntResult(0, f.failAll)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestSessionCache(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip then invalidate", func(t *testing.T) {
		rdb := newFakeRedis()
		c := NewSessionCache(rdb, 30*time.Second)
		view := &queries.SessionView{
			ID:        uuid.New(),
			Level:     "open",
			Available: queries.PoolsView{A: 2, B: 1},
			ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		}

		_, hit := c.GetSession(ctx, view.ID)
		assert.False(t, hit)

		c.PutSession(ctx, view)
		assert.Equal(t, 30*time.Second, rdb.ttls[sessionKey(view.ID)])

		got, hit := c.GetSession(ctx, view.ID)
		require.True(t, hit)
		assert.Equal(t, view.Available, got.Available)
		assert.True(t, view.ExpiresAt.Equal(got.ExpiresAt))

		c.InvalidateSession(ctx, view.ID)
		_, hit = c.GetSession(ctx, view.ID)
		assert.False(t, hit)
	})

	t.Run("ttl is capped by session expiry", func(t *testing.T) {
		rdb := newFakeRedis()
		c := NewSessionCache(rdb, time.Hour)
		view := &queries.SessionView{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Minute)}

		c.PutSession(ctx, view)
		ttl := rdb.ttls[sessionKey(view.ID)]
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("expired view is not stored", func(t *testing.T) {
		rdb := newFakeRedis()
		c := NewSessionCache(rdb, time.Hour)
		view := &queries.SessionView{ID: uuid.New(), ExpiresAt: time.Now().Add(-time.Second)}

		c.PutSession(ctx, view)
		assert.Empty(t, rdb.data)
	})

	t.Run("corrupt entry is a miss and gets dropped", func(t *testing.T) {
		rdb := newFakeRedis()
		c := NewSessionCache(rdb, time.Hour)
		id := uuid.New()
		rdb.data[sessionKey(id)] = "{not json"

		_, hit := c.GetSession(ctx, id)
		assert.False(t, hit)
		assert.NotContains(t, rdb.data, sessionKey(id))
	})

	t.Run("redis outage degrades to misses", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.failAll = errors.New("dial tcp: connection refused")
		c := NewSessionCache(rdb, time.Hour)
		view := &queries.SessionView{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}

		c.PutSession(ctx, view)
		c.InvalidateSession(ctx, view.ID)
		_, hit := c.GetSession(ctx, view.ID)
		assert.False(t, hit)
	})
}
