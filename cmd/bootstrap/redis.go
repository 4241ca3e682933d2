package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"signup-engine/internal/infra/cache"
	"signup-engine/internal/pkg/config"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewSessionCache,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset; the cache then
// degrades to a no-op.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("redis disabled, session views are not cached")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

type SessionCacheOut struct {
	fx.Out

	Reader      queries.SessionCache
	Invalidator commands.CacheInvalidator
}

func NewSessionCache(client *redis.Client, cfg config.Config) SessionCacheOut {
	if client == nil {
		noop := cache.NoopSessionCache{}
		return SessionCacheOut{Reader: noop, Invalidator: noop}
	}
	c := cache.NewSessionCache(client, cfg.Redis.CacheTTL)
	return SessionCacheOut{Reader: c, Invalidator: c}
}
