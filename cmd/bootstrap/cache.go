package bootstrap

import (
	"context"

	"hospital-ops/internal/infra/cache"
	"hospital-ops/internal/pkg/config"
	"hospital-ops/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			func(client *redis.Client, cfg config.Config) *cache.FeedCache {
				return cache.NewFeedCache(client, cfg.Redis)
			},
			fx.As(new(queries.FeedCache)),
		),
	),
)

// NewRedis never fails on an unreachable server; feeds fall back to Postgres.
func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}
