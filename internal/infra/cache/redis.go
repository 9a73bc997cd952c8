package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hospital-ops/internal/pkg/breaker"
	"hospital-ops/internal/pkg/config"
	"hospital-ops/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

var errCacheUnavailable = errs.New("feed cache unavailable")

// NewRedisClient pings once. A failed ping is logged, not returned.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis ping failed, display feeds will be served uncached",
			"addr", cfg.Addr,
			"error", err.Error())
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}

// FeedCache keeps rendered display feeds as JSON with a fixed TTL.
type FeedCache struct {
	client redis.Cmdable
	ttl    time.Duration
	cb     *gobreaker.CircuitBreaker
}

func NewFeedCache(client redis.Cmdable, cfg config.RedisConfig) *FeedCache {
	return &FeedCache{
		client: client,
		ttl:    cfg.DisplayCacheTTL,
		cb:     breaker.New("Redis-FeedCache", 5*time.Second),
	}
}

func (c *FeedCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.cb.Execute(func() (interface{}, error) {
		b, err := c.client.Get(ctx, key).Bytes()
		if errs.Is(err, redis.Nil) {
			// miss
			return nil, nil
		}
		return b, err
	})
	if err != nil {
		return false, errs.Mark(errs.Wrapf(err, "get %s", key), errCacheUnavailable)
	}

	b, _ := raw.([]byte)
	if b == nil {
		return false, nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, errs.Wrapf(err, "decode cached %s", key)
	}
	return true, nil
}

func (c *FeedCache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return errs.Wrapf(err, "encode %s", key)
	}

	_, err = c.cb.Execute(func() (interface{}, error) {
		return nil, c.client.Set(ctx, key, b, c.ttl).Err()
	})
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "set %s", key), errCacheUnavailable)
	}
	return nil
}
