//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-ops/internal/infra/cache"
	"hospital-ops/internal/pkg/config"
	"hospital-ops/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRedis answers Get and Set from memory, or fails them all when down is set.
type stubRedis struct {
	redis.Cmdable
	items map[string]string
	down  bool
	calls int
}

func (r *stubRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	r.calls++
	if r.down {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := r.items[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (r *stubRedis) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	r.calls++
	if r.down {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	r.items[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

type feed struct {
	Department string `json:"department"`
}

func newCache(r *stubRedis) *cache.FeedCache {
	return cache.NewFeedCache(r, config.RedisConfig{DisplayCacheTTL: 5 * time.Second})
}

func TestFeedCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		c := newCache(&stubRedis{items: map[string]string{}})

		var got feed
		hit, err := c.Get(ctx, "display:feed:queue:OPD", &got)
		require.NoError(t, err)
		assert.False(t, hit)

		require.NoError(t, c.Set(ctx, "display:feed:queue:OPD", feed{Department: "OPD"}))
		hit, err = c.Get(ctx, "display:feed:queue:OPD", &got)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, "OPD", got.Department)
	})

	t.Run("misses do not trip the breaker", func(t *testing.T) {
		r := &stubRedis{items: map[string]string{}}
		c := newCache(r)

		for range 5 {
			_, err := c.Get(ctx, "missing", &feed{})
			require.NoError(t, err)
		}
		assert.Equal(t, 5, r.calls)
	})

	t.Run("breaker opens after repeated failures", func(t *testing.T) {
		r := &stubRedis{items: map[string]string{}, down: true}
		c := newCache(r)

		for range 3 {
			_, err := c.Get(ctx, "k", &feed{})
			require.Error(t, err)
		}
		require.Equal(t, 3, r.calls)

		hit, err := c.Get(ctx, "k", &feed{})
		assert.False(t, hit)
		require.Error(t, err)
		assert.True(t, errs.Is(err, gobreaker.ErrOpenState))
		assert.Equal(t, 3, r.calls)

		err = c.Set(ctx, "k", feed{})
		assert.True(t, errs.Is(err, gobreaker.ErrOpenState))
		assert.Equal(t, 3, r.calls)
	})
}
