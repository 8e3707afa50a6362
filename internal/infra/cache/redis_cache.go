// Package cache provides the key/value cache backing dashboard snapshots.
package cache

import (
	"context"
	"log/slog"
	"time"

	"locust/config"
	"locust/internal/domain/lifecycle"
	"locust/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the parameters required for the cache
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type redisCache struct {
	client redis.Cmdable
}

// NewRedisCache wraps an existing go-redis client
func NewRedisCache(client redis.Cmdable) service.Cache {
	return &redisCache{client: client}
}

// New returns a Redis-backed cache when redis.url is set, otherwise a cache that always misses.
func New(params Params) (service.Cache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Redis not configured, dashboard caching disabled")

		return noopCache{}, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}
	client := redis.NewClient(opt)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCache(client), nil
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return val, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.Wrapf(c.client.Set(ctx, key, value, ttl).Err(), "redis set %s", key)
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return errors.Wrap(c.client.Del(ctx, keys...).Err(), "redis del")
}

// noopCache never stores anything.
type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, error) {
	return nil, service.ErrCacheMiss
}

func (noopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (noopCache) Delete(context.Context, ...string) error {
	return nil
}
