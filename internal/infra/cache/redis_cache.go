// Package cache stores routing responses in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"itinerary/config"
	"itinerary/internal/domain/constants"
	"itinerary/internal/domain/optimization"
	"itinerary/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultResultTTL = 10 * time.Minute

// optimizationCache keys routing responses by request fingerprint.
type optimizationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOptimizationCache wraps an existing client.
func NewOptimizationCache(client *redis.Client, ttl time.Duration) service.OptimizationCache {
	if ttl <= 0 {
		ttl = defaultResultTTL
	}

	return &optimizationCache{client: client, ttl: ttl}
}

// Params holds dependencies for the Redis cache, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns the Redis-backed cache, or nil when the cache is disabled.
func New(params Params) (service.OptimizationCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis cache disabled, optimizing without result cache")

		return nil, nil
	}

	if cfg.Addr == "" {
		return nil, errors.New("redis address is required when the cache is enabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewOptimizationCache(client, cfg.ResultTTL), nil
}

func (c *optimizationCache) Get(ctx context.Context, fingerprint string) (*optimization.Response, error) {
	data, err := c.client.Get(ctx, key(fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}

		return nil, errors.Wrap(err, "redis get")
	}

	var resp optimization.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrap(err, "decode cached response")
	}

	return &resp, nil
}

func (c *optimizationCache) Set(ctx context.Context, fingerprint string, resp *optimization.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "encode response for cache")
	}

	return errors.Wrap(c.client.Set(ctx, key(fingerprint), data, c.ttl).Err(), "redis set")
}

func key(fingerprint string) string {
	return constants.CacheKeyOptimizationResult + fingerprint
}
