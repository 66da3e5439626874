// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wicket-proxy/wicket/internal/logger"
)

// redisCache is the Redis-backed implementation of [Cache]. Session entries
// carry no TTL: revocation is driven entirely by explicit deletes, and the
// auth path must never rely on expiry for correctness.
type redisCache struct {
	rdb    *redis.Client
	logger *logger.Logger
}

// NewRedisCache connects to the Redis instance at addr ("host:port") and
// returns a [Cache] backed by it. The connection is verified with a PING so
// that misconfiguration surfaces at startup rather than on the first login.
func NewRedisCache(ctx context.Context, addr string, log *logger.Logger) (Cache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("addr", addr).Msg("error connecting to redis")
		return nil, fmt.Errorf("error connecting to redis at %s: %w", addr, err)
	}
	log.Info().Str("addr", addr).Msg("connected to redis")

	return &redisCache{rdb: rdb, logger: log}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("error reading cache key: %w", err)
	}

	return value, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string) error {
	if err := c.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("error writing cache key: %w", err)
	}

	return nil
}

func (c *redisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error deleting cache keys: %w", err)
	}

	return nil
}
