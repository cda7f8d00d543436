// Package cache wraps Redis for read-through lookups and pub/sub.
// A Cache without a client is valid: reads miss, writes and publishes
// are dropped, so the API runs without Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "jobvibe:"

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// Connect parses a redis:// URL and pings the server. An empty URL
// yields a disabled cache.
func Connect(ctx context.Context, url string, ttl time.Duration) (*Cache, error) {
	if url == "" {
		return &Cache{ttl: ttl}, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(rdb, ttl), nil
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Enabled() bool { return c != nil && c.rdb != nil }

// GetJSON decodes key into dst. found is false on a miss or when the
// cache is disabled.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) error {
	if !c.Enabled() {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPrefix+key, raw, c.ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = keyPrefix + k
	}
	return c.rdb.Del(ctx, full...).Err()
}

// DeletePrefix removes every key starting with prefix.
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) error {
	if !c.Enabled() {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, keyPrefix+prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Publish sends payload as JSON on channel.
func (c *Cache) Publish(ctx context.Context, channel string, payload any) error {
	if !c.Enabled() {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.rdb.Publish(ctx, keyPrefix+channel, raw).Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}

// Remember returns the cached value for key, or loads, stores and returns
// it. Cache failures degrade to calling load.
func Remember[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	var v T
	found, err := c.GetJSON(ctx, key, &v)
	if err != nil {
		slog.Warn("cache read failed", "key", key, "error", err)
	}
	if found {
		return v, nil
	}

	v, err = load(ctx)
	if err != nil {
		return v, err
	}
	if err := c.SetJSON(ctx, key, v); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
	return v, nil
}
