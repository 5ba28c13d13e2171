// Package cache provides a Redis-backed JSON response cache. A nil *Cache is
// valid and disables caching, so callers degrade gracefully when Redis is down.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deyna256/codeforces-rag/internal/logger"
)

// ErrMiss is returned on a cache miss.
var ErrMiss = errors.New("cache miss")

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFromURL connects to Redis and verifies the connection with a ping.
func NewFromURL(redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// New wraps an existing client, used by tests.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Available reports whether caching is enabled.
func (c *Cache) Available() bool {
	return c != nil && c.client != nil
}

// GetJSON loads the cached value for key into dest. Returns ErrMiss when the
// key is absent or caching is disabled.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	if !c.Available() {
		return ErrMiss
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("cache get failed: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// a corrupt entry behaves like a miss so the caller refetches
		logger.Warn("discarding corrupt cache entry", "key", key, "error", err)
		return ErrMiss
	}

	return nil
}

// SetJSON stores value under key with the configured TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	if !c.Available() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}

	return nil
}

// Flush clears the current Redis database.
func (c *Cache) Flush(ctx context.Context) error {
	if !c.Available() {
		return errors.New("cache is not available")
	}

	if err := c.client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush cache: %w", err)
	}

	logger.Info("flushed cache database")
	return nil
}

// Client exposes the underlying Redis client for the rate limiter store.
func (c *Cache) Client() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

func (c *Cache) Close() error {
	if !c.Available() {
		return nil
	}
	return c.client.Close()
}
