// Package rediscache provides a Redis-backed cache for product listing pages.
// Cache failures are never surfaced to callers: a broken cache degrades to
// querying the database on every request.
package rediscache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProductListCache caches encoded product pages in Redis with a TTL.
// Implements the queries.ProductListCache interface.
type ProductListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewProductListCache creates a cache on top of an existing Redis client.
// Entries expire after ttl.
func NewProductListCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ProductListCache {
	return &ProductListCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// Get returns the cached page for the key, or false on a miss.
// Redis errors count as misses.
func (c *ProductListCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("product cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	return value, true
}

// Set stores the encoded page under the key. Write failures are logged
// and swallowed.
func (c *ProductListCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("product cache write failed", "key", key, "error", err)
	}
}

// InvalidateProductLists drops every cached product page. Called after
// catalog or stock writes so listings do not serve stale stock for the
// remainder of the TTL. Failures are logged and swallowed.
func (c *ProductListCache) InvalidateProductLists(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, "products:*", 0).Iterator()
	keys := make([]string, 0, 16)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("product cache scan failed", "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("product cache invalidation failed", "keys", len(keys), "error", err)
	}
}
