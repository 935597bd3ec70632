package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

// CachedSubscribable is the pricing/availability snapshot kept per catalog
// item so order line building does not hit the database on every preview.
type CachedSubscribable struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
	Purchasable bool   `json:"purchasable"`
}

// CatalogCache caches catalog pricing and availability.
type CatalogCache interface {
	Get(ctx context.Context, subscribableID uint) (*CachedSubscribable, error)
	Set(ctx context.Context, item *CachedSubscribable) error
	Invalidate(ctx context.Context, subscribableID uint) error
}

const catalogKeyPrefix = "catalog:subscribable:"

// RedisCatalogCache implements CatalogCache on Redis with a JSON payload
// per item.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisCatalogCache {
	return &RedisCatalogCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCatalogCache) key(subscribableID uint) string {
	return fmt.Sprintf("%s%d", catalogKeyPrefix, subscribableID)
}

// Get returns the cached snapshot, or nil on a cache miss. Redis errors are
// returned so callers can decide whether to fall back to the database.
func (c *RedisCatalogCache) Get(ctx context.Context, subscribableID uint) (*CachedSubscribable, error) {
	data, err := c.client.Get(ctx, c.key(subscribableID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscribable from cache: %w", err)
	}

	var item CachedSubscribable
	if err := json.Unmarshal(data, &item); err != nil {
		// Treat corrupt entries as a miss; the writer will overwrite.
		c.logger.Warnw("corrupt catalog cache entry", "subscribable_id", subscribableID, "error", err)
		return nil, nil
	}

	return &item, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, item *CachedSubscribable) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal subscribable for cache: %w", err)
	}

	if err := c.client.Set(ctx, c.key(item.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set subscribable in cache: %w", err)
	}
	return nil
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context, subscribableID uint) error {
	if err := c.client.Del(ctx, c.key(subscribableID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate subscribable cache: %w", err)
	}
	return nil
}
