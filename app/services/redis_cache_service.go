package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cardparser/vcard/app/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCacheService is the L1 cache tier: a Redis-backed TTL cache of
// ContactCache entries keyed by fingerprint.
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   int64
	misses int64
}

// NewRedisCacheService connects to Redis and verifies the connection with
// a ping before returning.
func NewRedisCacheService(redisURL string, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "cardparser:",
		ttl:    24 * time.Hour,
	}, nil
}

// Get fetches a cached parse result by key.
func (rcs *RedisCacheService) Get(ctx context.Context, key string) (*models.ContactCache, bool, error) {
	cacheKey := rcs.prefix + key

	val, err := rcs.client.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		rcs.misses++
		return nil, false, nil
	}
	if err != nil {
		rcs.logger.Error("Redis get failed", zap.Error(err), zap.String("key", cacheKey))
		return nil, false, err
	}

	var result models.ContactCache
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		rcs.logger.Error("unmarshalling cached data", zap.Error(err))
		return nil, false, err
	}

	rcs.hits++
	rcs.logger.Debug("Redis cache hit", zap.String("key", key))
	return &result, true, nil
}

// Set stores a parse result with the configured TTL.
func (rcs *RedisCacheService) Set(ctx context.Context, key string, result *models.ContactCache) error {
	cacheKey := rcs.prefix + key

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshalling cache data: %w", err)
	}

	if err := rcs.client.Set(ctx, cacheKey, data, rcs.ttl).Err(); err != nil {
		rcs.logger.Error("Redis set failed", zap.Error(err), zap.String("key", cacheKey))
		return err
	}

	rcs.logger.Debug("saved to Redis cache", zap.String("key", key))
	return nil
}

// Delete removes a key from the cache.
func (rcs *RedisCacheService) Delete(ctx context.Context, key string) error {
	cacheKey := rcs.prefix + key

	if err := rcs.client.Del(ctx, cacheKey).Err(); err != nil {
		rcs.logger.Error("Redis delete failed", zap.Error(err), zap.String("key", cacheKey))
		return err
	}

	rcs.logger.Debug("deleted from Redis cache", zap.String("key", key))
	return nil
}

// Clear removes every key under this service's prefix.
func (rcs *RedisCacheService) Clear(ctx context.Context) error {
	pattern := rcs.prefix + "*"
	keys, err := rcs.client.Keys(ctx, pattern).Result()
	if err != nil {
		return fmt.Errorf("listing keys: %w", err)
	}

	if len(keys) > 0 {
		if err := rcs.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("deleting keys: %w", err)
		}
	}

	rcs.logger.Info("cleared Redis cache", zap.Int("keys_deleted", len(keys)))
	return nil
}

// InvalidateStaleEntries drops the whole Redis tier: Redis doesn't store
// parser_version in the key, so a partial invalidation isn't possible —
// the MongoDB tier handles the targeted version-based invalidation.
func (rcs *RedisCacheService) InvalidateStaleEntries(ctx context.Context, currentVersion string) error {
	return rcs.Clear(ctx)
}

// GetStats reports hit-rate and approximate item count for this tier.
func (rcs *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	if _, err := rcs.client.Info(ctx, "memory").Result(); err != nil {
		rcs.logger.Warn("could not fetch Redis memory info", zap.Error(err))
	}

	total := rcs.hits + rcs.misses
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(rcs.hits) / float64(total)
	}

	keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result()
	totalItems := int64(0)
	if err == nil {
		totalItems = int64(len(keys))
	}

	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  rcs.hits,
		TotalMiss:  rcs.misses,
		TotalItems: totalItems,
	}, nil
}

// Exists reports whether key is present in Redis.
func (rcs *RedisCacheService) Exists(ctx context.Context, key string) (bool, error) {
	cacheKey := rcs.prefix + key

	exists, err := rcs.client.Exists(ctx, cacheKey).Result()
	if err != nil {
		return false, err
	}

	return exists > 0, nil
}

// GetTTL returns the remaining TTL for key.
func (rcs *RedisCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	cacheKey := rcs.prefix + key

	ttl, err := rcs.client.TTL(ctx, cacheKey).Result()
	if err != nil {
		return 0, err
	}

	return ttl, nil
}

// Close closes the underlying Redis connection.
func (rcs *RedisCacheService) Close() error {
	return rcs.client.Close()
}

// SetTTL overrides the default TTL used by Set.
func (rcs *RedisCacheService) SetTTL(ttl time.Duration) {
	rcs.ttl = ttl
}

// GetClient exposes the underlying Redis client for diagnostics.
func (rcs *RedisCacheService) GetClient() *redis.Client {
	return rcs.client
}
