package services

import (
	"context"
	"sync"
	"time"

	"github.com/cardparser/vcard/app/models"
)

// CacheService is a process-local in-memory TTL cache that needs neither
// Redis nor MongoDB. Its GetStats returns a plain map rather than
// *CacheStats, so it does not implement ICacheService, and neither cmd/api
// nor cmd/worker constructs it.
type CacheService struct {
	cache      map[string]*models.ContactCache
	timestamps map[string]time.Time
	mu         sync.RWMutex
	ttl        time.Duration
}

// NewCacheService builds an empty in-memory cache with the given TTL.
func NewCacheService(ttl time.Duration) *CacheService {
	return &CacheService{
		cache:      make(map[string]*models.ContactCache),
		timestamps: make(map[string]time.Time),
		ttl:        ttl,
	}
}

// Get returns the cached entry for key, or (nil, false) if absent or expired.
func (cs *CacheService) Get(ctx context.Context, key string) (*models.ContactCache, bool, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	if result, exists := cs.cache[key]; exists {
		if cs.isExpired(key) {
			go cs.deleteExpired(key)
			return nil, false, nil
		}
		return result, true, nil
	}

	return nil, false, nil
}

// Set stores result under key, resetting its TTL clock.
func (cs *CacheService) Set(ctx context.Context, key string, result *models.ContactCache) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.timestamps[key] = time.Now()
	cs.cache[key] = result

	return nil
}

// Delete removes key from the cache.
func (cs *CacheService) Delete(ctx context.Context, key string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.cache, key)
	delete(cs.timestamps, key)

	return nil
}

// Clear empties the cache.
func (cs *CacheService) Clear(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.cache = make(map[string]*models.ContactCache)
	cs.timestamps = make(map[string]time.Time)

	return nil
}

// InvalidateStaleEntries drops entries not parsed under currentVersion.
func (cs *CacheService) InvalidateStaleEntries(ctx context.Context, currentVersion string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for key, entry := range cs.cache {
		if entry.ParserVersion != currentVersion {
			delete(cs.cache, key)
			delete(cs.timestamps, key)
		}
	}

	return nil
}

// Size reports the current number of cached entries.
func (cs *CacheService) Size() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	return len(cs.cache)
}

// GetStats reports basic cache occupancy counters.
func (cs *CacheService) GetStats(ctx context.Context) (map[string]interface{}, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	total := len(cs.cache)
	expired := 0

	for key := range cs.cache {
		if cs.isExpired(key) {
			expired++
		}
	}

	return map[string]interface{}{
		"total_items":   total,
		"expired_items": expired,
		"active_items":  total - expired,
		"ttl_seconds":   int(cs.ttl.Seconds()),
	}, nil
}

// CleanupExpired evicts every entry past its TTL.
func (cs *CacheService) CleanupExpired() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for key := range cs.cache {
		if cs.isExpired(key) {
			delete(cs.cache, key)
			delete(cs.timestamps, key)
		}
	}
}

func (cs *CacheService) isExpired(key string) bool {
	timestamp, exists := cs.timestamps[key]
	if !exists {
		return true
	}
	return time.Since(timestamp) > cs.ttl
}

func (cs *CacheService) deleteExpired(key string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.cache, key)
	delete(cs.timestamps, key)
}

// Exists reports whether key is present (expired or not).
func (cs *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	_, exists := cs.cache[key]
	return exists, nil
}

// GetTTL returns the remaining TTL for key.
func (cs *CacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	timestamp, exists := cs.timestamps[key]
	if !exists {
		return 0, nil
	}

	remaining := cs.ttl - time.Since(timestamp)
	if remaining < 0 {
		return 0, nil
	}

	return remaining, nil
}

// StartCleanupWorker runs CleanupExpired on a fixed interval until the
// process exits.
func (cs *CacheService) StartCleanupWorker(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			cs.CleanupExpired()
		}
	}()
}

// Close is a no-op; the in-memory cache holds no external connection.
func (cs *CacheService) Close() error {
	return nil
}
