package services

import (
	"context"
	"time"

	"github.com/cardparser/vcard/app/models"
)

// CacheStats summarizes hit/miss counters for a cache tier.
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService is implemented by every cache tier (Redis, MongoDB, and
// the hybrid combination of both) so callers can swap tiers freely.
type ICacheService interface {
	Get(ctx context.Context, key string) (*models.ContactCache, bool, error)
	Set(ctx context.Context, key string, result *models.ContactCache) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// InvalidateStaleEntries drops cached entries not parsed under
	// currentVersion, used after a reference-data or detector change.
	InvalidateStaleEntries(ctx context.Context, currentVersion string) error

	GetStats(ctx context.Context) (*CacheStats, error)
	Exists(ctx context.Context, key string) (bool, error)
	GetTTL(ctx context.Context, key string) (time.Duration, error)
	Close() error
}
