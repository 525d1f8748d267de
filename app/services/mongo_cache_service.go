package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cardparser/vcard/app/models"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoCacheService is the persistent L2 cache: MongoDB backed by an
// in-process LRU (L1) of recently served ContactCache entries.
type MongoCacheService struct {
	db         *mongo.Database
	collection *mongo.Collection
	l1Cache    *lru.Cache[string, *models.ContactCache]
	logger     *zap.Logger

	totalHits int64
	totalMiss int64
	l1Hits    int64
	l1Miss    int64
	mongoHits int64
	mongoMiss int64
}

// NewMongoCacheService builds a MongoCacheService backed by the given
// database, with an L1 LRU of the given capacity.
func NewMongoCacheService(db *mongo.Database, l1Size int, logger *zap.Logger) (*MongoCacheService, error) {
	l1Cache, err := lru.New[string, *models.ContactCache](l1Size)
	if err != nil {
		return nil, fmt.Errorf("creating L1 LRU cache: %w", err)
	}

	collection := db.Collection("contact_cache")

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "fingerprint", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{bson.E{Key: "parser_version", Value: 1}},
		},
		{
			Keys: bson.D{bson.E{Key: "created_at", Value: 1}},
		},
		{
			Keys: bson.D{bson.E{Key: "last_accessed", Value: 1}},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		logger.Warn("could not create indexes on contact_cache", zap.Error(err))
	}

	return &MongoCacheService{
		db:         db,
		collection: collection,
		l1Cache:    l1Cache,
		logger:     logger,
	}, nil
}

// Get looks up a parse result, checking the L1 LRU before MongoDB.
func (mcs *MongoCacheService) Get(ctx context.Context, key string) (*models.ContactCache, bool, error) {
	if result, found := mcs.l1Cache.Get(key); found {
		mcs.l1Hits++
		mcs.totalHits++
		mcs.logger.Debug("L1 cache hit", zap.String("key", key))
		return result, true, nil
	}
	mcs.l1Miss++

	// key is already the caller-computed SHA-256 fingerprint (see
	// services.fingerprintOf / ParseService.Parse).
	var entry models.ContactCache
	filter := bson.M{"fingerprint": key}

	err := mcs.collection.FindOne(ctx, filter).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			mcs.mongoMiss++
			mcs.totalMiss++
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("querying MongoDB cache: %w", err)
	}

	mcs.mongoHits++
	mcs.totalHits++

	go mcs.updateAccessStats(ctx, entry.ID)

	mcs.l1Cache.Add(key, &entry)

	mcs.logger.Debug("MongoDB cache hit", zap.String("fingerprint", key))

	return &entry, true, nil
}

// Set stores a parse result in both the L1 LRU and MongoDB. result must
// already carry its final Fingerprint and ParserVersion — Set never
// mutates result, since the hybrid tier may hand the same pointer to the
// Redis and MongoDB tiers concurrently.
func (mcs *MongoCacheService) Set(ctx context.Context, key string, result *models.ContactCache) error {
	mcs.l1Cache.Add(key, result)

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"fingerprint": key}

	if _, err := mcs.collection.ReplaceOne(ctx, filter, result, opts); err != nil {
		mcs.logger.Error("saving to MongoDB cache",
			zap.Error(err),
			zap.String("fingerprint", key))
		return fmt.Errorf("saving to MongoDB cache: %w", err)
	}

	mcs.logger.Debug("saved to cache", zap.String("fingerprint", key))

	return nil
}

// Delete removes an entry from the L1 LRU and MongoDB.
func (mcs *MongoCacheService) Delete(ctx context.Context, key string) error {
	mcs.l1Cache.Remove(key)

	filter := bson.M{"fingerprint": key}

	if _, err := mcs.collection.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("deleting from MongoDB cache: %w", err)
	}

	return nil
}

// Clear drops every cached entry and resets the metrics counters.
func (mcs *MongoCacheService) Clear(ctx context.Context) error {
	mcs.l1Cache.Purge()

	if _, err := mcs.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clearing MongoDB cache: %w", err)
	}

	mcs.totalHits = 0
	mcs.totalMiss = 0
	mcs.l1Hits = 0
	mcs.l1Miss = 0
	mcs.mongoHits = 0
	mcs.mongoMiss = 0

	return nil
}

// InvalidateStaleEntries drops every cached entry whose ParserVersion
// doesn't match currentVersion — used after a reference-data or detector
// logic change that could change parse results for already-cached text.
func (mcs *MongoCacheService) InvalidateStaleEntries(ctx context.Context, currentVersion string) error {
	mcs.l1Cache.Purge()

	filter := bson.M{"parser_version": bson.M{"$ne": currentVersion}}

	result, err := mcs.collection.DeleteMany(ctx, filter)
	if err != nil {
		return fmt.Errorf("invalidating stale cache entries: %w", err)
	}

	mcs.logger.Info("invalidated stale cache entries",
		zap.String("parser_version", currentVersion),
		zap.Int64("deleted_count", result.DeletedCount))

	return nil
}

// GetStats reports combined L1/MongoDB hit-rate statistics.
func (mcs *MongoCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	l1Size := mcs.l1Cache.Len()

	mongoCount, err := mcs.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("counting documents in MongoDB cache: %w", err)
	}

	total := mcs.totalHits + mcs.totalMiss
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(mcs.totalHits) / float64(total)
	}

	stats := &CacheStats{
		HitRate:    hitRate,
		TotalHits:  mcs.totalHits,
		TotalMiss:  mcs.totalMiss,
		TotalItems: mongoCount,
	}

	mcs.logger.Debug("cache stats",
		zap.Float64("hit_rate", hitRate),
		zap.Int64("total_hits", mcs.totalHits),
		zap.Int64("total_miss", mcs.totalMiss),
		zap.Int("l1_size", l1Size),
		zap.Int64("mongo_count", mongoCount))

	return stats, nil
}

// Exists reports whether key is cached in L1 or MongoDB.
func (mcs *MongoCacheService) Exists(ctx context.Context, key string) (bool, error) {
	if mcs.l1Cache.Contains(key) {
		return true, nil
	}

	filter := bson.M{"fingerprint": key}

	count, err := mcs.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("checking existence in MongoDB: %w", err)
	}

	return count > 0, nil
}

// GetTTL always returns 0: the MongoDB tier is persistent and has no TTL.
func (mcs *MongoCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return 0, nil
}

// Close is a no-op; the *mongo.Database connection is owned by the caller.
func (mcs *MongoCacheService) Close() error {
	return nil
}

// updateAccessStats bumps the access bookkeeping on a MongoDB cache hit.
func (mcs *MongoCacheService) updateAccessStats(ctx context.Context, id primitive.ObjectID) {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{"last_accessed": time.Now()},
		"$inc": bson.M{"access_count": 1},
	}

	if _, err := mcs.collection.UpdateOne(ctx, filter, update); err != nil {
		mcs.logger.Warn("updating access stats", zap.Error(err))
	}
}

// GetL1Stats reports raw L1/L2 hit/miss counters for diagnostics.
func (mcs *MongoCacheService) GetL1Stats() map[string]interface{} {
	return map[string]interface{}{
		"l1_size":    mcs.l1Cache.Len(),
		"l1_hits":    mcs.l1Hits,
		"l1_miss":    mcs.l1Miss,
		"mongo_hits": mcs.mongoHits,
		"mongo_miss": mcs.mongoMiss,
		"total_hits": mcs.totalHits,
		"total_miss": mcs.totalMiss,
	}
}

// WarmUp preloads the L1 LRU with the most-accessed MongoDB entries.
func (mcs *MongoCacheService) WarmUp(ctx context.Context, limit int) error {
	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "access_count", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := mcs.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return fmt.Errorf("warming up cache: %w", err)
	}
	defer cursor.Close(ctx)

	count := 0
	for cursor.Next(ctx) {
		var entry models.ContactCache
		if err := cursor.Decode(&entry); err != nil {
			mcs.logger.Warn("decoding cache entry during warm up", zap.Error(err))
			continue
		}

		mcs.l1Cache.Add(entry.Fingerprint, &entry)
		count++
	}

	mcs.logger.Info("cache warm up complete",
		zap.Int("loaded_items", count),
		zap.Int("l1_size", mcs.l1Cache.Len()))

	return nil
}
