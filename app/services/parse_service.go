package services

import (
	"context"

	"github.com/cardparser/vcard/app/models"
	"github.com/cardparser/vcard/internal/parser"
	"go.uber.org/zap"
)

// ParseService wraps the pure parser package with the cache tier,
// logging, and access bookkeeping expected of a service-layer
// component. parser.Parse itself stays logger-free and side-effect-free.
type ParseService struct {
	cache  ICacheService
	logger *zap.Logger
}

// NewParseService builds a ParseService over the given cache tier.
func NewParseService(cache ICacheService, logger *zap.Logger) *ParseService {
	return &ParseService{cache: cache, logger: logger}
}

// Parse returns the ContactRecord for rawText, serving a cache hit when
// available and populating the cache on a miss. Parsing is a pure function
// of rawText (invariant §8.1), so a fingerprint hit is always safe to serve.
func (ps *ParseService) Parse(ctx context.Context, rawText string) (*models.ContactCache, bool, error) {
	fp := fingerprintOf(rawText)

	if entry, found, err := ps.cache.Get(ctx, fp); err == nil && found {
		entry.UpdateAccess()
		ps.logger.Debug("parse cache hit", zap.Int("text_len", len(rawText)))
		return entry, true, nil
	}

	record := parser.Parse(rawText)
	entry := models.NewContactCache(fp, rawText, record)

	if err := ps.cache.Set(ctx, fp, entry); err != nil {
		ps.logger.Warn("failed to cache parse result", zap.Error(err))
	}

	return entry, false, nil
}

// ParseBatch parses each text in texts independently via the pure
// parser.ParseAll, without involving the cache tier — matching the
// teacher's batch entry point, used by the bulk-upload HTTP route.
func (ps *ParseService) ParseBatch(texts []string) []parser.ContactRecord {
	return parser.ParseAll(texts)
}

// DebugLayout exposes the layout normalizer's intermediate chunking for
// diagnostics (§6's debug_parse_layout).
func (ps *ParseService) DebugLayout(rawText string) []string {
	return parser.DebugParseLayout(rawText)
}
