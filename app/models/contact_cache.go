package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cardparser/vcard/internal/parser"
)

// Cache entry status constants, mirroring the teacher's address-cache
// status convention for a simpler, parse-only domain.
const (
	StatusFresh   = "fresh"
	StatusStale   = "stale"
	StatusPending = "pending"
)

// ParserVersion tags every cache entry with the reference-data/detector
// logic version that produced it. Bumping this lets InvalidateStaleEntries
// drop entries parsed under an older ruleset without a full cache flush.
const ParserVersion = "1.0.0"

// ContactCache is a persisted parse result, keyed by the SHA-256
// fingerprint of the raw card text (see app/services fingerprint helper).
// Parsing is pure (Parse(text) is deterministic), so a cache hit on the
// fingerprint is always safe to serve without re-running the pipeline.
type ContactCache struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Fingerprint   string               `bson:"fingerprint" json:"fingerprint"`
	RawText       string               `bson:"raw_text" json:"raw_text"`
	Result        parser.ContactRecord `bson:"result" json:"result"`
	Status        string               `bson:"status" json:"status"`
	ParserVersion string               `bson:"parser_version" json:"parser_version"`
	CreatedAt     time.Time            `bson:"created_at" json:"created_at"`
	LastAccessed  time.Time            `bson:"last_accessed" json:"last_accessed"`
	AccessCount   int                  `bson:"access_count" json:"access_count"`
}

// NewContactCache builds a fresh cache entry for a just-parsed result.
func NewContactCache(fingerprint, rawText string, result parser.ContactRecord) *ContactCache {
	now := time.Now()
	return &ContactCache{
		Fingerprint:   fingerprint,
		RawText:       rawText,
		Result:        result,
		Status:        StatusFresh,
		ParserVersion: ParserVersion,
		CreatedAt:     now,
		LastAccessed:  now,
		AccessCount:   1,
	}
}

// UpdateAccess bumps the access bookkeeping on a cache hit.
func (cc *ContactCache) UpdateAccess() {
	cc.LastAccessed = time.Now()
	cc.AccessCount++
}

// IsExpired reports whether the entry is older than ttlHours.
func (cc *ContactCache) IsExpired(ttlHours int) bool {
	return time.Since(cc.CreatedAt) > time.Duration(ttlHours)*time.Hour
}

// IsValidStatus validates Status against the known cache-entry statuses.
func (cc *ContactCache) IsValidStatus() bool {
	switch cc.Status {
	case StatusFresh, StatusStale, StatusPending:
		return true
	}
	return false
}
