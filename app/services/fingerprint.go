package services

import (
	"crypto/sha256"
	"fmt"
)

// fingerprintOf derives the cache key for a piece of raw card text,
// mirroring the teacher's address_matcher.go generateFingerprint. Every
// cache tier is keyed on this value, never on the raw text itself.
func fingerprintOf(text string) string {
	hash := sha256.Sum256([]byte(text))
	return fmt.Sprintf("sha256:%x", hash)
}
