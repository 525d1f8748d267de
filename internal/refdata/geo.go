package refdata

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/mozillazg/go-unidecode"
	"github.com/xrash/smetrics"
)

// CitiesConsistent reports whether two city names should be treated as the
// same place: equality, substring containment, or token overlap (shared
// token longer than 3 characters), matching the geo-consistency rule.
func CitiesConsistent(a, b string) bool {
	a, b = normalizeKey(a), normalizeKey(b)
	if a == "" || b == "" {
		return false
	}
	if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	for _, ta := range strings.Fields(a) {
		if len(ta) <= 3 {
			continue
		}
		for _, tb := range strings.Fields(b) {
			if ta == tb {
				return true
			}
		}
	}
	return false
}

// fuzzyThreshold is how close two unaccented, lowercased city names must be
// (Jaro-Winkler similarity) to be considered an OCR-noise match when the
// exact geo-consistency rule above fails to find agreement.
const fuzzyThreshold = 0.92

// unaccent mirrors the teacher's address_matcher.go unaccent() helper:
// ASCII-fold then lowercase, used to tolerate OCR diacritic loss in city
// names before a fuzzy comparison.
func unaccent(s string) string {
	return strings.ToLower(unidecode.Unidecode(s))
}

// CitiesFuzzyMatch is an additive robustness layer beyond the literal
// geo-consistency rule: it tolerates minor OCR noise (transposed or
// dropped characters) using Jaro-Winkler similarity and a bounded
// Levenshtein distance on the unaccented forms. It is only consulted when
// CitiesConsistent returns false.
func CitiesFuzzyMatch(a, b string) bool {
	ua, ub := unaccent(a), unaccent(b)
	if ua == "" || ub == "" {
		return false
	}
	if smetrics.JaroWinkler(ua, ub, 0.7, 4) >= fuzzyThreshold {
		return true
	}
	maxLen := len(ua)
	if len(ub) > maxLen {
		maxLen = len(ub)
	}
	if maxLen == 0 {
		return false
	}
	dist := levenshtein.ComputeDistance(ua, ub)
	return float64(dist)/float64(maxLen) <= 0.125
}

// IsKnownCity reports whether name (any case/diacritics) is in the
// Known-Cities list, trying an exact NFC-lowercase match first and an
// exact match of the unaccented (ASCII-folded) forms second.
func (r *Registry) IsKnownCity(name string) bool {
	if _, ok := r.KnownCities[normalizeKey(name)]; ok {
		return true
	}
	target := unaccent(name)
	for city := range r.KnownCities {
		if unaccent(city) == target {
			return true
		}
	}
	return false
}
