package parser

import (
	"strings"

	"github.com/cardparser/vcard/internal/refdata"
)

// OrganizationDetector finds chunks containing a legal-form token.
type OrganizationDetector struct{}

func (OrganizationDetector) Name() string { return "organization" }

func (OrganizationDetector) Detect(chunks []Chunk) []Scored[string] {
	reg := refdata.Get()
	var out []Scored[string]
	seen := map[string]bool{}

	for _, c := range chunks {
		candidates := []string{c.Text}
		if hasRunOf3Spaces(c.Text) {
			candidates = columnSeparator.Split(c.Text, -1)
		}
		for _, cand := range candidates {
			cand = strings.TrimSpace(cand)
			name, found := extractOrgName(reg, cand)
			if !found {
				continue
			}
			name = strings.TrimRight(name, ",.")
			if len([]rune(name)) < 5 {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true

			tokenCount := len(strings.Fields(name))
			var score float32
			switch {
			case tokenCount == 1:
				score = 0.6
			case tokenCount == 2:
				score = 0.8
			case tokenCount >= 3 && tokenCount <= 5:
				score = 1.0
			default:
				score = 0.7
			}
			out = append(out, newScored(name, score, LabelOrg, "legal_form_match"))
		}
	}

	sortByScoreDesc(out)
	return out
}

// extractOrgName finds the leftmost legal-form occurrence in cand and
// returns the substring from the start of cand through the end of that
// occurrence, trimming anything that follows (trailing phone numbers,
// VAT IDs, etc. merged onto the same line by OCR).
func extractOrgName(reg *refdata.Registry, cand string) (string, bool) {
	lower := strings.ToLower(cand)
	bestEnd := -1
	bestStart := len(cand) + 1

	for _, form := range reg.LegalForms {
		f := strings.ToLower(form)
		if len(f) <= 3 {
			start, end, ok := findWholeWord(lower, f)
			if ok && start < bestStart {
				bestStart, bestEnd = start, end
			}
			continue
		}
		if idx := strings.Index(lower, f); idx >= 0 && idx < bestStart {
			bestStart, bestEnd = idx, idx+len(f)
		}
	}

	if bestEnd < 0 {
		return "", false
	}
	return strings.TrimSpace(cand[:bestEnd]), true
}

// findWholeWord returns the first space-bounded (or string-edge-bounded)
// occurrence of needle in haystack.
func findWholeWord(haystack, needle string) (start, end int, ok bool) {
	idx := 0
	for {
		pos := strings.Index(haystack[idx:], needle)
		if pos < 0 {
			return 0, 0, false
		}
		s := idx + pos
		e := s + len(needle)
		beforeOK := s == 0 || haystack[s-1] == ' '
		afterOK := e == len(haystack) || haystack[e] == ' '
		if beforeOK && afterOK {
			return s, e, true
		}
		idx = s + 1
		if idx >= len(haystack) {
			return 0, 0, false
		}
	}
}

// containsWholeWord checks that needle occurs in haystack bounded by
// spaces or the string edges (space-bounded whole-word match).
func containsWholeWord(haystack, needle string) bool {
	idx := 0
	for {
		pos := strings.Index(haystack[idx:], needle)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(needle)
		beforeOK := start == 0 || haystack[start-1] == ' '
		afterOK := end == len(haystack) || haystack[end] == ' '
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
		if idx >= len(haystack) {
			return false
		}
	}
}
