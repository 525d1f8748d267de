package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cardparser/vcard/internal/refdata"
)

// phoneCandidatePattern finds a substring starting with +CC, 00CC, '(' or a
// digit, followed by three or more characters from the allowed phone
// character class.
var phoneCandidatePattern = regexp.MustCompile(`(?:\+\d{1,3}|00\d{1,3}|\(|\d)[\d \-./()]{3,}`)

var datePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

var faxContextPattern = regexp.MustCompile(`(?i)fax`)

// PhoneDetector finds and scores telephone-number-shaped substrings.
type PhoneDetector struct{}

func (PhoneDetector) Name() string { return "phone" }

func (PhoneDetector) Detect(chunks []Chunk) []Scored[string] {
	reg := refdata.Get()
	var out []Scored[string]
	for _, c := range chunks {
		for _, loc := range phoneCandidatePattern.FindAllStringIndex(c.Text, -1) {
			start, end := loc[0], loc[1]
			if start > 0 {
				byteIdx := start
				prevRune := lastRuneBefore(c.Text, byteIdx)
				if prevRune != 0 && unicode.IsLetter(prevRune) {
					continue
				}
			}
			match := c.Text[start:end]

			candidates, ok := splitOversizedMatch(match)
			if !ok {
				continue
			}

			for _, cand := range candidates {
				if !validatePhone(cand) {
					continue
				}
				out = append(out, scorePhone(reg, cand, c.Text))
			}
		}
	}
	return out
}

func lastRuneBefore(s string, byteIdx int) rune {
	if byteIdx <= 0 || byteIdx > len(s) {
		return 0
	}
	r := []rune(s[:byteIdx])
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// splitOversizedMatch handles the "total digits exceed 15" rule: if the
// match contains one of the merged-field separators, it attempts to split
// on it and validate each fragment independently. Returns ok=false when the
// match is oversized and no separator yields an all-valid split — such a
// match is almost certainly a merged blob of unrelated fields and should
// not be emitted as a single phone candidate.
func splitOversizedMatch(match string) (candidates []string, ok bool) {
	if countDigits(match) <= 15 {
		return []string{match}, true
	}
	for _, sep := range []string{" // ", " / ", " | "} {
		if !strings.Contains(match, sep) {
			continue
		}
		var fragments []string
		for _, p := range strings.Split(match, sep) {
			p = strings.TrimSpace(p)
			if p != "" {
				fragments = append(fragments, p)
			}
		}
		if len(fragments) < 2 {
			continue
		}
		allValid := true
		for _, f := range fragments {
			if !validatePhone(f) {
				allValid = false
				break
			}
		}
		if allValid {
			return fragments, true
		}
	}
	return nil, false
}

func validatePhone(s string) bool {
	s = strings.TrimSpace(s)
	if countDigits(s) < 5 {
		return false
	}
	if datePattern.MatchString(s) {
		return false
	}
	return true
}

// normalizePhone removes "(0)" then keeps only digits and '+'.
func normalizePhone(raw string) string {
	s := strings.ReplaceAll(raw, "(0)", "")
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// prefixForm replaces a leading +49/0049 with a single leading 0, for
// landline-prefix lookup purposes only; the emitted value keeps the '+'.
func prefixForm(normalized string) string {
	s := normalized
	switch {
	case strings.HasPrefix(s, "+49"):
		s = "0" + s[3:]
	case strings.HasPrefix(s, "0049"):
		s = "0" + s[4:]
	}
	return s
}

// rawPhoneDebugPrefix tags the original (pre-digit-stripping) matched text
// onto a phone candidate's DebugInfo, so the reconciler's business-ID
// filter can inspect characters (such as dashes) that normalizePhone has
// already discarded from Value.
const rawPhoneDebugPrefix = "raw:"

func scorePhone(reg *refdata.Registry, raw, chunkText string) Scored[string] {
	normalized := normalizePhone(raw)
	lookup := prefixForm(normalized)

	var score float32
	var label string

	switch {
	case hasMobilePrefix(reg, lookup):
		score, label = 0.95, LabelCell
	case matchesLandlinePrefix(reg, lookup):
		score, label = 1.0, LabelWork
	case strings.HasPrefix(lookup, "0") || strings.HasPrefix(normalized, "+"):
		score, label = 0.85, LabelWork
	default:
		score, label = 0.5, ""
	}

	if faxContextPattern.MatchString(chunkText) {
		label = LabelFax
		if score < 0.95 {
			score = 0.95
		}
	}

	return newScored(normalized, score, label, "phone_regex|"+rawPhoneDebugPrefix+raw)
}

// rawPhoneText recovers the original matched substring stashed in
// DebugInfo by scorePhone.
func rawPhoneText(debugInfo string) string {
	idx := strings.Index(debugInfo, rawPhoneDebugPrefix)
	if idx < 0 {
		return ""
	}
	return debugInfo[idx+len(rawPhoneDebugPrefix):]
}

func hasMobilePrefix(reg *refdata.Registry, lookup string) bool {
	for _, p := range reg.MobilePrefixes {
		if strings.HasPrefix(lookup, p) {
			return true
		}
	}
	return false
}

// matchesLandlinePrefix finds the longest matching landline prefix
// (lengths 3..6), first match wins — used identically by the detector and
// the reconciler's geo-consistency step.
func matchesLandlinePrefix(reg *refdata.Registry, lookup string) bool {
	_, ok := LongestLandlinePrefix(reg, lookup)
	return ok
}

// LongestLandlinePrefix returns the longest landline prefix (3 to 6 digits)
// of the given leading-0 normalized number that exists in the prefix set.
func LongestLandlinePrefix(reg *refdata.Registry, leadingZeroForm string) (string, bool) {
	for length := 6; length >= 3; length-- {
		if len(leadingZeroForm) < length {
			continue
		}
		candidate := leadingZeroForm[:length]
		if _, ok := reg.LandlinePrefixes[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}
