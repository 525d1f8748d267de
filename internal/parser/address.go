package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cardparser/vcard/internal/refdata"
	"github.com/cardparser/vcard/internal/streetindex"
)

var streetSuffixTokens = []string{"str.", "straße", "strasse", "weg", "platz", "allee", "gasse"}

var contactNoisePattern = regexp.MustCompile(`(?i)tel|fax|email|handy|mobil|@`)

// zipCityAnchorPattern matches the ZIP+City anchor: optional country
// prefix, exactly five digits, whitespace, then a multi-token city
// expression allowing German connective particles.
var zipCityAnchorPattern = regexp.MustCompile(
	`(?i)\b(?:D-|CH-)?(\d{5})\s+([A-ZÄÖÜ][\wäöüßÄÖÜ.\-]*(?:\s+(?:am|im|an|der|den|dem|auf|ob)\s+[A-ZÄÖÜ][\wäöüßÄÖÜ.\-]*|\s+[A-ZÄÖÜ][\wäöüßÄÖÜ.\-]*)*)`,
)

// AddressDetector implements the two-strategy address extraction: Strategy
// A (street-token-led, via the Street Index) wins outright over Strategy B
// (ZIP+City anchor-led) if it produces any candidates at all.
type AddressDetector struct{}

func (AddressDetector) Name() string { return "address" }

func (AddressDetector) Detect(chunks []Chunk) []Scored[ParsedAddress] {
	reg := refdata.Get()
	if out := strategyA(reg, chunks); len(out) > 0 {
		return out
	}
	return strategyB(reg, chunks)
}

// strategyA: street-token-led, probing the Street Index per token.
func strategyA(reg *refdata.Registry, chunks []Chunk) []Scored[ParsedAddress] {
	var out []Scored[ParsedAddress]
	seen := map[string]bool{}

	for i, c := range chunks {
		tokens := strings.Fields(c.Text)
		for ti, tok := range tokens {
			_, ok := streetindex.FindStreetFuzzy(tok)
			if !ok {
				continue
			}
			houseNumber := ""
			if ti+1 < len(tokens) && startsWithDigit(tokens[ti+1]) {
				houseNumber = tokens[ti+1]
			}
			streetValue := capitalizeStreet(tok)
			if houseNumber != "" {
				streetValue = streetValue + " " + houseNumber
			}

			zip, city, found := findAnchorInWindow(chunks, i, 3)
			if !found {
				continue
			}

			dedupKey := zip + "|" + strings.ToLower(streetValue)
			if seen[dedupKey] {
				continue
			}
			seen[dedupKey] = true

			var score float32
			switch {
			case city == "":
				score = 0.8
			case reg.IsKnownCity(city):
				score = 1.0
			default:
				score = 0.9
			}

			addr := ParsedAddress{Street: streetValue, Zip: zip, City: city, Country: "Germany"}
			out = append(out, newScored(addr, score, LabelWork, "token_fst_street"))
		}
	}
	return out
}

func findAnchorInWindow(chunks []Chunk, startIdx, windowChunks int) (zip, city string, found bool) {
	for i := startIdx; i < len(chunks) && i <= startIdx+windowChunks; i++ {
		if z, c, ok := matchZipCityAnchor(chunks[i].Text); ok {
			return z, c, true
		}
	}
	return "", "", false
}

func matchZipCityAnchor(text string) (zip, city string, ok bool) {
	m := zipCityAnchorPattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// strategyB: anchor-led fallback, scanning for the ZIP+City regex and then
// locating a street using the extraction heuristic.
func strategyB(reg *refdata.Registry, chunks []Chunk) []Scored[ParsedAddress] {
	var out []Scored[ParsedAddress]
	seen := map[string]bool{}

	for i, c := range chunks {
		zip, city, ok := matchZipCityAnchor(c.Text)
		if !ok {
			continue
		}

		beforeMatch := c.Text
		if idx := strings.Index(c.Text, zip); idx >= 0 {
			beforeMatch = c.Text[:idx]
		}
		street, hasStreet := extractStreet(beforeMatch)
		if !hasStreet {
			for j := i - 1; j >= 0; j-- {
				if s, ok := extractStreet(chunks[j].Text); ok {
					street = s
					hasStreet = true
					break
				}
			}
		}

		dedupKey := zip + "|" + strings.ToLower(street)
		if seen[dedupKey] {
			continue
		}
		seen[dedupKey] = true

		var score float32
		switch {
		case city != "" && reg.IsKnownCity(city):
			score = 1.0
		case city != "":
			score = 0.8
		default:
			score = 0.5
		}
		if hasStreet {
			if _, valid := streetindex.FindStreetFuzzy(street); valid {
				score = 1.0
			}
		}

		addr := ParsedAddress{Street: street, Zip: zip, City: city, Country: "Germany"}
		out = append(out, newScored(addr, score, LabelWork, "regex_anchor_zip_city"))
	}
	return out
}

// extractStreet implements the street-extraction heuristic from §4.7.1.
func extractStreet(chunk string) (string, bool) {
	chunk = stripTrailingSingleCharCrumb(chunk)

	var candidates []string
	if hasRunOf3Spaces(chunk) {
		cols := columnSeparator.Split(chunk, -1)
		for i := len(cols) - 1; i >= 0; i-- {
			candidates = append(candidates, strings.TrimSpace(cols[i]))
		}
	} else {
		candidates = []string{strings.TrimSpace(chunk)}
	}

	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		if contactNoisePattern.MatchString(cand) {
			continue
		}
		if len([]rune(cand)) >= 50 {
			continue
		}
		if containsDigit(cand) || containsStreetSuffix(cand) {
			return cand, true
		}
	}
	return "", false
}

// stripTrailingSingleCharCrumb removes a single trailing character that is
// preceded by three or more spaces, e.g. the "L" crumb in scenario S3.
func stripTrailingSingleCharCrumb(chunk string) string {
	idx := strings.LastIndex(chunk, "   ")
	if idx < 0 {
		return chunk
	}
	tail := strings.TrimSpace(chunk[idx:])
	if len([]rune(tail)) == 1 {
		return strings.TrimRight(chunk[:idx], " ")
	}
	return chunk
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsStreetSuffix(s string) bool {
	lower := strings.ToLower(s)
	for _, suf := range streetSuffixTokens {
		if strings.Contains(lower, suf) {
			return true
		}
	}
	return false
}

func startsWithDigit(s string) bool {
	r := []rune(s)
	return len(r) > 0 && unicode.IsDigit(r[0])
}

func capitalizeStreet(tok string) string {
	r := []rune(tok)
	if len(r) == 0 {
		return tok
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
