package parser

import (
	"strings"
	"unicode"

	"github.com/cardparser/vcard/internal/refdata"
)

// NameDetector scores chunks as candidate formatted personal names.
type NameDetector struct{}

func (NameDetector) Name() string { return "name" }

func (NameDetector) Detect(chunks []Chunk) []Scored[string] {
	reg := refdata.Get()
	var out []Scored[string]
	for _, c := range chunks {
		text := strings.TrimSpace(c.Text)
		if len([]rune(text)) < 3 || containsDigit(text) {
			continue
		}
		tokens := strings.Fields(text)
		if len(tokens) == 0 {
			continue
		}

		var score float32
		for _, tok := range tokens {
			if _, ok := reg.FirstNames[tok]; ok {
				score += 0.6
			} else if _, ok := reg.FirstNames[strings.TrimSuffix(tok, ".")]; ok {
				score += 0.6
			}
			if isTitleToken(tok) {
				score += 0.3
			}
		}
		if allTokensCapitalized(tokens) {
			score += 0.2
		}
		if len(tokens) >= 2 && len(tokens) <= 4 {
			score += 0.1
		}
		if score > 1.0 {
			score = 1.0
		}
		if score > 0 {
			out = append(out, newScored(text, score, "", "name_score"))
		}
	}
	return out
}

func isTitleToken(tok string) bool {
	lower := strings.ToLower(strings.TrimSuffix(tok, "."))
	switch lower {
	case "dr", "prof", "dipl-ing", "dipl", "m.sc", "msc", "mba", "b.sc", "bsc", "llm":
		return true
	}
	return false
}

func allTokensCapitalized(tokens []string) bool {
	for _, tok := range tokens {
		r := []rune(tok)
		if len(r) == 0 {
			continue
		}
		if unicode.IsLetter(r[0]) && !unicode.IsUpper(r[0]) {
			return false
		}
	}
	return true
}
