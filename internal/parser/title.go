package parser

import (
	"strings"
	"unicode"

	"github.com/cardparser/vcard/internal/refdata"
)

var titleNoisePattern = contactNoisePattern

// TitleDetector finds chunks describing a job title.
type TitleDetector struct{}

func (TitleDetector) Name() string { return "title" }

func (TitleDetector) Detect(chunks []Chunk) []Scored[string] {
	reg := refdata.Get()
	var out []Scored[string]
	seen := map[string]bool{}

	for _, c := range chunks {
		text := strings.TrimSpace(c.Text)
		if len([]rune(text)) < 4 {
			continue
		}
		if titleNoisePattern.MatchString(text) {
			continue
		}
		if strings.Contains(text, "http") || strings.Contains(text, "www") {
			continue
		}
		if digitRatio(text) > 0.5 {
			continue
		}

		matches := countTitleKeywordMatches(reg, text)
		if matches == 0 {
			continue
		}
		key := strings.ToLower(text)
		if seen[key] {
			continue
		}
		seen[key] = true

		var score float32
		switch {
		case matches == 1 && len(strings.Fields(text)) == 1:
			score = 0.9
		case matches == 1:
			score = 0.7
		case matches == 2:
			score = 0.85
		default:
			score = 0.95
		}
		out = append(out, newScored(text, score, LabelTitle, "title_keyword_match"))
	}

	sortByScoreDesc(out)
	return out
}

func digitRatio(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	digits := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return float64(digits) / float64(len(runes))
}

func countTitleKeywordMatches(reg *refdata.Registry, text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range reg.TitleKeywords {
		k := strings.ToLower(kw)
		if len(k) <= 4 {
			if containsWholeWord(lower, k) || strings.HasPrefix(lower, k) {
				count++
			}
			continue
		}
		if strings.Contains(lower, k) {
			count++
		}
	}
	return count
}
