package parser

import (
	"regexp"
	"strings"
)

var ocrURLFixups = []struct{ from, to string }{
	{"www. ", "www."},
	{"http: //", "http://"},
	{"https ://", "https://"},
	{"http ://", "http://"},
	{"https: //", "https://"},
	{"www .", "www."},
}

var commonTLDs = `com|de|net|org|io|co|info|biz|eu|at|ch|shop|online|dev|app`

var (
	fullURLPattern  = regexp.MustCompile(`(?i)\bhttps?://[^\s]+`)
	wwwURLPattern   = regexp.MustCompile(`(?i)\bwww\.[a-z0-9][a-z0-9.\-]*\.(?:` + commonTLDs + `)(?:/[^\s]*)?`)
	bareHostPattern = regexp.MustCompile(`(?i)\b[a-z0-9][a-z0-9\-]*\.(?:` + commonTLDs + `)(?:/[^\s]*)?\b`)
)

// URLDetector finds http(s) URLs, www-prefixed hosts, and bare
// host.tld(/path)? forms drawn from a closed TLD list.
type URLDetector struct{}

func (URLDetector) Name() string { return "url" }

func (URLDetector) Detect(chunks []Chunk) []Scored[string] {
	var out []Scored[string]
	seen := map[string]bool{}
	for _, c := range chunks {
		text := fixupOCRArtifacts(c.Text)
		var claimed [][2]int

		// Email addresses belong to the email detector; their domain only
		// becomes a URL through the reconciler's email-domain inference.
		for _, loc := range emailPattern.FindAllStringIndex(text, -1) {
			claimed = append(claimed, [2]int{loc[0], loc[1]})
		}

		for _, loc := range fullURLPattern.FindAllStringIndex(text, -1) {
			claimed = append(claimed, [2]int{loc[0], loc[1]})
			v := cleanTrailingPunct(text[loc[0]:loc[1]])
			if dedupAdd(seen, strings.ToLower(v)) {
				out = append(out, newScored(v, 1.0, LabelURL, "url_protocol"))
			}
		}
		for _, loc := range wwwURLPattern.FindAllStringIndex(text, -1) {
			if overlapsAny(claimed, loc[0], loc[1]) {
				continue
			}
			claimed = append(claimed, [2]int{loc[0], loc[1]})
			v := "https://" + cleanTrailingPunct(text[loc[0]:loc[1]])
			if dedupAdd(seen, strings.ToLower(v)) {
				out = append(out, newScored(v, 0.95, LabelURL, "url_www"))
			}
		}
		for _, loc := range bareHostPattern.FindAllStringIndex(text, -1) {
			if overlapsAny(claimed, loc[0], loc[1]) {
				continue
			}
			clean := cleanTrailingPunct(text[loc[0]:loc[1]])
			v := "https://" + clean
			if dedupAdd(seen, strings.ToLower(v)) {
				score := float32(0.7)
				if strings.Contains(clean, "/") {
					score = 0.85
				}
				out = append(out, newScored(v, score, LabelURL, "url_bare"))
			}
		}
	}
	return out
}

// overlapsAny reports whether [start, end) intersects any already-claimed
// span, so the www. and bare-host scans don't re-match a host already
// covered by an email address or by an earlier scan (e.g. "example.com"
// inside "www.example.com" or "info@example.com").
func overlapsAny(claimed [][2]int, start, end int) bool {
	for _, span := range claimed {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}

func fixupOCRArtifacts(s string) string {
	for _, fx := range ocrURLFixups {
		s = strings.ReplaceAll(s, fx.from, fx.to)
	}
	return s
}

func cleanTrailingPunct(s string) string {
	return strings.TrimRight(s, ".,;)")
}

func dedupAdd(seen map[string]bool, key string) bool {
	if seen[key] {
		return false
	}
	seen[key] = true
	return true
}
