package parser

import (
	"regexp"
	"strings"

	"github.com/cardparser/vcard/internal/refdata"
)

var emailPattern = regexp.MustCompile(`(?i)\b[A-Z0-9._%+\-]+@[A-Z0-9.\-]+\.[A-Z]{2,}\b`)

// EmailDetector finds local@domain.tld occurrences.
type EmailDetector struct{}

func (EmailDetector) Name() string { return "email" }

// Detect emits one candidate per match, score 0.9, or 1.0 when the
// lowercase domain is a known mail provider.
func (EmailDetector) Detect(chunks []Chunk) []Scored[string] {
	reg := refdata.Get()
	var out []Scored[string]
	for _, c := range chunks {
		for _, m := range emailPattern.FindAllString(c.Text, -1) {
			lower := strings.ToLower(m)
			score := float32(0.9)
			if isMailProviderDomain(reg, lower) {
				score = 1.0
			}
			out = append(out, newScored(lower, score, LabelEmail, "email_regex"))
		}
	}
	return out
}

func isMailProviderDomain(reg *refdata.Registry, lowerEmail string) bool {
	domain := emailDomain(lowerEmail)
	_, ok := reg.MailProviderDomains[domain]
	return ok
}

func emailDomain(lowerEmail string) string {
	idx := strings.LastIndex(lowerEmail, "@")
	if idx < 0 {
		return ""
	}
	return lowerEmail[idx+1:]
}
