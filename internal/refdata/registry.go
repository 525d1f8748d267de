// Package refdata holds the process-wide, read-only reference tables the
// parser's detectors and reconciler consult: landline prefixes, postcode and
// prefix city maps, legal forms, job-title keywords, first names, name
// particles and prefixes, known cities, mobile prefixes and mail-provider
// domains. Every table is lazily initialized exactly once on first read and
// immutable afterward, matching the teacher's single-shot cache-service
// initialization style.
package refdata

import (
	"bufio"
	"strings"
	"sync"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Registry is the lazily-built, immutable-after-init bundle of lookup
// tables. Call Get() to obtain the process-wide singleton.
type Registry struct {
	LandlinePrefixes   map[string]struct{}
	PrefixToCity       map[string]string
	ZipToCity          map[string]string
	LegalForms         []string
	TitleKeywords      []string
	FirstNames         map[string]struct{}
	Particles          map[string]struct{}
	NamePrefixes       map[string]struct{}
	KnownCities        map[string]struct{}
	MobilePrefixes     []string
	MailProviderDomains map[string]struct{}
}

var (
	once     sync.Once
	instance *Registry
)

// Get returns the process-wide reference data registry, building it on the
// first call. Safe for concurrent use.
func Get() *Registry {
	once.Do(func() {
		instance = build()
	})
	return instance
}

// emergencyLandlinePrefixes is the hard-coded fallback set used when the
// embedded prefix table fails to parse, so downstream validators do not
// treat every landline as unknown.
var emergencyLandlinePrefixes = []string{"030", "040", "089", "069"}

func build() *Registry {
	r := &Registry{
		PrefixToCity:        map[string]string{},
		ZipToCity:           map[string]string{},
		FirstNames:          map[string]struct{}{},
		Particles:           map[string]struct{}{},
		NamePrefixes:        map[string]struct{}{},
		KnownCities:         map[string]struct{}{},
		MailProviderDomains: map[string]struct{}{},
	}

	prefixCity := parseTable(embeddedLandlinePrefixToCity)
	if len(prefixCity) == 0 {
		for _, p := range emergencyLandlinePrefixes {
			prefixCity[p] = ""
		}
	}
	r.PrefixToCity = prefixCity
	r.LandlinePrefixes = map[string]struct{}{}
	for p := range prefixCity {
		r.LandlinePrefixes[p] = struct{}{}
	}

	r.ZipToCity = parseTable(embeddedZipToCity)

	for _, n := range splitList(embeddedFirstNames) {
		r.FirstNames[n] = struct{}{}
	}
	for _, p := range splitList(embeddedParticles) {
		r.Particles[normalizeKey(p)] = struct{}{}
	}
	for _, p := range splitList(embeddedNamePrefixes) {
		r.NamePrefixes[normalizeKey(p)] = struct{}{}
	}
	for _, c := range splitList(embeddedKnownCities) {
		r.KnownCities[normalizeKey(c)] = struct{}{}
	}
	for _, d := range splitList(embeddedMailProviderDomains) {
		r.MailProviderDomains[normalizeKey(d)] = struct{}{}
	}

	r.LegalForms = splitList(embeddedLegalForms)
	r.TitleKeywords = splitList(embeddedTitleKeywords)
	r.MobilePrefixes = splitList(embeddedMobilePrefixes)

	return r
}

// normalizeKey applies the registry-wide "lowercase NFC" key invariant.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(norm.NFC, s)
	if err != nil {
		return s
	}
	return out
}

// parseTable tolerantly parses the flat `"key": "value"` embedded table
// format described by the reference-data-embedding contract: bracketed by
// `export const <name> = { ... }`, single or double quotes, trailing
// commas, arbitrary whitespace, terminating at a line starting with `}`.
func parseTable(raw string) map[string]string {
	out := map[string]string{}
	scanner := bufio.NewScanner(strings.NewReader(raw))
	started := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "}") {
			if started {
				break
			}
			continue
		}
		if strings.Contains(line, "{") && !strings.Contains(line, ":") {
			started = true
			continue
		}
		started = true
		k, v, ok := parseKeyValueLine(line)
		if !ok {
			continue
		}
		out[normalizeKey(k)] = normalizeKey(v)
	}
	return out
}

func parseKeyValueLine(line string) (key, value string, ok bool) {
	line = strings.TrimRight(line, ",")
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	k := unquote(strings.TrimSpace(line[:idx]))
	v := unquote(strings.TrimSpace(line[idx+1:]))
	if k == "" {
		return "", "", false
	}
	return k, v, true
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// splitList parses a simple pipe- or newline-delimited literal list.
func splitList(raw string) []string {
	var out []string
	raw = strings.ReplaceAll(raw, "\n", "|")
	for _, part := range strings.Split(raw, "|") {
		p := strings.TrimSpace(part)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
