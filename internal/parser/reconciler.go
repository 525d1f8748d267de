package parser

import (
	"regexp"
	"strings"

	"github.com/cardparser/vcard/internal/refdata"
)

// Reconcile runs the cross-field rules over the post-detector candidate
// set, in the fixed order required by the reconciliation contract.
func Reconcile(cs *candidateSet) {
	reg := refdata.Get()
	classifyURLsBySocialHost(cs)
	dedupPhones(cs)
	dedupCaseInsensitive(&cs.emails)
	dedupCaseInsensitive(&cs.urls)
	inferURLsFromEmailDomains(reg, cs)
	applyGeoConsistencyBoost(reg, cs)
	filterConflictingPhones(cs)
}

func classifyURLsBySocialHost(cs *candidateSet) {
	for i := range cs.urls {
		if label := classifySocialURL(cs.urls[i].Value); label != "" {
			cs.urls[i].Label = label
		}
	}
}

func dedupPhones(cs *candidateSet) {
	seen := map[string]bool{}
	var out []Scored[string]
	for _, p := range cs.phones {
		digits := digitsOnly(p.Value)
		if seen[digits] {
			continue
		}
		seen[digits] = true
		out = append(out, p)
	}
	cs.phones = out
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func dedupCaseInsensitive(values *[]Scored[string]) {
	seen := map[string]bool{}
	var out []Scored[string]
	for _, v := range *values {
		key := strings.ToLower(v.Value)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	*values = out
}

func inferURLsFromEmailDomains(reg *refdata.Registry, cs *candidateSet) {
	existing := map[string]bool{}
	for _, u := range cs.urls {
		existing[strings.ToLower(u.Value)] = true
	}
	for _, e := range cs.emails {
		domain := strings.ToLower(emailDomain(strings.ToLower(e.Value)))
		if domain == "" {
			continue
		}
		if _, isMailProvider := reg.MailProviderDomains[domain]; isMailProvider {
			continue
		}
		inferred := "https://" + domain
		if existing[strings.ToLower(inferred)] {
			continue
		}
		existing[strings.ToLower(inferred)] = true
		cs.urls = append(cs.urls, newScored(inferred, 0.8, LabelURL, "inferred_from_email"))
	}
}

func applyGeoConsistencyBoost(reg *refdata.Registry, cs *candidateSet) {
	var anchorZip string
	for _, a := range cs.addresses {
		if a.Value.Zip != "" {
			anchorZip = a.Value.Zip
			break
		}
	}
	if anchorZip == "" {
		return
	}
	zipCity, zipKnown := reg.ZipToCity[anchorZip]
	if !zipKnown {
		return
	}

	for i := range cs.phones {
		leadingZero := prefixForm(normalizePhone(cs.phones[i].Value))
		prefix, ok := LongestLandlinePrefix(reg, leadingZero)
		if !ok {
			continue
		}
		prefixCity, ok := reg.PrefixToCity[prefix]
		if !ok {
			continue
		}
		if checkConsistency(zipCity, prefixCity) {
			cs.phones[i].Score = 1.0
			cs.phones[i].DebugInfo += " + geo_match"
		}
	}
}

func checkConsistency(zipCity, prefixCity string) bool {
	if refdata.CitiesConsistent(zipCity, prefixCity) {
		return true
	}
	return refdata.CitiesFuzzyMatch(zipCity, prefixCity)
}

var (
	ibanLikePattern  = regexp.MustCompile(`^DE\d{20}$`)
	ustIDLikePattern = regexp.MustCompile(`^DE\d{9}$`)
)

func filterConflictingPhones(cs *candidateSet) {
	zips := map[string]bool{}
	for _, a := range cs.addresses {
		if a.Value.Zip != "" {
			zips[a.Value.Zip] = true
		}
	}

	var out []Scored[string]
	for _, p := range cs.phones {
		digits := digitsOnly(p.Value)
		if zips[digits] {
			continue
		}
		if len(digits) < 4 {
			continue
		}
		raw := rawPhoneText(p.DebugInfo)
		if isBusinessIDPattern(raw) {
			continue
		}
		out = append(out, p)
	}
	cs.phones = out
}

func isBusinessIDPattern(raw string) bool {
	if raw == "" {
		return false
	}
	if strings.Contains(raw, "---") || strings.Contains(raw, "___") {
		return true
	}
	cleaned := strings.ToUpper(strings.NewReplacer(" ", "", "-", "", "/", "").Replace(raw))
	if ibanLikePattern.MatchString(cleaned) {
		return true
	}
	if ustIDLikePattern.MatchString(cleaned) {
		return true
	}
	if strings.HasPrefix(cleaned, "HRB") || strings.HasPrefix(cleaned, "HRA") {
		return true
	}
	return false
}
