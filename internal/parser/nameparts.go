package parser

import (
	"strings"

	"github.com/cardparser/vcard/internal/refdata"
)

// SplitNameParts implements the Name Splitter (§4.9): given a winning
// formatted name, produces the classical five-field NameParts split.
func SplitNameParts(name string) NameParts {
	reg := refdata.Get()
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return NameParts{}
	}

	var prefixTokens []string
	i := 0
	for i < len(tokens) {
		if isNamePrefixToken(reg, tokens[i]) {
			prefixTokens = append(prefixTokens, tokens[i])
			i++
			continue
		}
		break
	}
	prefix := strings.Join(prefixTokens, " ")
	remainder := tokens[i:]

	if len(remainder) == 0 {
		return NameParts{Prefix: prefix}
	}

	familyIdx := len(remainder) - 1
	for j := 1; j < len(remainder); j++ {
		if _, ok := reg.Particles[strings.ToLower(remainder[j])]; ok {
			familyIdx = j
			break
		}
	}

	if familyIdx == 0 {
		return NameParts{
			Prefix: prefix,
			Family: strings.Join(remainder, " "),
		}
	}

	given := remainder[0]
	middle := strings.Join(remainder[1:familyIdx], " ")
	family := strings.Join(remainder[familyIdx:], " ")

	return NameParts{
		Prefix: prefix,
		Given:  given,
		Middle: middle,
		Family: family,
	}
}

func isNamePrefixToken(reg *refdata.Registry, tok string) bool {
	lower := strings.ToLower(tok)
	if _, ok := reg.NamePrefixes[lower]; ok {
		return true
	}
	if strings.HasSuffix(tok, ".") {
		return true
	}
	if strings.HasPrefix(lower, "dipl") {
		return true
	}
	if lower == "mba" || lower == "herr" || lower == "frau" {
		return true
	}
	return false
}
