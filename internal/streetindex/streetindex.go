// Package streetindex wraps a finite-state transducer (FST) set of German
// street names, used by the Address detector to validate street-token
// candidates. The FST is built offline (see cmd/buildstreetindex) and
// injected at startup as an opaque byte blob — it is never embedded in the
// binary, keeping the deployment target (including constrained/WASM-style
// environments) free to load it lazily or skip it entirely.
package streetindex

import (
	"errors"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
)

// ErrAlreadyInitialized is returned by Init when the index has already
// been loaded once; a second load is a recoverable, caller-decided error.
var ErrAlreadyInitialized = errors.New("streetindex: already initialized")

var (
	mu     sync.Mutex
	fst    *vellum.FST
	loaded bool
)

// Init loads the FST from a serialized blob produced by cmd/buildstreetindex.
// It may be called exactly once; subsequent calls return ErrAlreadyInitialized
// without modifying the loaded index.
func Init(blob []byte) error {
	mu.Lock()
	defer mu.Unlock()
	if loaded {
		return ErrAlreadyInitialized
	}
	f, err := vellum.Load(blob)
	if err != nil {
		return err
	}
	fst = f
	loaded = true
	return nil
}

// Loaded reports whether the index has been successfully initialized.
func Loaded() bool {
	mu.Lock()
	defer mu.Unlock()
	return loaded
}

// IsValidStreet returns true iff the lowercased, quote-trimmed,
// whitespace-trimmed query is a member of the indexed street set. Returns
// false unconditionally when the index has not been loaded.
func IsValidStreet(name string) bool {
	mu.Lock()
	f := fst
	mu.Unlock()
	if f == nil {
		return false
	}
	_, exists, err := f.Get([]byte(cleanQuery(name)))
	return err == nil && exists
}

// fuzzyTransforms is the exact ordered list of suffix transformations
// find_street_fuzzy tries after the raw query fails.
var fuzzyTransforms = []struct {
	suffix string
	strip  bool
}{
	{".", false},
	{"straße", false},
	{"strasse", false},
	{"str.", false},
	{"str", false},
	{".", true},
	{"straße", true},
	{"strasse", true},
	{"str.", true},
	{"str", true},
}

// FindStreetFuzzy rejects queries shorter than three characters, then tries
// the raw query followed by each transform in fuzzyTransforms, returning
// the street string and true on the first hit.
func FindStreetFuzzy(name string) (string, bool) {
	q := cleanQuery(name)
	if len([]rune(q)) < 3 {
		return "", false
	}
	if IsValidStreet(q) {
		return q, true
	}
	for _, t := range fuzzyTransforms {
		var candidate string
		if t.strip {
			if !strings.HasSuffix(q, t.suffix) {
				continue
			}
			candidate = strings.TrimSuffix(q, t.suffix)
		} else {
			candidate = q + t.suffix
		}
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if IsValidStreet(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func cleanQuery(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// resetForTest clears the singleton state; only used by streetindex_test.go.
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()
	fst = nil
	loaded = false
}
