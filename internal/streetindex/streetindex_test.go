package streetindex

import (
	"bytes"
	"sort"
	"testing"

	"github.com/blevesearch/vellum"
)

// buildTestFST builds a minimal in-memory FST blob over the given street
// names, mirroring what cmd/buildstreetindex produces offline. vellum
// requires keys inserted in lexicographic order.
func buildTestFST(t *testing.T, streets []string) []byte {
	t.Helper()
	sorted := append([]string(nil), streets...)
	sort.Strings(sorted)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		t.Fatalf("vellum.New: %v", err)
	}
	for i, s := range sorted {
		if err := builder.Insert([]byte(s), uint64(i)); err != nil {
			t.Fatalf("builder.Insert(%q): %v", s, err)
		}
	}
	if err := builder.Close(); err != nil {
		t.Fatalf("builder.Close: %v", err)
	}
	return buf.Bytes()
}

func withFST(t *testing.T, streets []string) {
	t.Helper()
	resetForTest()
	t.Cleanup(resetForTest)
	if err := Init(buildTestFST(t, streets)); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

func TestInit_RejectsSecondLoad(t *testing.T) {
	withFST(t, []string{"hauptstraße"})
	if err := Init(buildTestFST(t, []string{"hauptstraße"})); err != ErrAlreadyInitialized {
		t.Errorf("second Init() = %v, want ErrAlreadyInitialized", err)
	}
}

func TestLoaded_ReflectsState(t *testing.T) {
	resetForTest()
	if Loaded() {
		t.Fatal("Loaded() should be false before Init")
	}
	withFST(t, []string{"hauptstraße"})
	if !Loaded() {
		t.Error("Loaded() should be true after a successful Init")
	}
}

func TestIsValidStreet_UnloadedIndexReturnsFalse(t *testing.T) {
	resetForTest()
	if IsValidStreet("hauptstraße") {
		t.Error("IsValidStreet must return false when the index has not been loaded")
	}
}

func TestIsValidStreet_CaseAndWhitespaceInsensitive(t *testing.T) {
	withFST(t, []string{"hauptstraße", "bahnhofstr."})
	if !IsValidStreet("  Hauptstraße  ") {
		t.Error("expected a case/whitespace-insensitive exact match")
	}
	if !IsValidStreet(`"bahnhofstr."`) {
		t.Error("expected quote-trimming on the query")
	}
	if IsValidStreet("nonexistentweg") {
		t.Error("a street absent from the index must not validate")
	}
}

func TestFindStreetFuzzy_RejectsShortQueries(t *testing.T) {
	withFST(t, []string{"hauptstraße"})
	if _, ok := FindStreetFuzzy("ab"); ok {
		t.Error("queries under three runes must be rejected outright")
	}
}

func TestFindStreetFuzzy_TriesSuffixTransforms(t *testing.T) {
	withFST(t, []string{"bahnhofstraße"})
	got, ok := FindStreetFuzzy("bahnhof")
	if !ok {
		t.Fatal("expected a fuzzy hit after trying the straße suffix transform")
	}
	if got != "bahnhofstraße" {
		t.Errorf("FindStreetFuzzy resolved to %q, want %q", got, "bahnhofstraße")
	}
}

func TestFindStreetFuzzy_ExactHitShortCircuits(t *testing.T) {
	withFST(t, []string{"am markt"})
	got, ok := FindStreetFuzzy("Am Markt")
	if !ok || got != "am markt" {
		t.Errorf("FindStreetFuzzy(%q) = (%q, %v), want (%q, true)", "Am Markt", got, ok, "am markt")
	}
}

func TestFindStreetFuzzy_NoMatchReturnsFalse(t *testing.T) {
	withFST(t, []string{"hauptstraße"})
	if _, ok := FindStreetFuzzy("voellig anderer name"); ok {
		t.Error("an unrelated query must not produce a fuzzy match")
	}
}
