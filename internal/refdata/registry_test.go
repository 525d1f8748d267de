package refdata

import "testing"

func TestGet_IsSingletonAndPopulated(t *testing.T) {
	r1 := Get()
	r2 := Get()
	if r1 != r2 {
		t.Fatal("Get() must return the same process-wide instance on every call")
	}
	if len(r1.PrefixToCity) == 0 {
		t.Error("expected landline prefix table to be populated")
	}
	if len(r1.LandlinePrefixes) != len(r1.PrefixToCity) {
		t.Errorf("LandlinePrefixes set (%d) should mirror PrefixToCity keys (%d)",
			len(r1.LandlinePrefixes), len(r1.PrefixToCity))
	}
	if len(r1.LegalForms) == 0 {
		t.Error("expected legal forms list to be populated")
	}
	if len(r1.TitleKeywords) == 0 {
		t.Error("expected title keyword list to be populated")
	}
	if len(r1.KnownCities) == 0 {
		t.Error("expected known-cities set to be populated")
	}
}

func TestBuild_LandlinePrefixFallback(t *testing.T) {
	prefixCity := parseTable(embeddedLandlinePrefixToCity)
	if len(prefixCity) == 0 {
		t.Fatal("embedded landline table failed to parse at all; emergency fallback would mask a real regression")
	}
	for _, p := range emergencyLandlinePrefixes {
		if _, ok := prefixCity[p]; !ok {
			t.Errorf("emergency fallback prefix %q is not present in the real embedded table; keep the fallback set a subset", p)
		}
	}
}

func TestParseTable_TolerantOfQuotesAndTrailingCommas(t *testing.T) {
	raw := `
export const sample = {
  "030": "berlin",
  '040': 'hamburg'
}`
	got := parseTable(raw)
	if got["030"] != "berlin" {
		t.Errorf("expected 030 -> berlin, got %q", got["030"])
	}
	if got["040"] != "hamburg" {
		t.Errorf("expected 040 -> hamburg, got %q", got["040"])
	}
}

func TestSplitList_PipeAndNewlineDelimited(t *testing.T) {
	got := splitList("alpha|beta\ngamma")
	want := []string{"alpha", "beta", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("splitList returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitList[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeKey_LowercasesAndTrims(t *testing.T) {
	if got := normalizeKey("  MÜNCHEN  "); got != "münchen" {
		t.Errorf("normalizeKey(\"  MÜNCHEN  \") = %q, want %q", got, "münchen")
	}
}

func TestCitiesConsistent(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Berlin", "berlin", true},
		{"Frankfurt am Main", "Frankfurt", true},
		{"Muenchen", "Hamburg", false},
		{"Bad Homburg", "Homburg Stadt", true},
		{"", "Berlin", false},
	}
	for _, c := range cases {
		if got := CitiesConsistent(c.a, c.b); got != c.want {
			t.Errorf("CitiesConsistent(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestCitiesFuzzyMatch_TypoTolerant(t *testing.T) {
	if !CitiesFuzzyMatch("Muenchen", "Munchen") {
		t.Error("expected a single dropped character to still match under the fuzzy threshold")
	}
	if CitiesFuzzyMatch("Berlin", "Hamburg") {
		t.Error("unrelated city names must not fuzzy-match")
	}
	if CitiesFuzzyMatch("", "Berlin") {
		t.Error("an empty city name must never match")
	}
}

func TestIsKnownCity_ExactAndUnaccented(t *testing.T) {
	r := Get()
	for city := range r.KnownCities {
		if !r.IsKnownCity(city) {
			t.Fatalf("IsKnownCity(%q) = false for a city already in KnownCities", city)
		}
		break
	}
	if r.IsKnownCity("Xyzzyxville Nonexistent") {
		t.Error("IsKnownCity should reject a city not present in the registry")
	}
}
