package parser

import (
	"strings"
	"testing"
)

func Test_Integration_SameLineAddress(t *testing.T) {
	record := Parse("Musterstraße 123 12345 Musterstadt")
	if len(record.Addresses) != 1 {
		t.Fatalf("expected exactly one address, got %d", len(record.Addresses))
	}
	addr := record.Addresses[0].Value
	if addr.Zip != "12345" {
		t.Errorf("zip = %q, want 12345", addr.Zip)
	}
	if addr.City != "Musterstadt" {
		t.Errorf("city = %q, want Musterstadt", addr.City)
	}
}

func Test_Integration_MultiLineAddress(t *testing.T) {
	record := Parse("Musterweg 7\n12345 Berlin")
	if len(record.Addresses) == 0 {
		t.Fatal("expected at least one address")
	}
	addr := record.Addresses[0]
	if addr.Value.Street != "Musterweg 7" {
		t.Errorf("street = %q, want Musterweg 7", addr.Value.Street)
	}
	if addr.Value.Zip != "12345" {
		t.Errorf("zip = %q, want 12345", addr.Value.Zip)
	}
	if addr.Value.City != "Berlin" {
		t.Errorf("city = %q, want Berlin", addr.Value.City)
	}
	if addr.Score != 1.0 {
		t.Errorf("score = %v, want 1.0 (Berlin is a known city)", addr.Score)
	}
}

func Test_Integration_PhoneGeoBoost(t *testing.T) {
	text := "Tel.: (040)608 47 828\nD-22397 Hamburg"
	record := Parse(text)
	if len(record.Phones) != 1 {
		t.Fatalf("expected exactly one phone, got %d: %+v", len(record.Phones), record.Phones)
	}
	p := record.Phones[0]
	if p.Label != LabelWork {
		t.Errorf("label = %q, want WORK", p.Label)
	}
	if p.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", p.Score)
	}
	if strings.ContainsAny(p.Value, " ()/-") {
		t.Errorf("normalized phone %q should contain only digits", p.Value)
	}
}

func Test_Integration_FaxContext(t *testing.T) {
	record := Parse("Fax: +49 (0) 561 89 07 999 - 4")
	if len(record.Phones) != 1 {
		t.Fatalf("expected exactly one phone, got %d", len(record.Phones))
	}
	p := record.Phones[0]
	if p.Label != LabelFax {
		t.Errorf("label = %q, want FAX", p.Label)
	}
	if p.Score < 0.95 {
		t.Errorf("score = %v, want >= 0.95", p.Score)
	}
	if p.Value != "+4956189079994" {
		t.Errorf("value = %q, want +4956189079994", p.Value)
	}
}

func Test_Integration_VATIDRejected(t *testing.T) {
	record := Parse("VAT-ID: DE118309076")
	if len(record.Phones) != 0 {
		t.Fatalf("expected zero phone candidates, got %d: %+v", len(record.Phones), record.Phones)
	}
}

func Test_Integration_EmailToURLInference(t *testing.T) {
	record := Parse("y.romov@ektavision.de")
	if len(record.URLs) != 1 {
		t.Fatalf("expected exactly one inferred URL, got %d: %+v", len(record.URLs), record.URLs)
	}
	u := record.URLs[0]
	if u.Value != "https://ektavision.de" {
		t.Errorf("url = %q, want https://ektavision.de", u.Value)
	}
	if u.Score != 0.8 {
		t.Errorf("score = %v, want 0.8", u.Score)
	}
	if !strings.Contains(u.DebugInfo, "inferred_from_email") {
		t.Errorf("debug_info = %q, want it to mention inferred_from_email", u.DebugInfo)
	}
}

func Test_Integration_MixedMergedLine(t *testing.T) {
	text := "Musterfirma GmbH 040 123 456 / 0176-999-888 // VAT-ID: DE999999"
	record := Parse(text)

	if len(record.Organizations) != 1 || record.Organizations[0].Value != "Musterfirma GmbH" {
		t.Errorf("organizations = %+v, want exactly [Musterfirma GmbH]", record.Organizations)
	}

	foundWork, foundCell := false, false
	for _, p := range record.Phones {
		switch p.Value {
		case "040123456":
			foundWork = p.Label == LabelWork
		case "0176999888":
			foundCell = p.Label == LabelCell
		}
		if strings.Contains(p.Value, "999999") {
			t.Errorf("no phone should be derived from the VAT-ID fragment, got %+v", p)
		}
	}
	if !foundWork {
		t.Error("expected a WORK phone 040123456")
	}
	if !foundCell {
		t.Error("expected a CELL phone 0176999888")
	}
}

func Test_Invariant_ScoresInRange(t *testing.T) {
	record := Parse("Max Mustermann\nGeschäftsführer\nMusterfirma GmbH\nMusterstraße 1\n12345 Musterstadt\nTel: 030 1234567\nmax@musterfirma.de")
	check := func(score float32) {
		if score < 0 || score > 1 {
			t.Errorf("score %v out of [0,1]", score)
		}
	}
	for _, p := range record.Phones {
		check(p.Score)
	}
	for _, e := range record.Emails {
		check(e.Score)
	}
	for _, u := range record.URLs {
		check(u.Score)
	}
	for _, a := range record.Addresses {
		check(a.Score)
		if a.Value.Zip == "" {
			t.Error("every address must have a non-empty zip")
		}
	}
}

func Test_Invariant_Deterministic(t *testing.T) {
	text := "Max Mustermann\nGeschäftsführer\nMusterfirma GmbH\nMusterstraße 1\n12345 Musterstadt"
	a := Parse(text)
	b := Parse(text)
	if len(a.Phones) != len(b.Phones) || len(a.Emails) != len(b.Emails) || len(a.Addresses) != len(b.Addresses) {
		t.Error("Parse is not deterministic across repeated calls on identical input")
	}
}

func Test_Invariant_NoPhoneUnderFourDigits(t *testing.T) {
	record := Parse("Ref: 123\nTel: 030 1234567")
	for _, p := range record.Phones {
		digits := digitsOnly(p.Value)
		if len(digits) < 4 {
			t.Errorf("phone %q has fewer than 4 digits", p.Value)
		}
	}
}

func Test_Invariant_EmailCaseInsensitiveDedup(t *testing.T) {
	record := Parse("max@musterfirma.de\nMAX@MUSTERFIRMA.DE")
	if len(record.Emails) != 1 {
		t.Errorf("expected case-insensitive dedup to leave one email, got %d", len(record.Emails))
	}
}

func Test_NormalizeLayout_TrailingCrumb(t *testing.T) {
	text := "Geschäftsführer                Lilienthalstr. 5                     L\nD - 34123 Kassel"
	chunks := DebugParseLayout(text)
	for _, c := range chunks {
		if c == "L" {
			t.Errorf("trailing single-character crumb %q should have been dropped", c)
		}
	}
}

func Test_NameSplitter_SimpleGivenFamily(t *testing.T) {
	parts := SplitNameParts("Max Mustermann")
	if parts.Given != "Max" || parts.Family != "Mustermann" {
		t.Errorf("parts = %+v, want given=Max family=Mustermann", parts)
	}
}

func Test_NameSplitter_ParticleFamily(t *testing.T) {
	parts := SplitNameParts("Anna von Bergmann")
	if parts.Given != "Anna" || parts.Family != "von Bergmann" {
		t.Errorf("parts = %+v, want given=Anna family='von Bergmann'", parts)
	}
}

func Test_NameSplitter_PrefixTitle(t *testing.T) {
	parts := SplitNameParts("Dr. Max Mustermann")
	if parts.Prefix != "Dr." {
		t.Errorf("prefix = %q, want 'Dr.'", parts.Prefix)
	}
	if parts.Given != "Max" || parts.Family != "Mustermann" {
		t.Errorf("parts = %+v, want given=Max family=Mustermann", parts)
	}
}
