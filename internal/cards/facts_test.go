package cards

import "testing"

func TestExtractLicenseFacts(t *testing.T) {
	attrs := map[string]any{
		"key":         "AAAA-BBBB-CCCC-DDDD",
		"status":      "ACTIVE",
		"expiry":      "2024-12-01T00:00:00Z",
		"maxMachines": float64(5),
		"uses":        float64(3),
		"protected":   true,
	}

	facts := Extract(CategoryLicense, attrs)

	byLabel := factIndex(facts)
	if got := byLabel["Key"]; got != "AAAA-BBB…" {
		t.Fatalf("expected truncated key, got %q", got)
	}
	if got := byLabel["Status"]; got != "ACTIVE" {
		t.Fatalf("unexpected status %q", got)
	}
	if got := byLabel["Expiry"]; got != "Dec 1, 2024 00:00:00 UTC" {
		t.Fatalf("unexpected expiry %q", got)
	}
	if got := byLabel["Max Machines"]; got != "5" {
		t.Fatalf("unexpected max machines %q", got)
	}
	if got := byLabel["Uses"]; got != "3" {
		t.Fatalf("unexpected uses %q", got)
	}
	if got := byLabel["Protected"]; got != "Yes" {
		t.Fatalf("unexpected protected %q", got)
	}
}

func TestExtractLicenseDomainDefaults(t *testing.T) {
	facts := Extract(CategoryLicense, map[string]any{"status": "ACTIVE"})
	byLabel := factIndex(facts)

	if got := byLabel["Max Machines"]; got != "Unlimited" {
		t.Fatalf("absent max machines should be Unlimited, got %q", got)
	}
	if got := byLabel["Uses"]; got != "0" {
		t.Fatalf("absent uses should be 0, got %q", got)
	}
}

func TestExtractNeverReturnsSentinelValues(t *testing.T) {
	bags := []map[string]any{
		nil,
		{},
		{"status": "", "name": nil, "email": 42},
		{"expiry": "", "protected": "not-a-bool"},
	}
	categories := []Category{
		CategoryLicense, CategoryUser, CategoryMachine, CategoryAccount,
		CategoryProduct, CategoryRelease, CategoryUnknown,
	}

	for _, category := range categories {
		for _, attrs := range bags {
			for _, fact := range Extract(category, attrs) {
				if fact.Value == "" || fact.Value == notAvailable {
					t.Fatalf("category %s leaked sentinel fact %+v", category, fact)
				}
			}
		}
	}
}

func TestExtractFallsBackToGenericFields(t *testing.T) {
	attrs := map[string]any{
		"name":    "widget-7",
		"status":  "READY",
		"created": "2024-03-01T12:00:00Z",
	}

	facts := Extract(CategoryUnknown, attrs)
	if len(facts) != 3 {
		t.Fatalf("expected 3 generic facts, got %d: %v", len(facts), facts)
	}
	if facts[0].Label != "Name" || facts[0].Value != "widget-7" {
		t.Fatalf("unexpected first fact %+v", facts[0])
	}
}

func TestExtractUserCombinesName(t *testing.T) {
	facts := Extract(CategoryUser, map[string]any{
		"email":     "dev@example.com",
		"firstName": "Ada",
		"lastName":  "Lovelace",
	})
	byLabel := factIndex(facts)
	if got := byLabel["Name"]; got != "Ada Lovelace" {
		t.Fatalf("unexpected combined name %q", got)
	}

	facts = Extract(CategoryUser, map[string]any{"firstName": "Ada"})
	byLabel = factIndex(facts)
	if got := byLabel["Name"]; got != "Ada" {
		t.Fatalf("expected first name only, got %q", got)
	}
}

func TestSecretValueNeverLeaksFullToken(t *testing.T) {
	got := secretValue(map[string]any{"key": "SUPER-SECRET-LICENSE-KEY"}, "key")
	if got != "SUPER-SE…" {
		t.Fatalf("unexpected truncation %q", got)
	}

	short := secretValue(map[string]any{"key": "abc"}, "key")
	if short != "a…" {
		t.Fatalf("short secrets must be cut in half, got %q", short)
	}

	boundary := secretValue(map[string]any{"key": "ABCD-123"}, "key")
	if boundary != "ABCD…" {
		t.Fatalf("prefix-length secrets must not appear whole, got %q", boundary)
	}
}

func TestExtractShortKeyIsMasked(t *testing.T) {
	facts := Extract(CategoryLicense, map[string]any{"key": "ABCD-123"})
	byLabel := factIndex(facts)
	if got := byLabel["Key"]; got == "ABCD-123…" || got == "ABCD-123" {
		t.Fatalf("full key leaked to the card: %q", got)
	}
	if got := byLabel["Key"]; got != "ABCD…" {
		t.Fatalf("unexpected masked key %q", got)
	}
}

func TestTimeValuePassesThroughUnparseableStrings(t *testing.T) {
	got := timeValue(map[string]any{"expiry": "next Tuesday"}, "expiry")
	if got != "next Tuesday" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestNumberValueRendering(t *testing.T) {
	attrs := map[string]any{
		"whole":    float64(10),
		"fraction": 2.5,
		"text":     "12",
	}
	if got := numberValue(attrs, "whole", "0"); got != "10" {
		t.Fatalf("unexpected whole rendering %q", got)
	}
	if got := numberValue(attrs, "fraction", "0"); got != "2.5" {
		t.Fatalf("unexpected fraction rendering %q", got)
	}
	if got := numberValue(attrs, "text", "0"); got != "12" {
		t.Fatalf("unexpected string rendering %q", got)
	}
	if got := numberValue(attrs, "missing", "Unlimited"); got != "Unlimited" {
		t.Fatalf("unexpected default %q", got)
	}
}

func factIndex(facts []Fact) map[string]string {
	out := make(map[string]string, len(facts))
	for _, fact := range facts {
		out[fact.Label] = fact.Value
	}
	return out
}
