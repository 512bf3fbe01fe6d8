package patterns

import "testing"

func TestDetectSaaSVendor(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantName string
		wantOK   bool
	}{
		{"plain vendor", "Your Figma invoice is ready", "Figma", true},
		{"case insensitive", "FIGMA subscription renewal", "Figma", true},
		{"narrow before broad", "Microsoft Teams annual invoice", "Microsoft Teams", true},
		{"aws word boundary", "AWS billing statement", "AWS", true},
		{"aws not inside words", "sawsbuck collectibles order", "", false},
		{"no match", "Dinner reservation confirmed", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := DetectSaaSVendor(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("DetectSaaSVendor(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && m.Name != tt.wantName {
				t.Errorf("DetectSaaSVendor(%q) = %s, want %s", tt.text, m.Name, tt.wantName)
			}
		})
	}
}

func TestIsSaaSSubscription(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Notion Labs monthly charge", true},   // registry hit
		{"RECURRING PAYMENT ACME CORP", true},  // lexical indicator
		{"Enterprise license true-up", true},   // lexical indicator
		{"Grocery store purchase", false},
	}
	for _, tt := range tests {
		if got := IsSaaSSubscription(tt.text); got != tt.want {
			t.Errorf("IsSaaSSubscription(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestNormalizeVendorName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Notion Labs, Inc.", "notion labs inc"},
		{"  FIGMA  ", "figma"},
		{"Adobe*Creative   Cloud", "adobecreative cloud"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeVendorName(tt.input); got != tt.want {
			t.Errorf("NormalizeVendorName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDomainTables(t *testing.T) {
	if !IsGenericDomain("gmail.com") {
		t.Error("gmail.com should be generic")
	}
	if !IsGenericDomain(" GMAIL.COM ") {
		t.Error("generic lookup should trim and lowercase")
	}
	if IsGenericDomain("figma.com") {
		t.Error("figma.com is not a consumer mail provider")
	}

	m, ok := LookupDomain("FIGMA.COM")
	if !ok || m.Name != "Figma" || m.Category != "Design" {
		t.Errorf("LookupDomain(figma.com) = %+v, %v", m, ok)
	}
	if _, ok := LookupDomain("example.org"); ok {
		t.Error("unknown domain should not resolve")
	}
}
