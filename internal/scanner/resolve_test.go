package scanner

import (
	"testing"

	"github.com/subtally/subtally/internal/llm"
)

func TestSenderDomain(t *testing.T) {
	tests := []struct {
		sender string
		want   string
	}{
		{"Figma <billing@figma.com>", "figma.com"},
		{"no-reply@mail.notion.so", "mail.notion.so"},
		{"BILLING@FIGMA.COM", "figma.com"},
		{"not an address", ""},
		{"", ""},
	}
	for _, tt := range tests {
		m := Message{Sender: tt.sender}
		if got := m.SenderDomain(); got != tt.want {
			t.Errorf("SenderDomain(%q) = %q, want %q", tt.sender, got, tt.want)
		}
	}
}

func TestResolveVendorExtractedNameWins(t *testing.T) {
	fields := &llm.SubscriptionFields{VendorName: "Figma"}
	got := ResolveVendor(fields, "whatever subject", "gmail.com")
	if got.Name != "Figma" {
		t.Errorf("name = %q, want Figma", got.Name)
	}
	if got.Domain != "figma.com" {
		t.Errorf("domain = %q, want figma.com (guessed, sender is generic)", got.Domain)
	}
	if got.Category != "Design" {
		t.Errorf("category = %q, want Design (attached from the registry)", got.Category)
	}
}

func TestResolveVendorExtractedDomainPreferred(t *testing.T) {
	fields := &llm.SubscriptionFields{VendorName: "Acme Analytics", VendorDomain: "Acme.io"}
	got := ResolveVendor(fields, "", "mailer.sendgrid.net")
	if got.Name != "Acme Analytics" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Domain != "acme.io" {
		t.Errorf("domain = %q, want acme.io (extracted domain, lowercased)", got.Domain)
	}
	if got.Category != "" {
		t.Errorf("category = %q, want empty for an unknown vendor", got.Category)
	}
}

func TestResolveVendorKnownDomain(t *testing.T) {
	got := ResolveVendor(nil, "Receipt for your purchase", "figma.com")
	if got.Name != "Figma" || got.Category != "Design" || got.Domain != "figma.com" {
		t.Errorf("known-domain resolution = %+v", got)
	}
}

func TestResolveVendorSubjectRegistry(t *testing.T) {
	// generic sender, no extracted name: the registry reads the subject
	got := ResolveVendor(nil, "Your Figma renewal is coming up", "gmail.com")
	if got.Name != "Figma" {
		t.Errorf("name = %q, want Figma", got.Name)
	}
	if got.Domain != "figma.com" {
		t.Errorf("domain = %q, want figma.com (guessed, sender is generic)", got.Domain)
	}
}

func TestResolveVendorDomainLabelFallback(t *testing.T) {
	got := ResolveVendor(nil, "Receipt", "acmetools.io")
	if got.Name != "Acmetools" {
		t.Errorf("name = %q, want Acmetools (capitalized first label)", got.Name)
	}
	if got.Domain != "acmetools.io" {
		t.Errorf("domain = %q", got.Domain)
	}
}

func TestResolveVendorNothingUsable(t *testing.T) {
	got := ResolveVendor(nil, "hi there", "gmail.com")
	if got != (ResolvedVendor{}) {
		t.Errorf("generic sender with no signal must resolve to nothing, got %+v", got)
	}
}

func TestConfidenceFromSignals(t *testing.T) {
	if got := ConfidenceFromSignals(3); got != "high" {
		t.Errorf("3 signals = %s", got)
	}
	if got := ConfidenceFromSignals(2); got != "medium" {
		t.Errorf("2 signals = %s", got)
	}
	if got := ConfidenceFromSignals(1); got != "low" {
		t.Errorf("1 signal = %s", got)
	}
	if got := ConfidenceFromSignals(0); got != "low" {
		t.Errorf("0 signals = %s", got)
	}
}
