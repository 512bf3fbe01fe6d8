package llm

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(StripCodeFences([]byte(tt.input))); got != tt.want {
				t.Errorf("StripCodeFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeAndSanitizeJSON(t *testing.T) {
	raw := []byte(`{
		"vendor": "Notion",
		"plan": null,
		"seats": "12",
		"cycle": "Annual",
		"amount": "96.00",
		"currency": "usd",
		"confidence": "HIGH",
		"reasoning": "found in the footer"
	}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}
	if m["vendor_name"] != "Notion" {
		t.Errorf("vendor synonym not renamed: %v", m)
	}
	if _, ok := m["plan"]; ok {
		t.Error("null plan should be dropped")
	}
	if m["seats"] != float64(12) {
		t.Errorf("seats = %v, want 12", m["seats"])
	}
	if m["billing_cycle"] != "yearly" {
		t.Errorf("billing_cycle = %v, want yearly (annual normalized)", m["billing_cycle"])
	}
	if m["amount"] != float64(96) {
		t.Errorf("amount = %v, want 96", m["amount"])
	}
	if m["currency"] != "USD" {
		t.Errorf("currency = %v, want USD", m["currency"])
	}
	if m["confidence"] != "high" {
		t.Errorf("confidence = %v, want high", m["confidence"])
	}
	if _, ok := m["reasoning"]; ok {
		t.Error("unknown key should be removed")
	}
	if len(dropped) == 0 {
		t.Error("dropped list should record the rewrites")
	}

	// the sanitized payload must satisfy the schema we hand the provider
	if err := ValidateJSONAgainstSchema(BuildSubscriptionJSONSchema(), out); err != nil {
		t.Errorf("sanitized payload fails schema validation: %v", err)
	}
}

func TestNormalizeAndSanitizeJSONBadInput(t *testing.T) {
	if _, _, err := NormalizeAndSanitizeJSON([]byte("not json"), nil); err == nil {
		t.Error("expected decode error")
	}

	out, _, err := NormalizeAndSanitizeJSON([]byte(`{"billing_cycle":"biweekly","confidence":"low"}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "billing_cycle") {
		t.Errorf("invalid enum kept: %s", out)
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildSubscriptionJSONSchema()

	if err := ValidateJSONAgainstSchema(schema, []byte(`{"confidence":"low"}`)); err != nil {
		t.Errorf("minimal valid payload rejected: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{}`)); err == nil {
		t.Error("missing confidence should fail")
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"confidence":"low","surprise":true}`)); err == nil {
		t.Error("additional properties should fail")
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"confidence":"low","renewal_date":"July 1"}`)); err == nil {
		t.Error("malformed renewal_date should fail")
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"confidence":"low","amount":-5}`)); err == nil {
		t.Error("negative amount should fail")
	}
}

func TestSubscriptionFieldsSignals(t *testing.T) {
	var f SubscriptionFields
	if f.HasSignal() || f.SignalCount() != 0 {
		t.Error("zero value has no signal")
	}

	amount := 10.0
	plan := "Team"
	f = SubscriptionFields{Amount: &amount, Plan: &plan, RenewalDate: "2024-07-01"}
	if !f.HasSignal() || f.SignalCount() != 3 {
		t.Errorf("signals = %d, want 3", f.SignalCount())
	}

	f = SubscriptionFields{VendorName: "Figma", BillingCycle: "monthly"}
	if f.HasSignal() {
		t.Error("vendor name and cycle alone are not signals")
	}
}
