package extract

import "testing"

func TestExtractFullSignal(t *testing.T) {
	subject := "Notion Billing Plan"
	body := "Plan: Notion Team Seats: 12\nYour workspace renews on 2024-07-01.\nTotal: $96.00 per month"

	f := Extract(subject, body, nil)
	if f == nil {
		t.Fatal("Extract returned nil")
	}
	if f.VendorName != "Notion" {
		t.Errorf("vendor = %q, want Notion", f.VendorName)
	}
	if f.Plan == nil || *f.Plan != "Notion Team" {
		t.Errorf("plan = %v, want Notion Team", f.Plan)
	}
	if f.Seats == nil || *f.Seats != 12 {
		t.Errorf("seats = %v, want 12", f.Seats)
	}
	if f.BillingCycle != "monthly" {
		t.Errorf("cycle = %q, want monthly", f.BillingCycle)
	}
	if f.RenewalDate != "2024-07-01" {
		t.Errorf("renewal = %q, want 2024-07-01", f.RenewalDate)
	}
	if f.Amount == nil || *f.Amount != 96 {
		t.Errorf("amount = %v, want 96", f.Amount)
	}
	if f.Currency != "USD" {
		t.Errorf("currency = %q, want USD", f.Currency)
	}
	if f.Confidence != "high" {
		t.Errorf("confidence = %q, want high (amount+date+plan)", f.Confidence)
	}
}

func TestExtractYearlyWinsOverMonthly(t *testing.T) {
	f := Extract("Figma Renewal", "Billed yearly at $144.00, equivalent to $12.00 per month.", nil)
	if f == nil {
		t.Fatal("Extract returned nil")
	}
	if f.BillingCycle != "yearly" {
		t.Errorf("cycle = %q, want yearly (annual invoices quote monthly equivalents)", f.BillingCycle)
	}
	if f.Amount == nil || *f.Amount != 144 {
		t.Errorf("amount = %v, want 144 (first match in text order)", f.Amount)
	}
}

func TestExtractDateForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"iso after renews on", "Your subscription renews on 2024-07-01.", "2024-07-01"},
		{"slash form", "Renewal date: 7/1/2024", "2024-07-01"},
		{"month name after billing date", "Next billing date: July 1, 2024", "2024-07-01"},
		{"bare iso fallback", "Period ending 2024-07-01 for your records", "2024-07-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract("", tt.body, nil)
			if f == nil {
				t.Fatal("Extract returned nil")
			}
			if f.RenewalDate != tt.want {
				t.Errorf("renewal = %q, want %s", f.RenewalDate, tt.want)
			}
		})
	}
}

func TestExtractAmountForms(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		amount   float64
		currency string
	}{
		{"symbol", "charged $49.99 today", 49.99, "USD"},
		{"symbol euro", "Total: €29.00", 29, "EUR"},
		{"code first", "Amount due: USD 120.00", 120, "USD"},
		{"code last", "You paid 49.99 USD this period", 49.99, "USD"},
		{"thousands", "Invoice total $1,299.00", 1299, "USD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract("", tt.body, nil)
			if f == nil {
				t.Fatal("Extract returned nil")
			}
			if f.Amount == nil || *f.Amount != tt.amount {
				t.Errorf("amount = %v, want %v", f.Amount, tt.amount)
			}
			if f.Currency != tt.currency {
				t.Errorf("currency = %q, want %s", f.Currency, tt.currency)
			}
		})
	}
}

func TestExtractNoSignal(t *testing.T) {
	if f := Extract("hello", "see you at lunch tomorrow", nil); f != nil {
		t.Errorf("expected nil for signal-free text, got %+v", f)
	}
}

func TestExtractConfidenceTiers(t *testing.T) {
	// amount only: one signal
	f := Extract("", "charged $10.00", nil)
	if f == nil || f.Confidence != "low" {
		t.Fatalf("one signal should be low, got %+v", f)
	}

	// amount + renewal date: two signals
	f = Extract("", "charged $10.00, renews on 2024-07-01", nil)
	if f == nil || f.Confidence != "medium" {
		t.Fatalf("two signals should be medium, got %+v", f)
	}
}
