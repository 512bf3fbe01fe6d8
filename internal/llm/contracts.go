package llm

import "context"

// SubscriptionFields is the normalized shape we want from the extraction
// provider. Nil/empty fields mean "not stated in the text"; the extractor
// contract forbids guessing, in the fallback as much as in the model path.
type SubscriptionFields struct {
	VendorName   string   `json:"vendor_name,omitempty"`
	VendorDomain string   `json:"vendor_domain,omitempty"`
	Plan         *string  `json:"plan,omitempty"`
	Seats        *int     `json:"seats,omitempty"`
	BillingCycle string   `json:"billing_cycle,omitempty"` // monthly | yearly
	RenewalDate  string   `json:"renewal_date,omitempty"`  // YYYY-MM-DD
	Amount       *float64 `json:"amount,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	Confidence   string   `json:"confidence,omitempty"` // low | medium | high
}

// HasSignal reports whether at least one of amount, renewal date, or plan was
// found. Subscriptions are never created from zero-signal extractions.
func (f *SubscriptionFields) HasSignal() bool {
	return f.Amount != nil || f.RenewalDate != "" || f.Plan != nil
}

// SignalCount counts the independent signals backing this extraction.
func (f *SubscriptionFields) SignalCount() int {
	n := 0
	if f.Amount != nil {
		n++
	}
	if f.RenewalDate != "" {
		n++
	}
	if f.Plan != nil {
		n++
	}
	return n
}

// ExtractRequest carries one email through the extraction provider.
type ExtractRequest struct {
	Subject string
	Body    string
	Sender  string
}

// FieldExtractor is the interface the scan pipeline depends on.
type FieldExtractor interface {
	ExtractSubscription(ctx context.Context, req ExtractRequest) (SubscriptionFields, []byte /*rawJSON*/, error)
}
