package scanner

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/subtally/subtally/internal/entity"
	"github.com/subtally/subtally/internal/llm"
)

type fakeExtractor struct {
	fields llm.SubscriptionFields
	err    error
}

func (f *fakeExtractor) ExtractSubscription(context.Context, llm.ExtractRequest) (llm.SubscriptionFields, []byte, error) {
	return f.fields, nil, f.err
}

type fakeVendorStore struct {
	mu      sync.Mutex
	created []entity.Vendor
}

func (f *fakeVendorStore) FindOrCreate(_ context.Context, v entity.Vendor, _ string) (*entity.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v.ID = uuid.New()
	f.created = append(f.created, v)
	return &v, nil
}

type fakeSubStore struct {
	mu       sync.Mutex
	upserted []entity.Subscription
}

func (f *fakeSubStore) Upsert(_ context.Context, s entity.Subscription) (*entity.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserted = append(f.upserted, s)
	return &s, nil
}

// fakeMessageStore mimics the storage uniqueness constraint with a map.
type fakeMessageStore struct {
	mu       sync.Mutex
	seen     map[string]bool
	outcomes map[string]string
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{seen: map[string]bool{}, outcomes: map[string]string{}}
}

func (f *fakeMessageStore) MarkSeen(_ context.Context, _ uuid.UUID, msg Message) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seen[msg.ID] {
		return false, nil
	}
	f.seen[msg.ID] = true
	return true, nil
}

func (f *fakeMessageStore) SetOutcome(_ context.Context, _ uuid.UUID, messageID, outcome string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes[messageID] = outcome
	return nil
}

func subscriptionMessage(id string) Message {
	return Message{
		ID:      id,
		Subject: "Figma Renewal",
		Sender:  "Figma <billing@figma.com>",
		Body:    "Your subscription renews on 2024-07-01. Total: $144.00 billed yearly.",
	}
}

func newTestPipeline(extractor llm.FieldExtractor) (*Pipeline, *fakeVendorStore, *fakeSubStore, *fakeMessageStore) {
	vendors := &fakeVendorStore{}
	subs := &fakeSubStore{}
	messages := newFakeMessageStore()
	p := NewPipeline(nil, extractor, vendors, subs, messages, 4)
	return p, vendors, subs, messages
}

func TestProcessMessageUpserts(t *testing.T) {
	amount := 144.0
	p, vendors, subs, messages := newTestPipeline(&fakeExtractor{fields: llm.SubscriptionFields{
		VendorName:   "Figma",
		BillingCycle: "yearly",
		RenewalDate:  "2024-07-01",
		Amount:       &amount,
		Currency:     "USD",
		Confidence:   "high",
	}})
	userID := uuid.New()

	outcome, err := p.ProcessMessage(context.Background(), userID, subscriptionMessage("m1"))
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeUpserted {
		t.Fatalf("outcome = %s, want upserted", outcome)
	}
	if len(vendors.created) != 1 || vendors.created[0].Name != "Figma" {
		t.Errorf("vendors = %+v", vendors.created)
	}
	if len(subs.upserted) != 1 {
		t.Fatalf("subscriptions = %d, want 1", len(subs.upserted))
	}
	sub := subs.upserted[0]
	if sub.UserID != userID || string(sub.Source) != "gmail" {
		t.Errorf("sub identity = %+v", sub)
	}
	if sub.Amount == nil || *sub.Amount != 144 {
		t.Errorf("amount = %v", sub.Amount)
	}
	if sub.RenewalDate == nil || sub.RenewalDate.Format("2006-01-02") != "2024-07-01" {
		t.Errorf("renewal date = %v", sub.RenewalDate)
	}
	if messages.outcomes["m1"] != string(OutcomeUpserted) {
		t.Errorf("stored outcome = %q", messages.outcomes["m1"])
	}
}

func TestProcessMessageDuplicate(t *testing.T) {
	p, _, subs, _ := newTestPipeline(&fakeExtractor{fields: llm.SubscriptionFields{
		VendorName: "Figma", RenewalDate: "2024-07-01", Confidence: "medium",
	}})
	userID := uuid.New()
	msg := subscriptionMessage("m1")

	if _, err := p.ProcessMessage(context.Background(), userID, msg); err != nil {
		t.Fatal(err)
	}
	outcome, err := p.ProcessMessage(context.Background(), userID, msg)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeDuplicate {
		t.Errorf("second pass outcome = %s, want duplicate", outcome)
	}
	if len(subs.upserted) != 1 {
		t.Errorf("duplicate processing upserted again: %d", len(subs.upserted))
	}
}

func TestProcessMessageNotSubscription(t *testing.T) {
	p, vendors, subs, messages := newTestPipeline(&fakeExtractor{})
	msg := Message{ID: "m2", Subject: "Lunch tomorrow?", Body: "See you at noon"}

	outcome, err := p.ProcessMessage(context.Background(), uuid.New(), msg)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeNotSubscription {
		t.Errorf("outcome = %s", outcome)
	}
	if len(vendors.created) != 0 || len(subs.upserted) != 0 {
		t.Error("stage-1 rejects must not touch vendor or subscription stores")
	}
	if messages.outcomes["m2"] != string(OutcomeNotSubscription) {
		t.Errorf("stored outcome = %q", messages.outcomes["m2"])
	}
}

func TestProcessMessageProviderFailureFallsBack(t *testing.T) {
	p, _, subs, _ := newTestPipeline(&fakeExtractor{err: errors.New("429 too many requests")})

	outcome, err := p.ProcessMessage(context.Background(), uuid.New(), subscriptionMessage("m3"))
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeUpserted {
		t.Fatalf("outcome = %s, want upserted via regex fallback", outcome)
	}
	if len(subs.upserted) != 1 {
		t.Fatalf("subscriptions = %d", len(subs.upserted))
	}
	sub := subs.upserted[0]
	if sub.Amount == nil || *sub.Amount != 144 {
		t.Errorf("fallback amount = %v, want 144", sub.Amount)
	}
	if string(sub.BillingCycle) != "yearly" {
		t.Errorf("fallback cycle = %s, want yearly", sub.BillingCycle)
	}
}

func TestProcessMessageAllNullNeverCreates(t *testing.T) {
	// provider returns an empty record and the body has nothing for the
	// fallback either; the message still carries stage-1 keywords
	p, vendors, subs, messages := newTestPipeline(&fakeExtractor{})
	msg := Message{ID: "m4", Subject: "Payment processed", Sender: "x@gmail.com", Body: "thank you"}

	outcome, err := p.ProcessMessage(context.Background(), uuid.New(), msg)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeNoSignal {
		t.Fatalf("outcome = %s, want no_signal", outcome)
	}
	if len(vendors.created) != 0 || len(subs.upserted) != 0 {
		t.Error("zero-signal extraction must not create rows")
	}
	if messages.outcomes["m4"] != string(OutcomeNoSignal) {
		t.Errorf("stored outcome = %q", messages.outcomes["m4"])
	}
}

func TestProcessMessageVendorWithoutSignal(t *testing.T) {
	// a vendor name alone creates the vendor but never a subscription
	p, vendors, subs, _ := newTestPipeline(&fakeExtractor{fields: llm.SubscriptionFields{
		VendorName: "Figma", Confidence: "low",
	}})

	outcome, err := p.ProcessMessage(context.Background(), uuid.New(), Message{
		ID: "m5", Subject: "About your billing", Sender: "billing@figma.com", Body: "nothing else here",
	})
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeNoSignal {
		t.Fatalf("outcome = %s, want no_signal", outcome)
	}
	if len(vendors.created) != 1 {
		t.Errorf("vendor should still be recorded, got %d", len(vendors.created))
	}
	if len(subs.upserted) != 0 {
		t.Error("no subscription without amount, renewal date, or plan")
	}
}

func TestScanBatchSummary(t *testing.T) {
	p, _, _, messages := newTestPipeline(&fakeExtractor{fields: llm.SubscriptionFields{
		VendorName: "Figma", RenewalDate: "2024-07-01", Confidence: "medium",
	}})
	userID := uuid.New()

	src := SliceSource{
		subscriptionMessage("b1"),
		subscriptionMessage("b1"), // duplicate ID
		{ID: "b2", Subject: "Lunch?", Body: "noon"},
		subscriptionMessage("b3"),
	}

	summary, err := p.ScanBatch(context.Background(), userID, src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Total != 4 {
		t.Errorf("total = %d", summary.Total)
	}
	if summary.Upserted != 2 {
		t.Errorf("upserted = %d, want 2", summary.Upserted)
	}
	if summary.Duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", summary.Duplicates)
	}
	if summary.NotSubscription != 1 {
		t.Errorf("not_subscription = %d, want 1", summary.NotSubscription)
	}
	if len(messages.seen) != 3 {
		t.Errorf("distinct messages seen = %d, want 3", len(messages.seen))
	}
}
