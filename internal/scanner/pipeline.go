package scanner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/subtally/subtally/constants"
	"github.com/subtally/subtally/internal/entity"
	"github.com/subtally/subtally/internal/extract"
	"github.com/subtally/subtally/internal/llm"
	"github.com/subtally/subtally/internal/patterns"
	"github.com/subtally/subtally/internal/textparse"
)

// Outcome is the terminal state of one message.
type Outcome string

const (
	OutcomeDuplicate       Outcome = "duplicate"
	OutcomeNotSubscription Outcome = "not_subscription"
	OutcomeNoSignal        Outcome = "no_signal"
	OutcomeUpserted        Outcome = "subscription_upserted"
)

// VendorStore resolves or creates the canonical vendor row. Lookup priority
// (normalized name first, domain only when non-generic) lives in the store.
type VendorStore interface {
	FindOrCreate(ctx context.Context, v entity.Vendor, senderDomain string) (*entity.Vendor, error)
}

// SubscriptionStore upserts by the (user, vendor, source) composite key.
type SubscriptionStore interface {
	Upsert(ctx context.Context, s entity.Subscription) (*entity.Subscription, error)
}

// MessageStore provides the idempotent per-message dedup. MarkSeen must be
// backed by a storage uniqueness constraint so concurrent scans cannot both
// process the same message ID.
type MessageStore interface {
	MarkSeen(ctx context.Context, userID uuid.UUID, msg Message) (isNew bool, err error)
	SetOutcome(ctx context.Context, userID uuid.UUID, messageID string, outcome string) error
}

// ScanSummary enumerates what happened to a batch. Batch scans always succeed
// with a summary; per-message failures are counted, not propagated.
type ScanSummary struct {
	Total           int `json:"total"`
	Duplicates      int `json:"duplicates"`
	NotSubscription int `json:"not_subscription"`
	NoSignal        int `json:"no_signal"`
	Upserted        int `json:"upserted"`
	Errors          int `json:"errors"`
}

// Pipeline coordinates the two extraction stages and the upserts.
type Pipeline struct {
	log         *slog.Logger
	extractor   llm.FieldExtractor
	vendors     VendorStore
	subs        SubscriptionStore
	messages    MessageStore
	concurrency int
}

func NewPipeline(logger *slog.Logger, extractor llm.FieldExtractor, vendors VendorStore, subs SubscriptionStore, messages MessageStore, concurrency int) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Pipeline{
		log:         logger,
		extractor:   extractor,
		vendors:     vendors,
		subs:        subs,
		messages:    messages,
		concurrency: concurrency,
	}
}

// ScanBatch pulls the most recent n messages from src and processes each
// independently. Messages share no mutable state; the dedup constraint in the
// store keeps concurrent scans consistent.
func (p *Pipeline) ScanBatch(ctx context.Context, userID uuid.UUID, src MessageSource, n int) (*ScanSummary, error) {
	msgs, err := src.ListRecent(ctx, n)
	if err != nil {
		return nil, err
	}

	summary := &ScanSummary{Total: len(msgs)}
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)

	for _, msg := range msgs {
		wg.Add(1)
		sem <- struct{}{}
		go func(msg Message) {
			defer wg.Done()
			defer func() { <-sem }()

			outcome, err := p.ProcessMessage(ctx, userID, msg)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Errors++
				return
			}
			switch outcome {
			case OutcomeDuplicate:
				summary.Duplicates++
			case OutcomeNotSubscription:
				summary.NotSubscription++
			case OutcomeNoSignal:
				summary.NoSignal++
			case OutcomeUpserted:
				summary.Upserted++
			}
		}(msg)
	}
	wg.Wait()

	p.log.Info("scan.batch.done",
		"user_id", userID,
		"total", summary.Total,
		"duplicates", summary.Duplicates,
		"not_subscription", summary.NotSubscription,
		"no_signal", summary.NoSignal,
		"upserted", summary.Upserted,
		"errors", summary.Errors,
	)
	return summary, nil
}

// ProcessMessage runs one email through the state machine. Provider failures
// are recovered by the regex fallback; a fallback miss stores the message
// without creating a subscription. Only storage failures return an error.
func (p *Pipeline) ProcessMessage(ctx context.Context, userID uuid.UUID, msg Message) (Outcome, error) {
	isNew, err := p.messages.MarkSeen(ctx, userID, msg)
	if err != nil {
		return "", err
	}
	if !isNew {
		p.log.Debug("scan.message.skip", "message_id", msg.ID, "reason", "already processed")
		return OutcomeDuplicate, nil
	}

	if !IsSubscriptionEmail(&msg) {
		if err := p.messages.SetOutcome(ctx, userID, msg.ID, string(OutcomeNotSubscription)); err != nil {
			return "", err
		}
		return OutcomeNotSubscription, nil
	}

	fields := p.extractFields(ctx, msg)
	if fields == nil {
		p.log.Info("scan.message.no_signal", "message_id", msg.ID)
		if err := p.messages.SetOutcome(ctx, userID, msg.ID, string(OutcomeNoSignal)); err != nil {
			return "", err
		}
		return OutcomeNoSignal, nil
	}

	resolved := ResolveVendor(fields, msg.Subject, msg.SenderDomain())
	if resolved.Name == "" {
		if err := p.messages.SetOutcome(ctx, userID, msg.ID, string(OutcomeNoSignal)); err != nil {
			return "", err
		}
		return OutcomeNoSignal, nil
	}

	category := resolved.Category
	if category == "" {
		category = constants.UncategorizedCategory
	}
	vendor, err := p.vendors.FindOrCreate(ctx, entity.Vendor{
		Name:           resolved.Name,
		NormalizedName: patterns.NormalizeVendorName(resolved.Name),
		Domain:         resolved.Domain,
		Category:       category,
		VendorType:     patterns.ClassifySync(resolved.Name, category),
		IsSaaS:         true,
	}, msg.SenderDomain())
	if err != nil {
		return "", err
	}

	// Empty-signal noise guard: no subscription unless at least one of
	// amount, renewal date, or plan was found.
	if !fields.HasSignal() {
		if err := p.messages.SetOutcome(ctx, userID, msg.ID, string(OutcomeNoSignal)); err != nil {
			return "", err
		}
		return OutcomeNoSignal, nil
	}

	sub := entity.Subscription{
		UserID:          userID,
		VendorID:        vendor.ID,
		Source:          constants.SourceGmail,
		Plan:            fields.Plan,
		Seats:           fields.Seats,
		BillingCycle:    constants.BillingCycle(fields.BillingCycle),
		Amount:          fields.Amount,
		Currency:        fields.Currency,
		ConfidenceScore: subscriptionConfidence(fields),
		Status:          constants.SubscriptionActive,
		LastDetectedAt:  time.Now(),
	}
	if fields.RenewalDate != "" {
		if d, ok := textparse.ParseDate(fields.RenewalDate); ok {
			sub.RenewalDate = &d
		}
	}

	if _, err := p.subs.Upsert(ctx, sub); err != nil {
		return "", err
	}
	if err := p.messages.SetOutcome(ctx, userID, msg.ID, string(OutcomeUpserted)); err != nil {
		return "", err
	}

	p.log.Info("scan.message.upserted",
		"message_id", msg.ID,
		"vendor", vendor.Name,
		"confidence", sub.ConfidenceScore,
	)
	return OutcomeUpserted, nil
}

// extractFields is stage 2: the provider first, the deterministic regex
// extractor when the provider fails or is not configured.
func (p *Pipeline) extractFields(ctx context.Context, msg Message) *llm.SubscriptionFields {
	if p.extractor != nil {
		fields, _, err := p.extractor.ExtractSubscription(ctx, llm.ExtractRequest{
			Subject: msg.Subject,
			Body:    msg.Body,
			Sender:  msg.Sender,
		})
		if err == nil {
			if fields == (llm.SubscriptionFields{}) {
				return nil
			}
			return &fields
		}
		p.log.Warn("scan.extract.provider_failed", "message_id", msg.ID, "error", err)
	}
	return extract.Extract(msg.Subject, msg.Body, p.log)
}

func subscriptionConfidence(fields *llm.SubscriptionFields) constants.Confidence {
	switch constants.Confidence(fields.Confidence) {
	case constants.ConfidenceLow, constants.ConfidenceMedium, constants.ConfidenceHigh:
		return constants.Confidence(fields.Confidence)
	}
	return ConfidenceFromSignals(fields.SignalCount())
}
