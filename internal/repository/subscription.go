package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/subtally/subtally/gen/ent"
	"github.com/subtally/subtally/gen/ent/subscription"
	"github.com/subtally/subtally/internal/entity"
	"github.com/subtally/subtally/internal/utils"
)

type SubscriptionRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)
	ListByVendor(ctx context.Context, userID, vendorID uuid.UUID) ([]*entity.Subscription, error)
	Upsert(ctx context.Context, s entity.Subscription) (*entity.Subscription, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Subscription, error)
}

type subscriptionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSubscriptionRepository(client *ent.Client, logger *slog.Logger) SubscriptionRepository {
	return &subscriptionRepository{
		client: client,
		logger: logger,
	}
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	subs, err := r.client.Subscription.Query().
		Where(subscription.UserID(userID)).
		Order(subscription.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list subscriptions", "user_id", userID, "error", err)
		return nil, err
	}
	result := make([]*entity.Subscription, len(subs))
	for i, s := range subs {
		result[i] = utils.ToSubscription(s)
	}
	return result, nil
}

func (r *subscriptionRepository) ListByVendor(ctx context.Context, userID, vendorID uuid.UUID) ([]*entity.Subscription, error) {
	subs, err := r.client.Subscription.Query().
		Where(subscription.UserID(userID), subscription.VendorID(vendorID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Subscription, len(subs))
	for i, s := range subs {
		result[i] = utils.ToSubscription(s)
	}
	return result, nil
}

// Upsert writes a detection keyed by (user, vendor, source). A second
// detection of the same key updates the row: newly present fields overwrite,
// absent fields keep their stored value, and last_detected_at is refreshed.
// An insert race on the unique index falls back to the update path.
func (r *subscriptionRepository) Upsert(ctx context.Context, s entity.Subscription) (*entity.Subscription, error) {
	existing, err := r.client.Subscription.Query().
		Where(
			subscription.UserID(s.UserID),
			subscription.VendorID(s.VendorID),
			subscription.SourceEQ(subscription.Source(s.Source)),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return r.refresh(ctx, existing, s)
	}

	builder := r.client.Subscription.Create().
		SetUserID(s.UserID).
		SetVendorID(s.VendorID).
		SetSource(subscription.Source(s.Source)).
		SetNillablePlan(s.Plan).
		SetNillableSeats(s.Seats).
		SetNillableRenewalDate(s.RenewalDate).
		SetNillableAmount(s.Amount).
		SetConfidenceScore(subscription.ConfidenceScore(s.ConfidenceScore)).
		SetStatus(subscription.Status(s.Status)).
		SetLastDetectedAt(detectedAt(s))
	if s.BillingCycle != "" {
		builder = builder.SetBillingCycle(subscription.BillingCycle(s.BillingCycle))
	}
	if s.Currency != "" {
		builder = builder.SetCurrency(s.Currency)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if !ent.IsConstraintError(err) {
			r.logger.Error("failed to create subscription", "user_id", s.UserID, "vendor_id", s.VendorID, "error", err)
			return nil, err
		}
		existing, qerr := r.client.Subscription.Query().
			Where(
				subscription.UserID(s.UserID),
				subscription.VendorID(s.VendorID),
				subscription.SourceEQ(subscription.Source(s.Source)),
			).
			Only(ctx)
		if qerr != nil {
			return nil, qerr
		}
		return r.refresh(ctx, existing, s)
	}
	r.logger.Info("subscription created", "user_id", s.UserID, "vendor_id", s.VendorID, "source", s.Source)
	return utils.ToSubscription(created), nil
}

func (r *subscriptionRepository) refresh(ctx context.Context, existing *ent.Subscription, s entity.Subscription) (*entity.Subscription, error) {
	upd := existing.Update().
		SetNillablePlan(s.Plan).
		SetNillableSeats(s.Seats).
		SetNillableRenewalDate(s.RenewalDate).
		SetNillableAmount(s.Amount).
		SetLastDetectedAt(detectedAt(s))
	if s.BillingCycle != "" {
		upd = upd.SetBillingCycle(subscription.BillingCycle(s.BillingCycle))
	}
	if s.Currency != "" {
		upd = upd.SetCurrency(s.Currency)
	}
	if s.ConfidenceScore != "" {
		upd = upd.SetConfidenceScore(subscription.ConfidenceScore(s.ConfidenceScore))
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to refresh subscription", "id", existing.ID, "error", err)
		return nil, err
	}
	return utils.ToSubscription(updated), nil
}

func (r *subscriptionRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Subscription, error) {
	updated, err := r.client.Subscription.UpdateOneID(id).
		SetStatus(subscription.Status(status)).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToSubscription(updated), nil
}

func detectedAt(s entity.Subscription) time.Time {
	if s.LastDetectedAt.IsZero() {
		return time.Now()
	}
	return s.LastDetectedAt
}
