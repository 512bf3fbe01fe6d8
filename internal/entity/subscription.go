package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/subtally/subtally/constants"
)

// Subscription represents a detected subscription for data transfer between layers.
// Unique per (user, vendor, source); repeated detections update the same row.
type Subscription struct {
	ID              uuid.UUID                    `json:"id"`
	UserID          uuid.UUID                    `json:"user_id"`
	VendorID        uuid.UUID                    `json:"vendor_id"`
	Source          constants.Source             `json:"source"`
	Plan            *string                      `json:"plan,omitempty"`
	Seats           *int                         `json:"seats,omitempty"`
	BillingCycle    constants.BillingCycle       `json:"billing_cycle,omitempty"`
	RenewalDate     *time.Time                   `json:"renewal_date,omitempty"`
	Amount          *float64                     `json:"amount,omitempty"`
	Currency        string                       `json:"currency,omitempty"`
	ConfidenceScore constants.Confidence         `json:"confidence_score"`
	Status          constants.SubscriptionStatus `json:"status"`
	LastDetectedAt  time.Time                    `json:"last_detected_at"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
}

// MonthlyPerSeat normalizes the subscription price to a monthly per-seat figure.
// Yearly amounts are divided by 12 before the per-seat division. Returns false
// when amount is unknown; a missing seat count is treated as a single seat.
func (s *Subscription) MonthlyPerSeat() (float64, bool) {
	if s.Amount == nil {
		return 0, false
	}
	monthly := *s.Amount
	if s.BillingCycle == constants.BillingYearly {
		monthly /= 12
	}
	seats := 1
	if s.Seats != nil && *s.Seats > 0 {
		seats = *s.Seats
	}
	return monthly / float64(seats), true
}
