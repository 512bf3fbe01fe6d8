package utils

import (
	"fmt"
	"time"

	"github.com/subtally/subtally/constants"
	"github.com/subtally/subtally/gen/ent"
	spendpb "github.com/subtally/subtally/gen/proto/spend/v1"
	"github.com/subtally/subtally/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToVendor(e *ent.Vendor) *entity.Vendor {
	return &entity.Vendor{
		ID:             e.ID,
		Name:           e.Name,
		NormalizedName: e.NormalizedName,
		Domain:         e.Domain,
		Category:       e.Category,
		VendorType:     constants.VendorType(e.VendorType),
		IsSaaS:         e.IsSaas,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToSubscription(e *ent.Subscription) *entity.Subscription {
	return &entity.Subscription{
		ID:              e.ID,
		UserID:          e.UserID,
		VendorID:        e.VendorID,
		Source:          constants.Source(e.Source),
		Plan:            e.Plan,
		Seats:           e.Seats,
		BillingCycle:    constants.BillingCycle(e.BillingCycle),
		RenewalDate:     e.RenewalDate,
		Amount:          e.Amount,
		Currency:        e.Currency,
		ConfidenceScore: constants.Confidence(e.ConfidenceScore),
		Status:          constants.SubscriptionStatus(e.Status),
		LastDetectedAt:  e.LastDetectedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToPBVendor(v *entity.Vendor) *spendpb.Vendor {
	return &spendpb.Vendor{
		Id:             v.ID.String(),
		Name:           v.Name,
		NormalizedName: v.NormalizedName,
		Domain:         v.Domain,
		Category:       v.Category,
		VendorType:     string(v.VendorType),
		IsSaas:         v.IsSaaS,
		CreatedAt:      v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBSubscription(s *entity.Subscription) *spendpb.Subscription {
	pb := &spendpb.Subscription{
		Id:              s.ID.String(),
		UserId:          s.UserID.String(),
		VendorId:        s.VendorID.String(),
		Source:          string(s.Source),
		Plan:            strOrEmpty(s.Plan),
		BillingCycle:    string(s.BillingCycle),
		Currency:        s.Currency,
		ConfidenceScore: string(s.ConfidenceScore),
		Status:          string(s.Status),
		LastDetectedAt:  s.LastDetectedAt.UTC().Format(time.RFC3339),
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if s.Seats != nil {
		pb.Seats = int32(*s.Seats)
	}
	if s.Amount != nil {
		pb.Amount = fmt.Sprintf("%.2f", *s.Amount)
	}
	if s.RenewalDate != nil {
		pb.RenewalDate = s.RenewalDate.Format("2006-01-02")
	}
	return pb
}

func ToPBVendorSummary(s *entity.VendorSummary) *spendpb.VendorSummary {
	return &spendpb.VendorSummary{
		VendorName:           s.VendorName,
		NormalizedVendorName: s.NormalizedVendorName,
		TotalAmount:          fmt.Sprintf("%.2f", s.TotalAmount),
		TransactionCount:     int32(s.TransactionCount),
		AverageAmount:        fmt.Sprintf("%.2f", s.AverageAmount),
		MinAmount:            fmt.Sprintf("%.2f", s.MinAmount),
		MaxAmount:            fmt.Sprintf("%.2f", s.MaxAmount),
		LatestAmount:         fmt.Sprintf("%.2f", s.LatestAmount),
		FirstDate:            s.FirstDate.Format("2006-01-02"),
		LastDate:             s.LastDate.Format("2006-01-02"),
		IsSaas:               s.IsSaaS,
		Category:             s.Category,
	}
}
