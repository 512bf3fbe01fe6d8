// Package spend holds the business logic behind the transport layer: CSV
// uploads and renewal projections.
package spend

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/subtally/subtally/constants"
	"github.com/subtally/subtally/internal/csvimport"
	"github.com/subtally/subtally/internal/entity"
	"github.com/subtally/subtally/internal/patterns"
	"github.com/subtally/subtally/internal/renewal"
	"github.com/subtally/subtally/internal/repository"
)

// Service handles spend-tracking business logic.
type Service struct {
	transactions repository.TransactionRepository
	vendors      repository.VendorRepository
	subs         repository.SubscriptionRepository
	logger       *slog.Logger
}

func NewService(transactions repository.TransactionRepository, vendors repository.VendorRepository, subs repository.SubscriptionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		transactions: transactions,
		vendors:      vendors,
		subs:         subs,
		logger:       logger,
	}
}

// UploadCSVRequest wraps parameters for one CSV upload.
type UploadCSVRequest struct {
	UserID   string
	Filename string
	Content  string
}

// UploadCSVResult reports what one upload produced.
type UploadCSVResult struct {
	UploadID              uuid.UUID
	Parsed                *csvimport.Result
	Summaries             []entity.VendorSummary
	SubscriptionsUpserted int
}

// UploadCSV normalizes one CSV export, persists its transactions, and upserts
// a csv-source subscription for every SaaS vendor found. Row-level problems
// are reported in Parsed.Errors; only structural problems fail the upload.
func (s *Service) UploadCSV(ctx context.Context, req UploadCSVRequest) (*UploadCSVResult, error) {
	if strings.TrimSpace(req.UserID) == "" {
		s.logger.Error("upload request missing user_id")
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		s.logger.Error("invalid user_id format for upload", "user_id", req.UserID, "error", err)
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, status.Error(codes.InvalidArgument, "csv content is empty")
	}

	parsed, err := csvimport.Parse(req.Content, s.logger)
	if err != nil {
		s.logger.Warn("csv upload rejected", "filename", req.Filename, "errors", parsed.Errors)
		return nil, status.Errorf(codes.InvalidArgument, "csv rejected: %s", strings.Join(parsed.Errors, "; "))
	}

	uploadID := uuid.New()
	s.logger.Info("csv upload accepted",
		"upload_id", uploadID,
		"filename", req.Filename,
		"rows", parsed.TotalRows,
		"transactions", len(parsed.Transactions),
		"saas", parsed.SaaSCount,
	)

	if _, err := s.transactions.BulkInsert(ctx, userID, uploadID, parsed.Transactions); err != nil {
		return nil, status.Errorf(codes.Internal, "persist transactions: %v", err)
	}

	summaries := csvimport.CalculateVendorSummaries(parsed.Transactions)
	upserted := 0
	for _, sum := range summaries {
		if !sum.IsSaaS {
			continue
		}
		if err := s.upsertFromSummary(ctx, userID, sum, parsed.Transactions); err != nil {
			s.logger.Error("failed to upsert subscription from summary", "vendor", sum.VendorName, "error", err)
			continue
		}
		upserted++
	}

	return &UploadCSVResult{
		UploadID:              uploadID,
		Parsed:                parsed,
		Summaries:             summaries,
		SubscriptionsUpserted: upserted,
	}, nil
}

// upsertFromSummary turns one SaaS vendor summary into a vendor row and a
// csv-source subscription carrying the inferred cadence and renewal date.
func (s *Service) upsertFromSummary(ctx context.Context, userID uuid.UUID, sum entity.VendorSummary, txs []entity.Transaction) error {
	category := sum.Category
	if category == "" {
		category = constants.UncategorizedCategory
	}
	vendor, err := s.vendors.FindOrCreate(ctx, entity.Vendor{
		Name:           sum.VendorName,
		NormalizedName: sum.NormalizedVendorName,
		Category:       category,
		VendorType:     patterns.ClassifySync(sum.VendorName, category),
		IsSaaS:         true,
	}, "")
	if err != nil {
		return err
	}

	dates := csvimport.DateSeries(txs, sum.NormalizedVendorName)
	info, err := renewal.GetRenewalInfo(dates, "")
	if err != nil {
		return err
	}

	amount := sum.LatestAmount
	sub := entity.Subscription{
		UserID:          userID,
		VendorID:        vendor.ID,
		Source:          constants.SourceCSV,
		BillingCycle:    billingCycleFor(info.Frequency),
		Amount:          &amount,
		ConfidenceScore: confidenceFor(sum.TransactionCount),
		Status:          constants.SubscriptionActive,
	}
	if info.Frequency != constants.FrequencyOneTime {
		d := info.RenewalDate
		sub.RenewalDate = &d
	}
	_, err = s.subs.Upsert(ctx, sub)
	return err
}

// RenewalInfoRequest identifies a vendor's transaction history.
type RenewalInfoRequest struct {
	UserID     string
	VendorName string
}

// RenewalInfoResult pairs the projection with its display tier.
type RenewalInfoResult struct {
	Info         renewal.Info
	UrgencyLabel string
	UrgencyColor string
}

// RenewalInfo projects the next renewal for one vendor from the user's stored
// transactions.
func (s *Service) RenewalInfo(ctx context.Context, req RenewalInfoRequest) (*RenewalInfoResult, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	if strings.TrimSpace(req.VendorName) == "" {
		return nil, status.Error(codes.InvalidArgument, "vendor_name is required")
	}

	normalized := patterns.NormalizeVendorName(req.VendorName)
	dates, err := s.transactions.DateSeries(ctx, userID, normalized)
	if err != nil {
		s.logger.Error("failed to load transaction dates", "vendor", normalized, "error", err)
		return nil, status.Errorf(codes.Internal, "load transactions: %v", err)
	}
	info, err := renewal.GetRenewalInfo(dates, "")
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "no transactions for vendor %q", req.VendorName)
	}

	label, color := renewal.UrgencyLabel(info.DaysUntilRenewal)
	return &RenewalInfoResult{Info: info, UrgencyLabel: label, UrgencyColor: color}, nil
}

func billingCycleFor(freq constants.Frequency) constants.BillingCycle {
	switch freq {
	case constants.FrequencyMonthly:
		return constants.BillingMonthly
	case constants.FrequencyAnnual:
		return constants.BillingYearly
	}
	return ""
}

// confidenceFor grades a csv detection by history depth: one charge proves
// little, a run of charges proves a subscription.
func confidenceFor(txCount int) constants.Confidence {
	switch {
	case txCount >= 4:
		return constants.ConfidenceHigh
	case txCount >= 2:
		return constants.ConfidenceMedium
	default:
		return constants.ConfidenceLow
	}
}
