package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/subtally/subtally/internal/renewal"
	"github.com/subtally/subtally/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	subs    repository.SubscriptionRepository
	vendors repository.VendorRepository
	logger  *slog.Logger
}

func NewService(subs repository.SubscriptionRepository, vendors repository.VendorRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{subs: subs, vendors: vendors, logger: logger}
}

// ExportSubscriptionsXLSX returns an XLSX workbook (as bytes) listing the
// user's subscriptions with renewal urgency, sorted as stored.
func (s *Service) ExportSubscriptionsXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()

	subs, err := s.subs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query subscriptions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Subscriptions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Vendor",
		"Category",
		"Type",
		"Plan",
		"Seats",
		"Billing Cycle",
		"Amount",
		"Monthly / Seat",
		"Renewal Date",
		"Days Until Renewal",
		"Urgency",
		"Source",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, sub := range subs {
		vendor, err := s.vendors.GetByID(ctx, sub.VendorID)
		if err != nil {
			s.logger.Warn("export skipping subscription with unknown vendor", "subscription_id", sub.ID, "vendor_id", sub.VendorID)
			continue
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, vendor.Name)
		write(2, vendor.Category)
		write(3, string(vendor.VendorType))
		if sub.Plan != nil {
			write(4, *sub.Plan)
		}
		if sub.Seats != nil {
			write(5, *sub.Seats)
		}
		write(6, string(sub.BillingCycle))
		if sub.Amount != nil {
			write(7, fmt.Sprintf("%.2f", *sub.Amount))
		}
		if perSeat, ok := sub.MonthlyPerSeat(); ok {
			write(8, fmt.Sprintf("%.2f", perSeat))
		}
		if sub.RenewalDate != nil {
			write(9, sub.RenewalDate.Format("2006-01-02"))
			days := renewal.DaysUntil(time.Now().UTC(), *sub.RenewalDate)
			write(10, days)
			label, _ := renewal.UrgencyLabel(days)
			write(11, label)
		}
		write(12, string(sub.Source))
		write(13, string(sub.ConfidenceScore))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // vendor
	_ = f.SetColWidth(sheet, "B", "C", 18)
	_ = f.SetColWidth(sheet, "D", "D", 22) // plan
	_ = f.SetColWidth(sheet, "F", "H", 14)
	_ = f.SetColWidth(sheet, "I", "K", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(subs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
