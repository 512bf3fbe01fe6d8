// Package server adapts the gRPC surface onto the spend services.
package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	spendpb "github.com/subtally/subtally/gen/proto/spend/v1"
	"github.com/subtally/subtally/internal/export"
	"github.com/subtally/subtally/internal/repository"
	"github.com/subtally/subtally/internal/scanner"
	"github.com/subtally/subtally/internal/spend"
)

// MessageSourceProvider hands the scan pipeline a per-user mailbox. The
// concrete source (Gmail adapter, exported-mail file) is wired at startup.
type MessageSourceProvider interface {
	ForUser(ctx context.Context, userID uuid.UUID) (scanner.MessageSource, error)
}

type SpendService struct {
	spendpb.UnimplementedSpendServiceServer
	spendSvc    *spend.Service
	exportSvc   *export.Service
	pipeline    *scanner.Pipeline
	sources     MessageSourceProvider
	subRepo     repository.SubscriptionRepository
	vendorRepo  repository.VendorRepository
	defaultScan int
	logger      *slog.Logger
}

func NewSpendService(
	spendSvc *spend.Service,
	exportSvc *export.Service,
	pipeline *scanner.Pipeline,
	sources MessageSourceProvider,
	subRepo repository.SubscriptionRepository,
	vendorRepo repository.VendorRepository,
	defaultScan int,
	logger *slog.Logger,
) *SpendService {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultScan <= 0 {
		defaultScan = 50
	}
	return &SpendService{
		spendSvc:    spendSvc,
		exportSvc:   exportSvc,
		pipeline:    pipeline,
		sources:     sources,
		subRepo:     subRepo,
		vendorRepo:  vendorRepo,
		defaultScan: defaultScan,
		logger:      logger,
	}
}
