package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	spendpb "github.com/subtally/subtally/gen/proto/spend/v1"
	"github.com/subtally/subtally/internal/spend"
	"github.com/subtally/subtally/internal/utils"
)

func (s *SpendService) ListSubscriptions(ctx context.Context, req *spendpb.ListSubscriptionsRequest) (*spendpb.ListSubscriptionsResponse, error) {
	if strings.TrimSpace(req.GetUserId()) == "" {
		s.logger.Error("list subscriptions request missing user_id")
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}

	subs, err := s.subRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list subscriptions", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "list subscriptions: %v", err)
	}

	out := make([]*spendpb.Subscription, 0, len(subs))
	for _, sub := range subs {
		out = append(out, utils.ToPBSubscription(sub))
	}
	return &spendpb.ListSubscriptionsResponse{Subscriptions: out}, nil
}

func (s *SpendService) ListVendors(ctx context.Context, _ *spendpb.ListVendorsRequest) (*spendpb.ListVendorsResponse, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		s.logger.Error("failed to list vendors", "error", err)
		return nil, status.Errorf(codes.Internal, "list vendors: %v", err)
	}

	out := make([]*spendpb.Vendor, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, utils.ToPBVendor(v))
	}
	return &spendpb.ListVendorsResponse{Vendors: out}, nil
}

func (s *SpendService) GetRenewalInfo(ctx context.Context, req *spendpb.GetRenewalInfoRequest) (*spendpb.GetRenewalInfoResponse, error) {
	result, err := s.spendSvc.RenewalInfo(ctx, spend.RenewalInfoRequest{
		UserID:     req.GetUserId(),
		VendorName: req.GetVendorName(),
	})
	if err != nil {
		return nil, err
	}

	return &spendpb.GetRenewalInfoResponse{
		Frequency:        string(result.Info.Frequency),
		RenewalDate:      result.Info.RenewalDate.Format("2006-01-02"),
		DaysUntilRenewal: int32(result.Info.DaysUntilRenewal),
		IsUrgent:         result.Info.IsUrgent,
		UrgencyLabel:     result.UrgencyLabel,
		UrgencyColor:     result.UrgencyColor,
	}, nil
}
