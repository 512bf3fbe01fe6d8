package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	spendpb "github.com/subtally/subtally/gen/proto/spend/v1"
)

func (s *SpendService) ScanInbox(ctx context.Context, req *spendpb.ScanInboxRequest) (*spendpb.ScanInboxResponse, error) {
	if strings.TrimSpace(req.GetUserId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	if s.sources == nil {
		return nil, status.Error(codes.FailedPrecondition, "no mailbox source configured")
	}

	src, err := s.sources.ForUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to open mailbox source", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "open mailbox: %v", err)
	}

	n := int(req.GetMaxMessages())
	if n <= 0 {
		n = s.defaultScan
	}
	summary, err := s.pipeline.ScanBatch(ctx, userID, src, n)
	if err != nil {
		s.logger.Error("inbox scan failed", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "scan inbox: %v", err)
	}

	return &spendpb.ScanInboxResponse{
		Total:           int32(summary.Total),
		Duplicates:      int32(summary.Duplicates),
		NotSubscription: int32(summary.NotSubscription),
		NoSignal:        int32(summary.NoSignal),
		Upserted:        int32(summary.Upserted),
		Errors:          int32(summary.Errors),
	}, nil
}
