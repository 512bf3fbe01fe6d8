package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	spendpb "github.com/subtally/subtally/gen/proto/spend/v1"
)

func (s *SpendService) ExportSubscriptions(ctx context.Context, req *spendpb.ExportSubscriptionsRequest) (*spendpb.ExportSubscriptionsResponse, error) {
	uid := strings.TrimSpace(req.GetUserId())
	userID, err := uuid.Parse(uid)
	if err != nil || uid == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}

	xlsx, err := s.exportSvc.ExportSubscriptionsXLSX(ctx, userID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "user_id", uid, "err", err)
		return nil, status.Errorf(codes.Internal, "export subscriptions: %v", err)
	}

	return &spendpb.ExportSubscriptionsResponse{Xlsx: xlsx}, nil
}
