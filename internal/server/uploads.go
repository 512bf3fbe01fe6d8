package server

import (
	"context"

	spendpb "github.com/subtally/subtally/gen/proto/spend/v1"
	"github.com/subtally/subtally/internal/spend"
	"github.com/subtally/subtally/internal/utils"
)

func (s *SpendService) UploadCSV(ctx context.Context, req *spendpb.UploadCSVRequest) (*spendpb.UploadCSVResponse, error) {
	result, err := s.spendSvc.UploadCSV(ctx, spend.UploadCSVRequest{
		UserID:   req.GetUserId(),
		Filename: req.GetFilename(),
		Content:  req.GetContent(),
	})
	if err != nil {
		return nil, err
	}

	resp := &spendpb.UploadCSVResponse{
		UploadId:              result.UploadID.String(),
		TotalRows:             int32(result.Parsed.TotalRows),
		TransactionCount:      int32(len(result.Parsed.Transactions)),
		SaasCount:             int32(result.Parsed.SaaSCount),
		SubscriptionsUpserted: int32(result.SubscriptionsUpserted),
		RowErrors:             result.Parsed.Errors,
	}
	for i := range result.Summaries {
		resp.Summaries = append(resp.Summaries, utils.ToPBVendorSummary(&result.Summaries[i]))
	}
	return resp, nil
}
