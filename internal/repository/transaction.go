package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/subtally/subtally/gen/ent"
	"github.com/subtally/subtally/gen/ent/transaction"
	"github.com/subtally/subtally/internal/entity"
)

type TransactionRepository interface {
	BulkInsert(ctx context.Context, userID, uploadID uuid.UUID, txs []entity.Transaction) (int, error)
	ListByVendor(ctx context.Context, userID uuid.UUID, normalizedName string) ([]*entity.Transaction, error)
	DateSeries(ctx context.Context, userID uuid.UUID, normalizedName string) ([]time.Time, error)
}

type transactionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTransactionRepository(client *ent.Client, logger *slog.Logger) TransactionRepository {
	return &transactionRepository{
		client: client,
		logger: logger,
	}
}

// BulkInsert persists one upload's normalized rows in a single batch.
func (r *transactionRepository) BulkInsert(ctx context.Context, userID, uploadID uuid.UUID, txs []entity.Transaction) (int, error) {
	if len(txs) == 0 {
		return 0, nil
	}
	builders := make([]*ent.TransactionCreate, len(txs))
	for i, t := range txs {
		b := r.client.Transaction.Create().
			SetUserID(userID).
			SetUploadID(uploadID).
			SetTxDate(t.Date).
			SetVendorName(t.VendorName).
			SetNormalizedVendorName(t.NormalizedVendorName).
			SetAmount(t.Amount).
			SetRawDescription(t.RawDescription).
			SetIsSaas(t.IsSaaS)
		if t.Category != "" {
			b = b.SetCategory(t.Category)
		}
		builders[i] = b
	}
	created, err := r.client.Transaction.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert transactions", "upload_id", uploadID, "count", len(txs), "error", err)
		return 0, err
	}
	r.logger.Info("transactions inserted", "upload_id", uploadID, "count", len(created))
	return len(created), nil
}

func (r *transactionRepository) ListByVendor(ctx context.Context, userID uuid.UUID, normalizedName string) ([]*entity.Transaction, error) {
	rows, err := r.client.Transaction.Query().
		Where(
			transaction.UserID(userID),
			transaction.NormalizedVendorName(normalizedName),
		).
		Order(transaction.ByTxDate()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Transaction, len(rows))
	for i, row := range rows {
		result[i] = &entity.Transaction{
			Date:                 row.TxDate,
			VendorName:           row.VendorName,
			NormalizedVendorName: row.NormalizedVendorName,
			Amount:               row.Amount,
			RawDescription:       row.RawDescription,
			IsSaaS:               row.IsSaas,
			Category:             row.Category,
		}
	}
	return result, nil
}

// DateSeries returns the ordered transaction dates feeding the frequency and
// renewal estimators.
func (r *transactionRepository) DateSeries(ctx context.Context, userID uuid.UUID, normalizedName string) ([]time.Time, error) {
	rows, err := r.ListByVendor(ctx, userID, normalizedName)
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = row.Date
	}
	return dates, nil
}
