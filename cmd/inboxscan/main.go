// inboxscan runs the email pipeline against an exported mailbox file using a
// local SQLite database, so detections can be inspected without Postgres or a
// live mail account.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/subtally/subtally/internal/common"
	"github.com/subtally/subtally/internal/llm"
	"github.com/subtally/subtally/internal/llm/openai"
	repo "github.com/subtally/subtally/internal/repository"
	"github.com/subtally/subtally/internal/retry"
	"github.com/subtally/subtally/internal/scanner"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage: inboxscan <mailbox.json> [subtally.db]")
		os.Exit(2)
	}
	mailboxPath := os.Args[1]
	dbPath := "subtally.db"
	if len(os.Args) == 3 {
		dbPath = os.Args[2]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, err := repo.OpenSQLite(dbPath, logger)
	if err != nil {
		logger.Error("failed to open database", "path", dbPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}()

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	src, err := scanner.LoadMessages(mailboxPath)
	if err != nil {
		logger.Error("failed to load mailbox", "path", mailboxPath, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	var extractor llm.FieldExtractor
	if cfg.LLM.APIKey != "" {
		extractor = openai.New(openai.Config{
			BaseURL:     cfg.LLM.BaseURL,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
			Retry:       retry.DefaultPolicy,
		}, logger)
	} else {
		logger.Info("OPENAI_API_KEY not set; using the regex fallback extractor")
	}

	vendorRepo := repo.NewVendorRepository(entc, logger)
	subRepo := repo.NewSubscriptionRepository(entc, logger)
	msgRepo := repo.NewMessageRepository(entc, logger)
	pipeline := scanner.NewPipeline(logger, extractor, vendorRepo, subRepo, msgRepo, cfg.Scanner.Concurrency)

	// Single-user tool: a fixed namespace UUID keeps reruns idempotent.
	userID := uuid.NewSHA1(uuid.NameSpaceURL, []byte("subtally://inboxscan"))

	summary, err := pipeline.ScanBatch(ctx, userID, src, cfg.Scanner.BatchSize)
	if err != nil {
		logger.Error("scan failed", "error", err)
		os.Exit(1)
	}

	subs, err := subRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("failed to list subscriptions", "error", err)
		os.Exit(1)
	}
	for _, s := range subs {
		v, err := vendorRepo.GetByID(ctx, s.VendorID)
		if err != nil {
			continue
		}
		attrs := []any{"vendor", v.Name, "confidence", s.ConfidenceScore, "source", s.Source}
		if s.Amount != nil {
			attrs = append(attrs, "amount", *s.Amount)
		}
		if s.RenewalDate != nil {
			attrs = append(attrs, "renewal", s.RenewalDate.Format("2006-01-02"))
		}
		logger.Info("subscription", attrs...)
	}
	logger.Info("done", "upserted", summary.Upserted, "no_signal", summary.NoSignal, "duplicates", summary.Duplicates)
}
