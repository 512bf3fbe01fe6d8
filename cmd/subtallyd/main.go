package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/google/uuid"

	spendpb "github.com/subtally/subtally/gen/proto/spend/v1"
	"github.com/subtally/subtally/internal/common"
	"github.com/subtally/subtally/internal/export"
	"github.com/subtally/subtally/internal/llm"
	"github.com/subtally/subtally/internal/llm/openai"
	repo "github.com/subtally/subtally/internal/repository"
	"github.com/subtally/subtally/internal/retry"
	"github.com/subtally/subtally/internal/scanner"
	svc "github.com/subtally/subtally/internal/server"
	"github.com/subtally/subtally/internal/spend"
)

// fileSourceProvider serves every user the same exported-mailbox file. It
// stands in until a per-user Gmail adapter is wired.
type fileSourceProvider struct {
	path string
}

func (p fileSourceProvider) ForUser(_ context.Context, _ uuid.UUID) (scanner.MessageSource, error) {
	return scanner.LoadMessages(p.path)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	vendorRepo := repo.NewVendorRepository(entc, logger)
	subRepo := repo.NewSubscriptionRepository(entc, logger)
	txRepo := repo.NewTransactionRepository(entc, logger)
	msgRepo := repo.NewMessageRepository(entc, logger)

	var extractor llm.FieldExtractor
	if cfg.LLM.APIKey != "" {
		extractor = openai.New(openai.Config{
			BaseURL:     cfg.LLM.BaseURL,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
			Retry: retry.Policy{
				MaxAttempts: cfg.Retry.MaxAttempts,
				BaseDelay:   cfg.Retry.BaseDelay,
				MaxDelay:    cfg.Retry.MaxDelay,
			},
		}, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set; extraction runs on the regex fallback only")
	}

	pipeline := scanner.NewPipeline(logger, extractor, vendorRepo, subRepo, msgRepo, cfg.Scanner.Concurrency)

	var sources svc.MessageSourceProvider
	if cfg.Scanner.MailboxPath != "" {
		sources = fileSourceProvider{path: cfg.Scanner.MailboxPath}
	}

	spendSvc := spend.NewService(txRepo, vendorRepo, subRepo, logger)
	exportSvc := export.NewService(subRepo, vendorRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	spendService := svc.NewSpendService(spendSvc, exportSvc, pipeline, sources, subRepo, vendorRepo, cfg.Scanner.BatchSize, logger)
	spendpb.RegisterSpendServiceServer(grpcServer, spendService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("subtally listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
