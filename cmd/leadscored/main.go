package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asah-capstone-a25/leadscore/internal/application/usecase"
	"github.com/asah-capstone-a25/leadscore/internal/infrastructure/artifact"
	"github.com/asah-capstone-a25/leadscore/internal/infrastructure/config"
	grpcpresentation "github.com/asah-capstone-a25/leadscore/internal/presentation/grpc"
	"github.com/asah-capstone-a25/leadscore/internal/presentation/rest"
	"github.com/asah-capstone-a25/leadscore/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Service: "leadscore",
		Level:   cfg.LogLevel,
		Format:  "json",
	})

	logger.Info("starting lead scoring service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"artifact_dir", cfg.ArtifactDir,
	)

	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: "leadscore",
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdownTracer(ctx)
	}

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "leadscore",
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without /metrics", "error", err)
	}

	// The artifact bundle loads exactly once, before any request is served.
	// Without it the service must not start.
	bundle, err := artifact.Load(cfg.ArtifactDir)
	if err != nil {
		logger.Error("failed to load model artifacts", "error", err)
		os.Exit(1)
	}
	logger.Info("model artifacts loaded",
		"model_version", bundle.Version(),
		"feature_count", bundle.FeatureCount(),
		"feature_names", bundle.FeatureNames(),
		"decision_threshold", bundle.Policy().DecisionThreshold,
	)

	// Wire use cases.
	scoreLeadUC := usecase.NewScoreLead(bundle, logger)
	modelInfoUC := usecase.NewGetModelInfo(bundle)

	// gRPC server.
	grpcHandler := grpcpresentation.NewLeadScoringHandler(scoreLeadUC, modelInfoUC, logger)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), true, logger)

	// HTTP server.
	restHandler := rest.NewHandler(scoreLeadUC, modelInfoUC, metricsHandler, logger)
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      restHandler.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("lead scoring service ready",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	logger.Info("shutting down lead scoring service")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("lead scoring service stopped")
}
