package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bryanwahyu/roi-simulator/internal/application"
	appreport "github.com/bryanwahyu/roi-simulator/internal/application/report"
	appscenarios "github.com/bryanwahyu/roi-simulator/internal/application/scenarios"
	"github.com/bryanwahyu/roi-simulator/internal/infra/ai/openai"
	"github.com/bryanwahyu/roi-simulator/internal/infra/db"
	"github.com/bryanwahyu/roi-simulator/internal/infra/httpserver"
	"github.com/bryanwahyu/roi-simulator/internal/infra/pdf"
	minioStore "github.com/bryanwahyu/roi-simulator/internal/infra/storage"
	"github.com/bryanwahyu/roi-simulator/internal/middleware"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and web form",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	ctx := logger.WithContext(cmd.Context())

	// connect database
	store, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	logger.Info().Str("driver", store.Driver).Msg("scenario store ready")

	clock := application.SystemClock{}

	reports := &appreport.Service{
		Renderer:  pdf.NewRenderer(cfg.Report.Currency),
		Scenarios: store.Scenarios,
		Clock:     clock,
	}

	// init minio (optional)
	if cfg.Minio.Enabled {
		archive, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
			cfg.Minio.PresignTTL,
		)
		if err != nil {
			return fmt.Errorf("minio init error: %w", err)
		}
		reports.Archive = archive
		logger.Info().Str("bucket", cfg.Minio.BucketName).Msg("report archive enabled")
	}

	// init openai (optional)
	if cfg.OpenAI.APIKey != "" {
		if cfg.OpenAI.BaseURL != "" {
			reports.Narrator = openai.NewClientWithBaseURL(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
		} else {
			reports.Narrator = openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		}
		logger.Info().Msg("report narrative enabled")
	}

	checkers := map[string]middleware.HealthChecker{}
	if store.DB != nil {
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: store.DB}
	}

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimit.Capacity, cfg.Server.RateLimit.RefillRate)
	defer limiter.Stop()

	handler := httpserver.NewRouter(httpserver.Dependencies{
		Scenarios:   &appscenarios.Service{Repo: store.Scenarios, Clock: clock},
		Reports:     reports,
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateLimiter: limiter,
		Checkers:    checkers,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return listen(ctx, srv, &logger)
}

// listen runs srv until SIGINT/SIGTERM, then drains in-flight requests
func listen(ctx context.Context, srv *http.Server, logger *zerolog.Logger) error {
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-stop.Done():
	}
	logger.Info().Msg("shutting down server...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	if err := srv.Shutdown(ctx2); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		return srv.Close()
	}
	return nil
}
