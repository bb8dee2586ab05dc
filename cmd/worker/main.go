package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"

	"post-scheduler/internal/config"
	"post-scheduler/internal/handler/http/respond"
	pgRepo "post-scheduler/internal/infra/adapter/persistence/postgres"
	"post-scheduler/internal/infra/db"
	"post-scheduler/internal/infra/publisher"
	workerPkg "post-scheduler/internal/infra/worker"
	"post-scheduler/internal/resilience/circuitbreaker"
	dispatchUC "post-scheduler/internal/usecase/dispatch"
	"post-scheduler/internal/usecase/notify"
)

func waitForMigrations(logger *slog.Logger, db *sql.DB) {
	const probe = "SELECT 1 FROM scheduled_items LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := db.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func main() {
	logger := initLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load worker configuration (fail-open strategy)
	workerMetrics := workerPkg.NewWorkerMetrics()
	workerMetrics.MustRegister()
	workerConfig, err := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Int("dispatch_max_concurrent", workerConfig.DispatchMaxConcurrent),
		slog.Duration("dispatch_timeout", workerConfig.DispatchTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	// Scheduling policy drives the retry schedule and publisher rate limits
	policy, err := config.LoadPolicyFromEnv()
	if err != nil {
		logger.Error("failed to load scheduling policy", slog.Any("error", err))
		os.Exit(1)
	}

	pub := createPublisher(logger, policy)
	breaker := circuitbreaker.New(circuitbreaker.DefaultConfig("publisher"))

	notifySvc := &notify.Service{Repo: pgRepo.NewNotificationRepo(database)}

	svc := &dispatchUC.Service{
		Items:     pgRepo.NewScheduledItemRepo(database),
		Contents:  pgRepo.NewContentRepo(database),
		Pages:     pgRepo.NewPageRepo(database),
		Logs:      pgRepo.NewPublishLogRepo(database),
		Publisher: pub,
		Notifier:  notifySvc,
		Breaker:   breaker,
		Retry: dispatchUC.RetryPolicy{
			BaseDelay: policy.Retry.BaseDelay.Std(),
			MaxDelay:  policy.Retry.MaxDelay.Std(),
		},
		Concurrency:    workerConfig.DispatchMaxConcurrent,
		AttemptTimeout: 30 * time.Second,
	}

	// Start metrics HTTP server
	startMetricsServer(ctx, logger, breaker)

	// Start health check server
	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))

	startCronWorker(ctx, logger, svc, workerConfig, workerMetrics, healthServer)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and waits for migrations to complete.
// The API server owns the migrations; the worker only probes for readiness.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	waitForMigrations(logger, database)
	return database
}

// createPublisher selects the publishing backend from the environment.
//
// Environment variables:
//   - GRAPH_API_BASE_URL: Graph API endpoint. When empty, the static
//     in-memory publisher is used (local development and tests only).
//   - GRAPH_API_TIMEOUT: HTTP timeout for publish calls (default: 15s)
func createPublisher(logger *slog.Logger, policy *config.PolicyConfig) publisher.Publisher {
	baseURL := os.Getenv("GRAPH_API_BASE_URL")
	if baseURL == "" {
		logger.Warn("GRAPH_API_BASE_URL not set, using static publisher - posts will not leave this process")
		return publisher.NewStaticPublisher()
	}

	timeout := 15 * time.Second
	if raw := os.Getenv("GRAPH_API_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			timeout = parsed
		} else {
			logger.Warn("invalid GRAPH_API_TIMEOUT, using default", slog.String("value", raw))
		}
	}

	logger.Info("graph publisher initialized",
		slog.String("base_url", baseURL),
		slog.Duration("timeout", timeout),
		slog.Float64("requests_per_second", policy.Publisher.RequestsPerSecond),
		slog.Int("burst", policy.Publisher.Burst))

	return publisher.NewGraphPublisher(publisher.GraphConfig{
		BaseURL:           baseURL,
		Timeout:           timeout,
		RequestsPerSecond: policy.Publisher.RequestsPerSecond,
		Burst:             policy.Publisher.Burst,
	})
}

// startCronWorker starts the cron scheduler and runs the dispatch cycle
// periodically. Overlapping runs are skipped rather than queued; the next
// tick picks up whatever the slow cycle left behind.
func startCronWorker(
	ctx context.Context,
	logger *slog.Logger,
	svc *dispatchUC.Service,
	cfg *workerPkg.WorkerConfig,
	metrics *workerPkg.WorkerMetrics,
	healthServer *workerPkg.HealthServer,
) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runDispatchCycle(logger, svc, cfg, metrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	// Mark as ready after cron is set up
	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	logger.Info("shutting down worker...")
	healthServer.SetReady(false)

	// Wait for a running cycle to finish before exiting
	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(cfg.DispatchTimeout):
		logger.Warn("dispatch cycle did not finish before shutdown deadline")
	}
	logger.Info("worker stopped")
}

// runDispatchCycle executes a single dispatch cycle with timeout and metrics.
func runDispatchCycle(logger *slog.Logger, svc *dispatchUC.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DispatchTimeout)
	defer cancel()

	stats, err := svc.RunCycle(ctx)
	if err != nil {
		// 機密情報をマスクしてログ出力
		logger.Error("dispatch cycle failed", slog.Any("error", respond.SanitizeError(err)))
		metrics.RecordCycle("failure")
		metrics.RecordCycleDuration(time.Since(startTime).Seconds())
		return
	}

	metrics.RecordCycle("success")
	metrics.RecordCycleDuration(time.Since(startTime).Seconds())
	metrics.RecordItemsPublished("success", stats.Succeeded)
	metrics.RecordItemsPublished("retry", stats.Retried)
	metrics.RecordItemsPublished("failed", stats.Failed)
	metrics.RecordLastSuccess()

	// Quiet cycles are the common case; only log when something happened
	if stats.Due == 0 && stats.Reclaimed == 0 {
		logger.Debug("dispatch cycle idle")
		return
	}

	logger.Info("dispatch cycle completed",
		slog.Int("due", stats.Due),
		slog.Int("claimed", stats.Claimed),
		slog.Int("succeeded", stats.Succeeded),
		slog.Int("retried", stats.Retried),
		slog.Int("failed", stats.Failed),
		slog.Int("skipped", stats.Skipped),
		slog.Int64("reclaimed", stats.Reclaimed),
		slog.Duration("duration", time.Since(startTime)),
	)
}
