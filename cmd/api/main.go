package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"post-scheduler/internal/common/pagination"
	"post-scheduler/internal/config"
	pgRepo "post-scheduler/internal/infra/adapter/persistence/postgres"
	"post-scheduler/internal/infra/db"

	accUC "post-scheduler/internal/usecase/account"
	contentUC "post-scheduler/internal/usecase/content"
	"post-scheduler/internal/usecase/notify"
	pageUC "post-scheduler/internal/usecase/page"
	schedUC "post-scheduler/internal/usecase/schedule"

	hhttp "post-scheduler/internal/handler/http"
	haccount "post-scheduler/internal/handler/http/account"
	hauth "post-scheduler/internal/handler/http/auth"
	hcontent "post-scheduler/internal/handler/http/content"
	hnotification "post-scheduler/internal/handler/http/notification"
	hpage "post-scheduler/internal/handler/http/page"
	hschedule "post-scheduler/internal/handler/http/schedule"
	"post-scheduler/internal/handler/http/requestid"
	"post-scheduler/internal/observability/tracing"
	pkgconfig "post-scheduler/pkg/config"

	_ "post-scheduler/docs" // swagger docs
)

// @title           Post Scheduler API
// @version         1.0
// @description     SNS ページ向け投稿スケジューリングシステムの REST API
// @description     アカウント・ページ・タイムスロット・コンテンツの管理と、投稿予約・配信状況の参照機能を提供します。

// @contact.name   API Support
// @contact.url    https://github.com/post-scheduler/post-scheduler
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

func main() {
	logger := initLogger()
	validateAdminCredentials(logger)
	validateJWTSecret(logger)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	shutdownTracing := initTracing(logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
	}()

	policy := loadPolicy(logger)
	version := getVersion()

	handler, authLimiter := setupServer(logger, database, policy, version)
	runServer(logger, handler, authLimiter, version)
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

// validateAdminCredentials validates the admin credentials at startup.
// This prevents the server from starting with empty or weak admin credentials.
func validateAdminCredentials(logger *slog.Logger) {
	if err := hauth.ValidateAdminCredentials(); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// validateJWTSecret validates the JWT_SECRET environment variable for security requirements.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	// セキュリティ: 最小32文字（256ビット）を強制
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	// セキュリティ: よくある弱い秘密鍵を拒否
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

// initTracing installs the global tracer provider so request logs and
// responses carry trace IDs.
func initTracing(logger *slog.Logger) func(context.Context) error {
	shutdown, err := tracing.InitTracerProvider(context.Background(), "post-scheduler-api")
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	return shutdown
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// loadPolicy loads the scheduling policy from SCHEDULING_POLICY_FILE,
// falling back to built-in defaults.
func loadPolicy(logger *slog.Logger) *config.PolicyConfig {
	policy, err := config.LoadPolicyFromEnv()
	if err != nil {
		logger.Error("failed to load scheduling policy", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("scheduling policy loaded",
		slog.Duration("collision_window", policy.Scheduling.CollisionWindow.Std()),
		slog.Duration("look_ahead", policy.Scheduling.LookAhead.Std()),
		slog.String("timezone", policy.Scheduling.Timezone))
	return policy
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return pkgconfig.GetEnvString("VERSION", "dev")
}

// setupServer wires repositories, services and routes and returns the final
// handler plus the auth rate limiter (returned separately for cleanup).
func setupServer(logger *slog.Logger, database *sql.DB, policy *config.PolicyConfig, version string) (http.Handler, *hhttp.RateLimiter) {
	accountRepo := pgRepo.NewAccountRepo(database)
	pageRepo := pgRepo.NewPageRepo(database)
	slotRepo := pgRepo.NewTimeSlotRepo(database)
	contentRepo := pgRepo.NewContentRepo(database)
	itemRepo := pgRepo.NewScheduledItemRepo(database)
	logRepo := pgRepo.NewPublishLogRepo(database)
	notificationRepo := pgRepo.NewNotificationRepo(database)

	notifySvc := &notify.Service{Repo: notificationRepo}

	accountSvc := &accUC.Service{Repo: accountRepo, PageRepo: pageRepo}
	contentSvc := &contentUC.Service{Repo: contentRepo, ItemRepo: itemRepo}
	pageSvc := &pageUC.Service{
		Repo:     pageRepo,
		ItemRepo: itemRepo,
		SlotRepo: slotRepo,
		Notifier: notifySvc,
	}
	scheduleSvc := &schedUC.Service{
		ItemRepo:    itemRepo,
		ContentRepo: contentRepo,
		PageRepo:    pageRepo,
		LogRepo:     logRepo,
		Allocator: &schedUC.Allocator{
			ItemRepo:        itemRepo,
			SlotRepo:        slotRepo,
			Location:        policy.Location(),
			CollisionWindow: policy.Scheduling.CollisionWindow.Std(),
			LookAhead:       policy.Scheduling.LookAhead.Std(),
		},
	}

	// レート制限: 認証エンドポイントは1分間に5リクエストまで
	authRateLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)

	publicMux := http.NewServeMux()
	publicMux.Handle("POST /auth/token", authRateLimiter.Limit(hauth.TokenHandler()))

	// ヘルスチェックエンドポイント（認証不要）
	publicMux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	publicMux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	publicMux.Handle("/live", &hhttp.LiveHandler{})
	publicMux.Handle("/metrics", hhttp.MetricsHandler())

	// Swagger UI（認証不要、SWAGGER_ENABLED=false で無効化）
	if pkgconfig.GetEnvBool("SWAGGER_ENABLED", true) {
		publicMux.Handle("/swagger/", httpSwagger.WrapHandler)
	}

	// Load pagination configuration
	paginationCfg := pagination.LoadFromEnv()

	privateMux := http.NewServeMux()
	haccount.Register(privateMux, accountSvc)
	hpage.Register(privateMux, pageSvc)
	hcontent.Register(privateMux, contentSvc, paginationCfg, logger)
	hschedule.Register(privateMux, scheduleSvc, paginationCfg, logger)
	hnotification.Register(privateMux, notifySvc)

	rootMux := http.NewServeMux()
	rootMux.Handle("/auth/token", publicMux)
	rootMux.Handle("/health", publicMux)
	rootMux.Handle("/ready", publicMux)
	rootMux.Handle("/live", publicMux)
	rootMux.Handle("/metrics", publicMux)
	rootMux.Handle("/swagger/", publicMux)
	rootMux.Handle("/", privateMux)

	return applyMiddleware(logger, rootMux), authRateLimiter
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID → Tracing → Recovery → Logging → Body Limit → Timeout → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	middlewareChain := handler

	// Apply in reverse order (innermost to outermost)
	middlewareChain = hhttp.MetricsMiddleware(middlewareChain)
	middlewareChain = hhttp.Timeout(30 * time.Second)(middlewareChain)
	middlewareChain = hhttp.LimitRequestBody(1 << 20)(middlewareChain) // 1MB limit
	middlewareChain = hhttp.InputValidation()(middlewareChain)
	middlewareChain = hhttp.Logging(logger)(middlewareChain)
	middlewareChain = hhttp.Recover(logger)(middlewareChain)
	middlewareChain = tracing.Middleware(middlewareChain)
	middlewareChain = requestid.Middleware(middlewareChain)

	return middlewareChain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, authLimiter *hhttp.RateLimiter, version string) {
	// Context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Background cleanup for the auth rate limiter
	cleanupCfg := hhttp.LoadCleanupConfigFromEnv()
	go hhttp.StartRateLimitCleanup(ctx, authLimiter, cleanupCfg.Interval)

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", ":8080"),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	// Cancel background goroutines
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
