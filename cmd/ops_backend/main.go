package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/ops_backend/internal/core/services"
	"github.com/SscSPs/ops_backend/internal/handlers"
	"github.com/SscSPs/ops_backend/internal/metrics"
	"github.com/SscSPs/ops_backend/internal/middleware"
	"github.com/SscSPs/ops_backend/internal/platform/config"
	"github.com/SscSPs/ops_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/ops_backend/internal/worker"
	"github.com/SscSPs/ops_backend/pkg/database"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Ops Backend API
// @version 1.0
// @description Ticket routing for company operations and asynchronous ledger reports.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	registry := metrics.NewRegistry()
	collector := metrics.NewCollector(registry)

	pool := worker.NewPool(cfg.ReportQueueSize, logger)
	// Report tasks outlive the signal context so queued jobs drain on shutdown.
	if err := pool.Start(context.Background(), cfg.ReportWorkers); err != nil {
		logger.Error("Failed to start report workers", slog.String("error", err.Error()))
		os.Exit(1)
	}

	reportLimiter, err := middleware.NewMemoryLimiter(cfg.ReportRateLimit)
	if err != nil {
		logger.Error("Invalid report rate limit", slog.String("rate", cfg.ReportRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, pool, collector)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteOptions{
		ReportLimiter:  reportLimiter,
		MetricsHandler: metrics.Handler(registry),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	pool.Stop()
	logger.Info("Server stopped")
}
