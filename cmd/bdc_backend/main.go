package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/bureau_de_change/internal/adapters/reports"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/core/services"
	"github.com/SscSPs/bureau_de_change/internal/handlers"
	"github.com/SscSPs/bureau_de_change/internal/middleware"
	"github.com/SscSPs/bureau_de_change/internal/platform/config"
	"github.com/SscSPs/bureau_de_change/internal/repositories/database/memory"
	"github.com/SscSPs/bureau_de_change/internal/repositories/database/pgsql"
	"github.com/SscSPs/bureau_de_change/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Bureau de Change API
// @version 1.0
// @description Till backend for a currency exchange counter: sessions, transactions, rate table and closing reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	repos, cleanup, err := newRepositories(ctx, logger, cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	renderer := reports.NewWorkbookRenderer(cfg.LocalCurrencyCode)
	publisher, closeArchive, err := newReportPublisher(ctx, cfg, renderer)
	if err != nil {
		logger.Error("Failed to initialize report archive", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeArchive()

	serviceContainer, err := services.NewServiceContainer(cfg, repos, renderer, publisher)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		logger.Error("Invalid login rate limit", slog.String("rate", cfg.LoginRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(corsMiddleware(cfg), middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, loginLimiter)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("storage_driver", cfg.StorageDriver),
		slog.String("report_archive", cfg.ReportArchive),
		slog.String("till_timezone", cfg.TillTimezone))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newRepositories opens the configured storage and returns a cleanup func for it.
func newRepositories(ctx context.Context, logger *slog.Logger, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		logger.Warn("Using in-memory storage; data is lost on restart")
		repos, err := memory.NewRepositoryProvider()
		return repos, func() {}, err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established")

	logger.Info("Running database migrations")
	if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), dbPool.Close, nil
}

// newReportPublisher selects where closing reports are archived. It returns a nil
// publisher when archiving is disabled.
func newReportPublisher(ctx context.Context, cfg *config.Config, renderer portssvc.ReportRenderer) (portssvc.ReportPublisher, func(), error) {
	switch cfg.ReportArchive {
	case config.ReportArchiveNone:
		return nil, func() {}, nil
	case config.ReportArchiveGCS:
		archive, err := reports.NewGCSArchive(ctx, cfg.ReportBucket, "closing-reports")
		if err != nil {
			return nil, nil, err
		}
		closeArchive := func() {
			if err := archive.Close(); err != nil {
				slog.Error("Failed to close storage client", slog.String("error", err.Error()))
			}
		}
		return reports.NewPublisher(renderer, archive), closeArchive, nil
	case config.ReportArchiveLocal:
		return reports.NewPublisher(renderer, reports.NewLocalArchive(cfg.ReportDir)), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown report archive %q", cfg.ReportArchive)
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range cfg.CORSAllowedOrigins {
		if origin == "*" {
			corsConfig.AllowAllOrigins = true
		}
	}
	if !corsConfig.AllowAllOrigins {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return cors.New(corsConfig)
}
