package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/resonate-app/resonate-backend/internal/config"
	"github.com/resonate-app/resonate-backend/internal/database"
	"github.com/resonate-app/resonate-backend/internal/handlers"
	"github.com/resonate-app/resonate-backend/internal/logging"
	"github.com/resonate-app/resonate-backend/internal/middleware"
	"github.com/resonate-app/resonate-backend/internal/moderation"
	"github.com/resonate-app/resonate-backend/internal/routes"
	"github.com/resonate-app/resonate-backend/internal/services"
	"github.com/resonate-app/resonate-backend/internal/storage"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Redis (suspension status cache)
	if err := database.ConnectRedis(cfg.RedisURL); err != nil {
		slog.Error("redis connection failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Storage
	reportStore := storage.NewReports(database.DB)
	suspensionStore := storage.NewSuspensions(database.DB)
	reputationStore := storage.NewReputation(database.DB)
	contentStore := storage.NewContent(database.DB)
	statusCache := storage.NewStatusCache(database.RedisClient, cfg.Moderation.SuspensionStatusTTL)

	// Services
	escalationEngine := moderation.NewEscalationEngine(reportStore, cfg.Moderation)
	intakeService := moderation.NewIntakeService(reportStore, reputationStore, escalationEngine)
	suspensionService := moderation.NewSuspensionService(suspensionStore, reputationStore, statusCache, cfg.Moderation)
	resolutionEngine := moderation.NewResolutionEngine(reportStore, suspensionService, reputationStore, contentStore, cfg.Moderation)
	authService := services.NewAuthService(database.DB, cfg)
	blockService := services.NewBlockService(database.DB)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()
	moderationHandler := handlers.NewModerationHandler(intakeService, escalationEngine, resolutionEngine, reportStore, reputationStore, blockService)
	suspensionHandler := handlers.NewSuspensionHandler(suspensionService)
	statsHandler := handlers.NewStatsHandler(reportStore, suspensionStore)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Expired-suspension sweep
	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.Moderation.SweepSchedule, func() {
		n, err := suspensionService.SweepExpired()
		if err != nil {
			slog.Error("suspension sweep failed", "error", err)
			return
		}
		if n > 0 {
			slog.Info("suspension sweep completed", "lifted", n)
		}
	}); err != nil {
		slog.Error("invalid sweep schedule", "schedule", cfg.Moderation.SweepSchedule, "error", err)
		os.Exit(1)
	}
	sweeper.Start()

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB, authHandler, healthHandler, moderationHandler, suspensionHandler, statsHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	<-sweeper.Stop().Done()
	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := database.RedisClient.Close(); err != nil {
		slog.Error("redis close error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
