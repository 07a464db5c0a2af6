// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/opinion-board/internal/admin"
	"github.com/carterperez-dev/opinion-board/internal/auth"
	"github.com/carterperez-dev/opinion-board/internal/config"
	"github.com/carterperez-dev/opinion-board/internal/core"
	"github.com/carterperez-dev/opinion-board/internal/health"
	"github.com/carterperez-dev/opinion-board/internal/middleware"
	"github.com/carterperez-dev/opinion-board/internal/opinion"
	"github.com/carterperez-dev/opinion-board/internal/server"
	"github.com/carterperez-dev/opinion-board/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
		cfg.Otel.Enabled = false
		telemetry, _ = core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	} else if cfg.Otel.Enabled {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"driver", cfg.Database.Driver,
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return err
	}
	logger.Info("database migrations applied")

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(userSvc, auth.Options{
		ResetTokenTTL:    cfg.Auth.ResetTokenTTL,
		ExposeResetToken: cfg.Auth.ExposeResetToken,
		Notifier:         auth.LogNotifier{Logger: logger},
	})
	authHandler := auth.NewHandler(authSvc)

	opinionRepo := opinion.NewRepository(db.DB)
	opinionSvc := opinion.NewService(opinionRepo)
	opinionHandler := opinion.NewHandler(opinionSvc)

	healthHandler := health.NewHandler(db)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Driver:       cfg.Database.Driver,
		DBStats:      db.Stats,
		DBPing:       db.Ping,
		CountUsers:   userSvc.CountUsers,
		OpinionStats: opinionSvc.Stats,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing(telemetry.Tracer))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	adminOnly := middleware.AdminToken(cfg.Admin.Token)

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r)
		opinionHandler.RegisterRoutes(r)

		userHandler.RegisterAdminRoutes(r, adminOnly)
		opinionHandler.RegisterAdminRoutes(r, adminOnly)
		adminHandler.RegisterRoutes(r, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
