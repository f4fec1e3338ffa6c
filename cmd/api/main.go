// Package main is the entrypoint for the roster API server.
package main

import (
	"log/slog"
	"os"

	"github.com/roster/roster/internal/config"
	"github.com/roster/roster/internal/handler"
	"github.com/roster/roster/internal/metrics"
	"github.com/roster/roster/internal/router"
	"github.com/roster/roster/internal/server"
	"github.com/roster/roster/internal/service"
	"github.com/roster/roster/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize the in-memory store. It lives for the process lifetime
	// and is the single owner of all user records.
	st := store.New()

	// Initialize services
	recorder := metrics.NewNoop()
	userService := service.NewUserService(st, recorder)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(st)
	userHandler := handler.NewUserHandler(userService, logger)

	// Setup router
	r := router.New(router.Deps{
		Handler:       h,
		HealthHandler: healthHandler,
		UserHandler:   userHandler,
		Config:        cfg,
		Logger:        logger,
	})

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
