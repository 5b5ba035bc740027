package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ats/internal/config"
	"ats/internal/core"
	"ats/internal/logging"
	"ats/internal/notify"
	"ats/internal/web"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"seed_count", cfg.Seed.Count,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Create the notification center and the applicant store feeding it
	center := notify.NewCenter(notify.DefaultCapacity)
	store := core.NewStore(center)

	// Seed demo data so the dashboard is not empty on first run
	if cfg.Seed.Count > 0 {
		store.Seed(core.SeedApplicants(cfg.Seed.Count))
		slog.Info("seeded applicants", "count", store.Count())
	}

	server := web.NewServer(store, center, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
