package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/estatequery/estatequery/internal/config"
	"github.com/estatequery/estatequery/internal/dataset"
	"github.com/estatequery/estatequery/internal/logging"
	"github.com/estatequery/estatequery/internal/web"
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
		"data_path", cfg.Data.Path,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Load the transaction table once; it is read-only for the process
	// lifetime. Without a usable table the service cannot answer anything,
	// so a load or parse failure is fatal.
	ds, err := dataset.Load(cfg.Data.Path, cfg.Data.Format)
	if err != nil {
		slog.Error("data unavailable", "error", err)
		os.Exit(1)
	}

	// Create server with the dataset handle
	server := web.NewServer(ds, cfg)

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

	// Start server (uses addr from config internally)
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
