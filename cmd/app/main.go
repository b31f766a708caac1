package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"weatherhistory.app/internal/app"
	"weatherhistory.app/internal/config"
	"weatherhistory.app/pkg/logger"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.SetDefault(cfg.LogLevel)

	application, err := app.NewApplicationWithConfig(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	slog.Info("Configuration loaded successfully")
	slog.Info("Server configuration",
		"port", cfg.Server.Port,
		"database", string(cfg.Database.Driver),
		"cache", cfg.Cache.Type.String(),
		"origins", cfg.Server.AllowedOrigins)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupGracefulShutdown(cancel, application)

	slog.Info("Starting Weather History API...")
	if err := application.Start(ctx); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(cancel context.CancelFunc, app *app.Application) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		slog.Info("Received shutdown signal...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := app.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error during graceful shutdown", "error", err)
		}

		os.Exit(0)
	}()
}
