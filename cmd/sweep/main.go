// Command sweep runs the maintenance jobs once: the orphan upload sweep
// and notification retention cleanup. It suits hosts that schedule work
// with their own cron instead of the API's built-in scheduler.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"jobvibe/internal/app"
	"jobvibe/internal/config"
	"jobvibe/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger.Init(&logger.Config{Level: cfg.LogLevel, Format: logger.Format(cfg.LogFormat), Component: "sweep"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("maintenance failed", "error", err)
		os.Exit(1)
	}
	logger.Info("maintenance completed")
}

func run(ctx context.Context, cfg *config.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Store.Connect(ctx); err != nil {
		return err
	}
	s, err := a.Maintenance()
	if err != nil {
		return err
	}
	return s.RunAll(ctx)
}
