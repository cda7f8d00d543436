// Command api serves the JobVibe HTTP API.
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

	"jobvibe/internal/app"
	"jobvibe/internal/config"
	"jobvibe/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger.Init(&logger.Config{Level: cfg.LogLevel, Format: logger.Format(cfg.LogFormat)})
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	// The store may be down at boot; the server still starts and /health
	// reports it until the manager reconnects.
	go a.Store.Run(ctx)

	if cfg.GRPCHealthAddr != "" {
		go func() {
			if err := a.Health.ListenAndServe(cfg.GRPCHealthAddr); err != nil {
				logger.Error("grpc health server", "error", err)
			}
		}()
		defer a.Health.Stop()
	}

	jobs, err := a.Maintenance()
	if err != nil {
		return err
	}
	jobs.Start()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := jobs.Stop(shutdownCtx); err != nil {
		logger.Warn("scheduler stop", "error", err)
	}
	return srv.Shutdown(shutdownCtx)
}
