// Command seed loads lookup data and the admin account. It is safe to
// run repeatedly.
package main

import (
	"context"
	"log/slog"
	"os"

	"jobvibe/internal/app"
	"jobvibe/internal/config"
	"jobvibe/internal/database"
	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/location"
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
	logger.Init(&logger.Config{Level: cfg.LogLevel, Format: logger.Format(cfg.LogFormat), Component: "seed"})

	if err := run(context.Background(), cfg); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	f, err := loadSeedFile(cfg.SeedFile)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DatabaseURL, database.Options{})
	if err != nil {
		return err
	}
	store := database.NewManager(db, cfg.DBRetryInterval)
	defer store.Close()

	store.OnReconnect(app.Migrate)
	if err := store.Connect(ctx); err != nil {
		return err
	}

	inserted, err := seedLookups(ctx, location.NewRepository(db), f)
	if err != nil {
		return err
	}
	created, err := seedAdmin(ctx, auth.NewRepository(db), cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}

	logger.Info("seed completed",
		"file", cfg.SeedFile,
		"lookup_rows", inserted,
		"admin_created", created,
	)
	return nil
}
