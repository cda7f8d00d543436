package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort                  = "8080"
	defaultDatabaseURL           = "jobvibe.db"
	defaultDBRetryInterval       = "5s"
	defaultJWTSecret             = "change-me-jwt-secret"
	defaultJWTTTL                = "72h"
	defaultUploadDir             = "uploads"
	defaultMaxUploadSizeMB       = "100"
	defaultLogLevel              = "info"
	defaultLogFormat             = "text"
	defaultSweepSchedule         = "@every 1h"
	defaultOrphanGrace           = "1h"
	defaultNotificationRetention = "2160h"
	defaultNotificationCleanup   = "@daily"
	defaultCacheTTL              = "10m"
	defaultSeedFile              = "configs/seed.yaml"
)

type Config struct {
	AppEnv string
	Port   string

	DatabaseURL     string
	DBRetryInterval time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	RedisURL string
	CacheTTL time.Duration

	UploadDir      string
	MaxUploadBytes int64
	PublicBaseURL  string

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string

	GRPCHealthAddr string

	SweepSchedule               string
	OrphanGrace                 time.Duration
	NotificationRetention       time.Duration
	NotificationCleanupSchedule string

	AdminEmail    string
	AdminPassword string
	SeedFile      string
}

// Load reads the process environment. Call godotenv before it to pick up .env files.
func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.UploadDir = strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir))
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")), "/")
	cfg.CORSAllowedOrigins = splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	cfg.LogLevel = strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel))
	cfg.LogFormat = strings.TrimSpace(getEnv("LOG_FORMAT", defaultLogFormat))
	cfg.GRPCHealthAddr = strings.TrimSpace(os.Getenv("GRPC_HEALTH_ADDR"))
	cfg.SweepSchedule = strings.TrimSpace(getEnv("SWEEP_SCHEDULE", defaultSweepSchedule))
	cfg.NotificationCleanupSchedule = strings.TrimSpace(getEnv("NOTIFICATION_CLEANUP_SCHEDULE", defaultNotificationCleanup))
	cfg.AdminEmail = strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	cfg.SeedFile = strings.TrimSpace(getEnv("SEED_FILE", defaultSeedFile))

	var err error
	if cfg.DBRetryInterval, err = parseDurationEnv("DB_RETRY_INTERVAL", defaultDBRetryInterval); err != nil {
		return nil, err
	}
	if cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = parseDurationEnv("CACHE_TTL", defaultCacheTTL); err != nil {
		return nil, err
	}
	if cfg.OrphanGrace, err = parseDurationEnv("ORPHAN_GRACE", defaultOrphanGrace); err != nil {
		return nil, err
	}
	if cfg.NotificationRetention, err = parseDurationEnv("NOTIFICATION_RETENTION", defaultNotificationRetention); err != nil {
		return nil, err
	}

	maxMB, err := parseIntEnv("MAX_UPLOAD_SIZE_MB", defaultMaxUploadSizeMB)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadBytes = int64(maxMB) << 20

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	slog.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.Port,
		"redis", cfg.RedisURL != "",
		"upload_dir", cfg.UploadDir,
		"grpc_health", cfg.GRPCHealthAddr,
	)

	return cfg, nil
}

func (c *Config) IsProduction() bool { return isProdLike(c.AppEnv) }

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DBRetryInterval <= 0 {
		return fmt.Errorf("DB_RETRY_INTERVAL must be > 0")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE_MB must be > 0")
	}
	if cfg.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR must not be empty")
	}
	if cfg.OrphanGrace <= 0 {
		return fmt.Errorf("ORPHAN_GRACE must be > 0")
	}
	if cfg.NotificationRetention <= 0 {
		return fmt.Errorf("NOTIFICATION_RETENTION must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
			return fmt.Errorf("in prod/release CORS_ALLOWED_ORIGINS must list explicit origins")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
