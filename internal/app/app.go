// Package app wires configuration, stores and domain services into a
// runnable API.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"jobvibe/internal/cache"
	"jobvibe/internal/config"
	"jobvibe/internal/database"
	"jobvibe/internal/domain/admin"
	"jobvibe/internal/domain/application"
	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/feed"
	"jobvibe/internal/domain/interview"
	"jobvibe/internal/domain/job"
	"jobvibe/internal/domain/location"
	"jobvibe/internal/domain/message"
	"jobvibe/internal/domain/notification"
	"jobvibe/internal/domain/relationship"
	"jobvibe/internal/domain/report"
	"jobvibe/internal/domain/resume"
	"jobvibe/internal/domain/settings"
	"jobvibe/internal/domain/upload"
	"jobvibe/internal/domain/user"
	"jobvibe/internal/health"
	"jobvibe/internal/pkg/jwt"
	"jobvibe/internal/realtime"
	"jobvibe/internal/router"
	"jobvibe/internal/scheduler"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Models lists every persisted entity in migration order.
func Models() []any {
	return []any{
		&auth.User{},
		&feed.Feed{},
		&feed.Reaction{},
		&application.Application{},
		&interview.Interview{},
		&notification.Notification{},
		&upload.File{},
		&location.State{},
		&location.City{},
		&location.JobTitle{},
		&message.Conversation{},
		&message.Message{},
		&relationship.Block{},
		&resume.Resume{},
	}
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

type App struct {
	Config        *config.Config
	Store         *database.Manager
	Cache         *cache.Cache
	Hub           *realtime.Hub
	Notifications *notification.Service
	Uploads       *upload.Service
	Cleanup       *notification.Cleanup
	Health        *health.GRPCServer
	Engine        *gin.Engine
}

// New opens the store handle without contacting it; migrations run from
// the manager's reconnect hook once Store.Run sees the store. A Redis
// outage at startup downgrades to running without a cache.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.Open(cfg.DatabaseURL, database.Options{})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	store := database.NewManager(db, cfg.DBRetryInterval)
	store.OnReconnect(Migrate)

	c, err := cache.Connect(ctx, cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		slog.Warn("redis unavailable, continuing without cache", "error", err)
		c = cache.New(nil, cfg.CacheTTL)
	}

	a := &App{
		Config: cfg,
		Store:  store,
		Cache:  c,
		Hub:    realtime.NewHub(),
		Health: health.NewGRPCServer(),
	}
	a.Health.Bind(store)
	a.Engine = a.routes(db)
	return a, nil
}

func (a *App) routes(db *gorm.DB) *gin.Engine {
	cfg := a.Config
	tokens := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	notificationRepo := notification.NewRepository(db)
	a.Notifications = notification.NewService(notificationRepo, a.Cache, a.Hub)
	a.Cleanup = notification.NewCleanup(notificationRepo, cfg.NotificationRetention)
	a.Uploads = upload.NewService(upload.NewRepository(db), upload.NewLocalStorage(cfg.UploadDir), cfg.MaxUploadBytes)

	users := auth.NewRepository(db)
	authSvc := auth.NewService(users, tokens)

	feedRepo := feed.NewRepository(db)
	feedSvc := feed.NewService(feedRepo, users, a.Uploads, a.Notifications)

	apps := application.NewService(application.NewRepository(db), users, feedRepo, a.Notifications)
	interviews := interview.NewService(interview.NewRepository(db), apps, a.Notifications)
	apps.SetCleaner(interviews)

	relationships := relationship.NewService(relationship.NewRepository(db), users)
	messages := message.NewService(message.NewRepository(db), users, a.Hub, a.Notifications)
	messages.SetBlocker(relationships)

	return router.New(router.Handlers{
		Auth:          auth.NewHandler(authSvc),
		Users:         user.NewHandler(user.NewService(user.NewRepository(db), users, a.Uploads, feedSvc)),
		Feeds:         feed.NewHandler(feedSvc),
		Jobs:          job.NewHandler(job.NewService(feedRepo, job.NewRepository(db), a.Uploads, a.Notifications)),
		Applications:  application.NewHandler(apps),
		Interviews:    interview.NewHandler(interviews),
		Notifications: notification.NewHandler(a.Notifications),
		Files:         upload.NewHandler(a.Uploads),
		Messages:      message.NewHandler(messages),
		Relationships: relationship.NewHandler(relationships),
		Resumes:       resume.NewHandler(resume.NewService(resume.NewRepository(db), a.Uploads)),
		Settings:      settings.NewHandler(settings.NewService(users, authSvc)),
		Reports:       report.NewHandler(report.NewService(report.NewRepository(db))),
		Admin:         admin.NewHandler(admin.NewService(admin.NewRepository(db), a.Store, a.Cache)),
		Locations:     location.NewHandler(location.NewService(location.NewRepository(db), a.Cache)),
		Realtime:      realtime.NewHandler(a.Hub, cfg.CORSAllowedOrigins),
		Health:        health.NewHandler(a.Store),
	}, router.Options{
		Tokens:        tokens,
		Origins:       cfg.CORSAllowedOrigins,
		PublicBaseURL: cfg.PublicBaseURL,
		UploadDir:     cfg.UploadDir,
		MaxBody:       cfg.MaxUploadBytes,
	})
}

// Maintenance returns a scheduler carrying the orphan sweep and the
// notification retention cleanup.
func (a *App) Maintenance() (*scheduler.Scheduler, error) {
	s := scheduler.New()
	err := scheduler.Maintenance(s, scheduler.MaintenanceConfig{
		SweepSchedule:   a.Config.SweepSchedule,
		OrphanGrace:     a.Config.OrphanGrace,
		CleanupSchedule: a.Config.NotificationCleanupSchedule,
	}, a.Uploads, a.Cleanup)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Close waits for pending notification deliveries, then releases the
// cache and the store.
func (a *App) Close() {
	a.Notifications.Wait()
	if err := a.Cache.Close(); err != nil {
		slog.Warn("close cache", "error", err)
	}
	if err := a.Store.Close(); err != nil {
		slog.Warn("close store", "error", err)
	}
}
