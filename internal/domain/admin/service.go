package admin

import (
	"context"
	"runtime"
	"time"

	"jobvibe/internal/database"
	"jobvibe/internal/pkg/apperr"
)

const activityLimit = 20

// Store reports the connection state kept by the database manager.
type Store interface {
	State() string
}

type Cache interface {
	Enabled() bool
	Ping(ctx context.Context) error
}

type Service struct {
	repo    *Repository
	store   Store
	cache   Cache
	started time.Time
	now     func() time.Time
}

func NewService(repo *Repository, store Store, cache Cache) *Service {
	return &Service{repo: repo, store: store, cache: cache, started: time.Now(), now: time.Now}
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	d, err := s.repo.Dashboard(ctx)
	if err != nil {
		return Dashboard{}, apperr.Internal(err)
	}
	return d, nil
}

func (s *Service) Users(ctx context.Context) (UserStats, error) {
	st, err := s.repo.Users(ctx)
	if err != nil {
		return UserStats{}, apperr.Internal(err)
	}
	return st, nil
}

func (s *Service) Jobs(ctx context.Context) (JobStats, error) {
	st, err := s.repo.Jobs(ctx)
	if err != nil {
		return JobStats{}, apperr.Internal(err)
	}
	return st, nil
}

func (s *Service) Applications(ctx context.Context) (ApplicationStats, error) {
	st, err := s.repo.Applications(ctx)
	if err != nil {
		return ApplicationStats{}, apperr.Internal(err)
	}
	return st, nil
}

func (s *Service) Activities(ctx context.Context) ([]Activity, error) {
	items, err := s.repo.Activities(ctx, activityLimit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

// SystemHealth never fails: an unreachable dependency is reported in the
// payload.
func (s *Service) SystemHealth(ctx context.Context) SystemHealth {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	h := SystemHealth{
		Status:     "ok",
		Database:   s.store.State(),
		Cache:      "disabled",
		Uptime:     s.now().Sub(s.started).Round(time.Second).String(),
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		HeapMB:     float64(mem.HeapAlloc) / (1 << 20),
	}

	if h.Database == database.StateConnected {
		if d, err := s.repo.ping(ctx); err != nil {
			h.Database = database.StateDisconnected
		} else {
			h.PingMillis = float64(d.Microseconds()) / 1000
		}
	}
	if h.Database != database.StateConnected {
		h.Status = "degraded"
	}

	if s.cache != nil && s.cache.Enabled() {
		h.Cache = "connected"
		if err := s.cache.Ping(ctx); err != nil {
			h.Cache = "unreachable"
			h.Status = "degraded"
		}
	}
	return h
}
