package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
)

const (
	StateConnected    = "connected"
	StateDisconnected = "disconnected"
)

// Manager owns store connectivity. It pings on a fixed interval forever,
// flipping readiness and running hooks on each transition. There is no
// backoff growth and no give-up.
type Manager struct {
	db       *gorm.DB
	interval time.Duration
	log      *slog.Logger

	ready atomic.Bool

	mu           sync.Mutex
	onReconnect  []func(context.Context, *gorm.DB) error
	onDisconnect []func()
}

func NewManager(db *gorm.DB, interval time.Duration) *Manager {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Manager{
		db:       db,
		interval: interval,
		log:      slog.Default().With("component", "database"),
	}
}

// DB returns the handle. It is valid even while disconnected; queries
// then fail with a connection error.
func (m *Manager) DB() *gorm.DB { return m.db }

func (m *Manager) IsReady() bool { return m.ready.Load() }

func (m *Manager) State() string {
	if m.IsReady() {
		return StateConnected
	}
	return StateDisconnected
}

// OnReconnect registers fn to run every time the store becomes reachable,
// including the first time. A failing hook keeps the manager not ready.
func (m *Manager) OnReconnect(fn func(context.Context, *gorm.DB) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReconnect = append(m.onReconnect, fn)
}

func (m *Manager) OnDisconnect(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onDisconnect = append(m.onDisconnect, fn)
}

// Connect makes one connectivity check.
func (m *Manager) Connect(ctx context.Context) error {
	if err := m.ping(ctx); err != nil {
		if m.ready.Swap(false) {
			m.log.Error("store connection lost", "error", err)
			m.fireDisconnect()
		}
		return err
	}

	if m.ready.Load() {
		return nil
	}

	m.mu.Lock()
	hooks := append([]func(context.Context, *gorm.DB) error(nil), m.onReconnect...)
	m.mu.Unlock()

	for _, fn := range hooks {
		if err := fn(ctx, m.db); err != nil {
			return fmt.Errorf("reconnect hook: %w", err)
		}
	}

	m.ready.Store(true)
	m.log.Info("store connected")
	return nil
}

// Run checks connectivity immediately and then every interval until ctx
// is cancelled.
func (m *Manager) Run(ctx context.Context) {
	if err := m.Connect(ctx); err != nil {
		m.log.Warn("store unavailable, retrying", "in", m.interval, "error", err)
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			wasReady := m.IsReady()
			if err := m.Connect(ctx); err != nil && !wasReady {
				m.log.Warn("store unavailable, retrying", "in", m.interval, "error", err)
			}
		}
	}
}

func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (m *Manager) ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func (m *Manager) fireDisconnect() {
	m.mu.Lock()
	hooks := append([]func(){}, m.onDisconnect...)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}
