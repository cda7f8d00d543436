package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	grace time.Duration
	calls atomic.Int32
}

func (f *fakeSweeper) SweepOrphans(_ context.Context, grace time.Duration) (int, error) {
	f.grace = grace
	f.calls.Add(1)
	return 2, nil
}

type failingCleaner struct{}

func (failingCleaner) Run(context.Context) (int64, error) { return 0, errors.New("db gone") }

func TestAdd_RejectsBadSpec(t *testing.T) {
	s := New()
	err := s.Add("broken", "every now and then", func(context.Context) error { return nil })
	assert.ErrorContains(t, err, "broken")
	assert.Empty(t, s.jobs)
}

func TestMaintenance_RunAll(t *testing.T) {
	s := New()
	sweeper := &fakeSweeper{}
	require.NoError(t, Maintenance(s, MaintenanceConfig{
		SweepSchedule:   "@every 1h",
		OrphanGrace:     90 * time.Minute,
		CleanupSchedule: "@daily",
	}, sweeper, failingCleaner{}))

	err := s.RunAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), JobNotificationCleanup)
	assert.NotContains(t, err.Error(), JobOrphanSweep)
	assert.EqualValues(t, 1, sweeper.calls.Load())
	assert.Equal(t, 90*time.Minute, sweeper.grace)
}

func TestStartStop(t *testing.T) {
	s := New()
	var runs atomic.Int32
	require.NoError(t, s.Add("tick", "@every 1s", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}))

	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.ErrorIs(t, s.ctx.Err(), context.Canceled)
}
