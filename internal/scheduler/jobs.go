package scheduler

import (
	"context"
	"time"
)

type Sweeper interface {
	SweepOrphans(ctx context.Context, grace time.Duration) (int, error)
}

type Cleaner interface {
	Run(ctx context.Context) (int64, error)
}

type MaintenanceConfig struct {
	SweepSchedule   string
	OrphanGrace     time.Duration
	CleanupSchedule string
}

const (
	JobOrphanSweep         = "orphan-file-sweep"
	JobNotificationCleanup = "notification-cleanup"
)

// Maintenance registers the orphan-file sweep and notification retention
// cleanup on s.
func Maintenance(s *Scheduler, cfg MaintenanceConfig, files Sweeper, notifications Cleaner) error {
	err := s.Add(JobOrphanSweep, cfg.SweepSchedule, func(ctx context.Context) error {
		_, err := files.SweepOrphans(ctx, cfg.OrphanGrace)
		return err
	})
	if err != nil {
		return err
	}
	return s.Add(JobNotificationCleanup, cfg.CleanupSchedule, func(ctx context.Context) error {
		_, err := notifications.Run(ctx)
		return err
	})
}
