package notification

import (
	"context"
	"log/slog"
	"time"
)

// Cleanup removes read notifications past their retention.
type Cleanup struct {
	repo      Repository
	retention time.Duration
	now       func() time.Time
}

func NewCleanup(repo Repository, retention time.Duration) *Cleanup {
	return &Cleanup{repo: repo, retention: retention, now: time.Now}
}

// Run deletes read notifications created more than retention ago.
// Unread ones are kept regardless of age.
func (c *Cleanup) Run(ctx context.Context) (int64, error) {
	start := c.now()
	deleted, err := c.repo.DeleteReadBefore(ctx, start.Add(-c.retention))
	if err != nil {
		slog.Error("notification cleanup failed", "error", err)
		return 0, err
	}
	slog.Info("notification cleanup completed", "deleted", deleted, "duration", time.Since(start))
	return deleted, nil
}
