// Package scheduler runs maintenance jobs on cron specs.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Func is one unit of maintenance work.
type Func func(ctx context.Context) error

type job struct {
	name string
	spec string
	fn   Func
}

// Scheduler wraps robfig/cron. Overlapping runs of the same job are
// skipped and panics are recovered.
type Scheduler struct {
	cron *cron.Cron
	jobs []job
	log  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func New() *Scheduler {
	log := slog.Default().With("component", "scheduler")
	cl := cronLogger{log}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Add registers fn under name. spec accepts the standard five fields and
// descriptors like "@every 1h" or "@daily".
func (s *Scheduler) Add(name, spec string, fn Func) error {
	j := job{name: name, spec: spec, fn: fn}
	if _, err := s.cron.AddFunc(spec, func() { s.run(s.ctx, j) }); err != nil {
		return fmt.Errorf("schedule %s (%q): %w", name, spec, err)
	}
	s.jobs = append(s.jobs, j)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		s.log.Info("job scheduled", "next", e.Next)
	}
	s.log.Info("scheduler started", "jobs", len(s.jobs))
}

// Stop prevents new runs, cancels the context handed to running jobs and
// waits for them until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	s.cancel()
	select {
	case <-done.Done():
		s.log.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunAll runs every registered job once, in registration order.
func (s *Scheduler) RunAll(ctx context.Context) error {
	var errs []error
	for _, j := range s.jobs {
		if err := s.run(ctx, j); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", j.name, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Scheduler) run(ctx context.Context, j job) error {
	start := time.Now()
	err := j.fn(ctx)
	if err != nil {
		s.log.Error("job failed", "job", j.name, "duration", time.Since(start), "error", err)
		return err
	}
	s.log.Info("job finished", "job", j.name, "duration", time.Since(start))
	return nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
