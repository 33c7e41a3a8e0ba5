package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

// Job is a named function invoked on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs on their intervals until stopped. Gating a
// job to a business-local hour or day is the job's concern, via the helpers
// below; the scheduler only ticks.
type Scheduler struct {
	jobs   []Job
	clock  timezone.Clock
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler(clock timezone.Clock) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		clock:  clock,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Fn: fn})
	slog.Info("cron job registered", "name", name, "interval", interval)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("cron scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) executeJob(job Job) {
	start := s.clock.Now()
	slog.Debug("cron job starting", "name", job.Name)

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("cron job completed", "name", job.Name, "duration", time.Since(start))
}

// RunOnce invokes every registered job immediately. Jobs wrapped with a
// local-time gate still apply it. Useful in tests and one-shot admin runs.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	jobs := make([]Job, len(s.jobs))
	copy(jobs, s.jobs)
	s.mu.Unlock()

	for _, job := range jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("cron job failed", "name", job.Name, "error", err)
		}
	}
}

// AtLocalHour wraps fn so it only runs when the business-local clock reads
// the given hour. Combined with an hourly tick this approximates a daily
// schedule without a cron expression parser.
func AtLocalHour(clock timezone.Clock, hour int, fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if timezone.ToLocal(clock.Now()).Hour() != hour {
			return nil
		}
		return fn(ctx)
	}
}

// AtLocalDay further restricts fn to a given day of month (business-local).
func AtLocalDay(clock timezone.Clock, day, hour int, fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		local := timezone.ToLocal(clock.Now())
		if local.Day() != day || local.Hour() != hour {
			return nil
		}
		return fn(ctx)
	}
}
