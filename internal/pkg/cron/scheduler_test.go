package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

// localInstant returns the UTC instant whose business-local wall time is the
// given hour on the given day of July 2024.
func localInstant(day, hour int) time.Time {
	return time.Date(2024, 7, day, hour, 0, 0, 0, timezone.Business).UTC()
}

func TestAtLocalHour(t *testing.T) {
	runs := 0
	fn := func(ctx context.Context) error {
		runs++
		return nil
	}

	clock := timezone.FixedClock{Instant: localInstant(15, 23)}
	gated := AtLocalHour(clock, 23, fn)
	assert.NoError(t, gated(context.Background()))
	assert.Equal(t, 1, runs)

	clock = timezone.FixedClock{Instant: localInstant(15, 10)}
	gated = AtLocalHour(clock, 23, fn)
	assert.NoError(t, gated(context.Background()))
	assert.Equal(t, 1, runs, "wrong hour must not run the job")
}

func TestAtLocalDay(t *testing.T) {
	runs := 0
	fn := func(ctx context.Context) error {
		runs++
		return nil
	}

	clock := timezone.FixedClock{Instant: localInstant(1, 1)}
	gated := AtLocalDay(clock, 1, 1, fn)
	assert.NoError(t, gated(context.Background()))
	assert.Equal(t, 1, runs)

	clock = timezone.FixedClock{Instant: localInstant(2, 1)}
	gated = AtLocalDay(clock, 1, 1, fn)
	assert.NoError(t, gated(context.Background()))
	assert.Equal(t, 1, runs, "wrong day must not run the job")

	clock = timezone.FixedClock{Instant: localInstant(1, 2)}
	gated = AtLocalDay(clock, 1, 1, fn)
	assert.NoError(t, gated(context.Background()))
	assert.Equal(t, 1, runs, "wrong hour must not run the job")
}

func TestRunOnceInvokesRegisteredJobs(t *testing.T) {
	clock := timezone.FixedClock{Instant: localInstant(15, 12)}
	scheduler := NewScheduler(clock)

	ran := 0
	scheduler.AddJob("count", time.Hour, func(ctx context.Context) error {
		ran++
		return nil
	})

	scheduler.RunOnce(context.Background())
	assert.Equal(t, 1, ran)
}
