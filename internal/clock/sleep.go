// Package clock provides the time seams shared by the poll loop and tests.
package clock

import (
	"context"
	"time"
)

// NowFunc supplies the current time. Production code passes time.Now; tests
// substitute a fake.
type NowFunc func() time.Time

// SleepWithContext waits for the duration or returns early if the context is
// canceled. The poll loop uses it so shutdown never waits out a full interval.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
