// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
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

// Every calls fn after each interval until ctx is done or fn returns an error.
func Every(ctx context.Context, interval time.Duration, fn func(context.Context) error) error {
	for {
		if err := SleepWithContext(ctx, interval); err != nil {
			return err
		}
		if err := fn(ctx); err != nil {
			return err
		}
	}
}
