package engine

import (
	"context"
	"time"
)

// TickPacer waits a fixed interval per move step
type TickPacer struct {
	Interval time.Duration
}

// Wait blocks for one interval or until ctx is done
func (p TickPacer) Wait(ctx context.Context) error {
	if p.Interval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.Interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
