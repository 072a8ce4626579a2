//go:generate mockgen -package=mocks -destination=../../mocks/mock_clock.go github.com/solidrace/solidrace/core/scheduler Clock

package scheduler

import (
	"context"
	"time"
)

// Clock waits out the simulated gap between two events.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on the wall clock, stretched by Scale. A Scale of 0
// runs the simulation without waiting.
type RealClock struct {
	Scale float64
}

func (c RealClock) Sleep(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * c.Scale)
	if scaled <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(scaled)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
