package testutils

import (
	"context"
	"sync"
	"time"
)

// FakeClock satisfies scheduler.Clock without waiting. It records every
// requested sleep so tests can assert on simulated timing.
type FakeClock struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

func (c *FakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.mu.Unlock()
	return nil
}

// Sleeps returns the requested durations in call order.
func (c *FakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.sleeps))
	copy(out, c.sleeps)
	return out
}

// Elapsed is the sum of all requested sleeps.
func (c *FakeClock) Elapsed() time.Duration {
	var total time.Duration
	for _, d := range c.Sleeps() {
		total += d
	}
	return total
}
