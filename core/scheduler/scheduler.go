// Package scheduler runs timed events in order on a single loop.
//
// Events are keyed by simulated time since the scheduler was created. Two
// events due at the same instant fire in the order they were enqueued, so
// a run is deterministic regardless of how long the clock actually waits.
package scheduler

import (
	"container/heap"
	"context"
	"time"

	"github.com/solidrace/solidrace/pkg/logging"
	"golang.org/x/time/rate"
)

type event struct {
	at   time.Duration
	seq  uint64
	name string
	fn   func()
}

type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

// Scheduler is not safe for concurrent use. Enqueue from the goroutine that
// calls Run, or from inside an event.
type Scheduler struct {
	clock   Clock
	limiter *rate.Limiter
	logger  logging.Logger

	now   time.Duration
	seq   uint64
	queue eventQueue
}

type Option func(*Scheduler)

// WithClock replaces the default RealClock{Scale: 1}.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithRateLimit caps dispatch to perSecond events with the given burst.
// perSecond <= 0 means unlimited.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(s *Scheduler) {
		if perSecond <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithLogger(l logging.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:  RealClock{Scale: 1},
		logger: logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now is the simulated time of the last dispatched event.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending is the number of events not yet dispatched.
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// After enqueues fn to run d after Now. Negative delays are treated as zero.
func (s *Scheduler) After(d time.Duration, name string, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	heap.Push(&s.queue, &event{at: s.now + d, seq: s.seq, name: name, fn: fn})
}

// Run dispatches events until the queue is empty or ctx is done. On
// cancellation the undispatched events stay queued.
func (s *Scheduler) Run(ctx context.Context) error {
	for s.queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev := s.queue[0]
		if wait := ev.at - s.now; wait > 0 {
			if err := s.clock.Sleep(ctx, wait); err != nil {
				return err
			}
		}
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		heap.Pop(&s.queue)
		if ev.at > s.now {
			s.now = ev.at
		}
		s.logger.Debug("dispatching event", "event", ev.name, "at", s.now)
		ev.fn()
	}
	return nil
}
