package timer

import (
	"context"
	"sync"
	"time"

	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// Clock is the wall-clock implementation of usecase.Clock and usecase.Scheduler.
// Work scheduled with After is tracked so the CLI can wait for it before exiting.
type Clock struct {
	mu      sync.Mutex
	pending sync.WaitGroup
	timers  []*time.Timer
}

// NewClock creates a new wall clock
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current time
func (c *Clock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d or until ctx is done
func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// After runs fn once d has elapsed
func (c *Clock) After(d time.Duration, fn func()) {
	c.pending.Add(1)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers = append(c.timers, time.AfterFunc(d, func() {
		defer c.pending.Done()
		fn()
	}))
}

// Wait blocks until all scheduled work has run or ctx is done. When ctx ends
// first, timers that have not fired yet are stopped and dropped.
func (c *Clock) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		c.mu.Lock()
		for _, t := range c.timers {
			if t.Stop() {
				c.pending.Done()
			}
		}
		c.timers = nil
		c.mu.Unlock()
		<-done
		return ctx.Err()
	}
}

var (
	_ usecase.Clock     = (*Clock)(nil)
	_ usecase.Scheduler = (*Clock)(nil)
)
