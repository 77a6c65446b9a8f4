package timer

import (
	"context"
	"sync"
	"time"

	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// Scheduled is a callback registered with Fake.After.
type Scheduled struct {
	At    time.Time
	Delay time.Duration
	Fn    func()
}

// Fake is a manual clock for tests. Sleep advances time without blocking and
// After only records the callback until Flush is called.
type Fake struct {
	mu        sync.Mutex
	now       time.Time
	sleeps    []time.Duration
	scheduled []Scheduled
}

// NewFake creates a fake clock starting at now
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sleeps = append(f.sleeps, d)
	f.now = f.now.Add(d)
	return nil
}

func (f *Fake) After(d time.Duration, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, Scheduled{At: f.now.Add(d), Delay: d, Fn: fn})
}

// Sleeps returns every duration passed to Sleep, in order
func (f *Fake) Sleeps() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.sleeps...)
}

// Pending returns the callbacks that have not been flushed yet
func (f *Fake) Pending() []Scheduled {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Scheduled(nil), f.scheduled...)
}

// Flush runs every pending callback in registration order
func (f *Fake) Flush() {
	f.mu.Lock()
	pending := f.scheduled
	f.scheduled = nil
	f.mu.Unlock()

	for _, s := range pending {
		s.Fn()
	}
}

var (
	_ usecase.Clock     = (*Fake)(nil)
	_ usecase.Scheduler = (*Fake)(nil)
)
