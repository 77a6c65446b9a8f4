package timer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClock_SleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewClock().Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClock_SleepElapses(t *testing.T) {
	c := NewClock()
	start := c.Now()

	require.NoError(t, c.Sleep(context.Background(), 10*time.Millisecond))
	assert.GreaterOrEqual(t, c.Now().Sub(start), 10*time.Millisecond)
}

func TestClock_WaitRunsScheduledWork(t *testing.T) {
	c := NewClock()
	var ran atomic.Int32
	c.After(5*time.Millisecond, func() { ran.Add(1) })
	c.After(10*time.Millisecond, func() { ran.Add(1) })

	require.NoError(t, c.Wait(context.Background()))
	assert.Equal(t, int32(2), ran.Load())
}

func TestClock_WaitCancelledDropsTimers(t *testing.T) {
	c := NewClock()
	var ran atomic.Bool
	c.After(time.Hour, func() { ran.Store(true) })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := c.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ran.Load())
}

func TestFake(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	f := NewFake(start)

	require.NoError(t, f.Sleep(context.Background(), 2*time.Second))
	assert.Equal(t, start.Add(2*time.Second), f.Now())

	var ran bool
	f.After(5*time.Second, func() { ran = true })
	require.Len(t, f.Pending(), 1)
	assert.Equal(t, start.Add(7*time.Second), f.Pending()[0].At)
	assert.False(t, ran)

	f.Flush()
	assert.True(t, ran)
	assert.Empty(t, f.Pending())
	assert.Equal(t, []time.Duration{2 * time.Second}, f.Sleeps())
}
