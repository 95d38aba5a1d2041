package engine

import (
	"sync"
	"time"
)

// Clock is the wall-clock source for round timing and seeding
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when advanced; the zero value reads the zero time
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// roundTimer measures one round; stop freezes the reading at the game-over instant
type roundTimer struct {
	clock   Clock
	start   time.Time
	end     time.Time
	stopped bool
}

func newRoundTimer(clock Clock) roundTimer {
	return roundTimer{clock: clock, start: clock.Now()}
}

// stop is idempotent; only the first call records the end
func (r *roundTimer) stop() {
	if r.stopped {
		return
	}
	r.end = r.clock.Now()
	r.stopped = true
}

func (r *roundTimer) elapsed() time.Duration {
	if r.stopped {
		return r.end.Sub(r.start)
	}
	return r.clock.Now().Sub(r.start)
}
