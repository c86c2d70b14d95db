package testing

import (
	"sync"
	"time"
)

// FakeClock provides controllable time for deterministic interaction tests.
// It implements host.Clock: callbacks scheduled with AfterFunc fire
// synchronously, in due order, on the goroutine that moves the clock.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	at  time.Time
	seq int
	fn  func()
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules fn to run when the clock has advanced by at least d.
// Nothing fires until Advance or Set moves the clock past the deadline.
func (c *FakeClock) AfterFunc(d time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.timers = append(c.timers, &fakeTimer{at: c.now.Add(d), seq: c.seq, fn: fn})
}

// Pending returns the number of scheduled callbacks that have not fired.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward by d, firing due callbacks in deadline
// order. Callbacks run without the clock lock held, so they may schedule
// further callbacks; those also fire if their deadline falls within d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.advanceTo(target)
}

// Set moves the clock to an exact time, firing callbacks that have come
// due. Setting the clock backwards fires nothing.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	if t.Before(c.now) {
		c.now = t
		c.mu.Unlock()
		return
	}
	c.advanceTo(t)
}

// advanceTo is called with the lock held and releases it before returning.
func (c *FakeClock) advanceTo(target time.Time) {
	for {
		timer := c.popDue(target)
		if timer == nil {
			break
		}
		if c.now.Before(timer.at) {
			c.now = timer.at
		}
		c.mu.Unlock()
		timer.fn()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// popDue removes and returns the earliest timer at or before target,
// preferring scheduling order among equal deadlines. Returns nil when no
// timer is due.
func (c *FakeClock) popDue(target time.Time) *fakeTimer {
	best := -1
	for i, timer := range c.timers {
		if timer.at.After(target) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		b := c.timers[best]
		if timer.at.Before(b.at) || (timer.at.Equal(b.at) && timer.seq < b.seq) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	timer := c.timers[best]
	c.timers = append(c.timers[:best], c.timers[best+1:]...)
	return timer
}
