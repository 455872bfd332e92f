// Package testutil provides deterministic stand-ins for wall-clock
// time and order references in tests.
package testutil

import (
	"fmt"
	"sync"
	"time"
)

// Clock is a deterministic wall clock for tests: it starts at a fixed
// instant and advances by a fixed step on every call, so rendered
// timestamps are stable across runs.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, though the console flows under test are single-threaded.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewClock creates a clock starting at start, advancing by step per
// Now call.
func NewClock(start time.Time, step time.Duration) *Clock {
	return &Clock{now: start, step: step}
}

// Now returns the current instant and advances the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// RefSequence returns a reference generator producing ref-1, ref-2,
// ... in place of random UUIDs.
func RefSequence() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ref-%d", n)
	}
}
