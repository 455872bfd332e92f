package checkout

import "sync/atomic"

// Counter issues strictly increasing order ids.
//
// Calls are linearizable - each Next returns a unique, increasing
// value - though the single-user console flow only ever has one
// caller.
type Counter struct {
	n atomic.Int64
}

// NewCounterAt creates a counter whose first Next returns start+1.
// Used to resume numbering from the highest persisted order id.
func NewCounterAt(start int64) *Counter {
	c := &Counter{}
	c.n.Store(start)
	return c
}

// Next returns the next order id and advances the counter.
func (c *Counter) Next() int64 {
	return c.n.Add(1)
}

// Current returns the last issued id without advancing.
func (c *Counter) Current() int64 {
	return c.n.Load()
}
