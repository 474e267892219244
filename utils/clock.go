package utils

import "time"

// EvolveClock decides when an auto-evolving simulation is due for its next generation.
// Time only advances through Advance, so pausing is simply not calling it.
type EvolveClock struct {
	interval   time.Duration
	total      time.Duration
	lastEvolve time.Duration
}

func NewEvolveClock(interval time.Duration) *EvolveClock {
	return &EvolveClock{interval: interval}
}

// Advance adds delta to the accumulated time and reports whether more than one
// interval has passed since the last evolution
func (c *EvolveClock) Advance(delta time.Duration) bool {
	c.total += delta
	if c.total > c.lastEvolve+c.interval {
		c.lastEvolve = c.total
		return true
	}
	return false
}

// MarkEvolved restarts the interval from now, used after a manual step
func (c *EvolveClock) MarkEvolved() {
	c.lastEvolve = c.total
}

// Elapsed returns the accumulated time
func (c *EvolveClock) Elapsed() time.Duration {
	return c.total
}
