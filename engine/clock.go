package engine

import "math"

// Clock is a manually advanced monotonic clock in milliseconds. Fractional
// frame steps are accumulated so a 60Hz loop stays in sync with wall time.
type Clock struct {
	now float64
}

func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current time truncated to whole milliseconds.
func (c *Clock) Now() int64 {
	if c == nil {
		return 0
	}
	return int64(math.Floor(c.now + 1e-6))
}

// Advance moves the clock forward. Negative steps are ignored.
func (c *Clock) Advance(ms float64) {
	if c == nil || ms <= 0 {
		return
	}
	c.now += ms
}

// Set jumps the clock to ms if that is not in the past.
func (c *Clock) Set(ms int64) {
	if c == nil || float64(ms) < c.now {
		return
	}
	c.now = float64(ms)
}
