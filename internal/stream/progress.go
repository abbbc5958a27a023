package stream

import "time"

// throttle rate-limits progress reporting by checking the clock only
// every N calls.
//
// Reading the clock on every record would dominate the cost being
// measured; amortizing the check across a batch makes the reporting
// effectively free at the price of coarser timing.
type throttle struct {
	interval time.Duration
	every    int
	count    int
	last     time.Time
}

// newThrottle creates a throttle that checks the clock every `every`
// calls and fires when `interval` has elapsed since the last fire.
func newThrottle(interval time.Duration, every int) *throttle {
	if every < 1 {
		every = 1
	}
	return &throttle{
		interval: interval,
		every:    every,
		last:     time.Now(),
	}
}

// ready returns true if the interval has elapsed. The clock is only
// consulted every N calls; other calls return false immediately.
func (t *throttle) ready() bool {
	t.count++
	if t.count%t.every != 0 {
		return false
	}

	now := time.Now()
	if now.Sub(t.last) >= t.interval {
		t.last = now
		return true
	}
	return false
}
