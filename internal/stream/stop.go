package stream

import "sync/atomic"

// stopFlag is a poll-style cancellation signal.
//
// A single atomic load per check is much cheaper than a select on
// ctx.Done() in loops that spin millions of times per second. Safe for
// concurrent use; Trip may race with Tripped.
type stopFlag struct {
	tripped atomic.Bool
}

// Tripped returns true once the flag has been tripped.
func (s *stopFlag) Tripped() bool {
	return s.tripped.Load()
}

// Trip trips the flag. Safe to call multiple times.
func (s *stopFlag) Trip() {
	s.tripped.Store(true)
}
