// Package bench provides a small repeated-timing harness for the
// command-line benchmarks.
//
// The Go testing package's B harness is the right tool under `go test
// -bench`; this package covers the interactive path, where a run is
// repeated a fixed number of times and reported as mean ± standard
// deviation. Numbers vary by machine and are not contractual; only the
// arithmetic here is tested.
package bench

import (
	"fmt"
	"math"
	"time"
)

// Result holds the timing statistics for one measured function.
type Result struct {
	Name    string
	Repeats int
	Ops     int // operations per repeat, for per-op derivation
	Mean    time.Duration
	Stddev  time.Duration
	Min     time.Duration
	Max     time.Duration
}

// Measure runs f repeats times and collects wall-clock statistics.
//
// ops is the number of logical operations one call to f performs (e.g.
// records built); it only affects NsPerOp. One untimed warmup call runs
// first so cold-start effects (page faults, heap growth) land outside
// the measurement.
func Measure(name string, repeats, ops int, f func()) Result {
	if repeats < 1 {
		repeats = 1
	}

	f() // warmup

	durations := make([]time.Duration, repeats)
	for i := range durations {
		start := time.Now()
		f()
		durations[i] = time.Since(start)
	}

	return summarize(name, ops, durations)
}

func summarize(name string, ops int, durations []time.Duration) Result {
	r := Result{
		Name:    name,
		Repeats: len(durations),
		Ops:     ops,
		Min:     durations[0],
		Max:     durations[0],
	}

	var total time.Duration
	for _, d := range durations {
		total += d
		if d < r.Min {
			r.Min = d
		}
		if d > r.Max {
			r.Max = d
		}
	}
	r.Mean = total / time.Duration(len(durations))

	// Sample standard deviation; zero for a single repeat.
	if len(durations) > 1 {
		var sq float64
		mean := float64(r.Mean)
		for _, d := range durations {
			diff := float64(d) - mean
			sq += diff * diff
		}
		r.Stddev = time.Duration(math.Sqrt(sq / float64(len(durations)-1)))
	}

	return r
}

// NsPerOp returns the mean duration divided across the operations of
// one repeat.
func (r Result) NsPerOp() float64 {
	if r.Ops <= 0 {
		return float64(r.Mean.Nanoseconds())
	}
	return float64(r.Mean.Nanoseconds()) / float64(r.Ops)
}

// String formats the result as "mean ± stddev (n=repeats)".
func (r Result) String() string {
	return fmt.Sprintf("%v ± %v (n=%d)", r.Mean.Round(time.Microsecond),
		r.Stddev.Round(time.Microsecond), r.Repeats)
}
