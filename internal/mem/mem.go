// Package mem measures the heap cost of a single function call.
//
// Measurement brackets the call with a forced GC and a
// runtime.ReadMemStats snapshot on each side, so the deltas reflect the
// call rather than earlier garbage. The numbers are approximate: other
// goroutines, GC pacing, and allocator slack all leak into them. Treat
// them as comparative, not absolute.
package mem

import (
	"fmt"
	"runtime"
)

// Usage reports the heap deltas attributable to one measured call.
type Usage struct {
	// Allocated is the total bytes allocated during the call,
	// including memory that was garbage by the end of it.
	Allocated uint64

	// Retained is the live heap growth still held after the call
	// (measured after a forced GC).
	Retained uint64

	// Objects is the growth in live heap object count after the call.
	Objects uint64
}

// Measure runs f and reports its heap cost.
//
// The caller is the only interesting allocator during f; concurrent
// allocation elsewhere will be misattributed.
func Measure(f func()) Usage {
	var before, after runtime.MemStats

	runtime.GC()
	runtime.ReadMemStats(&before)

	f()

	runtime.GC()
	runtime.ReadMemStats(&after)

	return Usage{
		Allocated: after.TotalAlloc - before.TotalAlloc,
		Retained:  sub(after.HeapAlloc, before.HeapAlloc),
		Objects:   sub(after.HeapObjects, before.HeapObjects),
	}
}

// sub clamps at zero; a call can free more than it allocates.
func sub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}

// FormatBytes renders n in a human unit (B, KiB, MiB, GiB).
func FormatBytes(n uint64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.2f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
