package stream

import "sync/atomic"

// RingTransport is a lock-free SPSC ring buffer of field values.
//
// WARNING: NOT safe for multiple producers or multiple consumers.
// Runtime guards panic if the SPSC contract is violated; that catches
// bugs early at the cost of one extra atomic per operation.
type RingTransport struct {
	buf  []int64
	mask uint64

	// Cache line padding to prevent false sharing
	_pad0 [56]byte //nolint:unused

	head atomic.Uint64 // Written by producer, read by consumer

	_pad1 [56]byte //nolint:unused

	tail atomic.Uint64 // Written by consumer, read by producer

	_pad2 [56]byte //nolint:unused

	// SPSC guards: detect concurrent misuse
	sendActive atomic.Uint32
	recvActive atomic.Uint32
}

// NewRing creates a RingTransport with the specified size.
// Size is rounded up to the next power of 2.
func NewRing(size int) *RingTransport {
	n := uint64(1)
	for n < uint64(size) {
		n <<= 1
	}

	return &RingTransport{
		buf:  make([]int64, n),
		mask: n - 1,
	}
}

// Send adds a value. Returns false if the ring is full.
//
// SPSC CONTRACT: only ONE goroutine may call Send.
func (r *RingTransport) Send(v int64) bool {
	if !r.sendActive.CompareAndSwap(0, 1) {
		panic("stream: concurrent Send on SPSC RingTransport - only one producer allowed")
	}
	defer r.sendActive.Store(0)

	head := r.head.Load()
	tail := r.tail.Load()

	if head-tail >= uint64(len(r.buf)) {
		return false
	}

	r.buf[head&r.mask] = v
	r.head.Store(head + 1)

	return true
}

// Recv removes and returns a value. Returns false if the ring is empty.
//
// SPSC CONTRACT: only ONE goroutine may call Recv.
func (r *RingTransport) Recv() (int64, bool) {
	if !r.recvActive.CompareAndSwap(0, 1) {
		panic("stream: concurrent Recv on SPSC RingTransport - only one consumer allowed")
	}
	defer r.recvActive.Store(0)

	tail := r.tail.Load()
	head := r.head.Load()

	if tail >= head {
		return 0, false
	}

	v := r.buf[tail&r.mask]
	r.tail.Store(tail + 1)

	return v, true
}

// Len returns the current number of buffered values.
// This is an approximation and may be slightly stale.
func (r *RingTransport) Len() int {
	return int(r.head.Load() - r.tail.Load())
}

// Cap returns the ring capacity.
func (r *RingTransport) Cap() int {
	return len(r.buf)
}
