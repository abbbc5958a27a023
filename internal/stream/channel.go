package stream

// ChannelTransport wraps a buffered channel as a Transport.
//
// This is the standard library approach. Each Send/Recv performs a
// non-blocking channel operation via select with default.
type ChannelTransport struct {
	ch chan int64
}

// NewChannel creates a ChannelTransport with the specified buffer size.
func NewChannel(size int) *ChannelTransport {
	return &ChannelTransport{
		ch: make(chan int64, size),
	}
}

// Send adds a value. Returns false if the buffer is full.
func (c *ChannelTransport) Send(v int64) bool {
	select {
	case c.ch <- v:
		return true
	default:
		return false
	}
}

// Recv removes and returns a value. Returns false if empty.
func (c *ChannelTransport) Recv() (int64, bool) {
	select {
	case v := <-c.ch:
		return v, true
	default:
		return 0, false
	}
}

// Len returns the current number of buffered values.
func (c *ChannelTransport) Len() int {
	return len(c.ch)
}

// Cap returns the buffer capacity.
func (c *ChannelTransport) Cap() int {
	return cap(c.ch)
}
