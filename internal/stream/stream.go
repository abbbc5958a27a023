// Package stream sums a record collection through a producer/consumer
// pipeline instead of a direct traversal.
//
// A producer goroutine walks the collection and pushes the designated
// field of each record through a Transport; a consumer goroutine pops
// and sums. The result must equal Layout.Sum for the same collection,
// whatever the transport; the interesting measurement is how much the
// handoff costs on top of the traversal.
//
// Transports are single-producer single-consumer. The hot loops poll an
// atomic stop flag rather than selecting on ctx.Done(), which keeps the
// per-item overhead to a single atomic load.
package stream

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stevedwards/record-layout-benchmarks/internal/layout"
)

// ErrCanceled is returned when a pipeline run is stopped before every
// record has been consumed.
var ErrCanceled = errors.New("stream: pipeline canceled")

// Transport moves field values from the producer to the consumer.
//
// Implementations are non-blocking: Send returns false if full,
// Recv returns false if empty. Exactly one goroutine may call Send and
// exactly one may call Recv.
type Transport interface {
	// Send adds a value. Returns false if the transport is full.
	Send(v int64) bool

	// Recv removes and returns a value. Returns false if empty.
	Recv() (int64, bool)
}

// progressEvery is how many sends pass between clock checks when a
// progress callback is installed.
const progressEvery = 1024

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithProgress installs a callback invoked at most once per interval
// with the number of records sent so far. The clock is only checked
// every progressEvery sends, so the callback adds no per-item overhead.
func WithProgress(interval time.Duration, fn func(sent int)) Option {
	return func(p *Pipeline) {
		p.progressInterval = interval
		p.progress = fn
	}
}

// Pipeline streams one collection at a time through a Transport.
//
// The transport must be empty when Sum is called; a run that returns an
// error may leave values behind, so use a fresh transport per run.
type Pipeline struct {
	transport        Transport
	progress         func(sent int)
	progressInterval time.Duration
}

// New creates a Pipeline over the given transport.
func New(t Transport, opts ...Option) *Pipeline {
	p := &Pipeline{transport: t}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Sum streams every record's Value field through the transport and
// returns the total.
//
// Three goroutines run: producer, consumer, and a context watcher that
// trips the stop flag, so the hot loops never touch the context.
func (p *Pipeline) Sum(ctx context.Context, src layout.Layout) (int64, error) {
	n := src.Len()

	var stop stopFlag
	finished := make(chan struct{})

	var g errgroup.Group
	var total int64

	// Watcher: translate context cancellation into the polled flag.
	g.Go(func() error {
		select {
		case <-ctx.Done():
			stop.Trip()
			return ctx.Err()
		case <-finished:
			return nil
		}
	})

	// Producer
	g.Go(func() error {
		var th *throttle
		if p.progress != nil {
			th = newThrottle(p.progressInterval, progressEvery)
		}
		for i := 0; i < n; i++ {
			for !p.transport.Send(src.At(i).Value) {
				if stop.Tripped() {
					return ErrCanceled
				}
			}
			if th != nil && th.ready() {
				p.progress(i + 1)
			}
		}
		return nil
	})

	// Consumer
	g.Go(func() error {
		received := 0
		for received < n {
			v, ok := p.transport.Recv()
			if !ok {
				if stop.Tripped() {
					return ErrCanceled
				}
				continue
			}
			total += v
			received++
		}
		close(finished)
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}
