package stream_test

import (
	"context"
	"testing"

	"github.com/stevedwards/record-layout-benchmarks/internal/layout"
	"github.com/stevedwards/record-layout-benchmarks/internal/stream"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt64 int64
var sinkBool bool

// ============================================================================
// Raw transport benchmarks (send + recv per iteration, single goroutine)
// ============================================================================

func benchmarkTransport(b *testing.B, tr stream.Transport) {
	b.ReportAllocs()
	b.ResetTimer()

	var val int64
	var ok bool
	for i := 0; i < b.N; i++ {
		tr.Send(int64(i))
		val, ok = tr.Recv()
	}
	sinkInt64 = val
	sinkBool = ok
}

func BenchmarkTransport_Channel(b *testing.B) {
	benchmarkTransport(b, stream.NewChannel(1024))
}

func BenchmarkTransport_Ring(b *testing.B) {
	benchmarkTransport(b, stream.NewRing(1024))
}

func BenchmarkTransport_Sharded(b *testing.B) {
	tr, err := stream.NewSharded(1024, 1)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkTransport(b, tr)
}

// ============================================================================
// Pipeline benchmarks (producer + consumer goroutines, full collection)
// ============================================================================

const pipeN = 100_000

func benchmarkPipeline(b *testing.B, mk func() stream.Transport) {
	src := layout.NewFlatSlice()
	src.Build(pipeN)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var total int64
	for i := 0; i < b.N; i++ {
		p := stream.New(mk())
		sum, err := p.Sum(ctx, src)
		if err != nil {
			b.Fatal(err)
		}
		total = sum
	}
	sinkInt64 = total
}

func BenchmarkPipeline_Channel(b *testing.B) {
	benchmarkPipeline(b, func() stream.Transport { return stream.NewChannel(1024) })
}

func BenchmarkPipeline_Ring(b *testing.B) {
	benchmarkPipeline(b, func() stream.Transport { return stream.NewRing(1024) })
}

func BenchmarkPipeline_Sharded(b *testing.B) {
	benchmarkPipeline(b, func() stream.Transport {
		tr, err := stream.NewSharded(1024, 1)
		if err != nil {
			b.Fatal(err)
		}
		return tr
	})
}

// BenchmarkPipeline_vs_DirectSum is the overhead reference: the same
// collection summed without any handoff.
func BenchmarkPipeline_vs_DirectSum(b *testing.B) {
	src := layout.NewFlatSlice()
	src.Build(pipeN)

	b.ReportAllocs()
	b.ResetTimer()

	var total int64
	for i := 0; i < b.N; i++ {
		total = src.Sum()
	}
	sinkInt64 = total
}
