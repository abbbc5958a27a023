package stream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/stevedwards/record-layout-benchmarks/internal/layout"
	"github.com/stevedwards/record-layout-benchmarks/internal/stream"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testTransport exercises the basic Transport contract.
func testTransport(t *testing.T, tr stream.Transport, name string) {
	t.Helper()

	// Empty transport returns false
	if _, ok := tr.Recv(); ok {
		t.Errorf("%s: expected Recv() = false on empty transport", name)
	}

	// Send succeeds
	if !tr.Send(42) {
		t.Errorf("%s: expected Send() = true", name)
	}

	// Recv returns sent value
	got, ok := tr.Recv()
	if !ok {
		t.Errorf("%s: expected Recv() = true after Send()", name)
	}
	if got != 42 {
		t.Errorf("%s: expected 42, got %d", name, got)
	}

	// Transport is empty again
	if _, ok := tr.Recv(); ok {
		t.Errorf("%s: expected Recv() = false after draining", name)
	}
}

func TestChannelTransport(t *testing.T) {
	testTransport(t, stream.NewChannel(8), "ChannelTransport")
}

func TestRingTransport(t *testing.T) {
	testTransport(t, stream.NewRing(8), "RingTransport")
}

func TestShardedTransport(t *testing.T) {
	tr, err := stream.NewSharded(8, 1)
	require.NoError(t, err)
	testTransport(t, tr, "ShardedTransport")
}

func TestChannelTransport_Full(t *testing.T) {
	tr := stream.NewChannel(2)
	assert.True(t, tr.Send(1))
	assert.True(t, tr.Send(2))
	assert.False(t, tr.Send(3), "expected Send = false on full transport")
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, 2, tr.Cap())
}

func TestRingTransport_Full(t *testing.T) {
	tr := stream.NewRing(2)
	assert.True(t, tr.Send(1))
	assert.True(t, tr.Send(2))
	assert.False(t, tr.Send(3), "expected Send = false on full transport")
}

func TestRingTransport_FIFO(t *testing.T) {
	tr := stream.NewRing(8)
	for i := int64(0); i < 5; i++ {
		require.True(t, tr.Send(i))
	}
	for i := int64(0); i < 5; i++ {
		got, ok := tr.Recv()
		require.True(t, ok)
		assert.Equal(t, i, got, "FIFO violation")
	}
}

func TestRingTransport_PowerOfTwo(t *testing.T) {
	assert.Equal(t, 8, stream.NewRing(5).Cap(), "size 5 rounds up to 8")
	assert.Equal(t, 8, stream.NewRing(8).Cap())
}

// transports returns a fresh instance of each transport under test.
func transports(t *testing.T) map[string]stream.Transport {
	t.Helper()
	sharded, err := stream.NewSharded(64, 1)
	require.NoError(t, err)
	return map[string]stream.Transport{
		"channel": stream.NewChannel(64),
		"ring":    stream.NewRing(64),
		"sharded": sharded,
	}
}

func TestPipeline_Sum(t *testing.T) {
	const n = 10_000
	want := int64(n) * int64(n-1) / 2

	src := layout.NewFlatSlice()
	src.Build(n)

	for name, tr := range transports(t) {
		t.Run(name, func(t *testing.T) {
			p := stream.New(tr)
			got, err := p.Sum(context.Background(), src)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestPipeline_Sum_Empty(t *testing.T) {
	src := layout.NewValueSlice()
	src.Build(0)

	for name, tr := range transports(t) {
		t.Run(name, func(t *testing.T) {
			p := stream.New(tr)
			got, err := p.Sum(context.Background(), src)
			require.NoError(t, err)
			assert.Equal(t, int64(0), got)
		})
	}
}

// TestPipeline_MatchesDirectSum is the equivalence property: streaming
// must agree with direct traversal for every layout.
func TestPipeline_MatchesDirectSum(t *testing.T) {
	const n = 2000

	for _, l := range layout.All() {
		t.Run(l.Name(), func(t *testing.T) {
			l.Build(n)
			p := stream.New(stream.NewRing(64))
			got, err := p.Sum(context.Background(), l)
			require.NoError(t, err)
			assert.Equal(t, l.Sum(), got)
		})
	}
}

func TestPipeline_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := layout.NewFlatSlice()
	src.Build(100_000)

	p := stream.New(stream.NewChannel(16))
	_, err := p.Sum(ctx, src)
	require.Error(t, err)
	if !errors.Is(err, context.Canceled) && !errors.Is(err, stream.ErrCanceled) {
		t.Errorf("expected cancellation error, got %v", err)
	}
}

func TestPipeline_Progress(t *testing.T) {
	const n = 50_000

	src := layout.NewFlatSlice()
	src.Build(n)

	var calls int
	var lastSent int
	p := stream.New(stream.NewRing(1024),
		stream.WithProgress(0, func(sent int) {
			calls++
			lastSent = sent
		}))

	got, err := p.Sum(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, int64(n)*int64(n-1)/2, got)
	assert.Greater(t, calls, 0, "progress callback should fire at interval 0")
	assert.LessOrEqual(t, lastSent, n)
	assert.Greater(t, lastSent, 0)
}

func TestPipeline_Reuse(t *testing.T) {
	// Back-to-back runs over the same transport must not interfere.
	src := layout.NewColumnar()
	src.Build(1000)

	p := stream.New(stream.NewRing(64))
	for i := 0; i < 3; i++ {
		got, err := p.Sum(context.Background(), src)
		require.NoError(t, err)
		assert.Equal(t, int64(499_500), got, "run %d", i)
	}
}

// TestRingTransport_SPSC_Valid tests the valid SPSC pattern: one
// producer goroutine, one consumer goroutine.
func TestRingTransport_SPSC_Valid(t *testing.T) {
	tr := stream.NewRing(64)
	const count = 10_000
	done := make(chan struct{})

	go func() {
		for i := int64(0); i < count; i++ {
			for !tr.Send(i) {
				// Spin until send succeeds
			}
		}
		close(done)
	}()

	var expected int64
	received := 0
	deadline := time.Now().Add(10 * time.Second)
	for received < count {
		if val, ok := tr.Recv(); ok {
			assert.Equal(t, expected, val, "FIFO violation")
			expected++
			received++
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out draining ring")
		}
	}

	<-done
}
