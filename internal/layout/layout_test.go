package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevedwards/record-layout-benchmarks/internal/layout"
)

// expectedSum is Σ i for i in [0, n), i.e. n(n-1)/2.
func expectedSum(n int) int64 {
	return int64(n) * int64(n-1) / 2
}

// testLayout exercises the full Layout contract at one size.
func testLayout(t *testing.T, l layout.Layout, n int) {
	t.Helper()

	l.Build(n)
	require.Equal(t, n, l.Len(), "Len after Build(%d)", n)

	for i := 0; i < n; i++ {
		r := l.At(i)
		require.Equal(t, int64(i), r.Value, "record %d Value", i)
		require.Equal(t, int64(2*i), r.A, "record %d A", i)
		require.Equal(t, int64(3*i), r.B, "record %d B", i)
		require.Equal(t, int64(4*i), r.C, "record %d C", i)
		require.Equal(t, int64(5*i), r.D, "record %d D", i)
	}

	assert.Equal(t, expectedSum(n), l.Sum(), "Sum for n=%d", n)

	l.Release()
	assert.Equal(t, 0, l.Len(), "Len after Release")
}

func TestLayouts(t *testing.T) {
	for _, l := range layout.All() {
		t.Run(l.Name(), func(t *testing.T) {
			for _, n := range []int{0, 1, 5, 100, 1000} {
				testLayout(t, l, n)
			}
		})
	}
}

func TestLayouts_EmptyCollection(t *testing.T) {
	for _, l := range layout.All() {
		t.Run(l.Name(), func(t *testing.T) {
			l.Build(0)
			assert.Equal(t, 0, l.Len())
			assert.Equal(t, int64(0), l.Sum())
		})
	}
}

func TestLayouts_KnownSums(t *testing.T) {
	// Concrete values, independent of the expectedSum formula.
	cases := []struct {
		n    int
		want int64
	}{
		{0, 0},
		{5, 10},
		{100, 4950},
	}

	for _, l := range layout.All() {
		t.Run(l.Name(), func(t *testing.T) {
			for _, tc := range cases {
				l.Build(tc.n)
				assert.Equal(t, tc.want, l.Sum(), "n=%d", tc.n)
			}
		})
	}
}

// TestLayouts_Equivalence is the cross-strategy property: every layout
// must hold identical records for the same n.
func TestLayouts_Equivalence(t *testing.T) {
	const n = 1000

	all := layout.All()
	for _, l := range all {
		l.Build(n)
	}

	baseline := all[0]
	for _, l := range all[1:] {
		assert.Equal(t, baseline.Sum(), l.Sum(), "%s sum", l.Name())
	}
	for i := 0; i < n; i += 97 {
		want := baseline.At(i)
		for _, l := range all[1:] {
			assert.Equal(t, want, l.At(i), "%s record %d", l.Name(), i)
		}
	}
}

func TestLayouts_Rebuild(t *testing.T) {
	// Build must replace the previous collection, not extend it.
	for _, l := range layout.All() {
		t.Run(l.Name(), func(t *testing.T) {
			l.Build(100)
			l.Build(10)
			assert.Equal(t, 10, l.Len())
			assert.Equal(t, expectedSum(10), l.Sum())
		})
	}
}

func TestMakeRecord(t *testing.T) {
	r := layout.MakeRecord(7)
	assert.Equal(t, layout.Record{Value: 7, A: 14, B: 21, C: 28, D: 35}, r)
}

func TestByName(t *testing.T) {
	for _, name := range layout.Names() {
		l, ok := layout.ByName(name)
		require.True(t, ok, "ByName(%q)", name)
		assert.Equal(t, name, l.Name())
	}

	_, ok := layout.ByName("linked-list")
	assert.False(t, ok)
}

func TestNames_CanonicalOrder(t *testing.T) {
	assert.Equal(t, []string{
		"value-struct",
		"pointer-struct",
		"array",
		"nested-slice",
		"map",
		"boxed",
		"flat",
		"columnar",
	}, layout.Names())
}
