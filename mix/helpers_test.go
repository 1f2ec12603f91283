package mix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmix/source"
)

// errBoom is a transient parent failure used by the failure-path tests.
var errBoom = errors.New("boom")

// maxDrain caps drain so a broken latch cannot hang the suite.
const maxDrain = 10_000

// mustRange builds a Range source or fails the test.
func mustRange(t testing.TB, start, stop, step int64) *source.RangeSource {
	t.Helper()
	r, err := source.Range(start, stop, step)
	require.NoError(t, err)

	return r
}

// mustRepeat builds a Repeat source or fails the test.
func mustRepeat(t testing.TB, parent source.RandomAccess[int64], epochs int64) *source.RepeatSource[int64] {
	t.Helper()
	r, err := source.Repeat(parent, epochs)
	require.NoError(t, err)

	return r
}

// evensOdds returns the two reference sources 0 2 4 6 8 and 1 3 5 7 9.
func evensOdds(t testing.TB) (evens, odds *source.RangeSource) {
	return mustRange(t, 0, 10, 2), mustRange(t, 1, 10, 2)
}

// seq adapts random-access sources to sequential ones.
func seq(parents ...source.RandomAccess[int64]) []source.Sequential[int64] {
	out := make([]source.Sequential[int64], len(parents))
	for i, p := range parents {
		out[i] = source.ToSequential(p)
	}

	return out
}

// ra widens concrete sources to the interface slice the constructors take.
func ra(parents ...source.RandomAccess[int64]) []source.RandomAccess[int64] { return parents }

// collect reads every position of m, failing on errors and sparse slots.
func collect(t testing.TB, m source.RandomAccess[int64]) []int64 {
	t.Helper()
	n := m.Len()
	require.True(t, n.Bounded(), "collect needs a bounded source")
	out := make([]int64, 0, int64(n))
	for p := int64(0); p < int64(n); p++ {
		v, ok, err := m.At(p)
		require.NoError(t, err)
		require.True(t, ok, "position %d is sparse", p)
		out = append(out, v)
	}

	return out
}

// drain pulls c until ErrExhausted and returns everything it yielded.
func drain(t testing.TB, c source.Cursor[int64]) []int64 {
	t.Helper()
	var out []int64
	for i := 0; i < maxDrain; i++ {
		v, err := c.Next()
		if errors.Is(err, source.ErrExhausted) {
			return out
		}
		require.NoError(t, err)
		out = append(out, v)
	}
	t.Fatalf("cursor did not exhaust within %d pulls", maxDrain)

	return nil
}

// take pulls exactly n elements from c.
func take(t testing.TB, c source.Cursor[int64], n int) []int64 {
	t.Helper()
	out := make([]int64, n)
	for i := range out {
		v, err := c.Next()
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

// brokenSource fails every At call.
type brokenSource struct{}

func (brokenSource) Len() source.Size { return 3 }

func (brokenSource) At(int64) (int64, bool, error) { return 0, false, errBoom }

// flakySequential wraps a parent whose cursors fail once, on pull number failAt.
type flakySequential struct {
	inner  source.Sequential[int64]
	failAt int
}

func (f flakySequential) Begin() source.Cursor[int64] {
	return &flakyCursor{inner: f.inner.Begin(), failAt: f.failAt}
}

type flakyCursor struct {
	inner  source.Cursor[int64]
	pulls  int
	failAt int
	failed bool
}

func (f *flakyCursor) Next() (int64, error) {
	if !f.failed && f.pulls == f.failAt {
		f.failed = true

		return 0, errBoom
	}
	f.pulls++

	return f.inner.Next()
}

func (f *flakyCursor) State() source.State { return f.inner.State() }

func (f *flakyCursor) SetState(s source.State) error { return f.inner.SetState(s) }
