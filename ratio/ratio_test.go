package ratio_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmix/ratio"
)

// TestNormalize_Table checks the canonical integer vector for common weights.
func TestNormalize_Table(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		want    ratio.Vector
	}{
		{"quarters", []float64{0.75, 0.25}, ratio.Vector{3, 1}},
		{"integers", []float64{1, 2}, ratio.Vector{1, 2}},
		{"equal integers", []float64{2, 2}, ratio.Vector{1, 1}},
		{"equal floats", []float64{0.5, 0.5}, ratio.Vector{1, 1}},
		{"three sources", []float64{1, 2, 1}, ratio.Vector{1, 2, 1}},
		{"reducible", []float64{10, 20, 5}, ratio.Vector{2, 4, 1}},
		{"thirds", []float64{1.0 / 3, 2.0 / 3}, ratio.Vector{1, 2}},
		{"single", []float64{42}, ratio.Vector{1}},
		{"four to one", []float64{4, 1}, ratio.Vector{4, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ratio.Normalize(tt.weights, ratio.DefaultMaxDenominator)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestNormalize_ScaleInvariance verifies that scaling every weight by the same
// positive factor never changes the vector.
func TestNormalize_ScaleInvariance(t *testing.T) {
	bases := [][]float64{
		{1, 2, 3},
		{0.75, 0.25},
		{5, 3, 2, 7},
	}
	factors := []float64{1, 0.1, 3, 7, 1e-3, 1e6}
	for _, base := range bases {
		want, err := ratio.Normalize(base, ratio.DefaultMaxDenominator)
		require.NoError(t, err)
		for _, f := range factors {
			scaled := make([]float64, len(base))
			for i, w := range base {
				scaled[i] = w * f
			}
			got, err := ratio.Normalize(scaled, ratio.DefaultMaxDenominator)
			require.NoError(t, err)
			assert.Equal(t, want, got, "base %v scaled by %g", base, f)
		}
	}
}

// TestNormalize_InvalidWeights ensures every non-positive or non-finite weight
// is rejected with ErrInvalidWeight.
func TestNormalize_InvalidWeights(t *testing.T) {
	bad := [][]float64{
		{0, 1},
		{1, -2},
		{math.NaN(), 1},
		{1, math.Inf(1)},
		{math.Inf(-1)},
	}
	for _, w := range bad {
		_, err := ratio.Normalize(w, ratio.DefaultMaxDenominator)
		assert.ErrorIs(t, err, ratio.ErrInvalidWeight, "weights %v", w)
	}
}

// TestNormalize_Errors covers the remaining validation classes.
func TestNormalize_Errors(t *testing.T) {
	_, err := ratio.Normalize(nil, ratio.DefaultMaxDenominator)
	assert.ErrorIs(t, err, ratio.ErrNoWeights)

	_, err = ratio.Normalize([]float64{1}, 0)
	assert.ErrorIs(t, err, ratio.ErrBadDenominator)

	// 1e-9 relative to 1 rounds to 0/1 with denominators up to 10 000.
	_, err = ratio.Normalize([]float64{1, 1e-9}, ratio.DefaultMaxDenominator)
	assert.ErrorIs(t, err, ratio.ErrInvalidWeight)

	// Reciprocal primes: the LCM of the denominators exceeds int64.
	primes := []float64{9929, 9931, 9941, 9949, 9967, 9973}
	weights := make([]float64, len(primes))
	for i, p := range primes {
		weights[i] = 1 / p
	}
	_, err = ratio.Normalize(weights, ratio.DefaultMaxDenominator)
	assert.ErrorIs(t, err, ratio.ErrRatioOverflow)
}

// TestVector_Helpers checks CycleLength and Clone independence.
func TestVector_Helpers(t *testing.T) {
	v := ratio.Vector{3, 1, 2}
	assert.Equal(t, int64(6), v.CycleLength())

	c := v.Clone()
	c[0] = 99
	assert.Equal(t, int64(3), v[0], "Clone must not alias")
}

// TestLimitDenominator compares against well-known best approximations.
func TestLimitDenominator(t *testing.T) {
	pi := new(big.Rat).SetFloat64(math.Pi)

	assert.Equal(t, "22/7", ratio.LimitDenominator(pi, 10).RatString())
	assert.Equal(t, "355/113", ratio.LimitDenominator(pi, 1000).RatString())
	assert.Equal(t, "3", ratio.LimitDenominator(pi, 1).RatString())

	exact := big.NewRat(3, 4)
	got := ratio.LimitDenominator(exact, 4)
	assert.Equal(t, "3/4", got.RatString())
	assert.NotSame(t, exact, got, "result must be a copy")

	assert.Panics(t, func() { ratio.LimitDenominator(exact, 0) })
}

// TestApproximate checks the float64 convenience wrapper.
func TestApproximate(t *testing.T) {
	num, den, ok := ratio.Approximate(0.1, 10)
	require.True(t, ok)
	assert.Equal(t, int64(1), num)
	assert.Equal(t, int64(10), den)

	num, den, ok = ratio.Approximate(1.0/3, ratio.DefaultMaxDenominator)
	require.True(t, ok)
	assert.Equal(t, [2]int64{1, 3}, [2]int64{num, den})

	_, _, ok = ratio.Approximate(math.NaN(), 10)
	assert.False(t, ok)
}
