package ratio

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// DefaultMaxDenominator bounds the denominators used to approximate weight
// ratios. See the package documentation for the precision policy.
const DefaultMaxDenominator int64 = 10_000

// Sentinel errors for weight normalization.
var (
	// ErrInvalidWeight indicates a zero, negative, NaN or infinite weight, or one
	// too small relative to the largest weight to be represented.
	ErrInvalidWeight = errors.New("ratio: invalid weight")

	// ErrNoWeights indicates an empty weight vector.
	ErrNoWeights = errors.New("ratio: no weights")

	// ErrRatioOverflow indicates that the integer vector does not fit in int64.
	ErrRatioOverflow = errors.New("ratio: cycle length overflows int64")

	// ErrBadDenominator indicates a maximum denominator below 1.
	ErrBadDenominator = errors.New("ratio: max denominator must be >= 1")
)

// Vector is a minimal integer ratio: every entry is positive and the entries
// share no common divisor greater than one.
type Vector []int64

// CycleLength returns the sum of the entries.
func (v Vector) CycleLength() int64 {
	var sum int64
	for _, r := range v {
		sum += r
	}

	return sum
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Validate checks that weights is non-empty and every entry is finite and > 0.
func Validate(weights []float64) error {
	if len(weights) == 0 {
		return ErrNoWeights
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return fmt.Errorf("%w: weights[%d] = %g", ErrInvalidWeight, i, w)
		}
	}

	return nil
}

// Normalize returns the minimal integer Vector proportional to weights.
//
// Errors: ErrNoWeights, ErrInvalidWeight, ErrBadDenominator, ErrRatioOverflow.
// Complexity: O(n) big-number operations for n weights.
func Normalize(weights []float64, maxDenominator int64) (Vector, error) {
	if maxDenominator < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDenominator, maxDenominator)
	}
	if err := Validate(weights); err != nil {
		return nil, err
	}

	largest := weights[0]
	for _, w := range weights[1:] {
		largest = math.Max(largest, w)
	}

	fracs := make([]*big.Rat, len(weights))
	lcm := big.NewInt(1)
	for i, w := range weights {
		f := LimitDenominator(new(big.Rat).SetFloat64(w/largest), maxDenominator)
		if f.Sign() == 0 {
			return nil, fmt.Errorf("%w: weights[%d] = %g vanishes next to %g at max denominator %d",
				ErrInvalidWeight, i, w, largest, maxDenominator)
		}
		fracs[i] = f
		lcm = lcmInt(lcm, f.Denom())
	}

	ints := make([]*big.Int, len(fracs))
	gcd := new(big.Int)
	for i, f := range fracs {
		// f = num/den, so f*lcm = num*(lcm/den) is an integer.
		n := new(big.Int).Quo(lcm, f.Denom())
		n.Mul(n, f.Num())
		ints[i] = n
		gcd.GCD(nil, nil, gcd, n)
	}

	out := make(Vector, len(ints))
	sum := new(big.Int)
	for i, n := range ints {
		n.Quo(n, gcd)
		sum.Add(sum, n)
		out[i] = n.Int64()
	}
	if !sum.IsInt64() {
		return nil, fmt.Errorf("%w: sum %s", ErrRatioOverflow, sum)
	}

	return out, nil
}

// LimitDenominator returns the fraction closest to x among those whose
// denominator is at most maxDenominator. x is returned unchanged (as a copy)
// when its own denominator already fits. Panics if maxDenominator < 1.
//
// Ties go to the last continued-fraction convergent.
func LimitDenominator(x *big.Rat, maxDenominator int64) *big.Rat {
	if maxDenominator < 1 {
		panic("ratio: LimitDenominator with maxDenominator < 1")
	}
	limit := big.NewInt(maxDenominator)
	if x.Denom().Cmp(limit) <= 0 {
		return new(big.Rat).Set(x)
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(x.Num())
	d := new(big.Int).Set(x.Denom())
	a, q2, tmp := new(big.Int), new(big.Int), new(big.Int)
	for {
		a.Div(n, d)
		q2.Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(limit) > 0 {
			break
		}
		// (p0, q0, p1, q1) = (p1, q1, p0 + a*p1, q2)
		tmp.Mul(a, p1)
		tmp.Add(tmp, p0)
		p0, p1 = p1, new(big.Int).Set(tmp)
		q0, q1 = q1, new(big.Int).Set(q2)
		// (n, d) = (d, n - a*d)
		tmp.Mul(a, d)
		tmp.Sub(n, tmp)
		n, d = d, new(big.Int).Set(tmp)
	}

	k := new(big.Int).Sub(limit, q0)
	k.Div(k, q1)
	semi := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	conv := new(big.Rat).SetFrac(p1, q1)

	if distance(conv, x).Cmp(distance(semi, x)) <= 0 {
		return conv
	}

	return semi
}

// Approximate is LimitDenominator for a float64, returning numerator and
// denominator. It reports ok=false for NaN, infinities and results that do
// not fit in int64.
func Approximate(x float64, maxDenominator int64) (num, den int64, ok bool) {
	r := new(big.Rat)
	if r.SetFloat64(x) == nil {
		return 0, 0, false
	}
	r = LimitDenominator(r, maxDenominator)
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return 0, 0, false
	}

	return r.Num().Int64(), r.Denom().Int64(), true
}

// distance returns |a - b|.
func distance(a, b *big.Rat) *big.Rat {
	d := new(big.Rat).Sub(a, b)

	return d.Abs(d)
}

// lcmInt returns the least common multiple of two positive integers.
func lcmInt(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	out := new(big.Int).Quo(a, g)

	return out.Mul(out, b)
}
