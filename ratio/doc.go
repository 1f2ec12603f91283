// Package ratio turns positive real weights into the smallest integer vector
// with the same proportions.
//
// Weights [0.75, 0.25] become [3, 1]; [2, 4, 6] become [1, 2, 3]. The result
// (a Vector) drives the cyclic schedule in package schedule: one cycle holds
// Vector[i] consecutive slots for source i.
//
// How it works:
//  1. Every weight must be finite and strictly positive (ErrInvalidWeight).
//  2. Each weight is divided by the largest weight, so w and c·w (c > 0)
//     produce the same quotients.
//  3. Each quotient is replaced by its best rational approximation whose
//     denominator does not exceed maxDenominator (continued fractions).
//  4. The fractions are scaled by the LCM of their denominators and the
//     result is divided by the GCD of its entries.
//
// Precision policy:
//
//	Exact and simply-rounded decimal weights (0.5, 0.75, 1/3 printed to
//	16 digits, small integers) round-trip to the intended ratio with the
//	DefaultMaxDenominator of 10 000. Weights whose ratio to the largest
//	weight needs a larger denominator are replaced by the closest fraction
//	whose denominator fits, so the mix is close but not exact. A weight
//	that approximates to zero relative to the largest one is rejected rather
//	than dropped, and a vector whose cycle length overflows int64 fails with
//	ErrRatioOverflow.
//
// All arithmetic past the initial float division is exact (math/big).
package ratio
