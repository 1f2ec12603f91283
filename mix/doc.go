// Package mix combines several sources into one, drawing from each in a fixed
// proportion, deterministically.
//
// 🚀 What it does
//
//	Given sources S0..Sn-1 and weights w0..wn-1, the mixed source cycles
//	through the sources so that over every full cycle source i contributes
//	exactly r[i] elements, where r is the minimal integer vector proportional
//	to w (see package ratio). Nothing is sampled at random: the same inputs
//	always give the same order.
//
//	evens = 0 2 4 6 8, odds = 1 3 5 7 9, weights [0.75, 0.25] (r = [3, 1])
//	mixed = 0 2 4 1 6 8
//
// ✨ Two compositions, one schedule
//
//   - RandomAccess mixes source.RandomAccess parents. At(p) is a pure
//     function of p; Len is computed once so that no position reads past the
//     end of a parent.
//   - Sequential mixes source.Sequential parents. Its Cursor pulls from the
//     parent scheduled next and stops for good (ErrExhausted) the first time
//     that parent runs dry, even if other parents still hold elements. Its
//     State is a Checkpoint that restores the exact remaining tail.
//
// Both shapes are themselves sources, so mixes nest.
//
// ⚙️ Options
//
//	WithWeights(w...)       - proportions, default: all equal
//	WithMaxDenominator(d)   - precision of float weights (ratio.DefaultMaxDenominator)
//	WithLogger(l)           - slog logger for Debug records, default: discarded
//
// Concurrency:
//
//	RandomAccess is immutable and safe for concurrent At calls whenever its
//	parents are. A Cursor is not: one caller at a time, and State/SetState
//	must not overlap Next.
//
// Errors:
//
//	ErrNoSources          - no parents, or a nil parent.
//	ErrInvalidWeight      - a weight that is not finite and > 0.
//	ErrArityMismatch      - weight count differs from parent count.
//	ErrRatioOverflow      - weights whose integer ratio overflows int64.
//	ErrOutOfRange         - RandomAccess.At outside [0, Len()).
//	ErrExhausted          - Cursor.Next after the mix ended (sticky).
//	ErrCheckpointMismatch - SetState with a checkpoint of another shape.
package mix
