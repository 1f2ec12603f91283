// Package slice provides a strided sub-range view over a random-access source.
//
// Bounds follow the usual half-open slice rules, resolved once against the
// parent's size: negative indices count from the end, out-of-range bounds
// clamp, a negative step walks backwards, and a range that selects nothing
// has size 0. Omitted bounds default according to the step's sign.
//
//	parent = 0 1 2 3 4 5 6 7 8 9
//	New(parent)                                  -> 0 1 2 3 4 5 6 7 8 9
//	New(parent, WithStart(2), WithStop(8))       -> 2 3 4 5 6 7
//	New(parent, WithStep(-3))                    -> 9 6 3 0
//	New(parent, WithStart(-2))                   -> 8 9
//
// At(i) reads i modulo the slice size, so a slice keeps answering past its
// own end. This lets an epoch-repeating wrapper sit on top without the slice
// knowing about it. Sparse parent positions stay sparse.
package slice
