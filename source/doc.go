// Package source defines the two capability shapes every lvmix data provider
// exposes, plus a handful of small providers and transformations built on them.
//
// 🚀 Two shapes, no hierarchy:
//
//	RandomAccess[T] - a size (finite or Unbounded) and At(position).
//	                  At may report "no element" (ok=false) for a valid
//	                  position; such a source is called sparse.
//	Sequential[T]   - Begin() hands out a Cursor[T] that is pulled with
//	                  Next() and checkpointed with State()/SetState().
//
// A cursor's State is opaque. Consumers (the mix package in particular) only
// carry it around and hand it back; they never look inside.
//
// ✨ Providers and transformations:
//   - Range(start, stop, step) - arithmetic progression of int64 values
//   - FromSlice(values)        - random access over an in-memory slice
//   - Map(parent, fn)          - element transformation, sparsity preserved
//   - Filter(parent, pred)     - sparse view hiding rejected elements
//   - Repeat(parent, epochs)   - epoch repetition (epochs <= 0: forever)
//   - ToSequential(parent)     - position-order cursor; State is the next Position
//
// ⚙️ Usage:
//
//	evens, _ := source.Range(0, 10, 2)
//	cur := source.ToSequential[int64](evens).Begin()
//	for {
//		v, err := cur.Next()
//		if errors.Is(err, source.ErrExhausted) {
//			break
//		}
//		fmt.Println(v)
//	}
//
// Errors:
//
//	ErrOutOfRange    - position outside [0, Len()).
//	ErrExhausted     - a cursor has nothing left to yield.
//	ErrStateMismatch - SetState got a state the cursor cannot restore.
//	ErrInvalidStep   - Range with step == 0.
//	ErrEmptySource   - Repeat over a parent with no elements.
package source
