package source

import (
	"fmt"
	"math"
)

// RepeatSource replays its parent for a number of epochs.
type RepeatSource[T any] struct {
	parent    RandomAccess[T]
	parentLen Size
	size      Size
}

// Repeat exposes epochs back-to-back passes over parent; epochs <= 0 repeats
// forever. Position p reads parent position p mod parent.Len(). An unbounded
// parent is passed through unchanged (it has no second epoch). A finite
// parent with no elements is rejected with ErrEmptySource.
//
// The total size saturates to Unbounded if it does not fit in int64.
func Repeat[T any](parent RandomAccess[T], epochs int64) (*RepeatSource[T], error) {
	n := parent.Len()
	r := &RepeatSource[T]{parent: parent, parentLen: n, size: Unbounded}
	if !n.Bounded() {
		return r, nil
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: Repeat over an empty parent", ErrEmptySource)
	}
	if epochs > 0 && epochs <= math.MaxInt64/int64(n) {
		r.size = Size(epochs * int64(n))
	}

	return r, nil
}

// Len returns parent.Len()*epochs, or Unbounded.
func (r *RepeatSource[T]) Len() Size { return r.size }

// At reads the parent at position modulo the parent's size.
func (r *RepeatSource[T]) At(position int64) (T, bool, error) {
	if !r.size.Contains(position) {
		var zero T

		return zero, false, outOfRange(position, r.size)
	}
	if r.parentLen.Bounded() {
		position %= int64(r.parentLen)
	}

	return r.parent.At(position)
}
