package slice

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmix/source"
)

// ErrZeroStep indicates a slice step of zero.
var ErrZeroStep = errors.New("slice: step must not be zero")

// Option sets one slice bound.
type Option func(*bounds)

// bounds holds the requested, unresolved slice arguments. nil means omitted.
type bounds struct {
	start *int64
	stop  *int64
	step  int64
}

// WithStart sets the first index (negative counts from the end).
func WithStart(i int64) Option { return func(b *bounds) { b.start = &i } }

// WithStop sets the exclusive end index (negative counts from the end).
func WithStop(i int64) Option { return func(b *bounds) { b.stop = &i } }

// WithStep sets the stride; negative walks backwards. Default 1.
func WithStep(s int64) Option { return func(b *bounds) { b.step = s } }

// Slice is a resolved sub-range view over a parent source.
type Slice[T any] struct {
	parent source.RandomAccess[T]
	start  int64
	stop   int64
	step   int64
	size   source.Size
}

// New resolves the bounds against parent.Len() and returns the view. An
// unbounded parent is resolved as if it had math.MaxInt64 positions.
//
// Errors: ErrZeroStep.
func New[T any](parent source.RandomAccess[T], opts ...Option) (*Slice[T], error) {
	b := bounds{step: 1}
	for _, opt := range opts {
		opt(&b)
	}
	if b.step == 0 {
		return nil, ErrZeroStep
	}

	length := int64(math.MaxInt64)
	if n := parent.Len(); n.Bounded() {
		length = int64(n)
	}
	start, stop := resolve(b, length)

	return &Slice[T]{
		parent: parent,
		start:  start,
		stop:   stop,
		step:   b.step,
		size:   source.Size(count(start, stop, b.step)),
	}, nil
}

// Len returns the number of selected positions.
func (s *Slice[T]) Len() source.Size { return s.size }

// Bounds returns the resolved start, stop and step.
func (s *Slice[T]) Bounds() (start, stop, step int64) { return s.start, s.stop, s.step }

// At reads parent position start + (index mod Len())*step. Any index is
// accepted, including negative ones, as long as the slice is not empty.
//
// Errors: source.ErrOutOfRange on an empty slice; parent errors unchanged.
func (s *Slice[T]) At(index int64) (T, bool, error) {
	n := int64(s.size)
	if n == 0 {
		var zero T

		return zero, false, fmt.Errorf("%w: index %d into an empty slice", source.ErrOutOfRange, index)
	}
	m := index % n
	if m < 0 {
		m += n
	}

	return s.parent.At(s.start + m*s.step)
}

// resolve clamps the requested bounds into the parent's index space.
func resolve(b bounds, length int64) (start, stop int64) {
	lower, upper := int64(0), length
	if b.step < 0 {
		lower, upper = -1, length-1
	}
	start, stop = lower, upper
	if b.step < 0 {
		start, stop = upper, lower
	}
	if b.start != nil {
		start = clamp(*b.start, length, lower, upper)
	}
	if b.stop != nil {
		stop = clamp(*b.stop, length, lower, upper)
	}

	return start, stop
}

// clamp maps a possibly negative index into [lower, upper].
func clamp(i, length, lower, upper int64) int64 {
	if i < 0 {
		i += length
		if i < lower {
			return lower
		}

		return i
	}
	if i > upper {
		return upper
	}

	return i
}

// count returns the number of indices start, start+step, ... before stop.
func count(start, stop, step int64) int64 {
	if step > 0 {
		if start >= stop {
			return 0
		}

		return (stop-start-1)/step + 1
	}
	if stop >= start {
		return 0
	}

	return (start-stop-1)/(-step) + 1
}
