package mix

import (
	"fmt"

	"github.com/katalvlaran/lvmix/ratio"
	"github.com/katalvlaran/lvmix/schedule"
	"github.com/katalvlaran/lvmix/source"
)

// RandomAccess is a proportional mix of random-access parents.
// It is immutable after construction.
type RandomAccess[T any] struct {
	parents []source.RandomAccess[T]
	weights []float64
	sched   *schedule.Scheduler
	size    source.Size
}

// NewRandomAccess mixes parents in the proportions given by WithWeights
// (equal by default).
//
// The mixed size is fixed here: the largest prefix of the schedule that
// stays inside every finite parent (see schedule.MixedSize), or Unbounded if
// all parents are unbounded.
//
// Errors: ErrNoSources, ErrArityMismatch, ErrInvalidWeight, ErrRatioOverflow.
func NewRandomAccess[T any](parents []source.RandomAccess[T], opts ...Option) (*RandomAccess[T], error) {
	p, err := resolve(len(parents), opts)
	if err != nil {
		return nil, err
	}
	sizes := make([]source.Size, len(parents))
	for i, parent := range parents {
		if parent == nil {
			return nil, fmt.Errorf("%w: parent %d is nil", ErrNoSources, i)
		}
		sizes[i] = parent.Len()
	}
	size, err := schedule.MixedSize(sizes, p.weights, p.sched)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("mix: random access ready",
		"sources", len(parents),
		"ratios", p.sched.Ratios(),
		"cycle", p.sched.CycleLength(),
		"size", size.String(),
	)

	return &RandomAccess[T]{
		parents: append([]source.RandomAccess[T](nil), parents...),
		weights: p.weights,
		sched:   p.sched,
		size:    size,
	}, nil
}

// Len returns the mixed size computed at construction.
func (m *RandomAccess[T]) Len() source.Size { return m.size }

// At returns the element scheduled at position. A parent's "no element"
// answer is returned as is; the mix never skips or retries.
//
// Errors: ErrOutOfRange for position < 0 or position >= Len(); parent errors
// are returned wrapped with the parent index.
func (m *RandomAccess[T]) At(position int64) (T, bool, error) {
	if !m.size.Contains(position) {
		var zero T

		return zero, false, fmt.Errorf("%w: position %d, size %s", ErrOutOfRange, position, m.size)
	}
	i, local := m.sched.Locate(position)
	v, ok, err := m.parents[i].At(local)
	if err != nil {
		return v, false, fmt.Errorf("mix: source %d at %d: %w", i, local, err)
	}

	return v, ok, nil
}

// Ratios returns the integer ratio vector driving the schedule.
func (m *RandomAccess[T]) Ratios() ratio.Vector { return m.sched.Ratios() }

// Weights returns a copy of the raw weights.
func (m *RandomAccess[T]) Weights() []float64 { return append([]float64(nil), m.weights...) }
