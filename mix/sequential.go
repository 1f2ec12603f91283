package mix

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvmix/ratio"
	"github.com/katalvlaran/lvmix/schedule"
	"github.com/katalvlaran/lvmix/source"
)

// Sequential is a proportional mix of sequential parents. The value itself
// holds no progress; every Begin returns an independent Cursor.
type Sequential[T any] struct {
	parents     []source.Sequential[T]
	weights     []float64
	sched       *schedule.Scheduler
	fingerprint uint64
	logger      *slog.Logger
}

// NewSequential mixes parents in the proportions given by WithWeights
// (equal by default).
//
// Errors: ErrNoSources, ErrArityMismatch, ErrInvalidWeight, ErrRatioOverflow.
func NewSequential[T any](parents []source.Sequential[T], opts ...Option) (*Sequential[T], error) {
	p, err := resolve(len(parents), opts)
	if err != nil {
		return nil, err
	}
	for i, parent := range parents {
		if parent == nil {
			return nil, fmt.Errorf("%w: parent %d is nil", ErrNoSources, i)
		}
	}
	fp, err := fingerprint(p.sched.Ratios())
	if err != nil {
		return nil, err
	}

	p.logger.Debug("mix: sequential ready",
		"sources", len(parents),
		"ratios", p.sched.Ratios(),
		"cycle", p.sched.CycleLength(),
	)

	return &Sequential[T]{
		parents:     append([]source.Sequential[T](nil), parents...),
		weights:     p.weights,
		sched:       p.sched,
		fingerprint: fp,
		logger:      p.logger,
	}, nil
}

// Begin implements source.Sequential.
func (s *Sequential[T]) Begin() source.Cursor[T] { return s.NewCursor() }

// NewCursor starts every parent and returns a cursor at the first slot.
func (s *Sequential[T]) NewCursor() *Cursor[T] {
	parents := make([]source.Cursor[T], len(s.parents))
	for i, p := range s.parents {
		parents[i] = p.Begin()
	}

	return &Cursor[T]{mix: s, parents: parents}
}

// Ratios returns the integer ratio vector driving the schedule.
func (s *Sequential[T]) Ratios() ratio.Vector { return s.sched.Ratios() }

// Weights returns a copy of the raw weights.
func (s *Sequential[T]) Weights() []float64 { return append([]float64(nil), s.weights...) }

// Cursor pulls a Sequential mix. It is not safe for concurrent use.
type Cursor[T any] struct {
	mix       *Sequential[T]
	parents   []source.Cursor[T]
	pos       schedule.Cursor
	exhausted bool
}

// Next pulls from the parent scheduled at the current slot.
//
// The first time a scheduled parent reports source.ErrExhausted the cursor
// latches: this and every later call return ErrExhausted, whatever the other
// parents still hold. Any other parent error is returned wrapped and leaves
// the cursor where it was.
func (c *Cursor[T]) Next() (T, error) {
	var zero T
	if c.exhausted {
		return zero, ErrExhausted
	}

	i, _ := c.mix.sched.LocateCursor(c.pos)
	v, err := c.parents[i].Next()
	switch {
	case errors.Is(err, source.ErrExhausted):
		c.exhausted = true
		c.mix.logger.Debug("mix: source exhausted",
			"source", i,
			"cycle", c.pos.Cycle,
			"offset", c.pos.Offset,
		)

		return zero, ErrExhausted
	case err != nil:
		return zero, fmt.Errorf("mix: source %d: %w", i, err)
	}
	c.pos = c.mix.sched.Advance(c.pos)

	return v, nil
}

// Exhausted reports whether the cursor has latched.
func (c *Cursor[T]) Exhausted() bool { return c.exhausted }

// Consumed returns how many elements have been pulled from parent i. It is
// derived from the schedule position, not tracked separately.
func (c *Cursor[T]) Consumed(i int) int64 { return c.mix.sched.CursorVisits(i, c.pos) }

// State implements source.Cursor; the returned value is a Checkpoint.
func (c *Cursor[T]) State() source.State { return c.Checkpoint() }

// Checkpoint snapshots the schedule position, every parent's own state and
// the exhausted latch.
func (c *Cursor[T]) Checkpoint() Checkpoint {
	parents := make([]source.State, len(c.parents))
	for i, p := range c.parents {
		parents[i] = p.State()
	}

	return Checkpoint{
		Schedule:    c.pos,
		Parents:     parents,
		Exhausted:   c.exhausted,
		Fingerprint: c.mix.fingerprint,
	}
}

// SetState implements source.Cursor. It accepts a Checkpoint (or a non-nil
// *Checkpoint) exported by a cursor of an identically configured mix.
//
// The restore is all or nothing: a checkpoint of the wrong shape is
// rejected before anything changes, and if a parent refuses its state the
// parents already restored are rolled back. Both cases return
// ErrCheckpointMismatch.
func (c *Cursor[T]) SetState(state source.State) error {
	var cp Checkpoint
	switch s := state.(type) {
	case Checkpoint:
		cp = s
	case *Checkpoint:
		if s == nil {
			return fmt.Errorf("%w: nil checkpoint", ErrCheckpointMismatch)
		}
		cp = *s
	default:
		return fmt.Errorf("%w: want Checkpoint, got %T", ErrCheckpointMismatch, state)
	}
	if err := c.check(cp); err != nil {
		return err
	}

	saved := make([]source.State, len(c.parents))
	for i, p := range c.parents {
		saved[i] = p.State()
	}
	for i, p := range c.parents {
		if err := p.SetState(cp.Parents[i]); err != nil {
			for j := 0; j <= i; j++ {
				_ = c.parents[j].SetState(saved[j])
			}

			return fmt.Errorf("%w: source %d: %w", ErrCheckpointMismatch, i, err)
		}
	}
	c.pos = cp.Schedule
	c.exhausted = cp.Exhausted

	c.mix.logger.Debug("mix: checkpoint restored",
		"cycle", cp.Schedule.Cycle,
		"offset", cp.Schedule.Offset,
		"exhausted", cp.Exhausted,
	)

	return nil
}

// check validates the shape of cp against this cursor.
func (c *Cursor[T]) check(cp Checkpoint) error {
	if len(cp.Parents) != len(c.parents) {
		return fmt.Errorf("%w: %d parent states for %d sources", ErrCheckpointMismatch, len(cp.Parents), len(c.parents))
	}
	if cp.Fingerprint != c.mix.fingerprint {
		return fmt.Errorf("%w: exported by a mix with different ratios", ErrCheckpointMismatch)
	}
	if !c.mix.sched.Valid(cp.Schedule) {
		return fmt.Errorf("%w: schedule position %+v outside cycle of %d",
			ErrCheckpointMismatch, cp.Schedule, c.mix.sched.CycleLength())
	}

	return nil
}
