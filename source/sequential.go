package source

import "fmt"

// Position is the State exported by cursors created with ToSequential:
// the next parent position to read.
type Position int64

// PositionalSource turns a RandomAccess source into a Sequential one.
type PositionalSource[T any] struct {
	parent RandomAccess[T]
}

// ToSequential adapts parent to the Sequential shape. Cursors walk positions
// 0, 1, 2, ... and skip sparse positions, so Next only ever returns present
// elements. A bounded parent is exhausted after its last position; an
// unbounded one never is.
func ToSequential[T any](parent RandomAccess[T]) *PositionalSource[T] {
	return &PositionalSource[T]{parent: parent}
}

// Begin returns a cursor positioned before the first element.
func (s *PositionalSource[T]) Begin() Cursor[T] {
	return &PositionCursor[T]{parent: s.parent, size: s.parent.Len()}
}

// PositionCursor walks a RandomAccess source in position order.
type PositionCursor[T any] struct {
	parent RandomAccess[T]
	size   Size
	next   int64
}

// Next returns the element at the next non-sparse position.
// A parent error leaves the cursor on the failing position.
func (c *PositionCursor[T]) Next() (T, error) {
	var zero T
	for {
		if c.size.Bounded() && c.next >= int64(c.size) {
			return zero, ErrExhausted
		}
		v, ok, err := c.parent.At(c.next)
		if err != nil {
			return zero, err
		}
		c.next++
		if ok {
			return v, nil
		}
	}
}

// State returns the next position as a Position.
func (c *PositionCursor[T]) State() State { return Position(c.next) }

// SetState restores a Position previously returned by State.
func (c *PositionCursor[T]) SetState(state State) error {
	p, ok := state.(Position)
	if !ok {
		return fmt.Errorf("%w: want Position, got %T", ErrStateMismatch, state)
	}
	if p < 0 || (c.size.Bounded() && int64(p) > int64(c.size)) {
		return fmt.Errorf("%w: position %d outside [0, %s]", ErrStateMismatch, p, c.size)
	}
	c.next = int64(p)

	return nil
}
