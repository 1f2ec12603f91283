package source

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors shared by every source in the module.
var (
	// ErrOutOfRange indicates a position outside the valid range of a source.
	ErrOutOfRange = errors.New("source: position out of range")

	// ErrExhausted indicates that a cursor has no more elements.
	ErrExhausted = errors.New("source: exhausted")

	// ErrStateMismatch indicates a checkpoint state that does not belong to the cursor.
	ErrStateMismatch = errors.New("source: state mismatch")

	// ErrInvalidStep indicates a zero step for Range.
	ErrInvalidStep = errors.New("source: step must not be zero")

	// ErrEmptySource indicates a transformation that needs at least one element.
	ErrEmptySource = errors.New("source: parent has no elements")
)

// Size is the number of positions a RandomAccess source exposes.
// Any negative value means the source is unbounded; use Unbounded to say so.
type Size int64

// Unbounded marks a source without a finite size.
const Unbounded Size = -1

// Bounded reports whether s is a finite count.
func (s Size) Bounded() bool { return s >= 0 }

// Contains reports whether position is a valid index for a source of size s.
func (s Size) Contains(position int64) bool {
	if position < 0 {
		return false
	}

	return !s.Bounded() || position < int64(s)
}

// String renders the size, spelling out the unbounded case.
func (s Size) String() string {
	if !s.Bounded() {
		return "unbounded"
	}

	return strconv.FormatInt(int64(s), 10)
}

// RandomAccess is a source addressable by position.
//
// Len must not change after construction. At returns ok=false for a valid
// position that holds no element; that is not an error.
type RandomAccess[T any] interface {
	Len() Size
	At(position int64) (value T, ok bool, err error)
}

// State is an opaque cursor checkpoint.
type State any

// Cursor pulls elements one by one and can export and restore its progress.
//
// Next returns ErrExhausted once nothing is left. A Cursor is not safe for
// concurrent use.
type Cursor[T any] interface {
	Next() (T, error)
	State() State
	SetState(state State) error
}

// Sequential is a source consumed through cursors.
type Sequential[T any] interface {
	Begin() Cursor[T]
}

// outOfRange wraps ErrOutOfRange with the offending position and size.
func outOfRange(position int64, size Size) error {
	return fmt.Errorf("%w: position %d, size %s", ErrOutOfRange, position, size)
}
