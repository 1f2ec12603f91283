package schedule

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvmix/ratio"
)

// Sentinel errors for the scheduler.
var (
	// ErrBadRatio indicates an empty vector, a non-positive entry, or a cycle
	// length that overflows int64.
	ErrBadRatio = errors.New("schedule: invalid ratio vector")

	// ErrShapeMismatch indicates per-source inputs whose count differs from
	// the number of scheduled sources.
	ErrShapeMismatch = errors.New("schedule: per-source input count mismatch")
)

// Scheduler tiles one weighted cycle over the position axis.
// It is immutable and safe for concurrent use.
type Scheduler struct {
	ratios ratio.Vector
	cum    []int64 // cum[i] = r[0] + ... + r[i-1]; len(cum) == len(ratios)+1
	cycle  int64
}

// New builds a Scheduler for v. The vector is copied.
//
// Complexity: O(n) time and space.
func New(v ratio.Vector) (*Scheduler, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadRatio)
	}
	cum := make([]int64, len(v)+1)
	for i, r := range v {
		if r <= 0 {
			return nil, fmt.Errorf("%w: ratio[%d] = %d", ErrBadRatio, i, r)
		}
		if cum[i] > math.MaxInt64-r {
			return nil, fmt.Errorf("%w: cycle length overflows int64", ErrBadRatio)
		}
		cum[i+1] = cum[i] + r
	}

	return &Scheduler{ratios: v.Clone(), cum: cum, cycle: cum[len(v)]}, nil
}

// Sources returns the number of scheduled sources.
func (s *Scheduler) Sources() int { return len(s.ratios) }

// CycleLength returns the number of slots in one cycle.
func (s *Scheduler) CycleLength() int64 { return s.cycle }

// Ratios returns a copy of the ratio vector.
func (s *Scheduler) Ratios() ratio.Vector { return s.ratios.Clone() }

// Locate returns the source scheduled at position and the position to read
// from that source. position must be non-negative.
//
// Complexity: O(log n) for n sources.
func (s *Scheduler) Locate(position int64) (source int, local int64) {
	return s.LocateCursor(s.CursorAt(position))
}

// LocateCursor is Locate for a position already split into cycle and offset.
func (s *Scheduler) LocateCursor(c Cursor) (source int, local int64) {
	source = s.slot(c.Offset)

	return source, c.Cycle*s.ratios[source] + c.Offset - s.cum[source]
}

// slot returns the unique i with cum[i] <= offset < cum[i+1].
func (s *Scheduler) slot(offset int64) int {
	return sort.Search(len(s.ratios), func(i int) bool { return s.cum[i+1] > offset })
}

// Visits returns how many of the first n positions are scheduled on source i.
// The per-source counts over any prefix sum to n.
func (s *Scheduler) Visits(i int, n int64) int64 {
	return s.CursorVisits(i, s.CursorAt(n))
}

// CursorVisits returns how many positions before c are scheduled on source i.
func (s *Scheduler) CursorVisits(i int, c Cursor) int64 {
	partial := c.Offset - s.cum[i]
	partial = max(0, min(partial, s.ratios[i]))

	return c.Cycle*s.ratios[i] + partial
}

// FirstPosition inverts Locate: it returns the mixed position at which
// source i is asked for local position local. ok is false if that position
// does not fit in int64.
func (s *Scheduler) FirstPosition(i int, local int64) (position int64, ok bool) {
	r := s.ratios[i]
	cycle, rank := local/r, local%r
	if cycle > (math.MaxInt64-s.cycle)/s.cycle {
		return 0, false
	}

	return cycle*s.cycle + s.cum[i] + rank, true
}
