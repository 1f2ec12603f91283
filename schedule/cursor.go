package schedule

import "math"

// Cursor is a position split into a cycle index and an offset inside the
// cycle. Sequential mixing advances a Cursor instead of a flat position so
// that streams longer than int64 positions keep a well-defined schedule.
type Cursor struct {
	Cycle  int64
	Offset int64
}

// CursorAt splits position into a Cursor.
func (s *Scheduler) CursorAt(position int64) Cursor {
	return Cursor{Cycle: position / s.cycle, Offset: position % s.cycle}
}

// Advance returns the cursor one slot after c.
func (s *Scheduler) Advance(c Cursor) Cursor {
	c.Offset++
	if c.Offset == s.cycle {
		c.Cycle++
		c.Offset = 0
	}

	return c
}

// Valid reports whether c can have been produced by this scheduler.
func (s *Scheduler) Valid(c Cursor) bool {
	return c.Cycle >= 0 && c.Offset >= 0 && c.Offset < s.cycle
}

// Position flattens c back into a position. ok is false on overflow.
func (s *Scheduler) Position(c Cursor) (position int64, ok bool) {
	if c.Cycle > (math.MaxInt64-c.Offset)/s.cycle {
		return 0, false
	}

	return c.Cycle*s.cycle + c.Offset, true
}
