package source

import "fmt"

// RangeSource yields start, start+step, ... up to but excluding stop.
type RangeSource struct {
	start int64
	step  int64
	size  Size
}

// Range returns the arithmetic progression start, start+step, ... < stop
// (> stop for a negative step), with the same element count rules as a
// half-open integer range. A zero step is rejected with ErrInvalidStep.
//
// Complexity: O(1) time and space.
func Range(start, stop, step int64) (*RangeSource, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: Range(%d, %d, 0)", ErrInvalidStep, start, stop)
	}

	return &RangeSource{start: start, step: step, size: Size(rangeLen(start, stop, step))}, nil
}

// Len returns the number of values in the progression.
func (r *RangeSource) Len() Size { return r.size }

// At returns start + position*step. The result is never sparse.
func (r *RangeSource) At(position int64) (int64, bool, error) {
	if !r.size.Contains(position) {
		return 0, false, outOfRange(position, r.size)
	}

	return r.start + position*r.step, true, nil
}

// rangeLen counts the members of range(start, stop, step); step must be non-zero.
func rangeLen(start, stop, step int64) int64 {
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
