package schedule

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmix/source"
)

// MixedSize returns the number of positions a random-access mix can expose.
//
// Using the raw weights w: for every finite source q_i = size_i / w_i,
// k = min q_i, and the size is floor(k · sum(w)). Unbounded sources add no
// constraint; if every source is unbounded the mix is unbounded too.
//
// Because w may only approximate the scheduler's integer ratios, the result
// is additionally capped at the first position that would read past the end
// of a finite source, so every position below the returned size resolves to
// an in-range element.
//
// sizes and weights must both have s.Sources() entries (ErrShapeMismatch).
func MixedSize(sizes []source.Size, weights []float64, s *Scheduler) (source.Size, error) {
	if len(sizes) != s.Sources() || len(weights) != s.Sources() {
		return 0, fmt.Errorf("%w: %d sizes, %d weights, %d sources",
			ErrShapeMismatch, len(sizes), len(weights), s.Sources())
	}

	k := math.Inf(1)
	var total float64
	for i, n := range sizes {
		total += weights[i]
		if n.Bounded() {
			k = math.Min(k, float64(n)/weights[i])
		}
	}
	if math.IsInf(k, 1) {
		return source.Unbounded, nil
	}

	size := int64(math.MaxInt64)
	if est := math.Floor(k * total); est < math.MaxInt64 {
		size = int64(est)
	}
	for i, n := range sizes {
		if !n.Bounded() {
			continue
		}
		if limit, ok := s.FirstPosition(i, int64(n)); ok && limit < size {
			size = limit
		}
	}

	return source.Size(size), nil
}
