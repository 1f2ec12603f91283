package source

// ValuesSource serves positions from an in-memory slice.
type ValuesSource[T any] struct {
	values []T
}

// FromSlice wraps values as a dense RandomAccess source. The slice is not
// copied; callers must not mutate it afterwards.
func FromSlice[T any](values []T) *ValuesSource[T] {
	return &ValuesSource[T]{values: values}
}

// Len returns len(values).
func (v *ValuesSource[T]) Len() Size { return Size(len(v.values)) }

// At returns values[position].
func (v *ValuesSource[T]) At(position int64) (T, bool, error) {
	if !v.Len().Contains(position) {
		var zero T

		return zero, false, outOfRange(position, v.Len())
	}

	return v.values[position], true, nil
}
