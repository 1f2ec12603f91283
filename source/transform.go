package source

// MapSource applies fn to every element of its parent.
type MapSource[T, U any] struct {
	parent RandomAccess[T]
	fn     func(T) U
}

// Map returns a view of parent with fn applied to each present element.
// Missing elements stay missing; fn is never called for them.
// Panics on nil fn.
func Map[T, U any](parent RandomAccess[T], fn func(T) U) *MapSource[T, U] {
	if fn == nil {
		panic("source: Map(nil)")
	}

	return &MapSource[T, U]{parent: parent, fn: fn}
}

// Len returns the parent's size.
func (m *MapSource[T, U]) Len() Size { return m.parent.Len() }

// At forwards to the parent and transforms the element, if any.
func (m *MapSource[T, U]) At(position int64) (U, bool, error) {
	var zero U
	v, ok, err := m.parent.At(position)
	if err != nil || !ok {
		return zero, false, err
	}

	return m.fn(v), true, nil
}

// FilterSource hides the parent elements rejected by a predicate.
type FilterSource[T any] struct {
	parent RandomAccess[T]
	keep   func(T) bool
}

// Filter returns a sparse view of parent: positions whose element fails keep
// report ok=false. The size is unchanged. Panics on nil keep.
func Filter[T any](parent RandomAccess[T], keep func(T) bool) *FilterSource[T] {
	if keep == nil {
		panic("source: Filter(nil)")
	}

	return &FilterSource[T]{parent: parent, keep: keep}
}

// Len returns the parent's size.
func (f *FilterSource[T]) Len() Size { return f.parent.Len() }

// At forwards to the parent and drops the element when keep rejects it.
func (f *FilterSource[T]) At(position int64) (T, bool, error) {
	var zero T
	v, ok, err := f.parent.At(position)
	if err != nil || !ok {
		return zero, false, err
	}
	if !f.keep(v) {
		return zero, false, nil
	}

	return v, true, nil
}
