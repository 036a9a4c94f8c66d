package sparse

import "iter"

type denseEntry[T any] struct {
	index int
	value T
}

// Set keeps its values densely packed while allowing sparsely populated
// indices. A paged Array maps each index to its position in the dense slice.
//
// Iteration order is the dense order: arbitrary, but stable until the next
// Insert of a new index or Remove. The set must not be mutated while one of
// its sequences is being ranged over.
type Set[T any] struct {
	sparse Array[int]
	dense  []denseEntry[T]
}

// Get returns a copy of the value at index.
func (s *Set[T]) Get(index int) (T, bool) {
	d, ok := s.sparse.Get(index)
	if !ok {
		var zero T
		return zero, false
	}
	return s.dense[d].value, true
}

// GetPtr returns a pointer to the value at index, or nil. The pointer is
// invalidated by the next Insert of a new index or Remove.
func (s *Set[T]) GetPtr(index int) *T {
	d, ok := s.sparse.Get(index)
	if !ok {
		return nil
	}
	return &s.dense[d].value
}

// Insert stores value at index. An existing value is overwritten in place
// and returned; otherwise the value is appended to the dense slice.
func (s *Set[T]) Insert(index int, value T) (T, bool) {
	if d, ok := s.sparse.Get(index); ok {
		prev := s.dense[d].value
		s.dense[d].value = value
		return prev, true
	}
	s.dense = append(s.dense, denseEntry[T]{index: index, value: value})
	s.sparse.Insert(index, len(s.dense)-1)
	var zero T
	return zero, false
}

// Remove swap-removes the value at index. The last dense entry takes the
// vacated position and its sparse pointer is rewritten to match.
func (s *Set[T]) Remove(index int) (T, bool) {
	d, ok := s.sparse.Remove(index)
	if !ok {
		var zero T
		return zero, false
	}

	removed := s.dense[d].value
	last := len(s.dense) - 1
	if d != last {
		s.dense[d] = s.dense[last]
		s.sparse.Insert(s.dense[d].index, d)
	}
	s.dense[last] = denseEntry[T]{}
	s.dense = s.dense[:last]
	return removed, true
}

// Contains reports whether index holds a value.
func (s *Set[T]) Contains(index int) bool {
	_, ok := s.sparse.Get(index)
	return ok
}

// Len returns the number of stored values.
func (s *Set[T]) Len() int {
	return len(s.dense)
}

// Clear drops every value. Allocated pages are kept.
func (s *Set[T]) Clear() {
	for _, entry := range s.dense {
		s.sparse.Remove(entry.index)
	}
	clear(s.dense)
	s.dense = s.dense[:0]
}

// Values yields copies of the stored values in dense order.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s.dense {
			if !yield(s.dense[i].value) {
				return
			}
		}
	}
}

// Pointers yields pointers into the dense slice.
func (s *Set[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range s.dense {
			if !yield(&s.dense[i].value) {
				return
			}
		}
	}
}

// All yields each sparse index with a copy of its value.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.dense {
			if !yield(s.dense[i].index, s.dense[i].value) {
				return
			}
		}
	}
}

// AllPointers yields each sparse index with a pointer to its value.
func (s *Set[T]) AllPointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range s.dense {
			if !yield(s.dense[i].index, &s.dense[i].value) {
				return
			}
		}
	}
}
