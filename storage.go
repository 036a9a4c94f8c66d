package depot

import (
	"iter"

	"github.com/TheBitDrifter/depot/sparse"
	"github.com/TheBitDrifter/table"
)

// erasedComponents lets the world manage component storages without knowing
// their component type.
type erasedComponents interface {
	elementType() table.ElementType
	removeEntity(index uint32) bool
	containsEntity(index uint32) bool
	len() int
}

var _ erasedComponents = &ComponentStorage[struct{}]{}

// ComponentStorage holds every component of type C, keyed by entity index.
type ComponentStorage[C any] struct {
	set sparse.Set[C]
}

// UniqueStorage holds the single value of a unique type.
type UniqueStorage[T any] struct {
	value T
}

func (s *ComponentStorage[C]) insert(e EntityID, c C) (C, bool) {
	return s.set.Insert(int(e.index), c)
}

func (s *ComponentStorage[C]) remove(e EntityID) (C, bool) {
	return s.set.Remove(int(e.index))
}

func (s *ComponentStorage[C]) get(e EntityID) (C, bool) {
	return s.set.Get(int(e.index))
}

func (s *ComponentStorage[C]) getPtr(e EntityID) *C {
	return s.set.GetPtr(int(e.index))
}

func (s *ComponentStorage[C]) contains(e EntityID) bool {
	return s.set.Contains(int(e.index))
}

func (s *ComponentStorage[C]) values() iter.Seq[C] {
	return s.set.Values()
}

func (s *ComponentStorage[C]) pointers() iter.Seq[*C] {
	return s.set.Pointers()
}

// withIndices yields the entity index that owns each component.
func (s *ComponentStorage[C]) withIndices() iter.Seq2[uint32, C] {
	return func(yield func(uint32, C) bool) {
		for index, c := range s.set.All() {
			if !yield(uint32(index), c) {
				return
			}
		}
	}
}

func (s *ComponentStorage[C]) withIndicesMut() iter.Seq2[uint32, *C] {
	return func(yield func(uint32, *C) bool) {
		for index, c := range s.set.AllPointers() {
			if !yield(uint32(index), c) {
				return
			}
		}
	}
}

func (s *ComponentStorage[C]) elementType() table.ElementType {
	return elementTypeFor[C]()
}

func (s *ComponentStorage[C]) containsEntity(index uint32) bool {
	return s.set.Contains(int(index))
}

func (s *ComponentStorage[C]) removeEntity(index uint32) bool {
	_, ok := s.set.Remove(int(index))
	return ok
}

func (s *ComponentStorage[C]) len() int {
	return s.set.Len()
}
