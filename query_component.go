package depot

import (
	"iter"
	"reflect"
)

var (
	_ Query = &Comp[struct{}]{}
	_ Query = &CompMut[struct{}]{}
)

// componentView holds the read side shared by Comp and CompMut.
type componentView[C any] struct {
	w *World
	g guard[ComponentStorage[C]]
}

// Comp is a shared view of every component of type C. The storage is
// created on first use.
type Comp[C any] struct {
	componentView[C]
}

// CompMut is an exclusive view of every component of type C. The storage is
// created on first use.
type CompMut[C any] struct {
	componentView[C]
}

func (q *Comp[C]) Borrow(w *World) error {
	g, err := borrowRefOrInsert[ComponentStorage[C]](&w.components)
	if err != nil {
		return err
	}
	q.w, q.g = w, g
	return nil
}

func (q *CompMut[C]) Borrow(w *World) error {
	g, err := borrowMutOrInsert[ComponentStorage[C]](&w.components)
	if err != nil {
		return err
	}
	q.w, q.g = w, g
	return nil
}

func (v *componentView[C]) Release() {
	v.g.release()
}

func (v *componentView[C]) storage() *ComponentStorage[C] {
	if !v.g.held() {
		panic("depot: use of a released component query")
	}
	return v.g.value
}

// Get returns the component of e. A stale handle fails with EntityDeadError
// before the storage is consulted.
func (v *componentView[C]) Get(e EntityID) (C, error) {
	var zero C
	sto := v.storage()
	if !v.w.entities.isAlive(e) {
		return zero, EntityDeadError{Entity: e}
	}
	c, ok := sto.get(e)
	if !ok {
		return zero, EntityMissingError{Entity: e, Type: reflect.TypeFor[C]()}
	}
	return c, nil
}

func (v *componentView[C]) Contains(e EntityID) bool {
	return v.w.entities.isAlive(e) && v.storage().contains(e)
}

func (v *componentView[C]) Len() int {
	return v.storage().len()
}

// Values yields every component in dense order.
func (v *componentView[C]) Values() iter.Seq[C] {
	return v.storage().values()
}

// All yields every component with the entity that owns it.
func (v *componentView[C]) All() iter.Seq2[EntityID, C] {
	sto := v.storage()
	return func(yield func(EntityID, C) bool) {
		for index, c := range sto.withIndices() {
			e, ok := v.w.entities.current(index)
			if !ok {
				continue
			}
			if !yield(e, c) {
				return
			}
		}
	}
}

// GetMut returns a pointer to the component of e. The pointer is valid until
// the next Insert of a new entity or Remove on this view.
func (q *CompMut[C]) GetMut(e EntityID) (*C, error) {
	sto := q.storage()
	if !q.w.entities.isAlive(e) {
		return nil, EntityDeadError{Entity: e}
	}
	c := sto.getPtr(e)
	if c == nil {
		return nil, EntityMissingError{Entity: e, Type: reflect.TypeFor[C]()}
	}
	return c, nil
}

// Insert attaches c to e and returns the component it replaced, if any.
func (q *CompMut[C]) Insert(e EntityID, c C) (prev C, replaced bool, err error) {
	sto := q.storage()
	if !q.w.entities.isAlive(e) {
		return prev, false, EntityDeadError{Entity: e}
	}
	prev, replaced = sto.insert(e, c)
	if !replaced {
		q.w.markComponent(e, q.g.c.bit)
	}
	return prev, replaced, nil
}

// Remove detaches and returns the component of e.
func (q *CompMut[C]) Remove(e EntityID) (C, error) {
	var zero C
	sto := q.storage()
	if !q.w.entities.isAlive(e) {
		return zero, EntityDeadError{Entity: e}
	}
	c, ok := sto.remove(e)
	if !ok {
		return zero, EntityMissingError{Entity: e, Type: reflect.TypeFor[C]()}
	}
	q.w.unmarkComponent(e, q.g.c.bit)
	return c, nil
}

// Pointers yields a pointer to every component in dense order.
func (q *CompMut[C]) Pointers() iter.Seq[*C] {
	return q.storage().pointers()
}

func (q *CompMut[C]) AllMut() iter.Seq2[EntityID, *C] {
	sto := q.storage()
	return func(yield func(EntityID, *C) bool) {
		for index, c := range sto.withIndicesMut() {
			e, ok := q.w.entities.current(index)
			if !ok {
				continue
			}
			if !yield(e, c) {
				return
			}
		}
	}
}
