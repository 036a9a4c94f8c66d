package depot

import (
	"fmt"
	"reflect"
)

// cell holds one erased storage together with its borrow state.
// borrows > 0 counts shared borrows, -1 marks an exclusive one.
type cell struct {
	typ     reflect.Type
	value   any
	borrows int
	owner   *storageMap

	// Set for component storages only.
	components erasedComponents
	bit        uint32
}

func (c *cell) acquire(mut bool) error {
	if mut {
		if c.borrows != 0 {
			return BorrowMutError{Type: c.typ}
		}
		c.borrows = -1
	} else {
		if c.borrows < 0 {
			return BorrowError{Type: c.typ}
		}
		c.borrows++
	}
	c.owner.active++
	return nil
}

func (c *cell) release(mut bool) {
	if mut {
		c.borrows = 0
	} else {
		c.borrows--
	}
	c.owner.active--
}

// storageMap owns one storage per type. Storages are never replaced once
// inserted, only mutated through borrows.
type storageMap struct {
	cells  map[reflect.Type]*cell
	order  []*cell
	active int

	// onInsert runs once for every newly registered cell.
	onInsert func(*cell)
}

func (m *storageMap) lookup(t reflect.Type) (*cell, bool) {
	c, ok := m.cells[t]
	return c, ok
}

func (m *storageMap) add(t reflect.Type, value any) *cell {
	if m.cells == nil {
		m.cells = make(map[reflect.Type]*cell)
	}
	c := &cell{typ: t, value: value, owner: m}
	m.cells[t] = c
	m.order = append(m.order, c)
	if m.onInsert != nil {
		m.onInsert(c)
	}
	return c
}

// each visits cells in registration order.
func (m *storageMap) each(fn func(*cell) bool) {
	for _, c := range m.order {
		if !fn(c) {
			return
		}
	}
}

// insertStorage registers storage under its own type. The first insertion
// wins; later ones report false and leave the map untouched.
func insertStorage[S any](m *storageMap, storage *S) bool {
	t := reflect.TypeFor[S]()
	if _, ok := m.lookup(t); ok {
		return false
	}
	m.add(t, storage)
	return true
}

func getOrInsert[S any](m *storageMap) *cell {
	t := reflect.TypeFor[S]()
	if c, ok := m.lookup(t); ok {
		return c
	}
	return m.add(t, new(S))
}

// guard grants shared or exclusive access to one storage until released.
type guard[S any] struct {
	c     *cell
	value *S
	mut   bool
}

func (g *guard[S]) release() {
	if g.c == nil {
		return
	}
	g.c.release(g.mut)
	g.c = nil
	g.value = nil
}

func (g *guard[S]) held() bool {
	return g.c != nil
}

func borrowCell[S any](c *cell, mut bool) (guard[S], error) {
	if err := c.acquire(mut); err != nil {
		return guard[S]{}, err
	}
	value, ok := c.value.(*S)
	if !ok {
		c.release(mut)
		panic(fmt.Sprintf("depot: storage %v holds %T", c.typ, c.value))
	}
	return guard[S]{c: c, value: value, mut: mut}, nil
}

func borrowRef[S any](m *storageMap) (guard[S], error) {
	c, ok := m.lookup(reflect.TypeFor[S]())
	if !ok {
		return guard[S]{}, StorageMissingError{Type: reflect.TypeFor[S]()}
	}
	return borrowCell[S](c, false)
}

func borrowMut[S any](m *storageMap) (guard[S], error) {
	c, ok := m.lookup(reflect.TypeFor[S]())
	if !ok {
		return guard[S]{}, StorageMissingError{Type: reflect.TypeFor[S]()}
	}
	return borrowCell[S](c, true)
}

func borrowRefOrInsert[S any](m *storageMap) (guard[S], error) {
	return borrowCell[S](getOrInsert[S](m), false)
}

func borrowMutOrInsert[S any](m *storageMap) (guard[S], error) {
	return borrowCell[S](getOrInsert[S](m), true)
}
