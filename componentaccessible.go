package depot

// AccessibleComponent extends a base Component with typed lookups for the
// entity under a cursor. Lookups go through a borrowed view, so the usual
// borrow rules apply.
type AccessibleComponent[T any] struct {
	Component
}

// GetFromCursor retrieves the component of the entity at the cursor position
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor, view *CompMut[T]) *T {
	ptr, _ := view.GetMut(cursor.Entity())
	return ptr
}

// GetFromCursorSafe retrieves the component, reporting whether the entity at
// the cursor position carries one
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor, view *CompMut[T]) (bool, *T) {
	ptr, err := view.GetMut(cursor.Entity())
	if err != nil {
		return false, nil
	}
	return true, ptr
}

// CheckCursor determines if the entity at the cursor position carries the component
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	return Has[T](cursor.world, cursor.Entity())
}

// GetFromEntity returns a copy of the component of entity
func (c AccessibleComponent[T]) GetFromEntity(view *Comp[T], entity EntityID) (T, error) {
	return view.Get(entity)
}
