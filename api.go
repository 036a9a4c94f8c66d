package depot

import (
	"iter"
)

// Query is a borrowed view over a World. Borrow fills the receiver and
// acquires its borrows; Release gives them back and is safe to call twice.
//
// Caller-defined queries implement Query on a pointer receiver, usually by
// composing DataRef, DataMut or the component and unique views.
type Query interface {
	Borrow(w *World) error
	Release()
}

type Filter interface {
	FilterNode
	And(items ...any) FilterNode
	Or(items ...any) FilterNode
	Not(items ...any) FilterNode
}

type FilterNode interface {
	Evaluate(e EntityID, w *World) bool
}

type iCursor interface {
	Entities() iter.Seq[EntityID]
	Next() bool
}

type Cursor struct {
	// The filter entities must satisfy
	filter FilterNode

	// The world to iterate over
	world *World

	// Snapshot taken on first use
	matched     []EntityID
	position    int
	current     EntityID
	initialized bool
}
