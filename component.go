package depot

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/table"
)

// elementTypes caches the schema element of each component type. The table
// package numbers element types globally, so each Go type is minted once.
var elementTypes sync.Map

// Component identifies a component type in filters and cursors.
type Component struct {
	typ reflect.Type
	key reflect.Type
}

func newComponent[T any]() Component {
	return Component{
		typ: reflect.TypeFor[T](),
		key: reflect.TypeFor[ComponentStorage[T]](),
	}
}

func (c Component) Type() reflect.Type {
	return c.typ
}

func (c Component) String() string {
	if c.typ == nil {
		return "<nil>"
	}
	return c.typ.String()
}

// filterComponent lets filters accept Component and AccessibleComponent alike.
func (c Component) filterComponent() Component {
	return c
}

// elementTypeFor returns the schema element of C.
func elementTypeFor[C any]() table.ElementType {
	typ := reflect.TypeFor[C]()
	if elem, ok := elementTypes.Load(typ); ok {
		return elem.(table.ElementType)
	}
	elem, _ := elementTypes.LoadOrStore(typ, table.FactoryNewElementType[C]())
	return elem.(table.ElementType)
}
