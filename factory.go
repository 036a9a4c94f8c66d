package depot

type factory struct{}

var Factory factory

func (f factory) NewWorld(opts ...Option) *World {
	return newWorld(opts...)
}

func (f factory) NewFilter() Filter {
	return newFilter()
}

func (f factory) NewCursor(node FilterNode, w *World) *Cursor {
	return newCursor(node, w)
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{Component: newComponent[T]()}
}
