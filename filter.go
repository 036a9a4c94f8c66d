package depot

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type filterComponent interface {
	filterComponent() Component
}

type compositeNode struct {
	op         Operation
	children   []FilterNode
	components []Component
}

type filter struct {
	root FilterNode
}

func newFilter() Filter {
	return &filter{}
}

func newCompositeNode(op Operation, components []Component) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   make([]FilterNode, 0),
		components: components,
	}
}

// nodeMask builds the node's mask at evaluation time. Types whose bit does
// not fit in a mask are returned as overflow and checked against their
// storage. missing reports whether any component has never been stored in w.
func (n *compositeNode) nodeMask(w *World) (nodeMask mask.Mask, overflow []*cell, missing bool) {
	for _, comp := range n.components {
		c, ok := w.componentCell(comp.key)
		if !ok {
			missing = true
			continue
		}
		if c.bit >= mask.MaxBits {
			overflow = append(overflow, c)
			continue
		}
		nodeMask.Mark(c.bit)
	}
	return nodeMask, overflow, missing
}

func (n *compositeNode) Evaluate(e EntityID, w *World) bool {
	signature := w.signature(e)
	nodeMask, overflow, missing := n.nodeMask(w)

	switch n.op {
	case OpAnd:
		// No entity can carry a component type the world has never stored
		if missing || !signature.ContainsAll(nodeMask) {
			return false
		}
		for _, c := range overflow {
			if !c.components.containsEntity(e.index) {
				return false
			}
		}
		for _, child := range n.children {
			if !child.Evaluate(e, w) {
				return false
			}
		}
		return true

	case OpOr:
		if signature.ContainsAny(nodeMask) {
			return true
		}
		for _, c := range overflow {
			if c.components.containsEntity(e.index) {
				return true
			}
		}
		for _, child := range n.children {
			if child.Evaluate(e, w) {
				return true
			}
		}
		return false

	case OpNot:
		// Types never stored are absent from every entity, so an empty
		// mask leaves the node satisfied
		if signature.ContainsAny(nodeMask) {
			return false
		}
		for _, c := range overflow {
			if c.components.containsEntity(e.index) {
				return false
			}
		}
		for _, child := range n.children {
			if child.Evaluate(e, w) {
				return false
			}
		}
		return true
	}
	return false
}

func (f *filter) And(items ...any) FilterNode {
	return f.node(OpAnd, items)
}

func (f *filter) Or(items ...any) FilterNode {
	return f.node(OpOr, items)
}

func (f *filter) Not(items ...any) FilterNode {
	return f.node(OpNot, items)
}

func (f *filter) node(op Operation, items []any) FilterNode {
	components, children := f.processItems(items...)
	node := newCompositeNode(op, components)
	node.children = children
	if f.root == nil {
		f.root = node
	}
	return node
}

func (f *filter) processItems(items ...any) ([]Component, []FilterNode) {
	components := make([]Component, 0)
	children := make([]FilterNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case filterComponent:
			components = append(components, v.filterComponent())
		case []Component:
			components = append(components, v...)
		case FilterNode:
			children = append(children, v)
		}
	}

	return components, children
}

// Evaluate evaluates the first node built from this filter.
func (f *filter) Evaluate(e EntityID, w *World) bool {
	if f.root == nil {
		return false
	}
	return f.root.Evaluate(e, w)
}

// Matches reports whether e is alive and satisfies node.
func (w *World) Matches(node FilterNode, e EntityID) bool {
	return w.entities.isAlive(e) && node.Evaluate(e, w)
}
