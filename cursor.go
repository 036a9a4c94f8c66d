package depot

import (
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ iCursor = &Cursor{}

func newCursor(node FilterNode, w *World) *Cursor {
	return &Cursor{
		filter: node,
		world:  w,
	}
}

// Next advances to the next matching entity. Entities despawned after the
// cursor took its snapshot are skipped.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.position < len(c.matched) {
		e := c.matched[c.position]
		c.position++
		if c.world.IsAlive(e) {
			c.current = e
			return true
		}
	}
	c.Reset()
	return false
}

// Entity returns the entity the cursor currently points at.
func (c *Cursor) Entity() EntityID {
	return c.current
}

func (c *Cursor) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		defer c.Reset()
		for c.Next() {
			if !yield(c.current) {
				return
			}
		}
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.matched = iter_util.Collect(c.matching())
	c.position = 0
	c.initialized = true
}

func (c *Cursor) matching() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for e := range c.world.Entities() {
			if !c.filter.Evaluate(e, c.world) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (c *Cursor) Reset() {
	c.position = 0
	c.current = EntityID{}
	c.matched = nil
	c.initialized = false
}

func (c *Cursor) RemainingMatched() int {
	if !c.initialized {
		c.initialize()
	}
	return len(c.matched) - c.position
}

func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	return len(c.matched)
}
