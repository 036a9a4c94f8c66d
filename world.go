package depot

import (
	"fmt"
	"iter"
	"log/slog"
	"reflect"

	"github.com/TheBitDrifter/depot/sparse"
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	"github.com/google/uuid"
)

// World owns the entity table and every component, unique and data storage.
// A World is not safe for concurrent use.
type World struct {
	id     uuid.UUID
	opts   Options
	logger *slog.Logger

	entities   entities
	schema     table.Schema
	signatures sparse.Array[mask.Mask]
	nextBit    uint32

	components storageMap
	uniques    storageMap
	data       storageMap

	opQueue opQueue
}

func newWorld(opts ...Option) *World {
	w := &World{
		id:      uuid.New(),
		logger:  Config.logger,
		schema:  table.Factory.NewSchema(),
		opQueue: newOpQueue(),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.entities = newEntities(w.opts.EntityCapacity, w.opts.EntityLimit)
	w.components.onInsert = w.registerComponent
	w.uniques.onInsert = w.registerUnique

	w.logger = w.logger.With("world_id", w.id.String())
	if w.opts.Name != "" {
		w.logger = w.logger.With("world", w.opts.Name)
	}
	w.logger.Debug("world created", "entity_limit", w.entities.limit)
	return w
}

func (w *World) registerComponent(c *cell) {
	erased, ok := c.value.(erasedComponents)
	if !ok {
		return
	}
	elem := erased.elementType()
	w.schema.Register(elem)
	c.components = erased

	// Bits are per world. Types past the mask width have no bit and are
	// looked up in their storage instead.
	c.bit = w.nextBit
	w.nextBit++
	w.logger.Debug("component storage registered",
		"type", c.typ.String(),
		"bit", c.bit,
		"signature", c.bit < mask.MaxBits,
		"size", elem.Size(),
	)
}

func (w *World) registerUnique(c *cell) {
	w.logger.Debug("unique registered", "type", c.typ.String())
}

// ID returns the session id assigned when the world was created.
func (w *World) ID() uuid.UUID {
	return w.id
}

func (w *World) Spawn() (EntityID, error) {
	return w.entities.alloc()
}

// Despawn removes every component of e and invalidates the handle. Each
// storage holding e is borrowed exclusively first; if any of them is already
// borrowed the call fails and nothing changes.
func (w *World) Despawn(e EntityID) error {
	if !w.entities.isAlive(e) {
		return DeadEntityError{Entity: e}
	}

	sig, _ := w.signatures.Get(int(e.index))
	var held []*cell
	var err error
	w.components.each(func(c *cell) bool {
		if c.components == nil || !carries(c, sig, e) {
			return true
		}
		if err = c.acquire(true); err != nil {
			return false
		}
		held = append(held, c)
		return true
	})
	if err != nil {
		for _, c := range held {
			c.release(true)
		}
		return fmt.Errorf("failed to despawn %v: %w", e, err)
	}

	for _, c := range held {
		c.components.removeEntity(e.index)
		c.release(true)
	}
	w.signatures.Remove(int(e.index))

	retired, err := w.entities.dealloc(e)
	if err != nil {
		return err
	}
	if retired {
		w.logger.Debug("entity slot retired", "index", e.index)
	}
	return nil
}

func (w *World) IsAlive(e EntityID) bool {
	return w.entities.isAlive(e)
}

// Entities yields every alive handle in ascending index order.
func (w *World) Entities() iter.Seq[EntityID] {
	return w.entities.all()
}

// Len returns the number of alive entities.
func (w *World) Len() int {
	return w.entities.len()
}

// Retired returns the number of entity slots whose version saturated. Those
// indices are never handed out again.
func (w *World) Retired() int {
	return w.entities.retired
}

// Locked reports whether any storage or the world data is currently borrowed.
func (w *World) Locked() bool {
	return w.components.active+w.uniques.active+w.data.active > 0
}

func (w *World) markComponent(e EntityID, bit uint32) {
	if bit >= mask.MaxBits {
		return
	}
	sig, _ := w.signatures.Get(int(e.index))
	sig.Mark(bit)
	w.signatures.Insert(int(e.index), sig)
}

func (w *World) unmarkComponent(e EntityID, bit uint32) {
	if bit >= mask.MaxBits {
		return
	}
	sig, ok := w.signatures.Get(int(e.index))
	if !ok {
		return
	}
	sig.Unmark(bit)
	w.signatures.Insert(int(e.index), sig)
}

func (w *World) signature(e EntityID) mask.Mask {
	sig, _ := w.signatures.Get(int(e.index))
	return sig
}

// componentCell returns the cell of a registered component storage.
func (w *World) componentCell(key reflect.Type) (*cell, bool) {
	c, ok := w.components.lookup(key)
	if !ok || c.components == nil {
		return nil, false
	}
	return c, true
}

// carries reports whether the entity with signature sig has a component in
// the storage of c.
func carries(c *cell, sig mask.Mask, e EntityID) bool {
	if c.bit >= mask.MaxBits {
		return c.components.containsEntity(e.index)
	}
	return sig.Contains(c.bit)
}

// Insert attaches c to e, replacing any previous component of the same type.
func Insert[C any](w *World, e EntityID, c C) error {
	q, err := Borrow[CompMut[C]](w)
	if err != nil {
		return err
	}
	defer q.Release()
	_, _, err = q.Insert(e, c)
	return err
}

// Remove detaches and returns the component of type C from e. It fails with
// StorageMissingError if no component of that type was ever stored.
func Remove[C any](w *World, e EntityID) (C, error) {
	var zero C
	g, err := borrowMut[ComponentStorage[C]](&w.components)
	if err != nil {
		return zero, err
	}
	q := CompMut[C]{componentView[C]{w: w, g: g}}
	defer q.Release()
	return q.Remove(e)
}

// Has reports whether e is alive and carries a component of type C.
func Has[C any](w *World, e EntityID) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	c, ok := w.componentCell(reflect.TypeFor[ComponentStorage[C]]())
	if !ok {
		return false
	}
	return carries(c, w.signature(e), e)
}

// InsertUnique registers the singleton of type T. The first value inserted
// for a type stays; later calls fail with UniqueExistsError.
func InsertUnique[T any](w *World, value T) error {
	if !insertStorage(&w.uniques, &UniqueStorage[T]{value: value}) {
		return UniqueExistsError{Type: reflect.TypeFor[T]()}
	}
	return nil
}
