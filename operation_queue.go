package depot

import (
	"errors"
	"fmt"
	"reflect"
)

type operation struct {
	typ    operationType
	entity EntityID
	key    reflect.Type
	apply  func(*World) error
}

type operationType int

const (
	opInsertComponent operationType = iota
	opRemoveComponent
	opDespawn
	opCancelled operationType = -1
)

type opKey struct {
	entity EntityID
	key    reflect.Type
}

// opQueue holds mutations requested while the world is locked.
type opQueue struct {
	componentOps   []operation
	despawnOps     []operation
	pendingDespawn map[EntityID]struct{}
	pendingMods    map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDespawn: make(map[EntityID]struct{}),
		pendingMods:    make(map[opKey]int),
	}
}

func (q *opQueue) len() int {
	return len(q.componentOps) + len(q.despawnOps)
}

func (q *opQueue) enqueueDespawn(e EntityID) {
	if _, exists := q.pendingDespawn[e]; exists {
		return
	}
	q.pendingDespawn[e] = struct{}{}

	// Pending component operations on this entity become no-ops
	for key, idx := range q.pendingMods {
		if key.entity == e {
			q.componentOps[idx].typ = opCancelled
			delete(q.pendingMods, key)
		}
	}

	q.despawnOps = append(q.despawnOps, operation{
		typ:    opDespawn,
		entity: e,
	})
}

func (q *opQueue) enqueueComponentOp(op operation) {
	// If the entity is pending despawn, ignore component operations
	if _, despawning := q.pendingDespawn[op.entity]; despawning {
		return
	}

	// A later operation on the same entity and type replaces the earlier one
	key := opKey{entity: op.entity, key: op.key}
	if existingIdx, exists := q.pendingMods[key]; exists {
		q.componentOps[existingIdx] = op
		return
	}

	q.pendingMods[key] = len(q.componentOps)
	q.componentOps = append(q.componentOps, op)
}

func (q *opQueue) clear() {
	q.componentOps = q.componentOps[:0]
	q.despawnOps = q.despawnOps[:0]
	clear(q.pendingDespawn)
	clear(q.pendingMods)
}

// Flush applies queued operations. It fails with LockedWorldError while any
// borrow is outstanding.
func (w *World) Flush() error {
	if w.Locked() {
		return LockedWorldError{}
	}
	return w.processOperationQueue()
}

func (w *World) processOperationQueue() error {
	if w.opQueue.len() == 0 {
		return nil
	}
	defer w.opQueue.clear()

	w.logger.Debug("flushing operation queue",
		"component_ops", len(w.opQueue.componentOps),
		"despawn_ops", len(w.opQueue.despawnOps),
	)

	// Every operation is attempted; failures are reported together
	var errs []error

	// Process component modifications first
	for _, op := range w.opQueue.componentOps {
		if op.typ == opCancelled {
			continue
		}
		// The entity died since the operation was queued
		if !w.entities.isAlive(op.entity) {
			continue
		}
		if err := op.apply(w); err != nil {
			errs = append(errs, fmt.Errorf("failed to process queued component operation on %v: %w", op.entity, err))
		}
	}

	// Process despawns last
	for _, op := range w.opQueue.despawnOps {
		if !w.entities.isAlive(op.entity) {
			continue
		}
		if err := w.Despawn(op.entity); err != nil {
			errs = append(errs, fmt.Errorf("failed to process queued despawn: %w", err))
		}
	}
	return errors.Join(errs...)
}

// EnqueueDespawn despawns e now if the world is unlocked, otherwise once the
// world is flushed.
func (w *World) EnqueueDespawn(e EntityID) error {
	if !w.Locked() {
		return w.Despawn(e)
	}
	if !w.entities.isAlive(e) {
		return DeadEntityError{Entity: e}
	}
	w.opQueue.enqueueDespawn(e)
	return nil
}

// EnqueueInsert inserts c on e now if the world is unlocked, otherwise once
// the world is flushed.
func EnqueueInsert[C any](w *World, e EntityID, c C) error {
	if !w.Locked() {
		return Insert(w, e, c)
	}
	if !w.entities.isAlive(e) {
		return EntityDeadError{Entity: e}
	}
	w.opQueue.enqueueComponentOp(operation{
		typ:    opInsertComponent,
		entity: e,
		key:    reflect.TypeFor[ComponentStorage[C]](),
		apply: func(w *World) error {
			return Insert(w, e, c)
		},
	})
	return nil
}

// EnqueueRemove removes the component of type C from e now if the world is
// unlocked, otherwise once the world is flushed. A missing component is not
// an error for a queued removal.
func EnqueueRemove[C any](w *World, e EntityID) error {
	if !w.Locked() {
		_, err := Remove[C](w, e)
		return err
	}
	if !w.entities.isAlive(e) {
		return EntityDeadError{Entity: e}
	}
	w.opQueue.enqueueComponentOp(operation{
		typ:    opRemoveComponent,
		entity: e,
		key:    reflect.TypeFor[ComponentStorage[C]](),
		apply: func(w *World) error {
			if !Has[C](w, e) {
				return nil
			}
			_, err := Remove[C](w, e)
			return err
		},
	})
	return nil
}
