package depot

import (
	"fmt"
	"reflect"
)

// OutOfEntitiesError is returned by Spawn once the entity index space is
// exhausted.
type OutOfEntitiesError struct{}

func (e OutOfEntitiesError) Error() string {
	return "no more entities available"
}

// DeadEntityError is returned when deallocating a handle that is not alive.
type DeadEntityError struct {
	Entity EntityID
}

func (e DeadEntityError) Error() string {
	return fmt.Sprintf("entity %v is dead", e.Entity)
}

// StorageMissingError is returned when borrowing a storage that was never
// inserted: a unique, world data, or a component type passed to Remove.
type StorageMissingError struct {
	Type reflect.Type
}

func (e StorageMissingError) Error() string {
	return fmt.Sprintf("storage is missing: %v", e.Type)
}

// BorrowError is returned when a shared borrow is requested while an
// exclusive one is outstanding.
type BorrowError struct {
	Type reflect.Type
}

func (e BorrowError) Error() string {
	return fmt.Sprintf("already mutably borrowed: %v", e.Type)
}

// BorrowMutError is returned when an exclusive borrow is requested while any
// other borrow is outstanding.
type BorrowMutError struct {
	Type reflect.Type
}

func (e BorrowMutError) Error() string {
	return fmt.Sprintf("already borrowed: %v", e.Type)
}

// EntityDeadError is returned by component operations given a stale handle.
type EntityDeadError struct {
	Entity EntityID
}

func (e EntityDeadError) Error() string {
	return fmt.Sprintf("entity %v is dead", e.Entity)
}

// EntityMissingError is returned when an alive entity has no component of
// the requested type.
type EntityMissingError struct {
	Entity EntityID
	Type   reflect.Type
}

func (e EntityMissingError) Error() string {
	return fmt.Sprintf("component does not exist on entity %v: %v", e.Entity, e.Type)
}

// UniqueExistsError is returned by InsertUnique when the type is already
// present.
type UniqueExistsError struct {
	Type reflect.Type
}

func (e UniqueExistsError) Error() string {
	return fmt.Sprintf("unique already exists: %v", e.Type)
}

// LockedWorldError is returned by Flush while any borrow is outstanding.
type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is currently locked"
}
