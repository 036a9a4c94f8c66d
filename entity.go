package depot

import (
	"fmt"
	"iter"
	"math"
)

// EntityID is a generational handle. Index 0 is never issued, so the zero
// value is never a live handle.
type EntityID struct {
	index   uint32
	version uint32
}

func (e EntityID) Index() uint32 {
	return e.index
}

func (e EntityID) Version() uint32 {
	return e.version
}

func (e EntityID) String() string {
	return fmt.Sprintf("%dv%d", e.index, e.version)
}

type entryState uint8

const (
	entryDead entryState = iota
	entryAlive
)

// entityEntry is one slot of the table. Dead slots thread the free list
// through next.
type entityEntry struct {
	state   entryState
	next    uint32
	version uint32
}

// entities allocates handles from a free list threaded through the table.
type entities struct {
	entries []entityEntry
	head    uint32
	free    int
	alive   int
	retired int
	limit   uint32
}

func newEntities(capacity int, limit uint32) entities {
	if limit == 0 {
		limit = math.MaxUint32
	}
	entries := make([]entityEntry, 1, max(capacity, 0)+1)
	// Slot 0 is a permanently dead placeholder that the free list never reaches.
	return entities{
		entries: entries,
		limit:   limit,
	}
}

func (es *entities) alloc() (EntityID, error) {
	if es.free > 0 {
		index := es.head
		entry := &es.entries[index]
		es.head = entry.next
		es.free--
		es.alive++
		entry.state = entryAlive
		entry.next = 0
		return EntityID{index: index, version: entry.version}, nil
	}

	// len(entries) never exceeds limit, which fits in 32 bits.
	index := uint32(len(es.entries))
	if index >= es.limit {
		return EntityID{}, OutOfEntitiesError{}
	}
	es.entries = append(es.entries, entityEntry{state: entryAlive})
	es.alive++
	return EntityID{index: index}, nil
}

// dealloc invalidates id. A slot whose version saturates is retired and never
// handed out again.
func (es *entities) dealloc(id EntityID) (retired bool, err error) {
	if !es.isAlive(id) {
		return false, DeadEntityError{Entity: id}
	}

	entry := &es.entries[id.index]
	entry.version++
	entry.state = entryDead
	es.alive--

	if entry.version == math.MaxUint32 {
		es.retired++
		return true, nil
	}
	entry.next = es.head
	es.head = id.index
	es.free++
	return false, nil
}

func (es *entities) isAlive(id EntityID) bool {
	if id.index == 0 || int(id.index) >= len(es.entries) {
		return false
	}
	entry := es.entries[id.index]
	return entry.state == entryAlive && entry.version == id.version
}

// current returns the live handle at index, if the slot is alive.
func (es *entities) current(index uint32) (EntityID, bool) {
	if index == 0 || int(index) >= len(es.entries) {
		return EntityID{}, false
	}
	entry := es.entries[index]
	if entry.state != entryAlive {
		return EntityID{}, false
	}
	return EntityID{index: index, version: entry.version}, true
}

// all yields alive handles in ascending index order. The table length is
// captured when ranging starts.
func (es *entities) all() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		n := len(es.entries)
		for i := 1; i < n && i < len(es.entries); i++ {
			entry := es.entries[i]
			if entry.state != entryAlive {
				continue
			}
			if !yield(EntityID{index: uint32(i), version: entry.version}) {
				return
			}
		}
	}
}

func (es *entities) len() int {
	return es.alive
}
