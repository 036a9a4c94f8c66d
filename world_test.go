package depot

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/TheBitDrifter/depot/sparse"
	"github.com/TheBitDrifter/mask"
	"github.com/google/uuid"
)

func TestWorldSpawnInsertGet(t *testing.T) {
	w := Factory.NewWorld()

	e, err := w.Spawn()
	if err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}
	if err := Insert(w, e, Position{X: 1, Y: 2}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	q, err := Borrow[Comp[Position]](w)
	if err != nil {
		t.Fatalf("Borrow() error = %v", err)
	}
	defer q.Release()

	got, err := q.Get(e)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != (Position{X: 1, Y: 2}) {
		t.Errorf("Get() = %v, want {1 2}", got)
	}
}

func TestWorldReuseBumpsVersion(t *testing.T) {
	w := Factory.NewWorld()

	old, _ := w.Spawn()
	if err := w.Despawn(old); err != nil {
		t.Fatalf("Despawn() error = %v", err)
	}
	reused, _ := w.Spawn()

	if reused.Index() != old.Index() {
		t.Fatalf("index not reused: %v then %v", old, reused)
	}
	if reused.Version() != old.Version()+1 {
		t.Errorf("version = %d, want %d", reused.Version(), old.Version()+1)
	}
	if w.IsAlive(old) {
		t.Errorf("old handle %v is alive", old)
	}
	if !w.IsAlive(reused) {
		t.Errorf("new handle %v is dead", reused)
	}
}

func TestWorldDespawnStripsComponents(t *testing.T) {
	w := Factory.NewWorld()

	a, _ := w.Spawn()
	b, _ := w.Spawn()
	Insert(w, a, Position{X: 1})
	Insert(w, a, Health{Current: 3})
	Insert(w, b, Position{X: 2})

	if err := w.Despawn(a); err != nil {
		t.Fatalf("Despawn() error = %v", err)
	}
	if err := w.Despawn(a); !errors.As(err, new(DeadEntityError)) {
		t.Errorf("second Despawn() error = %v, want DeadEntityError", err)
	}

	// The reused index starts without components
	c, _ := w.Spawn()
	if c.Index() != a.Index() {
		t.Fatalf("index not reused")
	}
	if Has[Position](w, c) || Has[Health](w, c) {
		t.Errorf("reused entity inherited components")
	}

	q, _ := Borrow[Comp[Position]](w)
	defer q.Release()
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
	if _, err := q.Get(a); !errors.As(err, new(EntityDeadError)) {
		t.Errorf("Get(dead) error = %v, want EntityDeadError", err)
	}
	if _, err := q.Get(c); !errors.As(err, new(EntityMissingError)) {
		t.Errorf("Get(reused) error = %v, want EntityMissingError", err)
	}
}

func TestWorldDespawnConflictLeavesWorldUnchanged(t *testing.T) {
	w := Factory.NewWorld()

	e, _ := w.Spawn()
	Insert(w, e, Position{X: 1})
	Insert(w, e, Velocity{X: 1})

	q, _ := Borrow[Comp[Velocity]](w)
	err := w.Despawn(e)
	var conflict BorrowMutError
	if !errors.As(err, &conflict) {
		t.Fatalf("Despawn() error = %v, want BorrowMutError", err)
	}
	if !w.IsAlive(e) || !Has[Position](w, e) || !Has[Velocity](w, e) {
		t.Errorf("failed despawn changed the world")
	}
	q.Release()

	if w.Locked() {
		t.Fatalf("world still locked after release")
	}
	if err := w.Despawn(e); err != nil {
		t.Errorf("Despawn() after release error = %v", err)
	}
}

func TestWorldInsertRemoveHas(t *testing.T) {
	w := Factory.NewWorld()
	e, _ := w.Spawn()

	if _, err := Remove[Position](w, e); !errors.As(err, new(StorageMissingError)) {
		t.Errorf("Remove() before any insert error = %v, want StorageMissingError", err)
	}

	Insert(w, e, Position{X: 4})
	if !Has[Position](w, e) {
		t.Errorf("Has() = false after insert")
	}

	got, err := Remove[Position](w, e)
	if err != nil || got.X != 4 {
		t.Errorf("Remove() = %v, %v, want {4 0}, nil", got, err)
	}
	if Has[Position](w, e) {
		t.Errorf("Has() = true after remove")
	}
	if _, err := Remove[Position](w, e); !errors.As(err, new(EntityMissingError)) {
		t.Errorf("second Remove() error = %v, want EntityMissingError", err)
	}

	w.Despawn(e)
	if err := Insert(w, e, Position{}); !errors.As(err, new(EntityDeadError)) {
		t.Errorf("Insert(dead) error = %v, want EntityDeadError", err)
	}
}

func TestWorldInsertRespectsBorrows(t *testing.T) {
	w := Factory.NewWorld()
	e, _ := w.Spawn()

	q, _ := Borrow[Comp[Position]](w)
	defer q.Release()

	if err := Insert(w, e, Position{}); !errors.As(err, new(BorrowMutError)) {
		t.Errorf("Insert() during a shared borrow error = %v, want BorrowMutError", err)
	}
}

func TestWorldManyEntitiesAcrossPages(t *testing.T) {
	w := Factory.NewWorld()

	const n = 5000
	for i := 0; i < n; i++ {
		e, err := w.Spawn()
		if err != nil {
			t.Fatalf("Spawn() error = %v", err)
		}
		if err := Insert(w, e, Health{Current: i}); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	if n <= sparse.PageSize {
		t.Fatalf("test does not span pages")
	}

	q, _ := Borrow[Comp[Health]](w)
	defer q.Release()

	count := 0
	for range q.Values() {
		count++
	}
	if count != n {
		t.Errorf("iterated %d components, want %d", count, n)
	}
	if w.Len() != n {
		t.Errorf("Len() = %d, want %d", w.Len(), n)
	}
}

func TestWorldBitsArePerWorld(t *testing.T) {
	for i := 0; i < 100; i++ {
		w := Factory.NewWorld()
		e, _ := w.Spawn()
		if err := Insert(w, e, Position{X: float64(i)}); err != nil {
			t.Fatalf("world #%d: Insert() error = %v", i, err)
		}
		Insert(w, e, Velocity{})

		pos, _ := w.componentCell(reflect.TypeFor[ComponentStorage[Position]]())
		vel, _ := w.componentCell(reflect.TypeFor[ComponentStorage[Velocity]]())
		if pos.bit != 0 || vel.bit != 1 {
			t.Fatalf("world #%d: bits = %d, %d, want 0, 1", i, pos.bit, vel.bit)
		}
		if !Has[Position](w, e) || !Has[Velocity](w, e) {
			t.Fatalf("world #%d: Has() = false after insert", i)
		}
	}

	// One schema element per Go type
	if elementTypeFor[Position]().ID() != elementTypeFor[Position]().ID() {
		t.Errorf("element type minted twice for Position")
	}
}

// wideOps drives one of many distinct component types.
type wideOps struct {
	insert    func(w *World, e EntityID) error
	remove    func(w *World, e EntityID) error
	has       func(w *World, e EntityID) bool
	component Component
}

func wideType[T any]() wideOps {
	return wideOps{
		insert: func(w *World, e EntityID) error {
			var zero T
			return Insert(w, e, zero)
		},
		remove: func(w *World, e EntityID) error {
			_, err := Remove[T](w, e)
			return err
		},
		has:       func(w *World, e EntityID) bool { return Has[T](w, e) },
		component: FactoryNewComponent[T]().Component,
	}
}

func TestWorldManyComponentTypes(t *testing.T) {
	types := []wideOps{
		wideType[[1]byte](),
		wideType[[2]byte](),
		wideType[[3]byte](),
		wideType[[4]byte](),
		wideType[[5]byte](),
		wideType[[6]byte](),
		wideType[[7]byte](),
		wideType[[8]byte](),
		wideType[[9]byte](),
		wideType[[10]byte](),
		wideType[[11]byte](),
		wideType[[12]byte](),
		wideType[[13]byte](),
		wideType[[14]byte](),
		wideType[[15]byte](),
		wideType[[16]byte](),
		wideType[[17]byte](),
		wideType[[18]byte](),
		wideType[[19]byte](),
		wideType[[20]byte](),
		wideType[[21]byte](),
		wideType[[22]byte](),
		wideType[[23]byte](),
		wideType[[24]byte](),
		wideType[[25]byte](),
		wideType[[26]byte](),
		wideType[[27]byte](),
		wideType[[28]byte](),
		wideType[[29]byte](),
		wideType[[30]byte](),
		wideType[[31]byte](),
		wideType[[32]byte](),
		wideType[[33]byte](),
		wideType[[34]byte](),
		wideType[[35]byte](),
		wideType[[36]byte](),
		wideType[[37]byte](),
		wideType[[38]byte](),
		wideType[[39]byte](),
		wideType[[40]byte](),
		wideType[[41]byte](),
		wideType[[42]byte](),
		wideType[[43]byte](),
		wideType[[44]byte](),
		wideType[[45]byte](),
		wideType[[46]byte](),
		wideType[[47]byte](),
		wideType[[48]byte](),
		wideType[[49]byte](),
		wideType[[50]byte](),
		wideType[[51]byte](),
		wideType[[52]byte](),
		wideType[[53]byte](),
		wideType[[54]byte](),
		wideType[[55]byte](),
		wideType[[56]byte](),
		wideType[[57]byte](),
		wideType[[58]byte](),
		wideType[[59]byte](),
		wideType[[60]byte](),
		wideType[[61]byte](),
		wideType[[62]byte](),
		wideType[[63]byte](),
		wideType[[64]byte](),
		wideType[[65]byte](),
		wideType[[66]byte](),
		wideType[[67]byte](),
		wideType[[68]byte](),
		wideType[[69]byte](),
		wideType[[70]byte](),
	}
	if len(types) <= mask.MaxBits {
		t.Skipf("signature holds %d bits, test needs more than %d types", mask.MaxBits, len(types))
	}

	w := Factory.NewWorld()
	e, _ := w.Spawn()
	other, _ := w.Spawn()

	for i, typ := range types {
		if err := typ.insert(w, e); err != nil {
			t.Fatalf("type #%d: Insert() error = %v", i, err)
		}
	}
	for i, typ := range types {
		if !typ.has(w, e) {
			t.Errorf("type #%d: Has() = false", i)
		}
		if typ.has(w, other) {
			t.Errorf("type #%d: Has(other) = true", i)
		}
	}

	last := types[len(types)-1]
	f := Factory.NewFilter()
	tests := []struct {
		name  string
		node  FilterNode
		e     EntityID
		other EntityID
	}{
		{"and", f.And(types[0].component, last.component), e, other},
		{"or", f.Or(last.component), e, other},
		{"not", f.Not(last.component), other, e},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !w.Matches(tt.node, tt.e) {
				t.Errorf("Matches(%v) = false", tt.e)
			}
			if w.Matches(tt.node, tt.other) {
				t.Errorf("Matches(%v) = true", tt.other)
			}
		})
	}

	if err := last.remove(w, e); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if last.has(w, e) {
		t.Errorf("Has() = true after removing a type past the signature width")
	}

	if err := w.Despawn(e); err != nil {
		t.Fatalf("Despawn() error = %v", err)
	}
	reused, _ := w.Spawn()
	if reused.Index() != e.Index() {
		t.Fatalf("index not reused")
	}
	for i, typ := range types {
		if typ.has(w, reused) {
			t.Errorf("type #%d: reused entity inherited a component", i)
		}
	}
}

func TestWorldUnique(t *testing.T) {
	w := Factory.NewWorld()

	if _, err := Borrow[Uniq[Score]](w); !errors.As(err, new(StorageMissingError)) {
		t.Fatalf("Borrow() before insert error = %v, want StorageMissingError", err)
	}

	if err := InsertUnique(w, Score(0)); err != nil {
		t.Fatalf("InsertUnique() error = %v", err)
	}
	if err := InsertUnique(w, Score(99)); !errors.As(err, new(UniqueExistsError)) {
		t.Errorf("second InsertUnique() error = %v, want UniqueExistsError", err)
	}

	m, err := Borrow[UniqMut[Score]](w)
	if err != nil {
		t.Fatalf("Borrow(UniqMut) error = %v", err)
	}
	if _, err := Borrow[Uniq[Score]](w); !errors.As(err, new(BorrowError)) {
		t.Errorf("shared borrow during exclusive error = %v, want BorrowError", err)
	}
	*m.GetMut() = 10
	m.Release()

	r, err := Borrow[Uniq[Score]](w)
	if err != nil {
		t.Fatalf("Borrow(Uniq) error = %v", err)
	}
	defer r.Release()
	if r.Get() != 10 {
		t.Errorf("Get() = %d, want 10", r.Get())
	}
}

func TestWorldLockedAndID(t *testing.T) {
	w := Factory.NewWorld()
	other := Factory.NewWorld()

	if w.ID() == uuid.Nil || w.ID() == other.ID() {
		t.Errorf("world ids not unique: %v, %v", w.ID(), other.ID())
	}

	if w.Locked() {
		t.Fatalf("new world is locked")
	}
	q, _ := Borrow[CompMut[Position]](w)
	if !w.Locked() {
		t.Errorf("world not locked during a borrow")
	}
	q.Release()
	q.Release()
	if w.Locked() {
		t.Errorf("world locked after release")
	}
}

func TestWorldEntityLimit(t *testing.T) {
	w := Factory.NewWorld(WithEntityLimit(3))

	w.Spawn()
	w.Spawn()
	if _, err := w.Spawn(); !errors.Is(err, OutOfEntitiesError{}) {
		t.Errorf("Spawn() error = %v, want OutOfEntitiesError", err)
	}
}

func TestWorldRetiresSaturatedSlot(t *testing.T) {
	w := Factory.NewWorld()
	e, _ := w.Spawn()
	Insert(w, e, Position{})

	w.entities.entries[e.index].version = math.MaxUint32 - 1
	last := EntityID{index: e.index, version: math.MaxUint32 - 1}
	if err := w.Despawn(last); err != nil {
		t.Fatalf("Despawn() error = %v", err)
	}
	if w.Retired() != 1 {
		t.Errorf("Retired() = %d, want 1", w.Retired())
	}
	if next, _ := w.Spawn(); next.index == e.index {
		t.Errorf("retired index %d handed out again", e.index)
	}
}
