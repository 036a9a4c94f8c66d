/*
Package depot provides an in-memory entity/component store with runtime borrow checking.

Entities are generational handles. Components of each type live in their own sparse set,
giving O(1) insert, remove and lookup with dense iteration. Singletons ("uniques") and an
optional caller-defined world record sit beside them. Every storage is held in a
type-erased registry and guarded by a try-only reader/writer flag: any number of shared
borrows of a type may coexist, an exclusive borrow excludes everything else of that type,
and a conflicting borrow fails immediately instead of waiting.

Core Concepts:

  - Entity: A generational handle (index + version) carrying no data itself.
  - Component: A typed record attached to at most one entity per type.
  - Unique: A world-wide singleton of a type.
  - Query: A borrowed view resolved against a World (Comp, CompMut, Uniq, UniqMut,
    DataRef, DataMut or a caller-defined one).
  - System: A function whose parameters are queries, run with RunN or ExecN.

Basic Usage:

	world := depot.Factory.NewWorld()

	player, _ := world.Spawn()
	depot.Insert(world, player, Position{X: 1, Y: 2})
	depot.Insert(world, player, Velocity{X: 1, Y: 1})

	err := depot.Exec2(world, func(pos *depot.CompMut[Position], vel *depot.Comp[Velocity]) {
		for e, p := range pos.AllMut() {
			if v, err := vel.Get(e); err == nil {
				p.X += v.X
				p.Y += v.Y
			}
		}
	})

A World is single-threaded. Borrow conflicts describe overlapping views within one
goroutine, not locking between goroutines.
*/
package depot
