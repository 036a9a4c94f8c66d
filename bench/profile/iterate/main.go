// Profiling:
// go build ./profile/iterate
// go tool pprof -http=":8000" -nodefraction=0.001 ./iterate mem.pprof

package main

import (
	"github.com/TheBitDrifter/depot"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := depot.Factory.NewWorld(depot.WithOptions(depot.Options{EntityCapacity: numEntities}))

		for range iters {
			for range numEntities {
				e, _ := w.Spawn()
				depot.Insert(w, e, comp1{})
				depot.Insert(w, e, comp2{V: 1, W: 1})
			}
			depot.Exec2(w, func(c1 *depot.CompMut[comp1], c2 *depot.Comp[comp2]) {
				for e, v := range c2.All() {
					c, err := c1.GetMut(e)
					if err != nil {
						continue
					}
					c.V += v.V
					c.W += v.W
					w.EnqueueDespawn(e)
				}
			})
		}
	}
}
