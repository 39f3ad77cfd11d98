// Profiling:
// go build ./profile/attach
// go tool pprof -http=":8000" -nodefraction=0.001 ./attach mem.pprof

package main

import (
	"github.com/pkg/profile"
	"github.com/voanhcung/xr3ngine/ecs"
	"github.com/voanhcung/xr3ngine/object3d"
	"github.com/voanhcung/xr3ngine/scene"
)

func main() {
	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	props := map[string]any{
		"position.x":     1.0,
		"material.color": 0xff8000,
	}
	for ri := 0; ri < rounds; ri++ {
		w := ecs.NewWorld(numEntities)
		g := scene.NewGraph("profile")
		s := object3d.NewSynchronizer(w, g, nil, nil)

		for j := 0; j < iters; j++ {
			ents := w.CreateEntities(numEntities)
			for _, e := range ents {
				n := scene.NewNode(scene.KindMesh)
				n.Material = scene.NewMaterial()
				s.Attach(e, object3d.Attachment{Node: n, Props: props})
			}
			for _, e := range ents {
				s.Remove(e, false)
			}
		}
	}
}
