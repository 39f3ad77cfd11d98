package object3d

import (
	"github.com/voanhcung/xr3ngine/ecs"
	"github.com/voanhcung/xr3ngine/scene"
)

// Remove tears down the entity together with its scene-graph subtree. Every
// descendant node that carries a back-reference to an entity has that
// entity removed too, recursively, before the subtree root is detached from
// its parent. Finally the entity itself is removed from the world —
// immediately when deferred is false, or queued for the next World.Flush
// when true.
//
// After Remove returns, no scene-graph node maps to a removed entity and no
// removed entity's node remains reachable from the scene root.
func (s *Synchronizer) Remove(e ecs.Entity, deferred bool) {
	if n, ok := s.Node(e); ok {
		// Snapshot the owned descendants first: removal mutates the
		// tree under traversal.
		var owned []ecs.Entity
		n.Traverse(func(d *scene.Node) {
			if d == n {
				return
			}
			if ent, ok := s.entities[d]; ok {
				delete(s.entities, d)
				owned = append(owned, ent)
			}
		})
		delete(s.entities, n)
		n.DetachFromParent()
		for _, ent := range owned {
			s.Remove(ent, deferred)
		}
	}
	if deferred {
		s.world.QueueRemoveEntity(e)
	} else {
		s.world.RemoveEntity(e)
	}
}
