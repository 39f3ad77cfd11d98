package object3d

import (
	"go.uber.org/zap"

	"github.com/voanhcung/xr3ngine/ecs"
)

// Detach unbinds the entity from its scene-graph node. Entities without an
// Object3D component are ignored. The node is removed from the scene root;
// when unparent is true it is additionally detached from its direct parent,
// covering nodes nested deeper in the tree (the node may already be
// parentless). The Object3D component, every Object3D-subtype tag and the
// node→entity back-reference are all removed, so the entity can be
// re-attached later with a clean slate.
func (s *Synchronizer) Detach(e ecs.Entity, unparent bool) {
	n, ok := s.Node(e)
	if !ok {
		return
	}
	s.graph.Remove(n)
	if unparent {
		n.DetachFromParent()
	}
	ecs.RemoveComponent[Object3D](s.world, e)
	// Walk the entity's live component-type list in reverse so removals
	// do not disturb the positions still to visit.
	types := s.world.ComponentTypes(e)
	for i := len(types) - 1; i >= 0; i-- {
		if id, ok := s.tagSet[types[i]]; ok {
			ecs.RemoveComponentID(s.world, e, id)
		}
	}
	delete(s.entities, n)
	s.log.Debug("node detached",
		zap.String("name", n.Name),
		zap.Uint32("entity", e.ID))
	s.publishDetached(e, n)
}
