package object3d

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/voanhcung/xr3ngine/ecs"
	"github.com/voanhcung/xr3ngine/scene"
)

// NodeAttached is published on the world event bus after a node has been
// attached to an entity.
type NodeAttached struct {
	Entity ecs.Entity
	Node   *scene.Node
}

// NodeDetached is published after a node has been detached from an entity.
type NodeDetached struct {
	Entity ecs.Entity
	Node   *scene.Node
}

// Synchronizer maps ECS entities onto nodes of a scene graph. It owns the
// node→entity side table used for cascading teardown, so scene nodes never
// carry entity references themselves.
//
// All methods are single-threaded: they are meant to run on the update tick
// that drives the world.
type Synchronizer struct {
	world    *ecs.World
	graph    *scene.Graph
	bus      *ecs.EventBus
	log      *zap.Logger
	entities map[*scene.Node]ecs.Entity // weak back-references, non-owning
	tagSet   map[reflect.Type]uint8     // Object3D-subtype tag registry
}

// NewSynchronizer creates a synchronizer bound to a world and a scene graph.
// Both are required; logger and bus may be nil (logging is then dropped and
// no events are published). All tag component types are registered with the
// world up front so their IDs stay stable.
func NewSynchronizer(world *ecs.World, graph *scene.Graph, log *zap.Logger, bus *ecs.EventBus) *Synchronizer {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Synchronizer{
		world:    world,
		graph:    graph,
		bus:      bus,
		log:      log,
		entities: make(map[*scene.Node]ecs.Entity),
		tagSet:   make(map[reflect.Type]uint8, len(tagTypes)),
	}
	for _, t := range tagTypes {
		s.tagSet[t] = world.RegisterType(t)
	}
	return s
}

// World returns the ECS world the synchronizer operates on.
func (s *Synchronizer) World() *ecs.World {
	return s.world
}

// Graph returns the scene graph the synchronizer operates on.
func (s *Synchronizer) Graph() *scene.Graph {
	return s.graph
}

// Node returns the scene-graph node associated with the entity, or
// (nil, false) if the entity has no Object3D component. Pure accessor, no
// side effects.
func (s *Synchronizer) Node(e ecs.Entity) (*scene.Node, bool) {
	obj := ecs.GetComponent[Object3D](s.world, e)
	if obj == nil || obj.Node == nil {
		return nil, false
	}
	return obj.Node, true
}

// Entity returns the entity recorded for the node in the side table, or
// (zero, false) when the node is not entity-owned. The mapping is a weak
// lookup annotation only; it never extends a node's or entity's lifetime.
func (s *Synchronizer) Entity(n *scene.Node) (ecs.Entity, bool) {
	e, ok := s.entities[n]
	return e, ok
}

func (s *Synchronizer) publishAttached(e ecs.Entity, n *scene.Node) {
	if s.bus != nil {
		ecs.Publish(s.bus, NodeAttached{Entity: e, Node: n})
	}
}

func (s *Synchronizer) publishDetached(e ecs.Entity, n *scene.Node) {
	if s.bus != nil {
		ecs.Publish(s.bus, NodeDetached{Entity: e, Node: n})
	}
}
