// Package ecs implements a small archetype-based Entity Component System.
//
// Entities are ID+version handles, components are plain Go structs stored in
// contiguous per-archetype arrays, and archetypes are keyed by a 256-bit
// component mask. The hot paths (create, get, iterate) are allocation-free.
package ecs

import (
	"reflect"
	"unsafe"
)

// MaxComponentTypes defines the maximum number of unique component types that
// can be registered in a World. This value is fixed at 256.
const MaxComponentTypes = 256

// Entity represents a unique identifier for an object in the World. It
// combines a 32-bit ID with a 32-bit version so that recycled IDs are not
// confused with new entities.
type Entity struct {
	// ID is the unique, recyclable identifier for the entity.
	ID uint32
	// Version is a generation counter to protect against stale entity
	// references. It is incremented each time an entity ID is reused.
	Version uint32
}

// entityMeta holds the internal location and state of an entity.
type entityMeta struct {
	archetypeIndex int    // index in World.archetypes
	index          int    // position inside the archetype's arrays
	version        uint32 // current version, 0 if the entity is dead
}

// compSpec bundles a component type's ID, reflect.Type and size.
type compSpec struct {
	typ  reflect.Type
	size uintptr
	id   uint8
}

// archetype holds storage for one unique component-set mask.
type archetype struct {
	compPointers [MaxComponentTypes]unsafe.Pointer
	entityIDs    []Entity // prealloc len=cap
	compOrder    []uint8  // component IDs present in this archetype
	compSizes    [MaxComponentTypes]uintptr
	mask         bitmask256
	index        int // position in World.archetypes
	size         int // current entity count
}

// componentRegistry maps component types to their per-world IDs.
type componentRegistry struct {
	compIDToType   [MaxComponentTypes]reflect.Type
	compTypeMap    map[reflect.Type]uint8
	compIDToSize   [MaxComponentTypes]uintptr
	nextCompTypeID uint16
}

// World owns all entities, archetypes and component storage.
type World struct {
	resources        *Resources
	compRegistry     componentRegistry
	maskToArcIndex   map[bitmask256]int
	archetypes       []*archetype
	freeIDs          []uint32     // stack of recycled entity IDs
	metas            []entityMeta // indexed by entity ID
	pendingRemovals  []Entity     // drained by Flush
	capacity         int
	nextEntityVer    uint32
	archetypeVersion uint32 // incremented when a new archetype is created
}

// NewWorld creates and initializes a new World with a fixed capacity for
// entities. Memory for entity metadata, the free-ID list and archetype
// storage is pre-allocated so that the create/get/remove paths never
// allocate.
//
// Parameters:
//   - capacity: The maximum number of simultaneously live entities.
//
// Returns:
//   - A pointer to the newly created World.
func NewWorld(capacity int) *World {
	w := &World{
		resources: &Resources{},
		compRegistry: componentRegistry{
			compTypeMap: make(map[reflect.Type]uint8, 16),
		},
		maskToArcIndex: make(map[bitmask256]int),
		archetypes:     make([]*archetype, 0, 16),
		freeIDs:        make([]uint32, capacity),
		metas:          make([]entityMeta, capacity),
		capacity:       capacity,
		nextEntityVer:  1,
	}
	for i := 0; i < capacity; i++ {
		// fill freeIDs with [capacity-1 .. 0]
		w.freeIDs[i] = uint32(capacity - 1 - i)
	}
	for i := range w.metas {
		w.metas[i].archetypeIndex = -1
		w.metas[i].index = -1
	}
	// Pre-create the empty archetype so CreateEntity never misses.
	var emptyMask bitmask256
	w.getOrCreateArchetype(emptyMask, nil)
	return w
}

// Resources returns the world's resource manager, a type-keyed store for
// global data such as configuration objects or scene handles.
func (w *World) Resources() *Resources {
	return w.resources
}

// IsValid checks if the entity is currently alive in the world. An entity is
// valid if its ID is within bounds and its version matches the world's
// current version for that ID. This prevents stale entity references from
// accessing recycled slots.
//
// Parameters:
//   - e: The Entity to validate.
//
// Returns:
//   - true if the entity is valid, false otherwise.
func (w *World) IsValid(e Entity) bool {
	if int(e.ID) >= len(w.metas) {
		return false
	}
	meta := w.metas[e.ID]
	return meta.version != 0 && meta.version == e.Version
}

// CreateEntity creates a new entity with no components.
func (w *World) CreateEntity() Entity {
	var emptyMask bitmask256
	a := w.archetypes[w.maskToArcIndex[emptyMask]]
	return w.createEntity(a)
}

// CreateEntities creates a batch of entities with no components.
func (w *World) CreateEntities(count int) []Entity {
	if count == 0 {
		return nil
	}
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = w.CreateEntity()
	}
	return ents
}

// RemoveEntity deletes e from its archetype, swapping the last element into
// its slot. Removing an already-dead or stale entity is a no-op.
func (w *World) RemoveEntity(e Entity) {
	if !w.IsValid(e) {
		return
	}
	meta := &w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	w.removeFromArchetype(a, meta)
	meta.archetypeIndex = -1
	meta.index = -1
	meta.version = 0
	w.freeIDs = append(w.freeIDs, e.ID)
}

// RemoveEntities removes a batch of entities.
func (w *World) RemoveEntities(ents []Entity) {
	for _, e := range ents {
		w.RemoveEntity(e)
	}
}

// QueueRemoveEntity defers removal of e until the next Flush. Queueing the
// same entity more than once is harmless; dead entries are skipped when the
// queue drains.
func (w *World) QueueRemoveEntity(e Entity) {
	w.pendingRemovals = append(w.pendingRemovals, e)
}

// Flush drains the deferred-removal queue. It is meant to be called once per
// update tick, at the scheduling boundary.
//
// Returns:
//   - The number of entities removed.
func (w *World) Flush() int {
	removed := 0
	for _, e := range w.pendingRemovals {
		if w.IsValid(e) {
			w.RemoveEntity(e)
			removed++
		}
	}
	w.pendingRemovals = w.pendingRemovals[:0]
	return removed
}

// ComponentTypes returns the list of component types currently attached to
// the entity, in registration order. The returned slice is a copy and stays
// valid across world mutations. Returns nil for dead entities.
//
// Parameters:
//   - e: The Entity to inspect.
//
// Returns:
//   - A slice of reflect.Type, one per attached component.
func (w *World) ComponentTypes(e Entity) []reflect.Type {
	if !w.IsValid(e) {
		return nil
	}
	a := w.archetypes[w.metas[e.ID].archetypeIndex]
	if len(a.compOrder) == 0 {
		return nil
	}
	types := make([]reflect.Type, len(a.compOrder))
	for i, id := range a.compOrder {
		types[i] = w.compRegistry.compIDToType[id]
	}
	return types
}

// getCompTypeID registers or fetches a component type ID for t.
func (w *World) getCompTypeID(t reflect.Type) uint8 {
	if id, ok := w.compRegistry.compTypeMap[t]; ok {
		return id
	}
	if w.compRegistry.nextCompTypeID >= MaxComponentTypes {
		panic("ecs: too many component types")
	}
	id := uint8(w.compRegistry.nextCompTypeID)
	w.compRegistry.compTypeMap[t] = id
	w.compRegistry.compIDToType[id] = t
	w.compRegistry.compIDToSize[id] = t.Size()
	w.compRegistry.nextCompTypeID++
	return id
}

// getOrCreateArchetype returns an archetype for the given mask; if missing,
// allocates component storage arrays of length capacity.
func (w *World) getOrCreateArchetype(mask bitmask256, specs []compSpec) *archetype {
	if idx, ok := w.maskToArcIndex[mask]; ok {
		return w.archetypes[idx]
	}
	a := &archetype{
		index:     len(w.archetypes),
		mask:      mask,
		entityIDs: make([]Entity, w.capacity),
	}
	for _, sp := range specs {
		// allocate a typed []T of length=capacity; the unsafe pointer
		// keeps the allocation alive and GC-visible
		slice := reflect.MakeSlice(reflect.SliceOf(sp.typ), w.capacity, w.capacity)
		a.compPointers[sp.id] = slice.UnsafePointer()
		a.compSizes[sp.id] = sp.size
		a.compOrder = append(a.compOrder, sp.id)
	}
	w.archetypes = append(w.archetypes, a)
	w.maskToArcIndex[mask] = a.index
	w.archetypeVersion++
	return a
}

// createEntity bumps an entity into the given archetype.
// Zero allocations on the hot path.
func (w *World) createEntity(a *archetype) Entity {
	if len(w.freeIDs) == 0 {
		panic("ecs: entity capacity exhausted")
	}
	last := len(w.freeIDs) - 1
	id := w.freeIDs[last]
	w.freeIDs = w.freeIDs[:last]
	meta := &w.metas[id]
	meta.archetypeIndex = a.index
	meta.index = a.size
	meta.version = w.nextEntityVer
	ent := Entity{ID: id, Version: meta.version}
	a.entityIDs[a.size] = ent
	a.size++
	w.nextEntityVer++
	return ent
}

// removeFromArchetype removes the entity at meta from the archetype without
// freeing the ID or invalidating the version.
func (w *World) removeFromArchetype(a *archetype, meta *entityMeta) {
	idx := meta.index
	lastIdx := a.size - 1
	if idx < lastIdx {
		lastEnt := a.entityIDs[lastIdx]
		a.entityIDs[idx] = lastEnt
		for _, id := range a.compOrder {
			size := a.compSizes[id]
			src := unsafe.Pointer(uintptr(a.compPointers[id]) + uintptr(lastIdx)*size)
			dst := unsafe.Pointer(uintptr(a.compPointers[id]) + uintptr(idx)*size)
			memCopy(dst, src, size)
		}
		w.metas[lastEnt.ID].index = idx
	}
	a.size--
}

// memCopy copies size bytes from src to dst.
func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	dstBytes := unsafe.Slice((*byte)(dst), size)
	srcBytes := unsafe.Slice((*byte)(src), size)
	copy(dstBytes, srcBytes)
}
