package ecs

import (
	"reflect"
	"unsafe"
)

// noSkip is a sentinel component ID meaning "copy every component" when an
// entity moves between archetypes.
const noSkip uint16 = MaxComponentTypes

// TypeID registers (if needed) and returns the world-local ID for component
// type T. IDs are stable for the lifetime of the World.
func TypeID[T any](w *World) uint8 {
	return w.getCompTypeID(reflect.TypeOf((*T)(nil)).Elem())
}

// RegisterType registers t as a component type and returns its world-local
// ID. It is the non-generic companion of TypeID, for callers that collect
// component types dynamically.
func (w *World) RegisterType(t reflect.Type) uint8 {
	return w.getCompTypeID(t)
}

// AddComponent adds a zero-valued component of type T to an entity and
// returns a pointer to it. If the entity already has the component, the
// existing component is returned unchanged.
//
// Parameters:
//   - w: The World where the entity resides.
//   - e: The Entity to modify.
//
// Returns:
//   - A pointer to the component data, and true on success. Returns
//     (nil, false) for invalid entities.
func AddComponent[T any](w *World, e Entity) (*T, bool) {
	if !w.IsValid(e) {
		return nil, false
	}
	id := w.getCompTypeID(reflect.TypeOf((*T)(nil)).Elem())
	meta := &w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if a.mask.containsBit(id) {
		ptr := unsafe.Pointer(uintptr(a.compPointers[id]) + uintptr(meta.index)*a.compSizes[id])
		return (*T)(ptr), true
	}
	target := w.archetypeWith(a, id)
	newIdx := w.moveEntity(e, meta, a, target, noSkip)
	ptr := unsafe.Pointer(uintptr(target.compPointers[id]) + uintptr(newIdx)*target.compSizes[id])
	// the slot may hold data from a recycled entity
	var zero T
	*(*T)(ptr) = zero
	return (*T)(ptr), true
}

// SetComponent adds a component of type T with the given value to an entity,
// or overwrites it if the component already exists.
//
// If the entity does not already have the component, it moves to a different
// archetype; that is the expensive path. Invalid entities are ignored.
//
// Parameters:
//   - w: The World where the entity resides.
//   - e: The Entity to modify.
//   - val: The component value to set.
func SetComponent[T any](w *World, e Entity, val T) {
	if !w.IsValid(e) {
		return
	}
	id := w.getCompTypeID(reflect.TypeOf((*T)(nil)).Elem())
	meta := &w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if a.mask.containsBit(id) {
		ptr := unsafe.Pointer(uintptr(a.compPointers[id]) + uintptr(meta.index)*a.compSizes[id])
		*(*T)(ptr) = val
		return
	}
	target := w.archetypeWith(a, id)
	newIdx := w.moveEntity(e, meta, a, target, noSkip)
	ptr := unsafe.Pointer(uintptr(target.compPointers[id]) + uintptr(newIdx)*target.compSizes[id])
	*(*T)(ptr) = val
}

// GetComponent retrieves a pointer to the component of type T for the given
// entity. The pointer stays valid until the entity changes archetype or is
// removed.
//
// Parameters:
//   - w: The World containing the entity.
//   - e: The Entity to read from.
//
// Returns:
//   - A pointer to the component data, or nil if the entity is invalid or
//     does not have the component.
func GetComponent[T any](w *World, e Entity) *T {
	if !w.IsValid(e) {
		return nil
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	id, ok := w.compRegistry.compTypeMap[t]
	if !ok {
		return nil
	}
	meta := w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if !a.mask.containsBit(id) {
		return nil
	}
	ptr := unsafe.Pointer(uintptr(a.compPointers[id]) + uintptr(meta.index)*a.compSizes[id])
	return (*T)(ptr)
}

// HasComponent reports whether the entity currently has a component of
// type T.
func HasComponent[T any](w *World, e Entity) bool {
	if !w.IsValid(e) {
		return false
	}
	id, ok := w.compRegistry.compTypeMap[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return false
	}
	return w.archetypes[w.metas[e.ID].archetypeIndex].mask.containsBit(id)
}

// RemoveComponent removes the component of type T from the entity. Removing
// a component the entity does not have, or from an invalid entity, is a
// no-op.
func RemoveComponent[T any](w *World, e Entity) {
	if !w.IsValid(e) {
		return
	}
	id, ok := w.compRegistry.compTypeMap[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return
	}
	w.removeComponentID(e, id)
}

// RemoveComponentID removes the component with the given world-local ID from
// the entity. It is the non-generic companion of RemoveComponent, useful
// when component IDs are collected dynamically (for example when stripping a
// registered set of tag components).
func RemoveComponentID(w *World, e Entity, id uint8) {
	if !w.IsValid(e) {
		return
	}
	w.removeComponentID(e, id)
}

func (w *World) removeComponentID(e Entity, id uint8) {
	meta := &w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if !a.mask.containsBit(id) {
		return
	}
	target := w.archetypeWithout(a, id)
	w.moveEntity(e, meta, a, target, uint16(id))
}

// archetypeWith returns the archetype whose mask is a's mask plus id.
func (w *World) archetypeWith(a *archetype, id uint8) *archetype {
	newMask := a.mask
	newMask.set(id)
	if idx, ok := w.maskToArcIndex[newMask]; ok {
		return w.archetypes[idx]
	}
	specs := w.specsFor(a, id, true)
	return w.getOrCreateArchetype(newMask, specs)
}

// archetypeWithout returns the archetype whose mask is a's mask minus id.
func (w *World) archetypeWithout(a *archetype, id uint8) *archetype {
	newMask := a.mask
	newMask.unset(id)
	if idx, ok := w.maskToArcIndex[newMask]; ok {
		return w.archetypes[idx]
	}
	specs := w.specsFor(a, id, false)
	return w.getOrCreateArchetype(newMask, specs)
}

// specsFor builds the component spec list for a's components, with id either
// appended (include) or left out (exclude).
func (w *World) specsFor(a *archetype, id uint8, include bool) []compSpec {
	var tmp [MaxComponentTypes]compSpec
	count := 0
	for _, cid := range a.compOrder {
		if !include && cid == id {
			continue
		}
		tmp[count] = compSpec{
			id:   cid,
			typ:  w.compRegistry.compIDToType[cid],
			size: w.compRegistry.compIDToSize[cid],
		}
		count++
	}
	if include {
		tmp[count] = compSpec{
			id:   id,
			typ:  w.compRegistry.compIDToType[id],
			size: w.compRegistry.compIDToSize[id],
		}
		count++
	}
	return tmp[:count]
}

// moveEntity transfers the entity from archetype `from` to `to`, copying all
// shared component data except the component with ID skip. Returns the
// entity's index in the target archetype.
func (w *World) moveEntity(e Entity, meta *entityMeta, from, to *archetype, skip uint16) int {
	newIdx := to.size
	to.entityIDs[newIdx] = e
	to.size++
	for _, cid := range from.compOrder {
		if uint16(cid) == skip {
			continue
		}
		size := from.compSizes[cid]
		src := unsafe.Pointer(uintptr(from.compPointers[cid]) + uintptr(meta.index)*size)
		dst := unsafe.Pointer(uintptr(to.compPointers[cid]) + uintptr(newIdx)*size)
		memCopy(dst, src, size)
	}
	w.removeFromArchetype(from, meta)
	meta.archetypeIndex = to.index
	meta.index = newIdx
	return newIdx
}
