package ecs

import (
	"reflect"
	"unsafe"
)

// Builder creates entities directly inside the archetype for component T,
// skipping the per-entity archetype transition that SetComponent pays.
type Builder[T any] struct {
	world  *World
	arch   *archetype
	compID uint8
}

// NewBuilder creates a builder for entities carrying component T.
func NewBuilder[T any](w *World) *Builder[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	id := w.getCompTypeID(t)
	var mask bitmask256
	mask.set(id)
	sp := compSpec{id: id, typ: t, size: w.compRegistry.compIDToSize[id]}
	arch := w.getOrCreateArchetype(mask, []compSpec{sp})
	return &Builder[T]{world: w, arch: arch, compID: id}
}

// NewEntity creates one entity with a zero-valued T component.
func (b *Builder[T]) NewEntity() Entity {
	e := b.world.createEntity(b.arch)
	var zero T
	b.set(e, zero)
	return e
}

// NewEntityWith creates one entity with the given component value.
func (b *Builder[T]) NewEntityWith(comp T) Entity {
	e := b.world.createEntity(b.arch)
	b.set(e, comp)
	return e
}

// NewEntities creates count entities with zero-valued T components.
func (b *Builder[T]) NewEntities(count int) []Entity {
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.NewEntity()
	}
	return ents
}

// Get returns a pointer to the T component of e, or nil if e does not live
// in this builder's archetype family.
func (b *Builder[T]) Get(e Entity) *T {
	return GetComponent[T](b.world, e)
}

func (b *Builder[T]) set(e Entity, comp T) {
	meta := b.world.metas[e.ID]
	ptr := unsafe.Pointer(uintptr(b.arch.compPointers[b.compID]) + uintptr(meta.index)*b.arch.compSizes[b.compID])
	*(*T)(ptr) = comp
}

// Builder2 creates entities directly inside the archetype for components
// T and U.
type Builder2[T any, U any] struct {
	world   *World
	arch    *archetype
	compID1 uint8
	compID2 uint8
}

// NewBuilder2 creates a builder for entities carrying components T and U.
func NewBuilder2[T any, U any](w *World) *Builder2[T, U] {
	t1 := reflect.TypeOf((*T)(nil)).Elem()
	t2 := reflect.TypeOf((*U)(nil)).Elem()
	id1 := w.getCompTypeID(t1)
	id2 := w.getCompTypeID(t2)
	var mask bitmask256
	mask.set(id1)
	mask.set(id2)
	specs := []compSpec{
		{id: id1, typ: t1, size: w.compRegistry.compIDToSize[id1]},
		{id: id2, typ: t2, size: w.compRegistry.compIDToSize[id2]},
	}
	arch := w.getOrCreateArchetype(mask, specs)
	return &Builder2[T, U]{world: w, arch: arch, compID1: id1, compID2: id2}
}

// NewEntity creates one entity with zero-valued T and U components.
func (b *Builder2[T, U]) NewEntity() Entity {
	e := b.world.createEntity(b.arch)
	meta := b.world.metas[e.ID]
	p1 := unsafe.Pointer(uintptr(b.arch.compPointers[b.compID1]) + uintptr(meta.index)*b.arch.compSizes[b.compID1])
	p2 := unsafe.Pointer(uintptr(b.arch.compPointers[b.compID2]) + uintptr(meta.index)*b.arch.compSizes[b.compID2])
	var zero1 T
	var zero2 U
	*(*T)(p1) = zero1
	*(*U)(p2) = zero2
	return e
}

// NewEntities creates count entities with zero-valued components.
func (b *Builder2[T, U]) NewEntities(count int) []Entity {
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.NewEntity()
	}
	return ents
}
