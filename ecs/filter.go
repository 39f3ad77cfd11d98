package ecs

import (
	"reflect"
	"unsafe"
)

// queryCache tracks the archetypes matching a component mask. It is embedded
// by the filters and refreshed lazily whenever a new archetype appears.
type queryCache struct {
	world          *World
	matchingArches []*archetype
	cachedEntities []Entity
	mask           bitmask256
	seenVersion    uint32
}

func newQueryCache(w *World, mask bitmask256) queryCache {
	return queryCache{world: w, mask: mask}
}

// IsStale reports whether archetypes were created since the last update.
func (q *queryCache) IsStale() bool {
	return q.seenVersion != q.world.archetypeVersion
}

func (q *queryCache) updateMatching() {
	q.matchingArches = q.matchingArches[:0]
	for _, a := range q.world.archetypes {
		if a.mask.contains(q.mask) {
			q.matchingArches = append(q.matchingArches, a)
		}
	}
	q.seenVersion = q.world.archetypeVersion
}

// Entities returns all entities currently matching the query.
// Note: the returned slice is owned by the cache and is invalidated by the
// next call or by world mutation. Copy it for long-term use.
func (q *queryCache) Entities() []Entity {
	if q.IsStale() {
		q.updateMatching()
	}
	q.cachedEntities = q.cachedEntities[:0]
	for _, a := range q.matchingArches {
		q.cachedEntities = append(q.cachedEntities, a.entityIDs[:a.size]...)
	}
	return q.cachedEntities
}

// Count returns the number of entities currently matching the query.
func (q *queryCache) Count() int {
	if q.IsStale() {
		q.updateMatching()
	}
	n := 0
	for _, a := range q.matchingArches {
		n += a.size
	}
	return n
}

// Filter provides a fast, cache-friendly iterator over all entities that
// have a specific set of components. It iterates directly over the component
// arrays of matching archetypes.
//
// This is the single-component filter; Filter2 covers two components.
type Filter[T any] struct {
	curBase      unsafe.Pointer
	curEntityIDs []Entity
	queryCache
	curMatchIdx int
	curIdx      int
	compSize    uintptr
	curArchSize int
	curEnt      Entity
	compID      uint8
}

// NewFilter creates a new Filter iterating over all entities that possess at
// least the component of type T. Matching archetypes are discovered and
// cached automatically.
//
// Parameters:
//   - w: The World to query.
//
// Returns:
//   - A pointer to the newly created Filter[T].
func NewFilter[T any](w *World) *Filter[T] {
	id := w.getCompTypeID(reflect.TypeOf((*T)(nil)).Elem())
	var m bitmask256
	m.set(id)
	f := &Filter[T]{
		queryCache: newQueryCache(w, m),
		compID:     id,
	}
	f.compSize = w.compRegistry.compIDToSize[id]
	f.Reset()
	return f
}

// Reset rewinds the iterator to the beginning, refreshing the archetype list
// if new archetypes were created since the last iteration.
func (f *Filter[T]) Reset() {
	if f.IsStale() {
		f.updateMatching()
	}
	f.curMatchIdx = 0
	f.curIdx = -1
	f.curArchSize = 0
	if len(f.matchingArches) > 0 {
		a := f.matchingArches[0]
		f.curBase = a.compPointers[f.compID]
		f.curEntityIDs = a.entityIDs
		f.curArchSize = a.size
	}
}

// Next advances the filter to the next matching entity. It returns false
// when the iteration is complete, and must be called before Entity or Get.
//
// Example:
//
//	f := ecs.NewFilter[Position](world)
//	for f.Next() {
//	    // ... process f.Entity(), f.Get()
//	}
func (f *Filter[T]) Next() bool {
	f.curIdx++
	if f.curIdx < f.curArchSize {
		f.curEnt = f.curEntityIDs[f.curIdx]
		return true
	}
	for {
		f.curMatchIdx++
		if f.curMatchIdx >= len(f.matchingArches) {
			return false
		}
		a := f.matchingArches[f.curMatchIdx]
		if a.size == 0 {
			continue
		}
		f.curBase = a.compPointers[f.compID]
		f.curEntityIDs = a.entityIDs
		f.curArchSize = a.size
		f.curIdx = 0
		f.curEnt = f.curEntityIDs[0]
		return true
	}
}

// Entity returns the current entity. Only valid after Next returned true.
func (f *Filter[T]) Entity() Entity {
	return f.curEnt
}

// Get returns a pointer to the component of type T for the current entity.
// Only valid after Next returned true.
func (f *Filter[T]) Get() *T {
	return (*T)(unsafe.Pointer(uintptr(f.curBase) + uintptr(f.curIdx)*f.compSize))
}

// Filter2 iterates over all entities that have both component types T and U.
type Filter2[T any, U any] struct {
	curBase1     unsafe.Pointer
	curBase2     unsafe.Pointer
	curEntityIDs []Entity
	queryCache
	curMatchIdx int
	curIdx      int
	compSize1   uintptr
	compSize2   uintptr
	curArchSize int
	curEnt      Entity
	compID1     uint8
	compID2     uint8
}

// NewFilter2 creates a new Filter2 iterating over all entities that possess
// both components T and U.
func NewFilter2[T any, U any](w *World) *Filter2[T, U] {
	id1 := w.getCompTypeID(reflect.TypeOf((*T)(nil)).Elem())
	id2 := w.getCompTypeID(reflect.TypeOf((*U)(nil)).Elem())
	var m bitmask256
	m.set(id1)
	m.set(id2)
	f := &Filter2[T, U]{
		queryCache: newQueryCache(w, m),
		compID1:    id1,
		compID2:    id2,
	}
	f.compSize1 = w.compRegistry.compIDToSize[id1]
	f.compSize2 = w.compRegistry.compIDToSize[id2]
	f.Reset()
	return f
}

// Reset rewinds the iterator to the beginning.
func (f *Filter2[T, U]) Reset() {
	if f.IsStale() {
		f.updateMatching()
	}
	f.curMatchIdx = 0
	f.curIdx = -1
	f.curArchSize = 0
	if len(f.matchingArches) > 0 {
		a := f.matchingArches[0]
		f.curBase1 = a.compPointers[f.compID1]
		f.curBase2 = a.compPointers[f.compID2]
		f.curEntityIDs = a.entityIDs
		f.curArchSize = a.size
	}
}

// Next advances the filter to the next matching entity.
func (f *Filter2[T, U]) Next() bool {
	f.curIdx++
	if f.curIdx < f.curArchSize {
		f.curEnt = f.curEntityIDs[f.curIdx]
		return true
	}
	for {
		f.curMatchIdx++
		if f.curMatchIdx >= len(f.matchingArches) {
			return false
		}
		a := f.matchingArches[f.curMatchIdx]
		if a.size == 0 {
			continue
		}
		f.curBase1 = a.compPointers[f.compID1]
		f.curBase2 = a.compPointers[f.compID2]
		f.curEntityIDs = a.entityIDs
		f.curArchSize = a.size
		f.curIdx = 0
		f.curEnt = f.curEntityIDs[0]
		return true
	}
}

// Entity returns the current entity.
func (f *Filter2[T, U]) Entity() Entity {
	return f.curEnt
}

// Get returns pointers to both components for the current entity.
func (f *Filter2[T, U]) Get() (*T, *U) {
	p1 := unsafe.Pointer(uintptr(f.curBase1) + uintptr(f.curIdx)*f.compSize1)
	p2 := unsafe.Pointer(uintptr(f.curBase2) + uintptr(f.curIdx)*f.compSize2)
	return (*T)(p1), (*U)(p2)
}
