package ecs_test

import (
	"testing"

	"github.com/voanhcung/xr3ngine/ecs"
)

// go test -run ^TestFilterIteration$ . -count 1
func TestFilterIteration(t *testing.T) {
	world := ecs.NewWorld(64)
	for i := 0; i < 5; i++ {
		e := world.CreateEntity()
		ecs.SetComponent(world, e, Position{X: float32(i)})
	}
	// entities without Position must not show up
	world.CreateEntity()

	f := ecs.NewFilter[Position](world)
	sum := float32(0)
	count := 0
	for f.Next() {
		sum += f.Get().X
		count++
	}
	if count != 5 {
		t.Errorf("Expected 5 matches, got %d", count)
	}
	if sum != 0+1+2+3+4 {
		t.Errorf("Expected sum 10, got %v", sum)
	}
}

// go test -run ^TestFilterStaleness$ . -count 1
func TestFilterStaleness(t *testing.T) {
	world := ecs.NewWorld(64)
	e1 := world.CreateEntity()
	ecs.SetComponent(world, e1, Position{X: 1})

	f := ecs.NewFilter[Position](world)
	if got := f.Count(); got != 1 {
		t.Fatalf("Expected 1 match, got %d", got)
	}

	// A new archetype appears after the filter was built.
	e2 := world.CreateEntity()
	ecs.SetComponent(world, e2, Position{X: 2})
	ecs.SetComponent(world, e2, Velocity{})

	f.Reset()
	count := 0
	for f.Next() {
		count++
	}
	if count != 2 {
		t.Errorf("Filter missed the new archetype: expected 2, got %d", count)
	}
}

// go test -run ^TestFilter2$ . -count 1
func TestFilter2(t *testing.T) {
	world := ecs.NewWorld(64)
	both := world.CreateEntity()
	ecs.SetComponent(world, both, Position{X: 1})
	ecs.SetComponent(world, both, Velocity{VX: 10})

	posOnly := world.CreateEntity()
	ecs.SetComponent(world, posOnly, Position{X: 2})

	f := ecs.NewFilter2[Position, Velocity](world)
	count := 0
	for f.Next() {
		p, v := f.Get()
		if p.X != 1 || v.VX != 10 {
			t.Errorf("Wrong component data: %+v %+v", p, v)
		}
		if f.Entity() != both {
			t.Errorf("Wrong entity: %+v", f.Entity())
		}
		count++
	}
	if count != 1 {
		t.Errorf("Expected 1 match, got %d", count)
	}
}

// go test -run ^TestFilterEntities$ . -count 1
func TestFilterEntities(t *testing.T) {
	world := ecs.NewWorld(64)
	want := make(map[ecs.Entity]bool)
	for i := 0; i < 3; i++ {
		e := world.CreateEntity()
		ecs.SetComponent(world, e, Health{Current: i})
		want[e] = true
	}

	f := ecs.NewFilter[Health](world)
	ents := f.Entities()
	if len(ents) != 3 {
		t.Fatalf("Expected 3 entities, got %d", len(ents))
	}
	for _, e := range ents {
		if !want[e] {
			t.Errorf("Unexpected entity %+v", e)
		}
	}
}
