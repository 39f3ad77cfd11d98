package ecs

import "testing"

type testConfig struct {
	Name string
}

type testClock struct {
	Ticks int
}

func TestResourcesAddGet(t *testing.T) {
	r := &Resources{}
	id := r.Add(&testConfig{Name: "main"})
	if !r.Has(id) {
		t.Fatal("resource should exist after Add")
	}
	cfg, gotID := GetResource[testConfig](r)
	if cfg == nil || cfg.Name != "main" {
		t.Errorf("unexpected resource %+v", cfg)
	}
	if gotID != id {
		t.Errorf("expected id %d, got %d", id, gotID)
	}
}

func TestResourcesDuplicatePanics(t *testing.T) {
	r := &Resources{}
	r.Add(&testConfig{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate resource type")
		}
	}()
	r.Add(&testConfig{})
}

func TestResourcesRemoveAndReuse(t *testing.T) {
	r := &Resources{}
	id := r.Add(&testConfig{})
	r.Remove(id)
	if r.Has(id) {
		t.Error("resource should be gone after Remove")
	}
	if ok, _ := HasResource[testConfig](r); ok {
		t.Error("HasResource should report false after Remove")
	}
	// Freed ID is reused.
	id2 := r.Add(&testClock{Ticks: 1})
	if id2 != id {
		t.Errorf("expected freed id %d to be reused, got %d", id, id2)
	}
}

func TestResourcesClear(t *testing.T) {
	r := &Resources{}
	r.Add(&testConfig{})
	r.Add(&testClock{})
	r.Clear()
	if ok, _ := HasResource[testConfig](r); ok {
		t.Error("Clear should drop all resources")
	}
	// Adding after Clear must work again.
	r.Add(&testConfig{Name: "again"})
	cfg, _ := GetResource[testConfig](r)
	if cfg == nil || cfg.Name != "again" {
		t.Errorf("unexpected resource after Clear: %+v", cfg)
	}
}
