package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testBounds struct {
	X, Y, W, H float64
}

type testLabel struct {
	Text string
}

type testHidden struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Errorf("ids = %d, %d; want 1, 2", id1, id2)
	}
	if !em.Exists(id1) || em.Exists(99) {
		t.Error("Exists() mismatch")
	}
	if em.Count() != 2 {
		t.Errorf("Count() = %d, want 2", em.Count())
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(42, &testLabel{Text: "ghost"})
	if em.HasComponent(42, reflect.TypeOf(&testLabel{})) {
		t.Error("component attached to an entity that was never created")
	}
}

func TestReplaceAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testLabel{Text: "first"})
	AddComponent(em, id, &testLabel{Text: "second"})

	label, ok := GetComponent[*testLabel](em, id)
	if !ok || label.Text != "second" {
		t.Fatalf("GetComponent = %+v, %v; want second", label, ok)
	}

	RemoveComponent[*testLabel](em, id)
	if HasComponent[*testLabel](em, id) {
		t.Error("component still present after RemoveComponent")
	}
	if _, ok := GetComponent[*testLabel](em, id); ok {
		t.Error("GetComponent found a removed component")
	}
}

func TestValueAndPointerTypesAreDistinct(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, testHidden{})

	if !HasComponent[testHidden](em, id) {
		t.Error("value component not found")
	}
	if HasComponent[*testHidden](em, id) {
		t.Error("pointer type must not match a value component")
	}
}

func TestDestroyIsDeferred(t *testing.T) {
	em := NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()
	c := em.CreateEntity()
	for _, id := range []EntityID{a, b, c} {
		AddComponent(em, id, &testBounds{})
	}

	em.DestroyEntity(a)
	em.DestroyEntity(c)
	if got := GetEntitiesWith1[*testBounds](em); len(got) != 3 {
		t.Fatalf("entities removed before RemoveMarkedEntities: %v", got)
	}

	em.RemoveMarkedEntities()
	got := GetEntitiesWith1[*testBounds](em)
	if len(got) != 1 || got[0] != b {
		t.Errorf("remaining = %v, want [%d]", got, b)
	}
}

func TestQueriesAreSortedByID(t *testing.T) {
	em := NewEntityManager()
	var want []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testBounds{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testLabel{})
			want = append(want, id)
		}
	}

	for round := 0; round < 5; round++ {
		got := GetEntitiesWith2[*testBounds, *testLabel](em)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round %d: got %v, want %v", round, got, want)
		}
	}
}

func TestGetEntitiesWith3(t *testing.T) {
	em := NewEntityManager()
	full := em.CreateEntity()
	AddComponent(em, full, &testBounds{})
	AddComponent(em, full, &testLabel{})
	AddComponent(em, full, testHidden{})

	partial := em.CreateEntity()
	AddComponent(em, partial, &testBounds{})
	AddComponent(em, partial, &testLabel{})

	got := GetEntitiesWith3[*testBounds, *testLabel, testHidden](em)
	if len(got) != 1 || got[0] != full {
		t.Errorf("got %v, want [%d]", got, full)
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testLabel{})
	em.DestroyEntity(id)

	em.Clear()
	if em.Count() != 0 {
		t.Errorf("Count() = %d after Clear", em.Count())
	}

	next := em.CreateEntity()
	if next == id {
		t.Error("ids must not be reused after Clear")
	}
	em.RemoveMarkedEntities()
	if !em.Exists(next) {
		t.Error("stale destroy mark removed a new entity")
	}
}
