package ecs

import (
	"testing"

	"github.com/milk9111/skybound/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("second DestroyEntity should return false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestEntityIDReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected id %d to be reused, got %d", old.id(), reused.id())
	}
	if reused.generation() == old.generation() {
		t.Fatalf("expected generation bump on reuse")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle must not be alive")
	}

	h := component.NewComponent[int]()
	if err := Add(w, old, h.Kind(), intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()
	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, hInt.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hInt.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, hInt.Kind()) {
					t.Fatalf("e2 should not have int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, hInt.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				a, b := "a", "b"
				if err := Add(w, e1, hStr.Kind(), &a); err != nil {
					return err
				}
				return Add(w, e2, hStr.Kind(), &b)
			},
			check: func(t *testing.T) {
				if !Has(w, e1, hStr.Kind()) || !Has(w, e2, hStr.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, hStr.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	if err := Add[int](w, e1, hInt.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestGetReturnsSharedPointer(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}

	ForEach(w, h.Kind(), func(_ Entity, v *int) { *v = 7 })

	v, _ := Get(w, e, h.Kind())
	if *v != 7 {
		t.Fatalf("expected mutation through ForEach to persist, got %d", *v)
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)

	reused := CreateEntity(w)
	if Has(w, reused, h.Kind()) {
		t.Fatalf("reused id must not inherit components")
	}
}

func TestForEachSkipsEntitiesDestroyedMidIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	_ = Add(w, e1, h.Kind(), intPtr(1))
	_ = Add(w, e2, h.Kind(), intPtr(2))

	var seen []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		seen = append(seen, e)
		if e == e1 {
			DestroyEntity(w, e2)
		}
	})
	if len(seen) != 1 || seen[0] != e1 {
		t.Fatalf("expected only e1, got %v", seen)
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				_ = Add(w, e1, ka, intPtr(1))
				_ = Add(w, e2, ka, intPtr(2))
				_ = Add(w, e2, kb, intPtr(3))
				_ = Add(w, e2, kc, intPtr(5))
				_ = Add(w, e3, kb, intPtr(4))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ascending_id_order",
			run: func(t *testing.T) {
				w := NewWorld()
				k := component.NewComponentKind[int]()
				ents := []Entity{CreateEntity(w), CreateEntity(w), CreateEntity(w)}
				for i := len(ents) - 1; i >= 0; i-- {
					_ = Add(w, ents[i], k, intPtr(i))
				}
				got := w.Query(k)
				for i := range ents {
					if got[i] != ents[i] {
						t.Fatalf("expected id order %v, got %v", ents, got)
					}
				}
				first, ok := First(w, k)
				if !ok || first != ents[0] {
					t.Fatalf("expected First to return %v, got %v", ents[0], first)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				kd := component.NewComponentKind[int]()
				_ = Add(w, e, ka, intPtr(1))

				var res []Entity
				ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *int, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}
