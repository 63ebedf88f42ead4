package system

import (
	"testing"

	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

func TestBlinkTogglesThenForcesVisible(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.BlinkComponent.Kind(), &component.Blink{Interval: 2, Toggles: 4})
	sys := NewBlinkSystem()

	var hidden []bool
	for i := 0; i < 8; i++ {
		b, ok := ecs.Get(w, e, component.BlinkComponent.Kind())
		if !ok {
			t.Fatalf("blink removed early at tick %d", i)
		}
		sys.Update(w)
		hidden = append(hidden, b.Hidden)
	}

	want := []bool{false, true, true, false, false, true, true, false}
	for i := range want {
		if hidden[i] != want[i] {
			t.Fatalf("tick %d: hidden=%v, want %v (%v)", i, hidden[i], want[i], hidden)
		}
	}
	if ecs.Has(w, e, component.BlinkComponent.Kind()) {
		t.Fatalf("expected blink removed after its toggles")
	}
}

func TestInvulnerableCountsDown(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 3})
	sys := NewInvulnerableSystem()

	for i := 0; i < 2; i++ {
		sys.Update(w)
		if !ecs.Has(w, e, component.InvulnerableComponent.Kind()) {
			t.Fatalf("removed after %d ticks", i+1)
		}
	}
	sys.Update(w)
	if ecs.Has(w, e, component.InvulnerableComponent.Kind()) {
		t.Fatalf("expected removal after 3 ticks")
	}
}

func TestHealthBarBlacksOutLostHearts(t *testing.T) {
	w := ecs.NewWorld()
	newTestLevel(t, w)
	player := newTestPlayer(t, w, 50)
	hearts := make([]ecs.Entity, 3)
	for i := range hearts {
		hearts[i] = ecs.CreateEntity(w)
		mustAdd(t, w, hearts[i], component.PlayerHealthHeartComponent.Kind(), &component.PlayerHealthHeart{Slot: i})
	}

	health := mustGet(t, w, player, component.HealthComponent.Kind())
	health.Damage(2)
	sys := NewPlayerHealthBarSystem()
	sys.Update(w)

	want := []bool{false, true, true}
	for i, h := range hearts {
		if got := ecs.Has(w, h, component.SpriteBlackoutComponent.Kind()); got != want[i] {
			t.Fatalf("heart %d blackout=%v, want %v", i, got, want[i])
		}
	}

	health.Current = 3
	sys.Update(w)
	for i, h := range hearts {
		if ecs.Has(w, h, component.SpriteBlackoutComponent.Kind()) {
			t.Fatalf("heart %d still blacked out after healing", i)
		}
	}
}

func TestHealthDamageClampsAtZero(t *testing.T) {
	h := &component.Health{Initial: 3, Current: 1}
	if got := h.Damage(5); got != 0 || h.Alive() {
		t.Fatalf("expected clamp to 0 and dead, got %d alive=%v", got, h.Alive())
	}
	if got := h.Damage(1); got != 0 {
		t.Fatalf("expected health to stay 0, got %d", got)
	}
}
