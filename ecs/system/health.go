package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

// HealthSystem handles entities whose health reached zero this tick.
// Enemies are destroyed immediately; the player dies and the session ends
// as a loss.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem { return &HealthSystem{} }

func (s *HealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.HealthComponent.Kind(), component.EnemyTagComponent.Kind()) {
		health, _ := ecs.Get(w, e, component.HealthComponent.Kind())
		if health.Alive() {
			continue
		}
		kind := ""
		if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
			kind = enemy.Kind
		}
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Kind: ecs.EventEnemyDefeated, Entity: e, Tick: w.Tick()})
		log.Info("enemy defeated", "kind", kind, "tick", w.Tick())
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || health.Alive() {
		return
	}
	if machine, ok := ecs.Get(w, player, component.PlayerStateMachineComponent.Kind()); ok && !machine.Is(component.StateDead) {
		_ = ecs.Add(w, player, component.PlayerStateInterruptComponent.Kind(), &component.PlayerStateInterrupt{State: component.StateDead})
	}
	if currentSession(w).End(component.SessionGameOver, w.Tick()) {
		w.Events().Push(ecs.Event{Kind: ecs.EventGameOver, Entity: player, Tick: w.Tick()})
		log.Info("game over", "tick", w.Tick())
	}
}
