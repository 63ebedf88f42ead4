package system

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

// CombatSystem resolves player contact with enemies and the exit door.
// Per enemy, a vulnerable player that is not attacking takes a hit first;
// otherwise an attacking player damages an enemy outside its immunity
// window. Touching the exit completes the level once.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	session := currentSession(w)
	if session.Over() {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	playerBox, ok := hurtboxBB(w, player)
	if !ok {
		return
	}
	machine, _ := ecs.Get(w, player, component.PlayerStateMachineComponent.Kind())
	if machine.Is(component.StateDead) {
		return
	}

	for _, enemy := range w.Query(component.EnemyTagComponent.Kind(), component.HurtboxComponent.Kind(), component.TransformComponent.Kind()) {
		enemyBox, ok := hurtboxBB(w, enemy)
		if !ok || !playerBox.Intersects(enemyBox) {
			continue
		}
		if health, ok := ecs.Get(w, enemy, component.HealthComponent.Kind()); ok && !health.Alive() {
			continue
		}

		attacking := machine.Is(component.StateAttack)
		inv, invulnerable := ecs.Get(w, player, component.InvulnerableComponent.Kind())
		switch {
		case !attacking && !invulnerable:
			damagePlayer(w, player)
		case attacking && !ecs.Has(w, enemy, component.InvulnerableComponent.Kind()):
			damageEnemy(w, enemy)
		}
		// Invincibility lasts while contact continues, so one contact
		// episode costs exactly one point of health.
		if invulnerable && inv.Frames < 2 {
			inv.Frames = 2
		}
	}

	for _, exit := range w.Query(component.ExitTagComponent.Kind(), component.HurtboxComponent.Kind(), component.TransformComponent.Kind()) {
		exitBox, ok := hurtboxBB(w, exit)
		if !ok || !playerBox.Intersects(exitBox) {
			continue
		}
		if session.End(component.SessionComplete, w.Tick()) {
			w.Events().Push(ecs.Event{Kind: ecs.EventLevelComplete, Entity: player, Tick: w.Tick()})
			log.Info("level complete", "tick", w.Tick())
		}
		return
	}
}

func damagePlayer(w *ecs.World, player ecs.Entity) {
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return
	}
	remaining := health.Damage(1)

	tuning, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	invFrames, blinkInterval, blinkToggles := 60, 5, 12
	if tuning != nil {
		invFrames, blinkInterval, blinkToggles = tuning.InvulnerableFrames, tuning.BlinkInterval, tuning.BlinkToggles
	}
	_ = ecs.Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: invFrames})
	startBlink(w, player, blinkInterval, blinkToggles)
	if remaining > 0 {
		_ = ecs.Add(w, player, component.PlayerStateInterruptComponent.Kind(), &component.PlayerStateInterrupt{State: component.StateHurt})
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDamaged, Entity: player, Tick: w.Tick(), Health: remaining})
	log.Debug("player hit", "health", remaining, "tick", w.Tick())
}

func damageEnemy(w *ecs.World, enemy ecs.Entity) {
	health, ok := ecs.Get(w, enemy, component.HealthComponent.Kind())
	if !ok {
		return
	}
	remaining := health.Damage(1)

	immunity := 20
	if e, ok := ecs.Get(w, enemy, component.EnemyComponent.Kind()); ok {
		immunity = e.ImmunityFrames
	}
	if immunity > 0 {
		_ = ecs.Add(w, enemy, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: immunity})
	}
	startBlink(w, enemy, 4, 4)

	w.Events().Push(ecs.Event{Kind: ecs.EventEnemyDamaged, Entity: enemy, Tick: w.Tick(), Health: remaining})
	log.Debug("enemy hit", "entity", enemy, "health", remaining, "tick", w.Tick())
}

func startBlink(w *ecs.World, e ecs.Entity, interval, toggles int) {
	if interval <= 0 || toggles <= 0 {
		return
	}
	_ = ecs.Add(w, e, component.BlinkComponent.Kind(), &component.Blink{Interval: interval, Toggles: toggles})
}

// hurtboxBB returns the world-space contact box of e. Edges touch inclusively.
func hurtboxBB(w *ecs.World, e ecs.Entity) (cp.BB, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	hb, ok := ecs.Get(w, e, component.HurtboxComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	x, y, wdt, hgt := hb.Bounds(*t)
	return cp.BB{L: x, B: y, R: x + wdt, T: y + hgt}, true
}

// currentSession returns the level's session, or nil when none exists.
func currentSession(w *ecs.World) *component.Session {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	return s
}
