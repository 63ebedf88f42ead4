package system

import (
	"testing"

	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
	"github.com/milk9111/skybound/input"
)

const (
	testGroundY     = 500.0
	testLevelWidth  = 4000.0
	testViewportW   = 800.0
	testPlayerW     = 40.0
	testPlayerH     = 45.0
	testPlayerSpeed = 5.0
)

// scriptedSource replays a per-tick snapshot function.
type scriptedSource struct {
	tick int
	next func(tick int) input.Snapshot
}

func (s *scriptedSource) Poll() input.Snapshot {
	s.tick++
	if s.next == nil {
		return input.Snapshot{}
	}
	return s.next(s.tick)
}

func hold(snap input.Snapshot) *scriptedSource {
	return &scriptedSource{next: func(int) input.Snapshot { return snap }}
}

func newTestLevel(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: testLevelWidth, Height: 600, GroundY: testGroundY})
	mustAdd(t, w, e, component.CameraComponent.Kind(), &component.Camera{ViewportW: testViewportW, ViewportH: 600, SpeedFactor: 2})
	mustAdd(t, w, e, component.SessionComponent.Kind(), &component.Session{})
	return e
}

func newTestPlayer(t *testing.T, w *ecs.World, x float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:          testPlayerSpeed,
		JumpSpeed:          16,
		AttackFrames:       25,
		HurtFrames:         18,
		InvulnerableFrames: 90,
		BlinkInterval:      6,
		BlinkToggles:       14,
	})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.PlayerStateMachineComponent.Kind(), &component.PlayerStateMachine{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: testGroundY - testPlayerH})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(t, w, e, component.GravityComponent.Kind(), &component.Gravity{Accel: 1, Grounded: true})
	mustAdd(t, w, e, component.HurtboxComponent.Kind(), &component.Hurtbox{Width: testPlayerW, Height: testPlayerH})
	mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Initial: 3, Current: 3})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Width: testPlayerW, Height: testPlayerH})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), &component.Animation{
		Current: "idle",
		Playing: true,
		Defs: map[string]component.AnimationDef{
			"idle":   {Name: "idle", FrameCount: 4, FrameMillis: 125, Loop: true},
			"run":    {Name: "run", FrameCount: 6, FrameMillis: 125, Loop: true},
			"jump":   {Name: "jump", FrameCount: 8, FrameMillis: 100, Loop: true},
			"attack": {Name: "attack", FrameCount: 4, FrameMillis: 100},
		},
	})
	return e
}

func newTestEnemy(t *testing.T, w *ecs.World, x, y float64, behavior component.EnemyBehavior) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	mustAdd(t, w, e, component.EnemyComponent.Kind(), &component.Enemy{Kind: "test", Speed: 2, ImmunityFrames: 20, Behavior: behavior})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.HurtboxComponent.Kind(), &component.Hurtbox{Width: 50, Height: 50})
	mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Initial: 3, Current: 3})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Width: 50, Height: 50})
	return e
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %v missing component", e)
	}
	return v
}

func countEvents(events []ecs.Event, kind ecs.EventKind) int {
	n := 0
	for _, evt := range events {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}
