package system

import (
	"testing"

	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
	"github.com/milk9111/skybound/input"
)

func stepPlayer(w *ecs.World, in *InputSystem, ctrl *PlayerControllerSystem, n int) {
	for i := 0; i < n; i++ {
		in.Update(w)
		ctrl.Update(w)
	}
}

func TestAttackSettlesAfterAttackFrames(t *testing.T) {
	w := ecs.NewWorld()
	newTestLevel(t, w)
	player := newTestPlayer(t, w, 100)
	source := &scriptedSource{next: func(tick int) input.Snapshot {
		return input.Snapshot{AttackPressed: tick == 1}
	}}
	in, ctrl := NewInputSystem(source), NewPlayerControllerSystem()
	machine := mustGet(t, w, player, component.PlayerStateMachineComponent.Kind())

	stepPlayer(w, in, ctrl, 25)
	if !machine.Is(component.StateAttack) {
		t.Fatalf("expected attack through its 25 frames, got %s", machine.State.Name())
	}
	anim := mustGet(t, w, player, component.AnimationComponent.Kind())
	if anim.Current != "attack" {
		t.Fatalf("expected attack animation, got %q", anim.Current)
	}

	stepPlayer(w, in, ctrl, 1)
	if !machine.Is(component.StateIdle) {
		t.Fatalf("expected idle after the attack, got %s", machine.State.Name())
	}
}

func TestHurtStopsThenResumesRunning(t *testing.T) {
	w := ecs.NewWorld()
	newTestLevel(t, w)
	player := newTestPlayer(t, w, 100)
	in, ctrl := NewInputSystem(hold(input.Snapshot{Right: true})), NewPlayerControllerSystem()
	mustAdd(t, w, player, component.PlayerStateInterruptComponent.Kind(), &component.PlayerStateInterrupt{State: component.StateHurt})
	machine := mustGet(t, w, player, component.PlayerStateMachineComponent.Kind())
	vel := mustGet(t, w, player, component.VelocityComponent.Kind())

	stepPlayer(w, in, ctrl, 18)
	if !machine.Is(component.StateHurt) || vel.X != 0 {
		t.Fatalf("expected hurt and still, got %s vx=%v", machine.State.Name(), vel.X)
	}
	stepPlayer(w, in, ctrl, 1)
	if !machine.Is(component.StateRun) {
		t.Fatalf("expected run once hurt ends, got %s", machine.State.Name())
	}
	stepPlayer(w, in, ctrl, 1)
	if vel.X != testPlayerSpeed {
		t.Fatalf("expected vx=%v, got %v", testPlayerSpeed, vel.X)
	}
}

func TestDeadIgnoresInputAndInterrupts(t *testing.T) {
	w := ecs.NewWorld()
	newTestLevel(t, w)
	player := newTestPlayer(t, w, 100)
	in, ctrl := NewInputSystem(hold(input.Snapshot{Right: true, Jump: true, AttackPressed: true})), NewPlayerControllerSystem()
	mustAdd(t, w, player, component.PlayerStateInterruptComponent.Kind(), &component.PlayerStateInterrupt{State: component.StateDead})
	machine := mustGet(t, w, player, component.PlayerStateMachineComponent.Kind())
	vel := mustGet(t, w, player, component.VelocityComponent.Kind())

	stepPlayer(w, in, ctrl, 1)
	if !machine.Is(component.StateDead) {
		t.Fatalf("expected dead, got %s", machine.State.Name())
	}

	mustAdd(t, w, player, component.PlayerStateInterruptComponent.Kind(), &component.PlayerStateInterrupt{State: component.StateHurt})
	stepPlayer(w, in, ctrl, 10)
	if !machine.Is(component.StateDead) {
		t.Fatalf("dead state left for %s", machine.State.Name())
	}
	if vel.X != 0 || vel.Y != 0 {
		t.Fatalf("expected no movement while dead, got (%v, %v)", vel.X, vel.Y)
	}
	if ecs.Has(w, player, component.PlayerStateInterruptComponent.Kind()) {
		t.Fatalf("expected the interrupt to be consumed")
	}
}

func TestUnknownInterruptIsDropped(t *testing.T) {
	w := ecs.NewWorld()
	newTestLevel(t, w)
	player := newTestPlayer(t, w, 100)
	in, ctrl := NewInputSystem(hold(input.Snapshot{})), NewPlayerControllerSystem()
	mustAdd(t, w, player, component.PlayerStateInterruptComponent.Kind(), &component.PlayerStateInterrupt{State: "stunned"})

	stepPlayer(w, in, ctrl, 1)
	machine := mustGet(t, w, player, component.PlayerStateMachineComponent.Kind())
	if !machine.Is(component.StateIdle) {
		t.Fatalf("expected idle, got %s", machine.State.Name())
	}
}
