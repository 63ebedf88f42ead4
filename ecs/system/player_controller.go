package system

import (
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerComponent.Kind(),
		component.PlayerStateMachineComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
	) {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		machine, _ := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind())
		in, _ := ecs.Get(w, e, component.InputComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		grav, hasGravity := ecs.Get(w, e, component.GravityComponent.Kind())
		sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())

		ctx := &component.PlayerStateContext{
			Input:       in,
			Player:      player,
			StateFrames: machine.Frames,
			GetVelocity: func() (float64, float64) {
				return vel.X, vel.Y
			},
			SetVelocity: func(x, y float64) {
				vel.X = x
				vel.Y = y
			},
			IsGrounded: func() bool {
				return !hasGravity || grav.Grounded
			},
			Jump: func() {
				vel.Y = -player.JumpSpeed
				if hasGravity {
					grav.Grounded = false
				}
			},
			ChangeState: func(state component.PlayerState) {
				machine.Pending = state
			},
			ChangeAnimation: func(name string) {
				if anim != nil {
					anim.Play(name)
				}
			},
			FacingLeft: func(left bool) {
				if sprite != nil {
					sprite.FacingLeft = left
				}
			},
		}

		if machine.State == nil {
			transition(ctx, machine, playerStateIdle)
		}

		if interrupt, ok := ecs.Get(w, e, component.PlayerStateInterruptComponent.Kind()); ok {
			ecs.Remove(w, e, component.PlayerStateInterruptComponent.Kind())
			if next := playerStateByName(interrupt.State); next != nil && !machine.Is(component.StateDead) {
				transition(ctx, machine, next)
			}
		}

		machine.State.HandleInput(ctx)
		applyPending(ctx, machine)
		machine.State.Update(ctx)
		applyPending(ctx, machine)

		machine.Frames++
	}
}

func applyPending(ctx *component.PlayerStateContext, m *component.PlayerStateMachine) {
	next := m.Pending
	m.Pending = nil
	if next == nil || next == m.State {
		return
	}
	transition(ctx, m, next)
}

func transition(ctx *component.PlayerStateContext, m *component.PlayerStateMachine, next component.PlayerState) {
	if m.State != nil {
		m.State.Exit(ctx)
	}
	m.State = next
	m.Frames = 0
	ctx.StateFrames = 0
	next.Enter(ctx)
	// Enter may itself request a change; keep only the newest request.
	if m.Pending == next {
		m.Pending = nil
	}
}
