package system

import "github.com/milk9111/skybound/ecs/component"

// Player state singletons (avoid allocations on transitions).
var (
	playerStateIdle   component.PlayerState = &playerIdleState{}
	playerStateRun    component.PlayerState = &playerRunState{}
	playerStateJump   component.PlayerState = &playerJumpState{}
	playerStateFall   component.PlayerState = &playerFallState{}
	playerStateAttack component.PlayerState = &playerAttackState{}
	playerStateHurt   component.PlayerState = &playerHurtState{}
	playerStateDead   component.PlayerState = &playerDeadState{}
)

func playerStateByName(name string) component.PlayerState {
	switch name {
	case component.StateIdle:
		return playerStateIdle
	case component.StateRun:
		return playerStateRun
	case component.StateJump:
		return playerStateJump
	case component.StateFall:
		return playerStateFall
	case component.StateAttack:
		return playerStateAttack
	case component.StateHurt:
		return playerStateHurt
	case component.StateDead:
		return playerStateDead
	default:
		return nil
	}
}

type playerIdleState struct{}

type playerRunState struct{}

type playerJumpState struct{}

type playerFallState struct{}

type playerAttackState struct{}

type playerHurtState struct{}

type playerDeadState struct{}

func grounded(ctx *component.PlayerStateContext) bool {
	return ctx.IsGrounded == nil || ctx.IsGrounded()
}

func faceInput(ctx *component.PlayerStateContext) {
	if ctx.FacingLeft == nil {
		return
	}
	if ctx.Input.MoveX < 0 {
		ctx.FacingLeft(true)
	} else if ctx.Input.MoveX > 0 {
		ctx.FacingLeft(false)
	}
}

func moveWithInput(ctx *component.PlayerStateContext) {
	_, y := ctx.GetVelocity()
	ctx.SetVelocity(ctx.Input.MoveX*ctx.Player.MoveSpeed, y)
}

func stopHorizontal(ctx *component.PlayerStateContext) {
	_, y := ctx.GetVelocity()
	ctx.SetVelocity(0, y)
}

// settle picks the resting state once a time-boxed state or a flight ends.
func settle(ctx *component.PlayerStateContext) {
	switch {
	case !grounded(ctx):
		ctx.ChangeState(playerStateFall)
	case ctx.Input.MoveX != 0:
		ctx.ChangeState(playerStateRun)
	default:
		ctx.ChangeState(playerStateIdle)
	}
}

// groundedInput handles the transitions shared by idle and run.
func groundedInput(ctx *component.PlayerStateContext) bool {
	if ctx.Input.AttackPressed {
		ctx.ChangeState(playerStateAttack)
		return true
	}
	if ctx.Input.Jump && grounded(ctx) {
		ctx.ChangeState(playerStateJump)
		return true
	}
	return false
}

func (playerIdleState) Name() string { return component.StateIdle }
func (playerIdleState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("idle")
}
func (playerIdleState) Exit(ctx *component.PlayerStateContext) {}
func (playerIdleState) HandleInput(ctx *component.PlayerStateContext) {
	if groundedInput(ctx) {
		return
	}
	if ctx.Input.MoveX != 0 {
		ctx.ChangeState(playerStateRun)
	}
}
func (playerIdleState) Update(ctx *component.PlayerStateContext) {
	stopHorizontal(ctx)
	if !grounded(ctx) {
		ctx.ChangeState(playerStateFall)
	}
}

func (playerRunState) Name() string { return component.StateRun }
func (playerRunState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("run")
	faceInput(ctx)
}
func (playerRunState) Exit(ctx *component.PlayerStateContext) {}
func (playerRunState) HandleInput(ctx *component.PlayerStateContext) {
	if groundedInput(ctx) {
		return
	}
	if ctx.Input.MoveX == 0 {
		ctx.ChangeState(playerStateIdle)
		return
	}
	faceInput(ctx)
}
func (playerRunState) Update(ctx *component.PlayerStateContext) {
	moveWithInput(ctx)
	if !grounded(ctx) {
		ctx.ChangeState(playerStateFall)
	}
}

func (playerJumpState) Name() string { return component.StateJump }
func (playerJumpState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("jump")
	if ctx.Jump != nil {
		ctx.Jump()
	}
}
func (playerJumpState) Exit(ctx *component.PlayerStateContext) {}
func (playerJumpState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx.Input.AttackPressed {
		ctx.ChangeState(playerStateAttack)
		return
	}
	faceInput(ctx)
}
func (playerJumpState) Update(ctx *component.PlayerStateContext) {
	moveWithInput(ctx)
	if _, y := ctx.GetVelocity(); y > 0 {
		ctx.ChangeState(playerStateFall)
	}
}

func (playerFallState) Name() string { return component.StateFall }
func (playerFallState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("jump")
}
func (playerFallState) Exit(ctx *component.PlayerStateContext) {}
func (playerFallState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx.Input.AttackPressed {
		ctx.ChangeState(playerStateAttack)
		return
	}
	faceInput(ctx)
}
func (playerFallState) Update(ctx *component.PlayerStateContext) {
	moveWithInput(ctx)
	if grounded(ctx) {
		settle(ctx)
	}
}

func (playerAttackState) Name() string { return component.StateAttack }
func (playerAttackState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("attack")
}
func (playerAttackState) Exit(ctx *component.PlayerStateContext) {}
func (playerAttackState) HandleInput(ctx *component.PlayerStateContext) {
	faceInput(ctx)
}
func (playerAttackState) Update(ctx *component.PlayerStateContext) {
	moveWithInput(ctx)
	if ctx.StateFrames >= ctx.Player.AttackFrames {
		settle(ctx)
	}
}

func (playerHurtState) Name() string { return component.StateHurt }
func (playerHurtState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("hurt")
}
func (playerHurtState) Exit(ctx *component.PlayerStateContext)        {}
func (playerHurtState) HandleInput(ctx *component.PlayerStateContext) {}
func (playerHurtState) Update(ctx *component.PlayerStateContext) {
	stopHorizontal(ctx)
	if ctx.StateFrames >= ctx.Player.HurtFrames {
		settle(ctx)
	}
}

func (playerDeadState) Name() string { return component.StateDead }
func (playerDeadState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("dead")
	stopHorizontal(ctx)
}
func (playerDeadState) Exit(ctx *component.PlayerStateContext)        {}
func (playerDeadState) HandleInput(ctx *component.PlayerStateContext) {}
func (playerDeadState) Update(ctx *component.PlayerStateContext) {
	stopHorizontal(ctx)
}
