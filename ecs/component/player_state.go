package component

// Player state names.
const (
	StateIdle   = "idle"
	StateRun    = "run"
	StateJump   = "jump"
	StateFall   = "fall"
	StateAttack = "attack"
	StateHurt   = "hurt"
	StateDead   = "dead"
)

// PlayerState defines the interface for player state machine states.
// Each state owns its own enter/exit, input handling, and update logic.
type PlayerState interface {
	Name() string
	Enter(ctx *PlayerStateContext)
	Exit(ctx *PlayerStateContext)
	HandleInput(ctx *PlayerStateContext)
	Update(ctx *PlayerStateContext)
}

// PlayerStateContext provides controlled access to input and physics for a state.
// It uses callbacks so states never reach into the ECS package.
type PlayerStateContext struct {
	Input           *Input
	Player          *Player
	StateFrames     int
	GetVelocity     func() (x, y float64)
	SetVelocity     func(x, y float64)
	IsGrounded      func() bool
	Jump            func()
	ChangeState     func(state PlayerState)
	ChangeAnimation func(animation string)
	FacingLeft      func(facingLeft bool)
}

// PlayerStateMachine stores the active and pending states for the player.
// Frames counts ticks spent in the active state.
type PlayerStateMachine struct {
	State   PlayerState
	Pending PlayerState
	Frames  int
}

var PlayerStateMachineComponent = NewComponent[PlayerStateMachine]()

// Is reports whether the active state has the given name.
func (m *PlayerStateMachine) Is(name string) bool {
	return m != nil && m.State != nil && m.State.Name() == name
}

// PlayerStateInterrupt is a one-shot request for an immediate state change,
// consumed by the player controller on its next update.
type PlayerStateInterrupt struct {
	State string
}

var PlayerStateInterruptComponent = NewComponent[PlayerStateInterrupt]()
