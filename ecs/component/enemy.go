package component

// Enemy is the common base shared by every enemy type.
type Enemy struct {
	Kind           string
	Speed          float64
	ImmunityFrames int
	Behavior       EnemyBehavior
}

var EnemyComponent = NewComponent[Enemy]()

// EnemyBehavior is the per-type movement rule. Implementations keep their
// own oscillation state and are stepped once per tick.
type EnemyBehavior interface {
	Name() string
	Move(ctx *EnemyContext) error
}

// EnemyContext exposes the mutable state a behavior may touch.
type EnemyContext struct {
	Tick      uint64
	Speed     float64
	Transform *Transform
	Sprite    *Sprite
	Animation *Animation
}
