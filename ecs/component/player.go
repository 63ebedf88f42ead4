package component

// Player holds movement and combat tuning for the player character.
type Player struct {
	MoveSpeed          float64
	JumpSpeed          float64
	AttackFrames       int
	HurtFrames         int
	InvulnerableFrames int
	BlinkInterval      int
	BlinkToggles       int
}

var PlayerComponent = NewComponent[Player]()
