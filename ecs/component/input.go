package component

// Input stores the per-tick intent resolved from held keys.
type Input struct {
	MoveX         float64
	Conflict      bool
	Jump          bool
	AttackPressed bool
}

var InputComponent = NewComponent[Input]()
