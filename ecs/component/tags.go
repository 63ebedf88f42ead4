package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

// ExitTag marks the level-exit trigger (the door).
type ExitTag struct{}

var ExitTagComponent = NewComponent[ExitTag]()

// BackgroundTag marks the stretched sky image scrolled with the camera.
type BackgroundTag struct{}

var BackgroundTagComponent = NewComponent[BackgroundTag]()
