package component

// Invulnerable marks an entity as temporarily immune to damage. The player
// uses it as its invincibility window, enemies as their short post-hit
// immunity. Frames counts down once per tick; the component is removed at zero.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
