package component

// Gravity makes an entity fall toward the level ground line. Accel is added
// to vertical velocity every tick while the entity is airborne.
type Gravity struct {
	Accel    float64
	Grounded bool
}

var GravityComponent = NewComponent[Gravity]()
