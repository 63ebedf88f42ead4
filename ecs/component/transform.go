package component

// Transform is the world-space top-left corner of an entity.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()

// Velocity is applied to the transform once per tick, in world units.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
