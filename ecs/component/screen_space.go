package component

// ScreenPosition is the entity's top-left in viewport coordinates, derived
// each tick from its world transform and the camera offset.
type ScreenPosition struct {
	X float64
	Y float64
}

var ScreenPositionComponent = NewComponent[ScreenPosition]()
