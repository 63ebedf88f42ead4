package component

// LevelBounds stores the world-space extent of the level and the ground
// line entities land on.
type LevelBounds struct {
	Width   float64
	Height  float64
	GroundY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
