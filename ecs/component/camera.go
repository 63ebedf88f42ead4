package component

// Camera holds the horizontal scroll offset: the world is drawn shifted by
// Offset, so Offset is zero at the level start and negative past it.
type Camera struct {
	Offset      float64
	ViewportW   float64
	ViewportH   float64
	SpeedFactor float64
}

var CameraComponent = NewComponent[Camera]()

// MinOffset is the most negative allowed offset for a level of width w.
func (c Camera) MinOffset(levelWidth float64) float64 {
	if levelWidth <= c.ViewportW {
		return 0
	}
	return -(levelWidth - c.ViewportW)
}
