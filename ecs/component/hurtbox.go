package component

// Hurtbox is the AABB used for contact tests, relative to the transform.
type Hurtbox struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

var HurtboxComponent = NewComponent[Hurtbox]()

// Bounds returns the world-space box for an entity at t.
func (h Hurtbox) Bounds(t Transform) (x, y, w, hgt float64) {
	return t.X + h.OffsetX, t.Y + h.OffsetY, h.Width, h.Height
}
