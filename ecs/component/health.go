package component

// Health tracks hit points. Current never goes below zero.
type Health struct {
	Initial int
	Current int
}

var HealthComponent = NewComponent[Health]()

func (h *Health) Alive() bool {
	return h != nil && h.Current > 0
}

// Damage subtracts amount, clamping at zero, and returns the new value.
func (h *Health) Damage(amount int) int {
	if h == nil || amount <= 0 {
		return h.value()
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

func (h *Health) value() int {
	if h == nil {
		return 0
	}
	return h.Current
}
