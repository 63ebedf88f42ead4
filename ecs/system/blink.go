package system

import (
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

// BlinkSystem flips visibility for damage feedback and removes the
// component, leaving the entity visible, once every toggle is spent.
type BlinkSystem struct{}

func NewBlinkSystem() *BlinkSystem { return &BlinkSystem{} }

func (s *BlinkSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.BlinkComponent.Kind(), func(e ecs.Entity, b *component.Blink) {
		if b.Interval <= 0 {
			b.Interval = 1
		}
		b.Timer++
		if b.Timer >= b.Interval {
			b.Timer = 0
			b.Hidden = !b.Hidden
			b.Toggles--
		}
		if b.Toggles <= 0 {
			_ = ecs.Remove(w, e, component.BlinkComponent.Kind())
		}
	})
}
