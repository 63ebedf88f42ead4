package system

import (
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

// InvulnerableSystem counts down damage immunity windows.
type InvulnerableSystem struct{}

func NewInvulnerableSystem() *InvulnerableSystem {
	return &InvulnerableSystem{}
}

func (s *InvulnerableSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		inv.Frames--
		if inv.Frames <= 0 {
			_ = ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})
}
