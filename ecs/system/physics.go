package system

import (
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

// PhysicsSystem applies velocity once per tick. Entities with Gravity use a
// discrete integrator: position += velocity, then velocity += accel, and
// snap to the level ground line on contact.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	groundY := 0.0
	if levelEnt, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		bounds, _ := ecs.Get(w, levelEnt, component.LevelBoundsComponent.Kind())
		groundY = bounds.GroundY
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, t *component.Transform, v *component.Velocity) {
		t.X += v.X

		g, ok := ecs.Get(w, e, component.GravityComponent.Kind())
		if !ok {
			t.Y += v.Y
			return
		}
		if g.Grounded && v.Y == 0 {
			return
		}

		t.Y += v.Y
		v.Y += g.Accel

		if groundY <= 0 {
			g.Grounded = false
			return
		}

		height, offsetY := 0.0, 0.0
		if hb, ok := ecs.Get(w, e, component.HurtboxComponent.Kind()); ok {
			height, offsetY = hb.Height, hb.OffsetY
		}
		if t.Y+offsetY+height >= groundY {
			t.Y = groundY - height - offsetY
			v.Y = 0
			g.Grounded = true
		} else {
			g.Grounded = false
		}
	})
}
