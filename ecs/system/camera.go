package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybound/common"
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

// CameraSystem scrolls the level to keep the player centered, clamps the
// scroll offset to the level, then projects every sprite into screen space
// and culls what lies fully outside the viewport.
type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	levelWidth := cam.ViewportW
	if bounds, ok := ecs.Get(w, cs.camEntity, component.LevelBoundsComponent.Kind()); ok {
		levelWidth = bounds.Width
	}

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		scrollToPlayer(w, player, cam, levelWidth)
	}
	cam.Offset = cp.Clamp(cam.Offset, cam.MinOffset(levelWidth), 0)

	project(w, cam)
}

func scrollToPlayer(w *ecs.World, player ecs.Entity, cam *component.Camera, levelWidth float64) {
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	v, ok := ecs.Get(w, player, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	width := 0.0
	if hb, ok := ecs.Get(w, player, component.HurtboxComponent.Kind()); ok {
		width = hb.Width
	}

	center := cam.ViewportW/2 - width/2
	screenX := t.X + cam.Offset
	minOffset := cam.MinOffset(levelWidth)
	dir := common.Sign(v.X)
	step := math.Abs(v.X) * cam.SpeedFactor

	scrolled := false
	switch {
	case dir > 0 && screenX > center && cam.Offset > minOffset:
		cam.Offset = cp.Clamp(cam.Offset-step, minOffset, 0)
		scrolled = true
	case dir < 0 && screenX < center && cam.Offset < 0:
		cam.Offset = cp.Clamp(cam.Offset+step, minOffset, 0)
		scrolled = true
	}
	if scrolled {
		t.X = center - cam.Offset
	}

	t.X = cp.Clamp(t.X, 0, levelWidth-width)
}

func project(w *ecs.World, cam *component.Camera) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		sx := t.X + cam.Offset
		sy := t.Y
		if pos, ok := ecs.Get(w, e, component.ScreenPositionComponent.Kind()); ok {
			pos.X = sx
			pos.Y = sy
		} else {
			_ = ecs.Add(w, e, component.ScreenPositionComponent.Kind(), &component.ScreenPosition{X: sx, Y: sy})
		}

		wdt, hgt := spriteExtent(w, e, s)
		view := cp.BB{L: 0, B: 0, R: cam.ViewportW, T: cam.ViewportH}
		box := cp.BB{L: sx, B: sy, R: sx + wdt, T: sy + hgt}
		s.Culled = !view.Intersects(box)
	})
}

// spriteExtent returns the drawn size of an entity in world units. Frames
// are scaled to Width x Height when those are set.
func spriteExtent(w *ecs.World, e ecs.Entity, s *component.Sprite) (float64, float64) {
	wdt, hgt := s.Width, s.Height
	if (wdt == 0 || hgt == 0) && s.Image != nil {
		b := s.Image.Bounds()
		wdt, hgt = float64(b.Dx()), float64(b.Dy())
	}
	if s.StretchX > 0 {
		wdt = s.StretchX
	}
	if wdt == 0 || hgt == 0 {
		if hb, ok := ecs.Get(w, e, component.HurtboxComponent.Kind()); ok {
			wdt, hgt = hb.Width, hb.Height
		}
	}
	return wdt, hgt
}
