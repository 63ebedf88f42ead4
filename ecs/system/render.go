package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

var (
	placeholderColor = color.NRGBA{R: 0xd0, G: 0x40, B: 0xd0, A: 0xff}
	debugBoxColor    = color.NRGBA{R: 0x40, G: 0xff, B: 0x40, A: 0xff}
)

// RenderSystem draws every projected sprite at its screen position, in
// render-layer order. Debug outlines contact boxes.
type RenderSystem struct {
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.ScreenPositionComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := layerIndex(w, entities[i])
		lj := layerIndex(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Culled {
			continue
		}
		if b, ok := ecs.Get(w, e, component.BlinkComponent.Kind()); ok && b.Hidden {
			continue
		}
		pos, _ := ecs.Get(w, e, component.ScreenPositionComponent.Kind())
		wdt, hgt := spriteExtent(w, e, s)

		if s.Image == nil {
			fill := s.Placeholder
			if fill == nil {
				fill = placeholderColor
			}
			vector.FillRect(screen, float32(pos.X), float32(pos.Y), float32(wdt), float32(hgt), fill, false)
			continue
		}

		img := s.Image
		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		if iw == 0 || ih == 0 {
			continue
		}
		sx, sy := 1.0, 1.0
		if wdt > 0 && hgt > 0 {
			sx, sy = wdt/iw, hgt/ih
		}

		op := &ebiten.DrawImageOptions{}
		if s.FacingLeft {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(iw, 0)
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(pos.X, pos.Y)
		if ecs.Has(w, e, component.SpriteBlackoutComponent.Kind()) {
			op.ColorScale.Scale(0.1, 0.1, 0.1, 1)
		}
		screen.DrawImage(img, op)
	}

	if r.Debug {
		r.drawHurtboxes(w, screen)
	}
}

func (r *RenderSystem) drawHurtboxes(w *ecs.World, screen *ebiten.Image) {
	offset := 0.0
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
		offset = cam.Offset
	}

	for _, e := range w.Query(component.HurtboxComponent.Kind(), component.TransformComponent.Kind()) {
		box, ok := hurtboxBB(w, e)
		if !ok {
			continue
		}
		vector.StrokeRect(screen, float32(box.L+offset), float32(box.B), float32(box.R-box.L), float32(box.T-box.B), 1, debugBoxColor, false)
	}
}

func layerIndex(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
