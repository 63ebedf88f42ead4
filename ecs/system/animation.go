package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skybound/common"
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if anim.Playing {
			advanceFrame(anim, def)
		}
		if anim.Frame >= def.FrameCount {
			anim.Frame = def.FrameCount - 1
		}

		if def.Sheet == nil {
			return
		}
		sprite.Image = frameImage(def, anim.Frame)
	})
}

// advanceFrame moves the animation forward by one tick of elapsed time.
func advanceFrame(anim *component.Animation, def component.AnimationDef) {
	interval := def.FrameMillis
	if interval <= 0 {
		interval = common.TickMillis
	}

	anim.Elapsed += common.TickMillis
	for anim.Elapsed >= interval {
		anim.Elapsed -= interval
		anim.Frame++
		if anim.Frame < def.FrameCount {
			continue
		}
		if def.Loop {
			anim.Frame = 0
			continue
		}
		anim.Frame = def.FrameCount - 1
		anim.Playing = false
		anim.Elapsed = 0
		return
	}
}

// frameImage slices one frame out of a sheet laid out in rows.
func frameImage(def component.AnimationDef, frame int) *ebiten.Image {
	bounds := def.Sheet.Bounds()
	fw, fh := def.FrameW, def.FrameH
	if fw <= 0 {
		fw = bounds.Dx() / (def.ColStart + def.FrameCount)
	}
	if fh <= 0 {
		fh = bounds.Dy()
	}

	x := bounds.Min.X + (def.ColStart+frame)*fw
	y := bounds.Min.Y + def.Row*fh
	rect := image.Rect(x, y, x+fw, y+fh)
	return def.Sheet.SubImage(rect).(*ebiten.Image)
}
