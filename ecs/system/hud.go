package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// HUDSystem draws the player's health and any start-up notice, such as
// sprites that failed to decode.
type HUDSystem struct {
	Notices []string
}

func NewHUDSystem(notices ...string) *HUDSystem {
	return &HUDSystem{Notices: notices}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if health, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			drawHUDText(screen, fmt.Sprintf("HP %d/%d", health.Current, health.Initial), 10, 44, color.White)
		}
	}

	y := float64(screen.Bounds().Dy()) - 20
	for i := len(h.Notices) - 1; i >= 0; i-- {
		drawHUDText(screen, h.Notices[i], 10, y, color.NRGBA{R: 0xff, G: 0x60, B: 0x60, A: 0xff})
		y -= 16
	}
}

func drawHUDText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}
