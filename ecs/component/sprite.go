package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	Image      *ebiten.Image
	FacingLeft bool
	// Width and Height are the drawn size; the image is scaled to fit and a
	// placeholder box of this size is drawn when Image is nil.
	Width       float64
	Height      float64
	Placeholder color.Color
	// StretchX scales the image to this world width (background).
	StretchX float64
	// Culled is set when the entity lies fully outside the viewport.
	Culled bool
}

var SpriteComponent = NewComponent[Sprite]()

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
