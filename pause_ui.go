package main

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/skybound/common"
)

type menuButton struct {
	label   string
	onClick func()
}

func newMainMenuUI(g *Game) *ebitenui.UI {
	return newMenuUI("Skybound", 0,
		menuButton{label: "Start Game", onClick: func() {
			if err := g.startLevel(); err != nil {
				log.Error("start game", "err", err)
			}
		}},
		menuButton{label: "Quit", onClick: func() { g.quit = true }},
	)
}

func newPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI("Paused", 200,
		menuButton{label: "Resume", onClick: g.resume},
		menuButton{label: "Quit to Menu", onClick: g.quitToMenu},
	)
}

func newEndUI(g *Game, title string) *ebitenui.UI {
	return newMenuUI(title, 200,
		menuButton{label: "Play Again", onClick: func() {
			if err := g.startLevel(); err != nil {
				log.Error("restart level", "err", err)
				g.quitToMenu()
			}
		}},
		menuButton{label: "Main Menu", onClick: g.quitToMenu},
	)
}

// newMenuUI builds a centered panel with a title and a column of buttons.
// Buttons use colored nine-slices and the built-in basic font so no theme
// assets are needed. alpha 0 gives an opaque panel.
func newMenuUI(title string, alpha uint8, buttons ...menuButton) *ebitenui.UI {
	if alpha == 0 {
		alpha = 255
	}
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x18, B: 0x30, A: alpha})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, white),
		widget.TextOpts.WidgetOpts(center),
	))

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnHover}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(160, 0)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
