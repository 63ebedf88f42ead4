package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationDef describes one named frame sequence. Sheets are laid out in
// rows; when FrameW is zero the frame width is the sheet width divided by
// FrameCount.
type AnimationDef struct {
	Name        string
	Sheet       *ebiten.Image
	Row         int
	ColStart    int
	FrameCount  int
	FrameW      int
	FrameH      int
	FrameMillis int
	Loop        bool
}

type Animation struct {
	Defs    map[string]AnimationDef
	Current string
	Frame   int
	Elapsed int // milliseconds into the current frame
	Playing bool
}

var AnimationComponent = NewComponent[Animation]()

// Play switches to the named sequence, restarting it only when it changes.
func (a *Animation) Play(name string) {
	if a == nil || a.Current == name {
		return
	}
	if _, ok := a.Defs[name]; !ok {
		return
	}
	a.Current = name
	a.Frame = 0
	a.Elapsed = 0
	a.Playing = true
}
