package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings maps each logical key to the physical keys that trigger it.
type Bindings map[Key][]ebiten.Key

// DefaultBindings mirrors the classic layout: A/D or arrows to move, space
// to jump, J or a left click to attack, Escape to pause.
func DefaultBindings() Bindings {
	return Bindings{
		KeyLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
		KeyRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
		KeyJump:   {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
		KeyAttack: {ebiten.KeyJ},
		KeyPause:  {ebiten.KeyEscape},
	}
}

// EbitenSource turns Ebitengine keyboard and mouse state into snapshots.
// Capture must be called once per host frame; Poll once per game tick.
type EbitenSource struct {
	bindings Bindings
	keys     *KeySet
	clicked  bool
}

func NewEbitenSource(b Bindings) *EbitenSource {
	if len(b) == 0 {
		b = DefaultBindings()
	}
	return &EbitenSource{bindings: b, keys: NewKeySet()}
}

// Capture samples the device state for this frame. Attack clicks are
// latched until the next Poll so a frame that runs no tick cannot drop them.
func (s *EbitenSource) Capture() {
	for key, physical := range s.bindings {
		if key == KeyPause {
			continue
		}
		held := false
		for _, p := range physical {
			if ebiten.IsKeyPressed(p) {
				held = true
				break
			}
		}
		if held {
			s.keys.Press(key)
		} else {
			s.keys.Release(key)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || s.justPressed(KeyAttack) {
		s.clicked = true
	}
}

// Poll returns the snapshot for one tick and consumes a latched click.
func (s *EbitenSource) Poll() Snapshot {
	snap := s.keys.Snapshot(s.clicked)
	s.clicked = false
	return snap
}

// PausePressed reports whether a pause key went down this frame.
func (s *EbitenSource) PausePressed() bool {
	return s.justPressed(KeyPause)
}

// Reset forgets held keys and latched clicks.
func (s *EbitenSource) Reset() {
	s.keys.Clear()
	s.clicked = false
}

func (s *EbitenSource) justPressed(k Key) bool {
	for _, p := range s.bindings[k] {
		if inpututil.IsKeyJustPressed(p) {
			return true
		}
	}
	return false
}
