package system

import (
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
	"github.com/milk9111/skybound/input"
)

// InputSource yields one input snapshot per tick.
type InputSource interface {
	Poll() input.Snapshot
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || w == nil {
		return
	}

	snap := i.source.Poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		in.MoveX = snap.MoveX()
		in.Conflict = snap.Conflict()
		in.Jump = snap.Jump
		in.AttackPressed = snap.AttackPressed
	})
}
