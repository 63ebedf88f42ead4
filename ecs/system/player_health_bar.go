package system

import (
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

// PlayerHealthBarSystem blacks out one heart per missing point of health.
type PlayerHealthBarSystem struct{}

func NewPlayerHealthBarSystem() *PlayerHealthBarSystem { return &PlayerHealthBarSystem{} }

func (s *PlayerHealthBarSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || health.Initial <= 0 {
		return
	}
	current := min(max(health.Current, 0), health.Initial)

	ecs.ForEach(w, component.PlayerHealthHeartComponent.Kind(), func(e ecs.Entity, heart *component.PlayerHealthHeart) {
		lost := heart.Slot >= current
		blackedOut := ecs.Has(w, e, component.SpriteBlackoutComponent.Kind())

		switch {
		case lost && !blackedOut:
			_ = ecs.Add(w, e, component.SpriteBlackoutComponent.Kind(), &component.SpriteBlackout{})
		case !lost && blackedOut:
			ecs.Remove(w, e, component.SpriteBlackoutComponent.Kind())
		}
	})
}
