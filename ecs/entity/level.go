package entity

import (
	"fmt"

	"github.com/milk9111/skybound/assets"
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
	"github.com/milk9111/skybound/levels"
)

// LoadLevelToWorld creates the level entity (camera, bounds, session) and
// every placed prefab. Entities that fall under gravity start on the ground.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, images *assets.Loader) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return 0, fmt.Errorf("load level: world and level are required")
	}

	levelEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, levelEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:   lvl.Width,
		Height:  lvl.Height,
		GroundY: lvl.GroundY,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, levelEntity, component.CameraComponent.Kind(), &component.Camera{
		ViewportW:   lvl.ViewportW,
		ViewportH:   lvl.ViewportH,
		SpeedFactor: lvl.SpeedFactor,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, levelEntity, component.SessionComponent.Kind(), &component.Session{}); err != nil {
		return 0, err
	}

	for _, placed := range lvl.Entities {
		e, err := BuildEntityAt(w, placed.Type+".yaml", images, placed.X, placed.Y)
		if err != nil {
			return 0, fmt.Errorf("load level %s: %w", lvl.Name, err)
		}
		snapToGround(w, e, lvl.GroundY)
	}

	return levelEntity, nil
}

func snapToGround(w *ecs.World, e ecs.Entity, groundY float64) {
	g, ok := ecs.Get(w, e, component.GravityComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	hb, ok := ecs.Get(w, e, component.HurtboxComponent.Kind())
	if !ok {
		return
	}
	t.Y = groundY - hb.Height - hb.OffsetY
	g.Grounded = true
}
