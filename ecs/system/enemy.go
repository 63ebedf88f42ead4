package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/skybound/common"
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
)

// EnemySystem steps each enemy's movement rule.
type EnemySystem struct {
	failed map[ecs.Entity]bool
}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{failed: make(map[ecs.Entity]bool)}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform, sprite *component.Sprite) {
		if enemy.Behavior == nil || s.failed[e] {
			return
		}
		anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
		ctx := &component.EnemyContext{
			Tick:      w.Tick(),
			Speed:     enemy.Speed,
			Transform: t,
			Sprite:    sprite,
			Animation: anim,
		}
		if err := enemy.Behavior.Move(ctx); err != nil {
			// A broken script freezes only its own enemy.
			s.failed[e] = true
			log.Error("enemy behavior failed", "entity", e, "kind", enemy.Kind, "behavior", enemy.Behavior.Name(), "err", err)
		}
	})
}

// HoverBehavior bobs vertically around SpawnY by Step every IntervalMillis,
// reversing at SpawnY±Range. It never moves horizontally.
type HoverBehavior struct {
	SpawnY         float64
	Range          float64
	Step           float64
	IntervalMillis int

	elapsed int
	down    bool
}

func NewHoverBehavior(spawnY, hoverRange, step float64, intervalMillis int) *HoverBehavior {
	return &HoverBehavior{SpawnY: spawnY, Range: hoverRange, Step: step, IntervalMillis: intervalMillis}
}

func (h *HoverBehavior) Name() string { return "hover" }

func (h *HoverBehavior) Move(ctx *component.EnemyContext) error {
	h.elapsed += common.TickMillis
	if h.elapsed < h.IntervalMillis {
		return nil
	}
	h.elapsed -= h.IntervalMillis

	t := ctx.Transform
	if !h.down {
		t.Y -= h.Step
		if t.Y <= h.SpawnY-h.Range {
			t.Y = h.SpawnY - h.Range
			h.down = true
		}
		return nil
	}
	t.Y += h.Step
	if t.Y >= h.SpawnY+h.Range {
		t.Y = h.SpawnY + h.Range
		h.down = false
	}
	return nil
}

// PatrolBehavior walks back and forth within SpawnX±Range at the enemy's
// speed, flipping facing at each bound.
type PatrolBehavior struct {
	SpawnX float64
	Range  float64

	left bool
}

func NewPatrolBehavior(spawnX, patrolRange float64) *PatrolBehavior {
	return &PatrolBehavior{SpawnX: spawnX, Range: patrolRange}
}

func (p *PatrolBehavior) Name() string { return "patrol" }

func (p *PatrolBehavior) Move(ctx *component.EnemyContext) error {
	t := ctx.Transform
	if p.left {
		t.X -= ctx.Speed
		if t.X <= p.SpawnX-p.Range {
			t.X = p.SpawnX - p.Range
			p.left = false
		}
	} else {
		t.X += ctx.Speed
		if t.X >= p.SpawnX+p.Range {
			t.X = p.SpawnX + p.Range
			p.left = true
		}
	}

	if ctx.Sprite != nil {
		ctx.Sprite.FacingLeft = p.left
	}
	if ctx.Animation != nil {
		ctx.Animation.Play("run")
	}
	return nil
}
