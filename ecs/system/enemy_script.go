package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/skybound/ecs/component"
)

// ScriptBehavior runs a Tengo script once per tick to compute the enemy's
// movement step. The script sees tick, x, y, spawn_x, spawn_y, speed and a
// persistent state map, and writes dx, dy and optionally facing_left.
type ScriptBehavior struct {
	name     string
	spawnX   float64
	spawnY   float64
	compiled *tengo.Compiled
	state    *tengo.Map
}

var scriptInputs = []string{"tick", "x", "y", "spawn_x", "spawn_y", "speed"}

// NewScriptBehavior compiles src. Only the math module may be imported.
func NewScriptBehavior(name string, src []byte, spawnX, spawnY float64) (*ScriptBehavior, error) {
	script := tengo.NewScript(src)
	for _, v := range scriptInputs {
		if err := script.Add(v, 0); err != nil {
			return nil, fmt.Errorf("enemy script %s: add %s: %w", name, v, err)
		}
	}
	state := &tengo.Map{Value: map[string]tengo.Object{}}
	_ = script.Add("state", state)
	_ = script.Add("dx", 0.0)
	_ = script.Add("dy", 0.0)
	_ = script.Add("facing_left", false)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("enemy script %s: compile: %w", name, err)
	}

	return &ScriptBehavior{
		name:     name,
		spawnX:   spawnX,
		spawnY:   spawnY,
		compiled: compiled,
		state:    state,
	}, nil
}

func (b *ScriptBehavior) Name() string { return "script:" + b.name }

func (b *ScriptBehavior) Move(ctx *component.EnemyContext) error {
	t := ctx.Transform
	values := map[string]any{
		"tick":    int64(ctx.Tick),
		"x":       t.X,
		"y":       t.Y,
		"spawn_x": b.spawnX,
		"spawn_y": b.spawnY,
		"speed":   ctx.Speed,
		"dx":      0.0,
		"dy":      0.0,
	}
	for k, v := range values {
		if err := b.compiled.Set(k, v); err != nil {
			return fmt.Errorf("enemy script %s: set %s: %w", b.name, k, err)
		}
	}
	if err := b.compiled.Set("state", b.state); err != nil {
		return fmt.Errorf("enemy script %s: set state: %w", b.name, err)
	}
	if err := b.compiled.Run(); err != nil {
		return fmt.Errorf("enemy script %s: run: %w", b.name, err)
	}

	t.X += b.compiled.Get("dx").Float()
	t.Y += b.compiled.Get("dy").Float()
	if ctx.Sprite != nil {
		ctx.Sprite.FacingLeft = b.compiled.Get("facing_left").Bool()
	}
	return nil
}
