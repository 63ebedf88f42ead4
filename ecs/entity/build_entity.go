package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/skybound/assets"
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
	"github.com/milk9111/skybound/ecs/system"
	"github.com/milk9111/skybound/prefabs"
)

type buildContext struct {
	PrefabPath string
	Images     *assets.Loader
	// At overrides the prefab transform when set.
	At *component.Transform
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":           addPlayerTag,
	"enemy_tag":            addEnemyTag,
	"exit_tag":             addExitTag,
	"background_tag":       addBackgroundTag,
	"player":               addPlayer,
	"input":                addInput,
	"player_state_machine": addPlayerStateMachine,
	"transform":            addTransform,
	"velocity":             addVelocity,
	"gravity":              addGravity,
	"hurtbox":              addHurtbox,
	"health":               addHealth,
	"sprite":               addSprite,
	"render_layer":         addRenderLayer,
	"animation":            addAnimation,
	"enemy":                addEnemy,
	"health_bar":           addHealthBar,
}

// Components that read others from the same entity come later.
var componentBuildOrder = []string{
	"player_tag",
	"enemy_tag",
	"exit_tag",
	"background_tag",
	"player",
	"input",
	"player_state_machine",
	"transform",
	"velocity",
	"gravity",
	"hurtbox",
	"health",
	"sprite",
	"render_layer",
	"animation",
	"enemy",
	"health_bar",
}

// BuildEntity creates an entity from a prefab. Images that fail to load
// are left nil and recorded on images.
func BuildEntity(w *ecs.World, prefabPath string, images *assets.Loader) (ecs.Entity, error) {
	return buildEntity(w, prefabPath, &buildContext{PrefabPath: prefabPath, Images: images})
}

// BuildEntityAt is BuildEntity with the prefab transform replaced by (x, y).
func BuildEntityAt(w *ecs.World, prefabPath string, images *assets.Loader, x, y float64) (ecs.Entity, error) {
	return buildEntity(w, prefabPath, &buildContext{
		PrefabPath: prefabPath,
		Images:     images,
		At:         &component.Transform{X: x, Y: y},
	})
}

func buildEntity(w *ecs.World, prefabPath string, ctx *buildContext) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	names := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
		}
	}
	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, unknown[0])
	}

	e := ecs.CreateEntity(w)
	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addEnemyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
}

func addExitTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ExitTagComponent.Kind(), &component.ExitTag{})
}

func addBackgroundTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BackgroundTagComponent.Kind(), &component.BackgroundTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:          spec.MoveSpeed,
		JumpSpeed:          spec.JumpSpeed,
		AttackFrames:       spec.AttackFrames,
		HurtFrames:         spec.HurtFrames,
		InvulnerableFrames: spec.InvulnerableFrames,
		BlinkInterval:      spec.BlinkInterval,
		BlinkToggles:       spec.BlinkToggles,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addPlayerStateMachine(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerStateMachineComponent.Kind(), &component.PlayerStateMachine{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	if ctx != nil && ctx.At != nil {
		at := *ctx.At
		return ecs.Add(w, e, component.TransformComponent.Kind(), &at)
	}
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y})
}

type velocitySpec = prefabs.VelocityComponentSpec

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[velocitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: spec.X, Y: spec.Y})
}

type gravitySpec = prefabs.GravityComponentSpec

func addGravity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity spec: %w", err)
	}
	if spec.Accel <= 0 {
		return fmt.Errorf("gravity accel must be positive, got %v", spec.Accel)
	}
	return ecs.Add(w, e, component.GravityComponent.Kind(), &component.Gravity{Accel: spec.Accel})
}

type hurtboxSpec = prefabs.HurtboxComponentSpec

func addHurtbox(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hurtboxSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hurtbox spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("hurtbox needs a positive size, got %vx%v", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.HurtboxComponent.Kind(), &component.Hurtbox{
		Width:   spec.Width,
		Height:  spec.Height,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})
}

type healthSpec = prefabs.HealthComponentSpec

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Initial <= 0 {
		return fmt.Errorf("health initial must be positive, got %d", spec.Initial)
	}
	current := spec.Current
	if current <= 0 || current > spec.Initial {
		current = spec.Initial
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Initial: spec.Initial, Current: current})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{
		FacingLeft:  spec.FacingLeft,
		Width:       spec.Width,
		Height:      spec.Height,
		Placeholder: spec.Placeholder.Color,
		StretchX:    spec.StretchX,
	}
	if spec.Image != "" && ctx != nil {
		sprite.Image = ctx.Images.Image(spec.Image)
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if len(spec.Defs) == 0 {
		return fmt.Errorf("animation defines no sequences")
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		if def.FrameCount <= 0 {
			return fmt.Errorf("animation %q: frame_count must be positive", name)
		}
		d := component.AnimationDef{
			Name:        name,
			Row:         def.Row,
			ColStart:    def.ColStart,
			FrameCount:  def.FrameCount,
			FrameW:      def.FrameW,
			FrameH:      def.FrameH,
			FrameMillis: def.FrameMillis,
			Loop:        def.Loop,
		}
		if ctx != nil {
			d.Sheet = ctx.Images.Image(def.Sheet)
		}
		defs[name] = d
	}

	current := spec.Current
	if _, ok := defs[current]; !ok {
		return fmt.Errorf("animation current %q is not defined", current)
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs:    defs,
		Current: current,
		Playing: true,
	})
}

type enemySpec = prefabs.EnemyComponentSpec

func addEnemy(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[enemySpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy spec: %w", err)
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("enemy requires transform on the same entity")
	}

	behavior, err := buildBehavior(spec, *t)
	if err != nil {
		return err
	}

	return ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Kind:           spec.Kind,
		Speed:          spec.Speed,
		ImmunityFrames: spec.ImmunityFrames,
		Behavior:       behavior,
	})
}

func buildBehavior(spec enemySpec, spawn component.Transform) (component.EnemyBehavior, error) {
	b := spec.Behavior
	switch b.Type {
	case "hover":
		if b.Step <= 0 || b.Range <= 0 || b.IntervalMs <= 0 {
			return nil, fmt.Errorf("hover behavior needs positive range, step and interval_ms")
		}
		return system.NewHoverBehavior(spawn.Y, b.Range, b.Step, b.IntervalMs), nil
	case "patrol":
		if b.Range <= 0 {
			return nil, fmt.Errorf("patrol behavior needs a positive range")
		}
		return system.NewPatrolBehavior(spawn.X, b.Range), nil
	case "script":
		src, err := prefabs.LoadScript(b.Script)
		if err != nil {
			return nil, fmt.Errorf("load script %q: %w", b.Script, err)
		}
		return system.NewScriptBehavior(b.Script, src, spawn.X, spawn.Y)
	default:
		return nil, fmt.Errorf("unknown enemy behavior %q", b.Type)
	}
}

type healthBarSpec = prefabs.HealthBarComponentSpec

// addHealthBar spawns one heart per point of the player's starting health.
// The player must already exist.
func addHealthBar(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthBarSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health bar spec: %w", err)
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return fmt.Errorf("health bar requires a player")
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return fmt.Errorf("health bar requires player health")
	}

	x, y := spec.X, spec.Y
	if ctx != nil && ctx.At != nil {
		x, y = ctx.At.X, ctx.At.Y
	}
	size := spec.Size
	if size <= 0 {
		size = 24
	}

	heartImg := ctx.Images.Image(spec.Heart)
	for slot := 0; slot < health.Initial; slot++ {
		heart := ecs.CreateEntity(w)
		if err := ecs.Add(w, heart, component.PlayerHealthHeartComponent.Kind(), &component.PlayerHealthHeart{Slot: slot}); err != nil {
			return err
		}
		if err := ecs.Add(w, heart, component.ScreenPositionComponent.Kind(), &component.ScreenPosition{X: x + float64(slot)*spec.Spacing, Y: y}); err != nil {
			return err
		}
		if err := ecs.Add(w, heart, component.SpriteComponent.Kind(), &component.Sprite{Image: heartImg, Width: size, Height: size}); err != nil {
			return err
		}
		if err := ecs.Add(w, heart, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 100}); err != nil {
			return err
		}
	}

	return ecs.Add(w, e, component.PlayerHealthBarComponent.Kind(), &component.PlayerHealthBar{MaxHearts: health.Initial})
}
