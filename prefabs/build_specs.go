package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name plus one raw entry per component.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveSpeed          float64 `yaml:"move_speed"`
	JumpSpeed          float64 `yaml:"jump_speed"`
	AttackFrames       int     `yaml:"attack_frames"`
	HurtFrames         int     `yaml:"hurt_frames"`
	InvulnerableFrames int     `yaml:"invulnerable_frames"`
	BlinkInterval      int     `yaml:"blink_interval"`
	BlinkToggles       int     `yaml:"blink_toggles"`
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type VelocityComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type GravityComponentSpec struct {
	Accel float64 `yaml:"accel"`
}

type SpriteComponentSpec struct {
	Image       string    `yaml:"image"`
	Width       float64   `yaml:"width"`
	Height      float64   `yaml:"height"`
	Placeholder YAMLColor `yaml:"placeholder"`
	FacingLeft  bool      `yaml:"facing_left"`
	StretchX    float64   `yaml:"stretch_x"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type AnimationDefComponentSpec struct {
	Sheet       string `yaml:"sheet"`
	Row         int    `yaml:"row"`
	ColStart    int    `yaml:"col_start"`
	FrameCount  int    `yaml:"frame_count"`
	FrameW      int    `yaml:"frame_w"`
	FrameH      int    `yaml:"frame_h"`
	FrameMillis int    `yaml:"frame_ms"`
	Loop        bool   `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
}

type HealthComponentSpec struct {
	Initial int `yaml:"initial"`
	Current int `yaml:"current"`
}

type HurtboxComponentSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// BehaviorComponentSpec selects an enemy movement rule. Type is "hover",
// "patrol" or "script".
type BehaviorComponentSpec struct {
	Type       string  `yaml:"type"`
	Range      float64 `yaml:"range"`
	Step       float64 `yaml:"step"`
	IntervalMs int     `yaml:"interval_ms"`
	Script     string  `yaml:"script"`
}

type EnemyComponentSpec struct {
	Kind           string                `yaml:"kind"`
	Speed          float64               `yaml:"speed"`
	ImmunityFrames int                   `yaml:"immunity_frames"`
	Behavior       BehaviorComponentSpec `yaml:"behavior"`
}

type HealthBarComponentSpec struct {
	Heart   string  `yaml:"heart"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Spacing float64 `yaml:"spacing"`
	Size    float64 `yaml:"size"`
}
