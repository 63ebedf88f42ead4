package prefabs

import (
	"image/color"
	"testing"
)

func TestEmbeddedPrefabsDecode(t *testing.T) {
	names := []string{"player.yaml", "tengu.yaml", "werewolf.yaml", "wisp.yaml", "background.yaml", "ground.yaml", "door.yaml", "health_bar.yaml"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(spec.Components) == 0 {
				t.Fatalf("expected components in %s", name)
			}
		})
	}
}

func TestPlayerPrefabTuning(t *testing.T) {
	spec, err := LoadEntityBuildSpec("player.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	player, err := DecodeComponentSpec[PlayerComponentSpec](spec.Components["player"])
	if err != nil {
		t.Fatalf("decode player: %v", err)
	}
	if player.MoveSpeed != 5 || player.JumpSpeed != 16 {
		t.Fatalf("unexpected tuning %+v", player)
	}

	anim, err := DecodeComponentSpec[AnimationComponentSpec](spec.Components["animation"])
	if err != nil {
		t.Fatalf("decode animation: %v", err)
	}
	want := map[string]int{"idle": 4, "run": 6, "jump": 8}
	for name, frames := range want {
		if got := anim.Defs[name].FrameCount; got != frames {
			t.Fatalf("%s frames = %d, want %d", name, got, frames)
		}
	}

	sprite, err := DecodeComponentSpec[SpriteComponentSpec](spec.Components["sprite"])
	if err != nil {
		t.Fatalf("decode sprite: %v", err)
	}
	if sprite.Placeholder.Color == nil {
		t.Fatalf("expected placeholder color")
	}
}

func TestEnemyBehaviors(t *testing.T) {
	tests := []struct {
		prefab string
		kind   string
		typ    string
	}{
		{prefab: "tengu.yaml", kind: "tengu", typ: "hover"},
		{prefab: "werewolf.yaml", kind: "werewolf", typ: "patrol"},
		{prefab: "wisp.yaml", kind: "wisp", typ: "script"},
	}
	for _, tc := range tests {
		t.Run(tc.prefab, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(tc.prefab)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			enemy, err := DecodeComponentSpec[EnemyComponentSpec](spec.Components["enemy"])
			if err != nil {
				t.Fatalf("decode enemy: %v", err)
			}
			if enemy.Kind != tc.kind || enemy.Behavior.Type != tc.typ {
				t.Fatalf("got kind=%q type=%q", enemy.Kind, enemy.Behavior.Type)
			}
		})
	}
}

func TestDecodeComponentSpecNil(t *testing.T) {
	got, err := DecodeComponentSpec[HurtboxComponentSpec](nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (HurtboxComponentSpec{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#ff0080", want: color.NRGBA{R: 0xff, G: 0x00, B: 0x80, A: 0xff}},
		{in: "10203040", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: "#fff", wantErr: true},
		{in: "#gg0000", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHexColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"wisp.tengo", "scripts/wisp.tengo", "prefabs/scripts/wisp.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("LoadScript(%q) returned empty script", name)
		}
	}
}

func TestWatchFileFilters(t *testing.T) {
	tests := map[string]bool{
		"prefabs/player.yaml": true,
		"prefabs/a.YML":       true,
		"scripts/wisp.tengo":  true,
		"prefabs/notes.txt":   false,
		"prefabs/player.go":   false,
	}
	for path, want := range tests {
		if got := isSpecFile(path) || isScriptFile(path); got != want {
			t.Fatalf("watch filter %q = %v, want %v", path, got, want)
		}
	}
}
