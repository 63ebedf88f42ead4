package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
	"github.com/milk9111/skybound/storage"
)

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, nil)
	if !strings.Contains(buf.String(), "No results") {
		t.Fatalf("expected empty message, got %q", buf.String())
	}

	buf.Reset()
	printResults(&buf, []storage.Result{
		{Level: "morning", Outcome: "complete", Ticks: 3750, HealthLeft: 2, CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
	})
	out := buf.String()
	for _, want := range []string{"morning", "complete", "1m0s", "2026-03-01 09:30"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestAssetNotices(t *testing.T) {
	if got := assetNotices(nil); got != nil {
		t.Fatalf("expected no notices, got %v", got)
	}
	got := assetNotices([]string{"tengu_fly.png"})
	if len(got) != 1 || got[0] != "missing sprite: tengu_fly.png" {
		t.Fatalf("unexpected notices %v", got)
	}
}

func TestSessionHelpers(t *testing.T) {
	w := ecs.NewWorld()
	if sessionOf(w) != nil || playerHealth(w) != 0 {
		t.Fatalf("expected empty world to have no session or player")
	}

	level := ecs.CreateEntity(w)
	if err := ecs.Add(w, level, component.SessionComponent.Kind(), &component.Session{}); err != nil {
		t.Fatalf("add session: %v", err)
	}
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		t.Fatalf("add tag: %v", err)
	}
	if err := ecs.Add(w, player, component.HealthComponent.Kind(), &component.Health{Initial: 3, Current: 2}); err != nil {
		t.Fatalf("add health: %v", err)
	}

	if s := sessionOf(w); s == nil || s.Over() {
		t.Fatalf("expected a running session")
	}
	if got := playerHealth(w); got != 2 {
		t.Fatalf("expected health 2, got %d", got)
	}
}
