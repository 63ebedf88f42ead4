package ecs

import (
	"testing"
	"time"
)

type countingSystem struct {
	calls int
	order *[]string
	name  string
}

func (c *countingSystem) Update(w *World) {
	c.calls++
	if c.order != nil {
		*c.order = append(*c.order, c.name)
	}
}

func TestSchedulerStepOrder(t *testing.T) {
	var order []string
	a := &countingSystem{name: "a", order: &order}
	b := &countingSystem{name: "b", order: &order}
	s := NewScheduler(16*time.Millisecond, a, nil, b)
	w := NewWorld()

	s.Step(w)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected [a b], got %v", order)
	}
	if w.Tick() != 1 {
		t.Fatalf("expected tick 1, got %d", w.Tick())
	}
}

func TestSchedulerAdvance(t *testing.T) {
	tests := []struct {
		name    string
		elapsed []time.Duration
		want    int
	}{
		{"below_step", []time.Duration{10 * time.Millisecond}, 0},
		{"carry_over", []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, 1},
		{"exact_multiple", []time.Duration{48 * time.Millisecond}, 3},
		{"capped", []time.Duration{time.Second}, DefaultMaxSteps},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sys := &countingSystem{}
			s := NewScheduler(16*time.Millisecond, sys)
			w := NewWorld()
			for _, d := range tc.elapsed {
				s.Advance(w, d)
			}
			if sys.calls != tc.want {
				t.Fatalf("expected %d steps, got %d", tc.want, sys.calls)
			}
			if w.Tick() != uint64(tc.want) {
				t.Fatalf("expected world tick %d, got %d", tc.want, w.Tick())
			}
		})
	}
}

func TestSchedulerCapDropsBacklog(t *testing.T) {
	sys := &countingSystem{}
	s := NewScheduler(16*time.Millisecond, sys)
	w := NewWorld()

	s.Advance(w, time.Second)
	s.Advance(w, 0)

	if sys.calls != DefaultMaxSteps {
		t.Fatalf("expected backlog to be dropped after cap, got %d calls", sys.calls)
	}
}
