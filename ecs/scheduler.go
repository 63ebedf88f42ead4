package ecs

import "time"

// DefaultMaxSteps bounds how many ticks a single Advance may run, so a long
// stall (window drag, breakpoint) does not spiral.
const DefaultMaxSteps = 5

// Scheduler runs systems in order on a fixed time step. The host loop feeds
// it elapsed wall time; whole steps are run and the remainder carried over.
type Scheduler struct {
	systems  []System
	step     time.Duration
	acc      time.Duration
	maxSteps int
}

func NewScheduler(step time.Duration, systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied, step: step, maxSteps: DefaultMaxSteps}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Step runs every system exactly once and advances the world tick.
func (s *Scheduler) Step(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	w.tick++
}

// Advance accumulates elapsed time and runs as many whole steps as fit, up
// to the step cap. It returns the number of steps run.
func (s *Scheduler) Advance(w *World, elapsed time.Duration) int {
	if s == nil || w == nil || s.step <= 0 {
		return 0
	}
	s.acc += elapsed
	steps := 0
	for s.acc >= s.step && steps < s.maxSteps {
		s.Step(w)
		s.acc -= s.step
		steps++
	}
	if steps == s.maxSteps && s.acc >= s.step {
		s.acc = 0
	}
	return steps
}

// Reset drops any carried-over time, e.g. when resuming from pause.
func (s *Scheduler) Reset() {
	if s == nil {
		return
	}
	s.acc = 0
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
