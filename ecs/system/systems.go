package system

import (
	"github.com/milk9111/skybound/common"
	"github.com/milk9111/skybound/ecs"
)

// NewGameplayScheduler wires the per-tick systems in update order: input,
// movement, camera, collision, then timers and animation.
func NewGameplayScheduler(source InputSource) *ecs.Scheduler {
	return ecs.NewScheduler(common.TickDuration,
		NewInputSystem(source),
		NewPlayerControllerSystem(),
		NewEnemySystem(),
		NewPhysicsSystem(),
		NewCameraSystem(),
		NewCombatSystem(),
		NewHealthSystem(),
		NewInvulnerableSystem(),
		NewBlinkSystem(),
		NewAnimationSystem(),
		NewPlayerHealthBarSystem(),
	)
}
