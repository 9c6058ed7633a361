package system

import "github.com/milk9111/hopper/ecs"

// NewPipeline returns the core systems in tick order: input, integration,
// rolling hazards and hazard overlap, collision, jump, platform advance,
// level progress and respawn.
func NewPipeline(input InputSource, level *LevelSystem) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(input),
		NewIntegratorSystem(),
		NewRollerSystem(),
		NewHazardSystem(),
		NewCollisionSystem(),
		NewJumpSystem(),
		NewMovingPlatformSystem(),
		level,
		NewRespawnSystem(),
	)
}
