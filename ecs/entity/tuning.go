package entity

import (
	"fmt"

	"github.com/milk9111/hopper/levels"
	"github.com/milk9111/hopper/prefabs"
)

// Tuning bundles the prefab specs the builders read.
type Tuning struct {
	Player prefabs.PlayerSpec
	World  prefabs.WorldSpec
}

// LoadTuning reads player.yaml and world.yaml, preferring copies on disk.
func LoadTuning() (Tuning, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning: %w", err)
	}
	world, err := prefabs.LoadWorldSpec()
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning: %w", err)
	}
	return Tuning{Player: *player, World: *world}, nil
}

func (t Tuning) spawnOffset() levels.Point {
	return levels.Point{X: t.World.SpawnOffset.X, Y: t.World.SpawnOffset.Y}
}

func (t Tuning) defaultSpawn() levels.Point {
	if t.World.DefaultSpawn == (prefabs.PointSpec{}) {
		return levels.DefaultSpawn
	}
	return levels.Point{X: t.World.DefaultSpawn.X, Y: t.World.DefaultSpawn.Y}
}
