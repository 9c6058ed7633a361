package entity

import (
	"fmt"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/levels"
)

// NewGame populates an empty world: the campaign state singleton, the level
// at index start (wrapped into range) and the body on its spawn point.
func NewGame(w *ecs.World, campaign *levels.Campaign, start int, tuning Tuning) (ecs.Entity, error) {
	count := campaign.Len()
	if count == 0 {
		return 0, levels.ErrEmptyCampaign
	}
	index := ((start % count) + count) % count

	stateEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, stateEntity, component.LevelStateComponent.Kind(), &component.LevelState{
		Index: index,
		Count: count,
		Phase: component.LevelPlaying,
	}); err != nil {
		return 0, fmt.Errorf("game: add level state: %w", err)
	}

	if err := LoadLevelToWorld(w, campaign.At(index), index, tuning); err != nil {
		return 0, err
	}
	spawn, _ := SpawnPoint(w)
	player, err := NewPlayerAt(w, tuning.Player, spawn.X, spawn.Y)
	if err != nil {
		return 0, err
	}
	return player, nil
}

// ReloadLevel replaces the current level with level index and puts the body
// on the new spawn point. Everything that can fail on level data is resolved
// before the current level is torn down; on such an error it stays in place.
func ReloadLevel(w *ecs.World, campaign *levels.Campaign, index int, tuning Tuning) error {
	lvl := campaign.At(index)
	grounds, err := prepareLevel(lvl, index, tuning)
	if err != nil {
		return err
	}
	ClearLevel(w)
	if err := buildLevel(w, lvl, index, tuning, grounds); err != nil {
		return err
	}
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		spawn, _ := SpawnPoint(w)
		PlaceAt(w, player, spawn.X, spawn.Y)
	}
	return nil
}
