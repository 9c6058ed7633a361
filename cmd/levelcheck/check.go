package main

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/ecs/system"
	"github.com/milk9111/hopper/levels"
)

type report struct {
	Name       string
	Spawn      levels.Point
	Source     levels.SpawnSource
	Solids     int
	Hazards    int
	IdleDeaths int
}

func checkLevel(campaign *levels.Campaign, index int, tuning entity.Tuning, idleTicks int) (report, error) {
	lvl := campaign.At(index)
	world := ecs.NewWorld()
	if _, err := entity.NewGame(world, campaign, index, tuning); err != nil {
		return report{}, err
	}

	r := report{
		Name:    lvl.Name,
		Solids:  ecs.Count(world, component.SolidComponent.Kind()),
		Hazards: ecs.Count(world, component.HazardComponent.Kind()),
	}
	r.Spawn, r.Source = lvl.ResolveSpawn(
		levels.Point{X: tuning.World.SpawnOffset.X, Y: tuning.World.SpawnOffset.Y},
		levels.DefaultSpawn,
	)
	if sp, ok := entity.SpawnPoint(world); ok {
		r.Spawn = levels.Point{X: sp.X, Y: sp.Y}
	}

	idle := system.InputFunc(func() component.Input { return component.Input{} })
	pipeline := system.NewPipeline(idle, system.NewLevelSystem(campaign, tuning))
	for i := 0; i < idleTicks; i++ {
		pipeline.Update(world)
		for _, evt := range world.Events().Drain() {
			if evt.Type == ecs.EventPlayerDied {
				r.IdleDeaths++
			}
		}
	}
	return r, nil
}

func initialFeed(campaign *levels.Campaign, index int, tuning entity.Tuning) (system.RenderFeed, error) {
	world := ecs.NewWorld()
	if _, err := entity.NewGame(world, campaign, index, tuning); err != nil {
		return system.RenderFeed{}, err
	}
	return system.Snapshot(world), nil
}
