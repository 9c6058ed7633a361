package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
)

type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

// Update performs the pending respawn request, if any: the body goes back to
// the current level's spawn point with zero velocity and one PlayerDied
// event is raised.
func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, req *component.RespawnRequest) {
		cause := req.Cause
		_ = ecs.Remove(w, e, component.RespawnRequestComponent.Kind())

		spawn, ok := entity.SpawnPoint(w)
		if !ok {
			return
		}
		entity.PlaceAt(w, e, spawn.X, spawn.Y)

		level := 0
		if state, ok := levelState(w); ok {
			state.Deaths++
			level = state.Index
		}
		w.Events().Push(ecs.Event{
			Type: ecs.EventPlayerDied,
			Data: ecs.DiedData{Cause: cause, Level: level},
		})
	})
}
