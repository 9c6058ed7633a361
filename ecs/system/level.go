package system

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/levels"
)

// LevelSystem drives campaign progress. A body below the level's lower
// bound is sent back to spawn; a body touching the finish completes the
// level, and the next one (wrapping to the first) is built in its place.
type LevelSystem struct {
	campaign *levels.Campaign
	tuning   entity.Tuning
}

func NewLevelSystem(campaign *levels.Campaign, tuning entity.Tuning) *LevelSystem {
	return &LevelSystem{campaign: campaign, tuning: tuning}
}

func (s *LevelSystem) Update(w *ecs.World) {
	state, ok := levelState(w)
	if !ok {
		return
	}
	e, t, b, ok := playerBody(w)
	if !ok {
		return
	}

	if be, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if bounds, ok := ecs.Get(w, be, component.LevelBoundsComponent.Kind()); ok {
			if t.Y+b.Height > bounds.Height+bounds.FallTolerance {
				requestRespawn(w, e, component.CauseFell)
			}
		}
	}
	if ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
		return
	}

	if state.Phase == component.LevelPlaying && s.touchesFinish(w, bodyBB(t, b)) {
		state.Phase = component.LevelCompleting
	}
	if state.Phase == component.LevelCompleting {
		s.complete(w, state)
	}
}

func (s *LevelSystem) touchesFinish(w *ecs.World, box cp.BB) bool {
	hit := false
	ecs.ForEach(w, component.FinishComponent.Kind(), func(_ ecs.Entity, f *component.Finish) {
		if common.Overlaps(box, f.Bounds()) {
			hit = true
		}
	})
	return hit
}

// complete moves on to the next level. If that level cannot be built the
// current one stays loaded, progress is not advanced and the body goes back
// to its spawn point.
func (s *LevelSystem) complete(w *ecs.World, state *component.LevelState) {
	from := state.Index
	to := from + 1
	wrapped := to >= state.Count
	if wrapped {
		to = 0
	}
	state.Phase = component.LevelPlaying

	if err := entity.ReloadLevel(w, s.campaign, to, s.tuning); err != nil {
		log.Printf("level: load level %d: %v", to, err)
		if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			if spawn, ok := entity.SpawnPoint(w); ok {
				entity.PlaceAt(w, player, spawn.X, spawn.Y)
			}
		}
		return
	}
	state.Index = to
	state.Completions++
	if wrapped {
		state.Laps++
	}

	data := ecs.LevelData{From: from, To: to, Wrapped: wrapped}
	if wrapped {
		w.Events().Push(ecs.Event{Type: ecs.EventAllLevelsComplete, Data: data})
	}
	w.Events().Push(ecs.Event{Type: ecs.EventLevelCompleted, Data: data})
}

// Load jumps straight to level index (wrapped into range), rebuilding it and
// resetting the body. It is used for level selection and hot reload.
func (s *LevelSystem) Load(w *ecs.World, index int) error {
	state, ok := levelState(w)
	if !ok {
		return fmt.Errorf("level: no level state")
	}
	count := s.campaign.Len()
	if count == 0 {
		return levels.ErrEmptyCampaign
	}
	index = ((index % count) + count) % count
	if err := entity.ReloadLevel(w, s.campaign, index, s.tuning); err != nil {
		return err
	}
	state.Index = index
	state.Count = count
	state.Phase = component.LevelPlaying
	return nil
}

// SetCampaign swaps the level list. The caller reloads the current level.
func (s *LevelSystem) SetCampaign(c *levels.Campaign) { s.campaign = c }

// SetTuning swaps the tuning used for later level builds.
func (s *LevelSystem) SetTuning(t entity.Tuning) { s.tuning = t }

func levelState(w *ecs.World) (*component.LevelState, bool) {
	e, ok := ecs.First(w, component.LevelStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.LevelStateComponent.Kind())
}
