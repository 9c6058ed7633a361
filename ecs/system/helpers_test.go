package system

import (
	"testing"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/levels"
	"github.com/milk9111/hopper/prefabs"
)

func testTuning() entity.Tuning {
	return entity.Tuning{
		Player: prefabs.PlayerSpec{
			Width:            30,
			Height:           30,
			MoveSpeed:        3,
			JumpPower:        10,
			Gravity:          0.5,
			TerminalVelocity: 10,
			CeilingBounce:    1,
		},
		World: prefabs.WorldSpec{
			FallTolerance:    60,
			SpawnOffset:      prefabs.PointSpec{X: 30, Y: -60},
			DefaultSpawn:     prefabs.PointSpec{X: 80, Y: 300},
			GroundSampleStep: 4,
		},
	}
}

func finishAt(x, y float64) levels.Rect {
	return levels.Rect{X: x, Y: y, Width: 50, Height: 10}
}

// newTestWorld builds a world holding the given levels with the body on the
// spawn point of the first one.
func newTestWorld(t *testing.T, lvls ...*levels.Level) (*ecs.World, ecs.Entity, *levels.Campaign) {
	t.Helper()
	c := &levels.Campaign{}
	for i, l := range lvls {
		if err := l.Validate(); err != nil {
			t.Fatalf("level %d invalid: %v", i, err)
		}
		c.Names = append(c.Names, l.Name)
		c.Levels = append(c.Levels, l)
	}
	w := ecs.NewWorld()
	player, err := entity.NewGame(w, c, 0, testTuning())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return w, player, c
}

type fixedInput component.Input

func (f *fixedInput) Poll() component.Input { return component.Input(*f) }

func bodyOf(t *testing.T, w *ecs.World, e ecs.Entity) (*component.Transform, *component.Body) {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("no transform")
	}
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		t.Fatalf("no body")
	}
	return tr, b
}

func eventsOf(evts []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, e := range evts {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func stateOf(t *testing.T, w *ecs.World) *component.LevelState {
	t.Helper()
	s, ok := levelState(w)
	if !ok {
		t.Fatalf("no level state")
	}
	return s
}
