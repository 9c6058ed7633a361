package entity

import (
	"math"
	"testing"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/levels"
)

func loadTuning(t *testing.T) Tuning {
	t.Helper()
	tuning, err := LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	return tuning
}

func loadCampaign(t *testing.T) *levels.Campaign {
	t.Helper()
	c, err := levels.LoadCampaign(levels.LevelsFS)
	if err != nil {
		t.Fatalf("LoadCampaign: %v", err)
	}
	return c
}

func countSolids(w *ecs.World) map[component.SolidKind]int {
	out := map[component.SolidKind]int{}
	ecs.ForEach(w, component.SolidComponent.Kind(), func(_ ecs.Entity, s *component.Solid) {
		out[s.Kind]++
	})
	return out
}

func TestNewGamePlacesPlayerOnPlatformSpawn(t *testing.T) {
	w := ecs.NewWorld()
	player, err := NewGame(w, loadCampaign(t), 0, loadTuning(t))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("player has no transform")
	}
	if tr.X != 80 || tr.Y != 300 {
		t.Fatalf("spawn = %v,%v, want 80,300", tr.X, tr.Y)
	}
	body, _ := ecs.Get(w, player, component.BodyComponent.Kind())
	if body.Width != 30 || body.Height != 30 {
		t.Fatalf("body size = %vx%v", body.Width, body.Height)
	}
	if got := countSolids(w); got[component.SolidStatic] != 3 || got[component.SolidMoving] != 0 {
		t.Fatalf("solids = %v", got)
	}
	if _, err := NewPlayerAt(w, loadTuning(t).Player, 0, 0); err == nil {
		t.Fatalf("second player should be rejected")
	}
}

func TestNewGameWrapsStartIndex(t *testing.T) {
	c := loadCampaign(t)
	w := ecs.NewWorld()
	if _, err := NewGame(w, c, c.Len()+1, loadTuning(t)); err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	e, _ := ecs.First(w, component.LevelStateComponent.Kind())
	state, _ := ecs.Get(w, e, component.LevelStateComponent.Kind())
	if state.Index != 1 || state.Count != c.Len() {
		t.Fatalf("state = %+v", state)
	}

	if _, err := NewGame(ecs.NewWorld(), &levels.Campaign{}, 0, loadTuning(t)); err == nil {
		t.Fatalf("empty campaign should fail")
	}
}

func TestLoadLevelToWorldBuildsEveryKind(t *testing.T) {
	c := loadCampaign(t)
	tuning := loadTuning(t)

	cases := []struct {
		index   int
		static  int
		moving  int
		walls   int
		hazards int
		rollers int
	}{
		{index: 3, static: 1, moving: 1, hazards: 1},
		{index: 6, static: 1, moving: 1, walls: 2, hazards: 2},
		{index: 7, static: 2, moving: 2, hazards: 1},
		{index: 8, static: 4, hazards: 3, rollers: 1},
		{index: 9, static: 5, hazards: 3, rollers: 2},
	}
	for _, tc := range cases {
		t.Run(c.Names[tc.index], func(t *testing.T) {
			w := ecs.NewWorld()
			if err := LoadLevelToWorld(w, c.At(tc.index), tc.index, tuning); err != nil {
				t.Fatalf("LoadLevelToWorld: %v", err)
			}
			solids := countSolids(w)
			if solids[component.SolidStatic] != tc.static || solids[component.SolidMoving] != tc.moving || solids[component.SolidWall] != tc.walls {
				t.Fatalf("solids = %v", solids)
			}
			if n := ecs.Count(w, component.HazardComponent.Kind()); n != tc.hazards {
				t.Fatalf("hazards = %d, want %d", n, tc.hazards)
			}
			if n := ecs.Count(w, component.RollerComponent.Kind()); n != tc.rollers {
				t.Fatalf("rollers = %d, want %d", n, tc.rollers)
			}
			if n := ecs.Count(w, component.FinishComponent.Kind()); n != 1 {
				t.Fatalf("finish count = %d", n)
			}
			if n := ecs.Count(w, component.OscillatorComponent.Kind()); n != tc.moving {
				t.Fatalf("oscillators = %d, want %d", n, tc.moving)
			}
		})
	}
}

func TestLoadLevelToWorldSolidOrderAndLava(t *testing.T) {
	lvl := &levels.Level{
		Width:     800,
		Height:    450,
		LavaY:     410,
		Platforms: []levels.Rect{{X: 50, Y: 360, Width: 120, Height: 10}},
		MovingPlatforms: []levels.MovingPlatform{{
			Rect: levels.Rect{X: 200, Y: 390, Width: 100, Height: 10},
			MinX: 200, MaxX: 400, Speed: 2, Direction: -1,
		}},
		Walls: []levels.Wall{{
			Rect:    levels.Rect{X: 380, Y: 100, Width: 20, Height: 260},
			Opening: &levels.Rect{X: 380, Y: 300, Width: 20, Height: 60},
		}},
		Finish: levels.Rect{X: 600, Y: 390, Width: 50, Height: 10},
	}
	w := ecs.NewWorld()
	if err := LoadLevelToWorld(w, lvl, 2, loadTuning(t)); err != nil {
		t.Fatalf("LoadLevelToWorld: %v", err)
	}

	var kinds []component.SolidKind
	ecs.ForEach(w, component.SolidComponent.Kind(), func(e ecs.Entity, s *component.Solid) {
		if s.Order != len(kinds) {
			t.Fatalf("solid %s order = %d, want %d", s.Kind, s.Order, len(kinds))
		}
		kinds = append(kinds, s.Kind)
		if s.Kind == component.SolidWall && (!s.HasOpening || s.Opening.B != 300) {
			t.Fatalf("wall opening = %+v", s.Opening)
		}
		if s.Kind == component.SolidMoving {
			osc, ok := ecs.Get(w, e, component.OscillatorComponent.Kind())
			if !ok || osc.Dir != -1 || osc.MaxX != 400 {
				t.Fatalf("oscillator = %+v", osc)
			}
		}
		tag, ok := ecs.Get(w, e, component.LevelEntityComponent.Kind())
		if !ok || tag.Index != 2 {
			t.Fatalf("level tag = %+v", tag)
		}
	})
	if len(kinds) != 3 {
		t.Fatalf("solids = %v", kinds)
	}

	lava := 0
	ecs.ForEach(w, component.HazardComponent.Kind(), func(_ ecs.Entity, h *component.Hazard) {
		if h.Lava {
			lava++
			if h.Rect.B != 410 || !math.IsInf(h.Rect.R, 1) {
				t.Fatalf("lava rect = %+v", h.Rect)
			}
		}
	})
	if lava != 1 {
		t.Fatalf("lava hazards = %d", lava)
	}
}

func TestSpawnFallbackWithoutPlatforms(t *testing.T) {
	lvl := &levels.Level{
		Width:  800,
		Height: 450,
		Finish: levels.Rect{X: 600, Y: 390, Width: 50, Height: 10},
	}
	w := ecs.NewWorld()
	if err := LoadLevelToWorld(w, lvl, 0, loadTuning(t)); err != nil {
		t.Fatalf("LoadLevelToWorld: %v", err)
	}
	spawn, ok := SpawnPoint(w)
	if !ok {
		t.Fatalf("no spawn")
	}
	if !spawn.Fallback || spawn.X != levels.DefaultSpawn.X || spawn.Y != levels.DefaultSpawn.Y {
		t.Fatalf("spawn = %+v", spawn)
	}
}

func TestClearLevelKeepsPlayerAndState(t *testing.T) {
	c := loadCampaign(t)
	tuning := loadTuning(t)
	w := ecs.NewWorld()
	player, err := NewGame(w, c, 6, tuning)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if removed := ClearLevel(w); removed == 0 {
		t.Fatalf("ClearLevel removed nothing")
	}
	if ecs.Count(w, component.SolidComponent.Kind()) != 0 || ecs.Count(w, component.LevelEntityComponent.Kind()) != 0 {
		t.Fatalf("level entities survived")
	}
	if !ecs.IsAlive(w, player) {
		t.Fatalf("player destroyed with level")
	}
	if ecs.Count(w, component.LevelStateComponent.Kind()) != 1 {
		t.Fatalf("level state destroyed with level")
	}

	if err := ReloadLevel(w, c, 0, tuning); err != nil {
		t.Fatalf("ReloadLevel: %v", err)
	}
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.X != 80 || tr.Y != 300 {
		t.Fatalf("player after reload = %+v", tr)
	}
}

func TestReloadLevelFailureKeepsLevel(t *testing.T) {
	tuning := loadTuning(t)
	good := &levels.Level{
		Name:      "good",
		Width:     800,
		Height:    450,
		Platforms: []levels.Rect{{X: 50, Y: 360, Width: 120, Height: 10}},
		Finish:    levels.Rect{X: 550, Y: 240, Width: 50, Height: 10},
	}
	cases := []struct {
		name   string
		ground levels.Ground
	}{
		{name: "missing script", ground: levels.Ground{Kind: levels.GroundScript, Script: "missing.tengo"}},
		{name: "unknown kind", ground: levels.Ground{Kind: "spiral"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := &levels.Level{
				Name:    "bad",
				Width:   800,
				Height:  450,
				Rollers: []levels.Roller{{X: 300, Y: 100, Radius: 10, Ground: tc.ground}},
				Finish:  levels.Rect{X: 600, Y: 240, Width: 50, Height: 10},
			}
			c := &levels.Campaign{Names: []string{"good", "bad"}, Levels: []*levels.Level{good, bad}}
			w := ecs.NewWorld()
			if _, err := NewGame(w, c, 0, tuning); err != nil {
				t.Fatalf("NewGame: %v", err)
			}
			before := ecs.Count(w, component.LevelEntityComponent.Kind())

			if err := ReloadLevel(w, c, 1, tuning); err == nil {
				t.Fatalf("ReloadLevel succeeded on a broken level")
			}
			if got := ecs.Count(w, component.LevelEntityComponent.Kind()); got != before {
				t.Fatalf("level entities = %d, want %d", got, before)
			}
			if ecs.Count(w, component.FinishComponent.Kind()) != 1 || ecs.Count(w, component.RollerComponent.Kind()) != 0 {
				t.Fatalf("world changed by failed reload")
			}

			if err := LoadLevelToWorld(w, bad, 1, tuning); err == nil {
				t.Fatalf("LoadLevelToWorld succeeded on a broken level")
			}
			if got := ecs.Count(w, component.LevelEntityComponent.Kind()); got != before {
				t.Fatalf("failed load left %d level entities, want %d", got, before)
			}
		})
	}
}
