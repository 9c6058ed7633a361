package system

import (
	"encoding/json"
	"testing"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/levels"
)

func TestSnapshot(t *testing.T) {
	lvl := &levels.Level{
		Name:      "feed",
		Width:     800,
		Height:    450,
		LavaY:     410,
		Platforms: []levels.Rect{{X: 50, Y: 360, Width: 120, Height: 10}, {X: 300, Y: 300, Width: 80, Height: 10}},
		MovingPlatforms: []levels.MovingPlatform{{
			Rect: levels.Rect{X: 200, Y: 390, Width: 100, Height: 10},
			MinX: 200, MaxX: 400, Speed: 2,
		}},
		Walls: []levels.Wall{{
			Rect:    levels.Rect{X: 500, Y: 100, Width: 20, Height: 300},
			Opening: &levels.Rect{X: 500, Y: 200, Width: 20, Height: 50},
		}},
		Hazards: []levels.Hazard{
			{X: 600, Y: 350, Width: 40, Height: 10},
			{Shape: levels.HazardShapeCircle, X: 700, Y: 200, Radius: 12},
		},
		Finish: finishAt(740, 320),
	}
	w, _, _ := newTestWorld(t, lvl)

	feed := Snapshot(w)
	if feed.Level != 0 || feed.Levels != 1 || feed.Width != 800 || feed.Height != 450 {
		t.Fatalf("header = %+v", feed)
	}
	if feed.Body != (Rect{X: 80, Y: 300, W: 30, H: 30}) {
		t.Fatalf("body = %+v", feed.Body)
	}
	if len(feed.Platforms) != 2 || feed.Platforms[0].X != 50 || feed.Platforms[1].X != 300 {
		t.Fatalf("platforms = %+v", feed.Platforms)
	}
	if len(feed.Moving) != 1 || feed.Moving[0] != (Rect{X: 200, Y: 390, W: 100, H: 10}) {
		t.Fatalf("moving = %+v", feed.Moving)
	}
	wantWalls := []Rect{{X: 500, Y: 100, W: 20, H: 100}, {X: 500, Y: 250, W: 20, H: 150}}
	if len(feed.Walls) != 2 || feed.Walls[0] != wantWalls[0] || feed.Walls[1] != wantWalls[1] {
		t.Fatalf("walls = %+v, want %+v", feed.Walls, wantWalls)
	}
	if len(feed.Hazards) != 1 || len(feed.Circles) != 1 || feed.Circles[0] != (Circle{X: 700, Y: 200, R: 12}) {
		t.Fatalf("hazards = %+v circles = %+v", feed.Hazards, feed.Circles)
	}
	if feed.Lava == nil || *feed.Lava != (Rect{X: 0, Y: 410, W: 800, H: 40}) {
		t.Fatalf("lava = %+v", feed.Lava)
	}
	if feed.Finish != (Rect{X: 740, Y: 320, W: 50, H: 10}) {
		t.Fatalf("finish = %+v", feed.Finish)
	}

	data, err := json.Marshal(feed)
	if err != nil {
		t.Fatalf("marshal feed: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty feed json")
	}
}

func TestInputSystemCopiesSnapshot(t *testing.T) {
	w, player, _ := newTestWorld(t, stepLevel("input", 50, 360, 550, 240))
	calls := 0
	sys := NewInputSystem(InputFunc(func() component.Input {
		calls++
		return component.Input{MoveRight: true, Jump: calls > 1}
	}))

	sys.Update(w)
	in, _ := ecs.Get(w, player, component.InputComponent.Kind())
	if !in.MoveRight || in.Jump || in.MoveLeft {
		t.Fatalf("input = %+v", in)
	}
	sys.Update(w)
	if !in.Jump {
		t.Fatalf("second poll not applied: %+v", in)
	}

	NewInputSystem(nil).Update(w)
}
