package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// Rect is a top-left anchored rectangle in level pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type Circle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// RenderFeed is the plain geometry of one tick. Renderers draw from it and
// never touch the world.
type RenderFeed struct {
	Level       int      `json:"level"`
	Levels      int      `json:"levels"`
	Deaths      int      `json:"deaths"`
	Completions int      `json:"completions"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Body        Rect     `json:"body"`
	Grounded    bool     `json:"grounded"`
	Platforms   []Rect   `json:"platforms"`
	Moving      []Rect   `json:"moving"`
	Walls       []Rect   `json:"walls"`
	Hazards     []Rect   `json:"hazards"`
	Circles     []Circle `json:"circles"`
	Lava        *Rect    `json:"lava,omitempty"`
	Finish      Rect     `json:"finish"`
}

// Snapshot copies the renderable geometry out of the world. The lava strip
// is clipped to the level rect.
func Snapshot(w *ecs.World) RenderFeed {
	var feed RenderFeed

	if state, ok := levelState(w); ok {
		feed.Level = state.Index
		feed.Levels = state.Count
		feed.Deaths = state.Deaths
		feed.Completions = state.Completions
	}
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); ok {
			feed.Width, feed.Height = b.Width, b.Height
		}
	}
	if _, t, b, ok := playerBody(w); ok {
		feed.Body = rectOf(bodyBB(t, b))
		feed.Grounded = b.Grounded
	}

	var solids []*component.Solid
	ecs.ForEach(w, component.SolidComponent.Kind(), func(_ ecs.Entity, s *component.Solid) {
		solids = append(solids, s)
	})
	sortSolids(solids)
	for _, s := range solids {
		switch s.Kind {
		case component.SolidStatic:
			feed.Platforms = append(feed.Platforms, rectOf(s.Rect))
		case component.SolidMoving:
			feed.Moving = append(feed.Moving, rectOf(s.Rect))
		case component.SolidWall:
			for _, span := range s.Spans() {
				feed.Walls = append(feed.Walls, rectOf(span))
			}
		}
	}

	ecs.ForEach(w, component.HazardComponent.Kind(), func(_ ecs.Entity, h *component.Hazard) {
		switch {
		case h.Lava:
			lava := cp.BB{L: 0, B: h.Rect.B, R: feed.Width, T: math.Max(feed.Height, h.Rect.B)}
			r := rectOf(lava)
			feed.Lava = &r
		case h.Shape == component.HazardCircle:
			feed.Circles = append(feed.Circles, Circle{X: h.Center.X, Y: h.Center.Y, R: h.Radius})
		default:
			feed.Hazards = append(feed.Hazards, rectOf(h.Rect))
		}
	})

	if e, ok := ecs.First(w, component.FinishComponent.Kind()); ok {
		if f, ok := ecs.Get(w, e, component.FinishComponent.Kind()); ok {
			feed.Finish = rectOf(f.Bounds())
		}
	}
	return feed
}

func rectOf(b cp.BB) Rect {
	return Rect{X: b.L, Y: b.B, W: common.Width(b), H: common.Height(b)}
}
