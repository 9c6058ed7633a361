package system

import (
	"sort"

	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// CollisionSystem resolves the body against platforms, then walls.
//
// Platforms use a swept test on the body's position at the start of the tick:
// the body lands when its bottom crossed a platform top this tick, and bumps
// its head when its top crossed a platform bottom. A body that stood on a
// moving platform last tick stays on it even if the platform's motion put its
// top slightly above the body's previous bottom.
//
// Platforms are read at the positions from the previous MovingPlatformSystem
// advance, and a carried body receives that same advance's displacement.
type CollisionSystem struct {
	solids []solidRef
}

type solidRef struct {
	e     ecs.Entity
	solid *component.Solid
}

func NewCollisionSystem() *CollisionSystem { return &CollisionSystem{} }

func (s *CollisionSystem) Update(w *ecs.World) {
	e, t, b, ok := playerBody(w)
	if !ok {
		return
	}
	bounce := 1.0
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		bounce = p.CeilingBounce
	}

	s.solids = s.solids[:0]
	ecs.ForEach(w, component.SolidComponent.Kind(), func(e ecs.Entity, solid *component.Solid) {
		s.solids = append(s.solids, solidRef{e: e, solid: solid})
	})
	sort.SliceStable(s.solids, func(i, j int) bool {
		return solidLess(s.solids[i].solid, s.solids[j].solid)
	})

	prevSupport := b.Support
	b.Support = 0
	prevTop := b.Prev.Y
	prevBottom := b.Prev.Y + b.Height

	for _, ref := range s.solids {
		if ref.solid.Kind == component.SolidWall {
			continue
		}
		p := ref.solid.Bounds()
		if !common.OverlapsX(bodyBB(t, b), p) {
			continue
		}

		bottom := t.Y + b.Height
		if bottom > p.B && (prevBottom <= p.B || ref.e.Handle() == prevSupport) {
			t.Y = p.B - b.Height
			b.Vel.Y = 0
			b.Grounded = true
			if ref.solid.Kind == component.SolidMoving {
				b.Support = ref.e.Handle()
				s.carry(w, ref.e, t)
			}
		}

		if t.Y < p.T && prevTop >= p.T {
			t.Y = p.T
			b.Vel.Y = bounce
		}
	}

	for _, ref := range s.solids {
		if ref.solid.Kind != component.SolidWall {
			continue
		}
		wallCenter := common.CenterX(ref.solid.Rect)
		for _, span := range ref.solid.Spans() {
			box := bodyBB(t, b)
			if !common.Overlaps(box, span) {
				continue
			}
			if common.CenterX(box) < wallCenter {
				t.X = span.L - b.Width
			} else {
				t.X = span.R
			}
		}
	}
}

func (s *CollisionSystem) carry(w *ecs.World, e ecs.Entity, t *component.Transform) {
	if osc, ok := ecs.Get(w, e, component.OscillatorComponent.Kind()); ok {
		t.X += osc.DeltaX
	}
	if bob, ok := ecs.Get(w, e, component.BobComponent.Kind()); ok {
		t.Y += bob.DeltaY
	}
}

// solidLess orders platforms before walls, then by authored order.
func solidLess(a, b *component.Solid) bool {
	aw, bw := a.Kind == component.SolidWall, b.Kind == component.SolidWall
	if aw != bw {
		return !aw
	}
	return a.Order < b.Order
}

func sortSolids(solids []*component.Solid) {
	sort.SliceStable(solids, func(i, j int) bool { return solidLess(solids[i], solids[j]) })
}
